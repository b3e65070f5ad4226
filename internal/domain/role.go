package domain

// Role type to distinguish between token holders.
type Role string

// Define constants for roles
const (
	RoleAdmin  Role = "admin"  // may import and reload the catalog
	RoleViewer Role = "viewer" // read-only access
)
