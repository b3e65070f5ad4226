// internal/domain/exercise.go
package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Exercise represents a single exercise definition in the library.
// Records are loaded wholesale and treated as read-only afterwards.
type Exercise struct {
	Name             string   `json:"name" yaml:"name"`
	Category         string   `json:"category" yaml:"category"`                 // e.g., "strength", "cardio", "stretching"
	PrimaryMuscles   []string `json:"primaryMuscles" yaml:"primaryMuscles"`     // e.g., "chest", "quadriceps"
	SecondaryMuscles []string `json:"secondaryMuscles" yaml:"secondaryMuscles"` // possibly empty
	Equipment        []string `json:"equipment" yaml:"equipment"`               // empty means no equipment needed

	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Tips         []string `json:"tips,omitempty" yaml:"tips,omitempty"`
	Video        string   `json:"video,omitempty" yaml:"video,omitempty"` // Optional URL to a demo video
}

// SearchFilter holds the optional criteria of a catalog search.
// An empty string or an empty slice means the criterion is absent.
// All present criteria are combined with logical AND.
type SearchFilter struct {
	SearchTerm    string   `json:"searchTerm,omitempty"`
	Category      string   `json:"category,omitempty"`
	Equipment     []string `json:"equipment,omitempty"` // every item must be present on the record
	PrimaryMuscle string   `json:"primaryMuscle,omitempty"`
}

// Term returns the search term with surrounding whitespace removed.
func (f SearchFilter) Term() string {
	return strings.TrimSpace(f.SearchTerm)
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f SearchFilter) IsEmpty() bool {
	return f.Term() == "" && f.Category == "" && len(f.Equipment) == 0 && f.PrimaryMuscle == ""
}

// CacheKey returns a canonical representation of the filter.
// Two filters selecting the same records produce the same key; distinct
// criteria never share one, whatever characters the values contain.
func (f SearchFilter) CacheKey() string {
	equipment := make([]string, len(f.Equipment))
	copy(equipment, f.Equipment)
	sort.Strings(equipment)

	// A JSON array of strings quotes every value, so no separator can be forged.
	key, _ := json.Marshal([]interface{}{strings.ToLower(f.Term()), f.Category, equipment, f.PrimaryMuscle})
	return string(key)
}

// Facets are the distinct filter choices present in a catalog.
type Facets struct {
	Categories     []string `json:"categories"`
	Equipment      []string `json:"equipment"`
	PrimaryMuscles []string `json:"primaryMuscles"`
}
