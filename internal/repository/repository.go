package repository

import (
	"alcyxob/exercise-catalog/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrInvalidInput = RepositoryError("invalid input")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for the remote exercise catalog.
// List must return exercises in catalog order.
type ExerciseRepository interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	// ReplaceAll swaps the whole catalog for the given ordered list.
	ReplaceAll(ctx context.Context, exercises []domain.Exercise) error
	SetVideo(ctx context.Context, name, videoURL string) error
}
