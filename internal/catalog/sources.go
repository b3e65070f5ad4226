package catalog

import (
	"context"
	"fmt"

	"alcyxob/exercise-catalog/internal/domain"
)

// ExerciseLister is the read side of an exercise repository.
type ExerciseLister interface {
	List(ctx context.Context) ([]domain.Exercise, error)
}

// RepositorySource adapts a remote repository to a catalog Source.
type RepositorySource struct {
	name string
	repo ExerciseLister
}

func NewRepositorySource(name string, repo ExerciseLister) *RepositorySource {
	return &RepositorySource{name: name, repo: repo}
}

func (r *RepositorySource) Name() string {
	return r.name
}

func (r *RepositorySource) Fetch(ctx context.Context) ([]domain.Exercise, error) {
	return r.repo.List(ctx)
}

// ObjectStore is the subset of object storage needed for catalog snapshots.
type ObjectStore interface {
	PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error
	GetObject(ctx context.Context, objectKey string) ([]byte, error)
}

// SnapshotSource keeps a JSON snapshot of the catalog in object storage.
type SnapshotSource struct {
	store     ObjectStore
	objectKey string
}

func NewSnapshotSource(store ObjectStore, objectKey string) *SnapshotSource {
	return &SnapshotSource{store: store, objectKey: objectKey}
}

func (s *SnapshotSource) Name() string {
	return "snapshot:" + s.objectKey
}

func (s *SnapshotSource) Fetch(ctx context.Context) ([]domain.Exercise, error) {
	data, err := s.store.GetObject(ctx, s.objectKey)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return Decode(data, FormatJSON)
}

func (s *SnapshotSource) Save(ctx context.Context, exercises []domain.Exercise) error {
	data, err := Encode(exercises, FormatJSON)
	if err != nil {
		return err
	}
	if err := s.store.PutObject(ctx, s.objectKey, data, "application/json"); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// FailedSource stands in for a tier whose backend could not be opened.
// Every fetch reports the original error, so lower tiers still serve.
type FailedSource struct {
	name string
	err  error
}

func NewFailedSource(name string, err error) *FailedSource {
	return &FailedSource{name: name, err: err}
}

func (f *FailedSource) Name() string {
	return f.name
}

func (f *FailedSource) Fetch(_ context.Context) ([]domain.Exercise, error) {
	return nil, f.err
}
