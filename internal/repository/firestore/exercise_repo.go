// Package firestore stores the exercise catalog in a Cloud Firestore collection,
// one document per exercise keyed by its lower-cased name.
package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultCollection = "exercises"

type exerciseDocument struct {
	Position         int       `firestore:"position"`
	Name             string    `firestore:"name"`
	Category         string    `firestore:"category"`
	PrimaryMuscles   []string  `firestore:"primaryMuscles"`
	SecondaryMuscles []string  `firestore:"secondaryMuscles"`
	Equipment        []string  `firestore:"equipment"`
	Description      string    `firestore:"description,omitempty"`
	Instructions     []string  `firestore:"instructions"`
	Tips             []string  `firestore:"tips,omitempty"`
	Video            string    `firestore:"video,omitempty"`
	UpdatedAt        time.Time `firestore:"updatedAt"`
}

func toDocument(position int, ex domain.Exercise, now time.Time) exerciseDocument {
	return exerciseDocument{
		Position:         position,
		Name:             ex.Name,
		Category:         ex.Category,
		PrimaryMuscles:   orEmpty(ex.PrimaryMuscles),
		SecondaryMuscles: orEmpty(ex.SecondaryMuscles),
		Equipment:        orEmpty(ex.Equipment),
		Description:      ex.Description,
		Instructions:     orEmpty(ex.Instructions),
		Tips:             ex.Tips,
		Video:            ex.Video,
		UpdatedAt:        now,
	}
}

func (d exerciseDocument) toDomain() domain.Exercise {
	return domain.Exercise{
		Name:             d.Name,
		Category:         d.Category,
		PrimaryMuscles:   orEmpty(d.PrimaryMuscles),
		SecondaryMuscles: orEmpty(d.SecondaryMuscles),
		Equipment:        orEmpty(d.Equipment),
		Description:      d.Description,
		Instructions:     orEmpty(d.Instructions),
		Tips:             d.Tips,
		Video:            d.Video,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// docID derives the document ID from an exercise name.
// Firestore IDs may not contain '/'.
func docID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(id, "/", "-")
}

// ExerciseRepository implements repository.ExerciseRepository on Firestore.
type ExerciseRepository struct {
	client     *firestore.Client
	collection string
}

func NewExerciseRepository(client *firestore.Client, collection string) *ExerciseRepository {
	if collection == "" {
		collection = DefaultCollection
	}
	return &ExerciseRepository{
		client:     client,
		collection: collection,
	}
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

func (r *ExerciseRepository) exercises() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	docs, err := r.exercises().OrderBy("position", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	result := make([]domain.Exercise, 0, len(docs))
	for _, d := range docs {
		var doc exerciseDocument
		if err := d.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode exercise %s: %w", d.Ref.ID, err)
		}
		result = append(result, doc.toDomain())
	}
	return result, nil
}

func (r *ExerciseRepository) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	snap, err := r.exercises().Doc(docID(name)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var doc exerciseDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode exercise %s: %w", snap.Ref.ID, err)
	}
	exercise := doc.toDomain()
	return &exercise, nil
}

// ReplaceAll overwrites one document per exercise and deletes documents
// of exercises that are no longer part of the catalog.
func (r *ExerciseRepository) ReplaceAll(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return repository.ErrInvalidInput
	}

	keep := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		id := docID(ex.Name)
		if id == "" || keep[id] {
			return fmt.Errorf("%w: duplicate or empty exercise name %q", repository.ErrInvalidInput, ex.Name)
		}
		keep[id] = true
	}

	existing, err := r.exercises().Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("list existing exercises: %w", err)
	}

	now := time.Now().UTC()
	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(exercises)+len(existing))

	for i, ex := range exercises {
		job, err := bw.Set(r.exercises().Doc(docID(ex.Name)), toDocument(i, ex, now))
		if err != nil {
			bw.End()
			return fmt.Errorf("queue exercise %q: %w", ex.Name, err)
		}
		jobs = append(jobs, job)
	}
	for _, snap := range existing {
		if keep[snap.Ref.ID] {
			continue
		}
		job, err := bw.Delete(snap.Ref)
		if err != nil {
			bw.End()
			return fmt.Errorf("queue delete %s: %w", snap.Ref.ID, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("write exercises: %w", err)
		}
	}
	return nil
}

func (r *ExerciseRepository) SetVideo(ctx context.Context, name, videoURL string) error {
	_, err := r.exercises().Doc(docID(name)).Update(ctx, []firestore.Update{
		{Path: "video", Value: videoURL},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}
