package mongo

import (
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ExerciseCollectionName = "exercises"

// exerciseDocument is the stored form of an exercise. Position keeps the
// catalog order, NameKey backs case-insensitive lookups.
type exerciseDocument struct {
	Position         int       `bson:"position"`
	NameKey          string    `bson:"nameKey"`
	Name             string    `bson:"name"`
	Category         string    `bson:"category"`
	PrimaryMuscles   []string  `bson:"primaryMuscles"`
	SecondaryMuscles []string  `bson:"secondaryMuscles"`
	Equipment        []string  `bson:"equipment"`
	Description      string    `bson:"description,omitempty"`
	Instructions     []string  `bson:"instructions"`
	Tips             []string  `bson:"tips,omitempty"`
	Video            string    `bson:"video,omitempty"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toDocument(position int, ex domain.Exercise, now time.Time) exerciseDocument {
	return exerciseDocument{
		Position:         position,
		NameKey:          nameKey(ex.Name),
		Name:             ex.Name,
		Category:         ex.Category,
		PrimaryMuscles:   nonNil(ex.PrimaryMuscles),
		SecondaryMuscles: nonNil(ex.SecondaryMuscles),
		Equipment:        nonNil(ex.Equipment),
		Description:      ex.Description,
		Instructions:     nonNil(ex.Instructions),
		Tips:             ex.Tips,
		Video:            ex.Video,
		UpdatedAt:        now,
	}
}

func (d exerciseDocument) toDomain() domain.Exercise {
	return domain.Exercise{
		Name:             d.Name,
		Category:         d.Category,
		PrimaryMuscles:   nonNil(d.PrimaryMuscles),
		SecondaryMuscles: nonNil(d.SecondaryMuscles),
		Equipment:        nonNil(d.Equipment),
		Description:      d.Description,
		Instructions:     nonNil(d.Instructions),
		Tips:             d.Tips,
		Video:            d.Video,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(ExerciseCollectionName),
	}
}

// List retrieves the whole catalog in catalog order.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []exerciseDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}

	exercises := make([]domain.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toDomain())
	}
	return exercises, nil
}

// GetByName retrieves an exercise by its name, ignoring case.
func (r *mongoExerciseRepository) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	var doc exerciseDocument
	err := r.collection.FindOne(ctx, bson.M{"nameKey": nameKey(name)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	exercise := doc.toDomain()
	return &exercise, nil
}

// ReplaceAll removes every stored exercise and inserts the given list.
// The two steps are not atomic; readers may briefly see an empty collection,
// which the catalog loader treats as a failed tier.
func (r *mongoExerciseRepository) ReplaceAll(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return repository.ErrInvalidInput
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(exercises))
	for i, ex := range exercises {
		docs = append(docs, toDocument(i, ex, now))
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear exercises: %w", err)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert exercises: %w", err)
	}
	return nil
}

// SetVideo updates the demo video URL of a single exercise.
func (r *mongoExerciseRepository) SetVideo(ctx context.Context, name, videoURL string) error {
	update := bson.M{
		"$set": bson.M{
			"video":     videoURL,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"nameKey": nameKey(name)}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "nameKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
