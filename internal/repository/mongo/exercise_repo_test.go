package mongo

import (
	"context"
	"testing"
	"time"

	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestExerciseDocument_BSONRoundTrip(t *testing.T) {
	ex := domain.Exercise{
		Name:             "Bench Press",
		Category:         "strength",
		PrimaryMuscles:   []string{"chest"},
		SecondaryMuscles: []string{"triceps"},
		Equipment:        []string{"barbell", "bench"},
		Instructions:     []string{"press"},
		Video:            "https://cdn.example.com/bench.mp4",
	}

	raw, err := bson.Marshal(toDocument(7, ex, time.Now().UTC()))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "bench press", m["nameKey"])
	assert.EqualValues(t, 7, m["position"])
	assert.NotContains(t, m, "description")

	var doc exerciseDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toDomain()
	assert.Equal(t, ex.Name, got.Name)
	assert.Equal(t, ex.Equipment, got.Equipment)
	assert.Equal(t, ex.Video, got.Video)
	assert.Nil(t, got.Tips)
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "goblet squat", nameKey("  Goblet SQUAT "))
}

func newMockDB(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestMongoExerciseRepository_List(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("returns documents in cursor order", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ExerciseCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "position", Value: 0}, {Key: "name", Value: "Squat"}, {Key: "category", Value: "strength"}},
			bson.D{{Key: "position", Value: 1}, {Key: "name", Value: "Plank"}, {Key: "category", Value: "core"}},
		))

		got, err := NewMongoExerciseRepository(mt.DB).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "Squat", got[0].Name)
		assert.Equal(mt, "Plank", got[1].Name)
		assert.Equal(mt, []string{}, got[1].Equipment)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		sort, err := started.Command.LookupErr("sort")
		require.NoError(mt, err)
		assert.Equal(mt, int32(1), sort.Document().Lookup("position").Int32())
	})

	mt.Run("wraps command errors", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}, {Key: "errmsg", Value: "boom"}})

		_, err := NewMongoExerciseRepository(mt.DB).List(context.Background())
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "find exercises")
	})
}

func TestMongoExerciseRepository_GetByName(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ExerciseCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewMongoExerciseRepository(mt.DB).GetByName(context.Background(), "Nope")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("matches the lowercased name", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + ExerciseCollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Goblet Squat"}, {Key: "nameKey", Value: "goblet squat"}},
		))

		got, err := NewMongoExerciseRepository(mt.DB).GetByName(context.Background(), " GOBLET squat")
		require.NoError(mt, err)
		assert.Equal(mt, "Goblet Squat", got.Name)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "goblet squat", filter.Lookup("nameKey").StringValue())
	})
}

func TestMongoExerciseRepository_ReplaceAll(t *testing.T) {
	mt := newMockDB(t)
	exercises := []domain.Exercise{
		{Name: "Squat", Category: "strength"},
		{Name: "Plank", Category: "core"},
	}

	mt.Run("rejects an empty catalog", func(mt *mtest.T) {
		err := NewMongoExerciseRepository(mt.DB).ReplaceAll(context.Background(), nil)
		assert.ErrorIs(mt, err, repository.ErrInvalidInput)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})

	mt.Run("deletes then inserts in order", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 5}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		require.NoError(mt, NewMongoExerciseRepository(mt.DB).ReplaceAll(context.Background(), exercises))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "delete", events[0].CommandName)
		assert.Equal(mt, "insert", events[1].CommandName)

		docs, err := events[1].Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, "plank", docs[1].Document().Lookup("nameKey").StringValue())
		assert.Equal(mt, int32(1), docs[1].Document().Lookup("position").Int32())
	})

	mt.Run("reports insert failures", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 1, Code: 11000, Message: "duplicate key"}),
		)

		err := NewMongoExerciseRepository(mt.DB).ReplaceAll(context.Background(), exercises)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "insert exercises")
	})
}

func TestMongoExerciseRepository_SetVideo(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("unknown exercise", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewMongoExerciseRepository(mt.DB).SetVideo(context.Background(), "Nope", "https://cdn.example.com/v.mp4")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("updates the matched exercise", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := NewMongoExerciseRepository(mt.DB).SetVideo(context.Background(), "Plank", "https://cdn.example.com/v.mp4")
		require.NoError(mt, err)
		assert.Equal(mt, "update", mt.GetStartedEvent().CommandName)
	})
}
