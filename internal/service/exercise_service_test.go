package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alcyxob/exercise-catalog/internal/cache"
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/metrics"
	"alcyxob/exercise-catalog/internal/repository"
	"alcyxob/exercise-catalog/internal/storage"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sample = []domain.Exercise{
	{Name: "Bench Press", Category: "strength", PrimaryMuscles: []string{"chest"}, Equipment: []string{"barbell", "bench"}},
	{Name: "Push-up", Category: "strength", PrimaryMuscles: []string{"chest"}, Equipment: []string{}},
	{Name: "Running", Category: "cardio", PrimaryMuscles: []string{"quadriceps"}, Equipment: []string{}},
}

type fixture struct {
	loader  *catalog.MockLoader
	repo    *repository.MockExerciseRepository
	files   *storage.MockFileStorage
	store   *catalog.Store
	metrics *metrics.Manager
	svc     ExerciseService
}

func newFixture(t *testing.T, withRepo, withStorage bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:  catalog.NewMockLoader(ctrl),
		metrics: metrics.NewTestManager(),
	}
	f.store = catalog.NewStore(f.loader)

	var repo repository.ExerciseRepository
	if withRepo {
		f.repo = repository.NewMockExerciseRepository(ctrl)
		repo = f.repo
	}
	var files storage.FileStorage
	if withStorage {
		f.files = storage.NewMockFileStorage(ctrl)
		files = f.files
	}
	f.svc = NewExerciseService(f.store, repo, files, cache.NewSearchCache(1, 0), f.metrics, "catalog/exercises.json")
	return f
}

func (f *fixture) load(t *testing.T, exercises []domain.Exercise) {
	t.Helper()
	f.loader.EXPECT().Load(gomock.Any()).Return(exercises, "test", nil)
	_, err := f.store.Load(context.Background())
	require.NoError(t, err)
}

func TestSearchExercisesUninitialized(t *testing.T) {
	f := newFixture(t, false, false)

	got, err := f.svc.SearchExercises(context.Background(), domain.SearchFilter{SearchTerm: "press"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchExercisesUsesCache(t *testing.T) {
	f := newFixture(t, false, false)
	f.load(t, sample)

	filter := domain.SearchFilter{PrimaryMuscle: "chest"}
	first, err := f.svc.SearchExercises(context.Background(), filter)
	require.NoError(t, err)
	second, err := f.svc.SearchExercises(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 2)
	assert.Equal(t, "Bench Press", second[0].Name)
	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.CounterSearches))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterSearchCacheHit))
}

func TestReloadInvalidatesSearchResults(t *testing.T) {
	f := newFixture(t, false, false)
	f.load(t, sample)

	filter := domain.SearchFilter{Category: "cardio"}
	got, err := f.svc.SearchExercises(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 1)

	f.loader.EXPECT().Load(gomock.Any()).Return(sample[:2], "test", nil)
	status, err := f.svc.ReloadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, status.Count)

	got, err = f.svc.SearchExercises(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReloadFailureKeepsCatalog(t *testing.T) {
	f := newFixture(t, false, false)
	f.load(t, sample)
	before := f.svc.CatalogStatus(context.Background())

	f.loader.EXPECT().Load(gomock.Any()).Return(nil, "", catalog.ErrCatalogUnavailable)
	status, err := f.svc.ReloadCatalog(context.Background())
	assert.ErrorIs(t, err, catalog.ErrCatalogUnavailable)
	assert.Equal(t, before, status)

	got, err := f.svc.SearchExercises(context.Background(), domain.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterCatalogLoads.WithLabelValues("test", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.CounterCatalogLoads.WithLabelValues("none", "error")))
	assert.Equal(t, float64(3), testutil.ToFloat64(f.metrics.GaugeExercises))
}

func TestGetFacetsAndByName(t *testing.T) {
	f := newFixture(t, false, false)
	f.load(t, sample)

	facets := f.svc.GetFacets(context.Background())
	assert.Equal(t, []string{"cardio", "strength"}, facets.Categories)
	assert.Equal(t, []string{"barbell", "bench"}, facets.Equipment)
	assert.Equal(t, []string{"chest", "quadriceps"}, facets.PrimaryMuscles)

	ex, err := f.svc.GetExerciseByName(context.Background(), "  push-UP ")
	require.NoError(t, err)
	assert.Equal(t, "Push-up", ex.Name)

	_, err = f.svc.GetExerciseByName(context.Background(), "Snatch")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestValidateExercises(t *testing.T) {
	tests := []struct {
		name      string
		exercises []domain.Exercise
		wantErr   string
	}{
		{name: "empty batch", exercises: nil, wantErr: "at least one"},
		{name: "missing name", exercises: []domain.Exercise{{Name: " ", Category: "strength"}}, wantErr: "name is required"},
		{name: "missing category", exercises: []domain.Exercise{{Name: "Plank"}}, wantErr: "category is required"},
		{
			name:      "duplicate ignoring case",
			exercises: []domain.Exercise{{Name: "Plank", Category: "core"}, {Name: "plank", Category: "core"}},
			wantErr:   "duplicates",
		},
		{
			name:      "bad video url",
			exercises: []domain.Exercise{{Name: "Plank", Category: "core", Video: "ftp://x/y.mp4"}},
			wantErr:   "video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateExercises(tt.exercises)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("normalizes", func(t *testing.T) {
		got, err := ValidateExercises([]domain.Exercise{{Name: " Plank ", Category: "core", Video: "https://cdn.example.com/plank.mp4"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Plank", got[0].Name)
		assert.NotNil(t, got[0].PrimaryMuscles)
		assert.NotNil(t, got[0].SecondaryMuscles)
		assert.NotNil(t, got[0].Equipment)
		assert.NotNil(t, got[0].Instructions)
	})
}

func TestImportExercises(t *testing.T) {
	t.Run("no repository", func(t *testing.T) {
		f := newFixture(t, false, false)
		_, err := f.svc.ImportExercises(context.Background(), sample)
		assert.ErrorIs(t, err, ErrNoRepository)
	})

	t.Run("replaces and reloads", func(t *testing.T) {
		f := newFixture(t, true, false)
		f.load(t, sample)

		imported := []domain.Exercise{{Name: "Plank", Category: "core"}}
		f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(1)).Return(nil)
		f.loader.EXPECT().Load(gomock.Any()).Return(imported, "mongo", nil)

		status, err := f.svc.ImportExercises(context.Background(), imported)
		require.NoError(t, err)
		assert.Equal(t, 1, status.Count)
		assert.Equal(t, "mongo", status.Source)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t, true, false)
		f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(repository.ErrUpdateFailed)

		_, err := f.svc.ImportExercises(context.Background(), sample)
		assert.ErrorIs(t, err, repository.ErrUpdateFailed)
	})
}

func TestCreateVideoUploadURL(t *testing.T) {
	t.Run("storage disabled", func(t *testing.T) {
		f := newFixture(t, true, false)
		_, err := f.svc.CreateVideoUploadURL(context.Background(), "Bench Press", "video/mp4")
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	f := newFixture(t, true, true)
	f.load(t, sample)

	_, err := f.svc.CreateVideoUploadURL(context.Background(), "Snatch", "video/mp4")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = f.svc.CreateVideoUploadURL(context.Background(), "Bench Press", "image/png")
	assert.ErrorIs(t, err, ErrValidationFailed)

	f.files.EXPECT().
		GeneratePresignedUploadURL(gomock.Any(), gomock.Any(), "video/mp4", storage.DefaultPresignedURLExpiry).
		Return("https://s3.example.com/upload?sig=1", nil)

	resp, err := f.svc.CreateVideoUploadURL(context.Background(), "bench press", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/upload?sig=1", resp.UploadURL)
	assert.True(t, strings.HasPrefix(resp.ObjectKey, "videos/bench-press/"), resp.ObjectKey)
	assert.True(t, strings.HasSuffix(resp.ObjectKey, ".mp4"), resp.ObjectKey)
}

func TestConfirmVideoUpload(t *testing.T) {
	f := newFixture(t, true, true)
	f.load(t, sample)

	_, err := f.svc.ConfirmVideoUpload(context.Background(), "Bench Press", "videos/push-up/a.mp4")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = f.svc.ConfirmVideoUpload(context.Background(), "Bench Press", "videos/bench-press/../push-up/a.mp4")
	assert.ErrorIs(t, err, ErrValidationFailed)

	key := "videos/bench-press/a.mp4"
	videoURL := "https://cdn.example.com/" + key
	updated := sample[0]
	updated.Video = videoURL

	f.files.EXPECT().ObjectURL(key).Return(videoURL)
	f.repo.EXPECT().SetVideo(gomock.Any(), "Bench Press", videoURL).Return(nil)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, "", errors.New("remote down"))
	f.repo.EXPECT().GetByName(gomock.Any(), "Bench Press").Return(&updated, nil)

	got, err := f.svc.ConfirmVideoUpload(context.Background(), "Bench Press", key)
	require.NoError(t, err)
	assert.Equal(t, videoURL, got.Video)
}

func TestConfirmVideoUploadMissingInRepository(t *testing.T) {
	f := newFixture(t, true, true)
	f.load(t, sample)

	key := "videos/push-up/b.webm"
	f.files.EXPECT().ObjectURL(key).Return("https://cdn.example.com/" + key)
	f.repo.EXPECT().SetVideo(gomock.Any(), "Push-up", gomock.Any()).Return(repository.ErrNotFound)

	_, err := f.svc.ConfirmVideoUpload(context.Background(), "push-up", key)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestSnapshotDownloadURL(t *testing.T) {
	f := newFixture(t, false, false)
	_, err := f.svc.SnapshotDownloadURL(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)

	f = newFixture(t, false, true)
	f.files.EXPECT().
		GeneratePresignedDownloadURL(gomock.Any(), "catalog/exercises.json", storage.DefaultPresignedURLExpiry).
		Return("https://s3.example.com/catalog?sig=2", nil)

	url, err := f.svc.SnapshotDownloadURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/catalog?sig=2", url)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "bench-press", slug("Bench Press"))
	assert.Equal(t, "push-up", slug(" Push-up "))
	assert.Equal(t, "90-90-hip-stretch", slug("90/90 Hip Stretch!"))
}

func TestSearchExercisesCacheKeepsFiltersApart(t *testing.T) {
	f := newFixture(t, false, false)
	f.load(t, sample)

	got, err := f.svc.SearchExercises(context.Background(), domain.SearchFilter{Equipment: []string{"barbell", "bench"}})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = f.svc.SearchExercises(context.Background(), domain.SearchFilter{Equipment: []string{"barbell,bench"}})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.CounterSearchCacheHit))
}
