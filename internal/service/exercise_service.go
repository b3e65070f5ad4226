package service

import (
	"alcyxob/exercise-catalog/internal/cache"
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/metrics"
	"alcyxob/exercise-catalog/internal/repository"
	"alcyxob/exercise-catalog/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
	ErrNoRepository     = errors.New("no remote exercise repository configured")
	ErrStorageDisabled  = errors.New("object storage is not configured")
)

// UploadURLResponse carries a presigned upload URL and the key the object will be stored under.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Service Interface ---
type ExerciseService interface {
	SearchExercises(ctx context.Context, filter domain.SearchFilter) ([]domain.Exercise, error)
	GetFacets(ctx context.Context) domain.Facets
	GetExerciseByName(ctx context.Context, name string) (*domain.Exercise, error)
	CatalogStatus(ctx context.Context) catalog.Status
	ReloadCatalog(ctx context.Context) (catalog.Status, error)
	ImportExercises(ctx context.Context, exercises []domain.Exercise) (catalog.Status, error)
	CreateVideoUploadURL(ctx context.Context, exerciseName, contentType string) (*UploadURLResponse, error)
	ConfirmVideoUpload(ctx context.Context, exerciseName, objectKey string) (*domain.Exercise, error)
	SnapshotDownloadURL(ctx context.Context) (string, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	store       *catalog.Store
	repo        repository.ExerciseRepository // nil when the catalog has no remote store
	fileStorage storage.FileStorage           // nil when object storage is disabled
	searchCache *cache.SearchCache
	metrics     *metrics.Manager
	snapshotKey string
}

// NewExerciseService creates a new instance of exerciseService.
// repo and fileStorage are optional.
func NewExerciseService(
	store *catalog.Store,
	repo repository.ExerciseRepository,
	fileStorage storage.FileStorage,
	searchCache *cache.SearchCache,
	metricsManager *metrics.Manager,
	snapshotKey string,
) ExerciseService {
	s := &exerciseService{
		store:       store,
		repo:        repo,
		fileStorage: fileStorage,
		searchCache: searchCache,
		metrics:     metricsManager,
		snapshotKey: snapshotKey,
	}
	store.Observe(s.recordLoad)
	return s
}

func (s *exerciseService) recordLoad(status catalog.Status, err error) {
	if err != nil {
		s.metrics.CounterCatalogLoads.WithLabelValues("none", "error").Inc()
		return
	}
	s.metrics.CounterCatalogLoads.WithLabelValues(status.Source, "ok").Inc()
	s.metrics.GaugeExercises.Set(float64(status.Count))
}

// SearchExercises returns the matching exercises in catalog order.
// An unavailable catalog yields an empty list, not an error.
func (s *exerciseService) SearchExercises(_ context.Context, filter domain.SearchFilter) ([]domain.Exercise, error) {
	s.metrics.CounterSearches.Inc()

	status := s.store.Status()
	if !status.Initialized {
		return []domain.Exercise{}, nil
	}

	if cached, ok := s.searchCache.Get(status.Version, filter); ok {
		s.metrics.CounterSearchCacheHit.Inc()
		return cached, nil
	}

	exercises, version := s.store.SearchWithVersion(filter)
	s.searchCache.Set(version, filter, exercises)
	return exercises, nil
}

func (s *exerciseService) GetFacets(_ context.Context) domain.Facets {
	return s.store.Facets()
}

// GetExerciseByName looks the exercise up in the loaded catalog.
func (s *exerciseService) GetExerciseByName(_ context.Context, name string) (*domain.Exercise, error) {
	exercise, ok := s.store.FindByName(name)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	return &exercise, nil
}

func (s *exerciseService) CatalogStatus(_ context.Context) catalog.Status {
	return s.store.Status()
}

// ReloadCatalog fetches the catalog again. On failure the stale catalog keeps serving.
func (s *exerciseService) ReloadCatalog(ctx context.Context) (catalog.Status, error) {
	status, err := s.store.Load(ctx)
	if err != nil {
		return status, err
	}
	s.searchCache.Clear()
	return status, nil
}

// ImportExercises replaces the remote catalog with the given list and reloads.
func (s *exerciseService) ImportExercises(ctx context.Context, exercises []domain.Exercise) (catalog.Status, error) {
	if s.repo == nil {
		return s.store.Status(), ErrNoRepository
	}

	normalized, err := ValidateExercises(exercises)
	if err != nil {
		return s.store.Status(), err
	}

	if err := s.repo.ReplaceAll(ctx, normalized); err != nil {
		return s.store.Status(), fmt.Errorf("replace exercises: %w", err)
	}
	log.Infof("imported %d exercises", len(normalized))

	return s.ReloadCatalog(ctx)
}

// ValidateExercises checks an import batch and returns a normalized copy:
// trimmed names and non-nil lists.
func ValidateExercises(exercises []domain.Exercise) ([]domain.Exercise, error) {
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: at least one exercise is required", ErrValidationFailed)
	}

	seen := make(map[string]int, len(exercises))
	out := make([]domain.Exercise, 0, len(exercises))
	for i, ex := range exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		ex.Category = strings.TrimSpace(ex.Category)
		if ex.Name == "" {
			return nil, fmt.Errorf("%w: exercise #%d: name is required", ErrValidationFailed, i)
		}
		if ex.Category == "" {
			return nil, fmt.Errorf("%w: exercise %q: category is required", ErrValidationFailed, ex.Name)
		}
		key := strings.ToLower(ex.Name)
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: exercise %q at #%d duplicates #%d", ErrValidationFailed, ex.Name, i, first)
		}
		seen[key] = i
		if ex.Video != "" && !isHTTPURL(ex.Video) {
			return nil, fmt.Errorf("%w: exercise %q: video must be an http(s) URL", ErrValidationFailed, ex.Name)
		}

		ex.PrimaryMuscles = orEmpty(ex.PrimaryMuscles)
		ex.SecondaryMuscles = orEmpty(ex.SecondaryMuscles)
		ex.Equipment = orEmpty(ex.Equipment)
		ex.Instructions = orEmpty(ex.Instructions)
		out = append(out, ex)
	}
	return out, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// slug turns an exercise name into an object-key-safe path segment.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func videoPrefix(exerciseName string) string {
	return path.Join("videos", slug(exerciseName)) + "/"
}

// CreateVideoUploadURL returns a presigned URL for uploading a demo video of an exercise.
func (s *exerciseService) CreateVideoUploadURL(ctx context.Context, exerciseName, contentType string) (*UploadURLResponse, error) {
	if s.fileStorage == nil {
		return nil, ErrStorageDisabled
	}
	exercise, ok := s.store.FindByName(exerciseName)
	if !ok {
		return nil, ErrExerciseNotFound
	}

	parts := strings.Split(contentType, "/")
	if len(parts) != 2 || parts[0] != "video" || parts[1] == "" {
		return nil, fmt.Errorf("%w: content type must be video/*", ErrValidationFailed)
	}

	objectKey := videoPrefix(exercise.Name) + fmt.Sprintf("%s.%s", uuid.NewString(), parts[1])

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate upload url: %w", err)
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// ConfirmVideoUpload links an uploaded video to its exercise.
// Called after the client has uploaded the file using the presigned URL.
func (s *exerciseService) ConfirmVideoUpload(ctx context.Context, exerciseName, objectKey string) (*domain.Exercise, error) {
	if s.fileStorage == nil {
		return nil, ErrStorageDisabled
	}
	if s.repo == nil {
		return nil, ErrNoRepository
	}
	exercise, ok := s.store.FindByName(exerciseName)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	if !strings.HasPrefix(objectKey, videoPrefix(exercise.Name)) || path.Clean(objectKey) != objectKey {
		return nil, fmt.Errorf("%w: object key does not belong to exercise %q", ErrValidationFailed, exercise.Name)
	}

	if err := s.repo.SetVideo(ctx, exercise.Name, s.fileStorage.ObjectURL(objectKey)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if _, err := s.ReloadCatalog(ctx); err != nil {
		log.Warnf("catalog reload after video upload failed: %s", err)
	}

	updated, err := s.repo.GetByName(ctx, exercise.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return updated, nil
}

// SnapshotDownloadURL returns a presigned URL of the catalog snapshot, for clients
// that keep their own offline copy.
func (s *exerciseService) SnapshotDownloadURL(ctx context.Context) (string, error) {
	if s.fileStorage == nil {
		return "", ErrStorageDisabled
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, s.snapshotKey, storage.DefaultPresignedURLExpiry)
}
