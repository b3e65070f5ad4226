package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"alcyxob/exercise-catalog/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Status describes the catalog currently held by a Store.
type Status struct {
	Initialized bool      `json:"initialized"`
	Version     string    `json:"version,omitempty"`
	Source      string    `json:"source,omitempty"`
	LoadedAt    time.Time `json:"loadedAt,omitempty"`
	Count       int       `json:"count"`
}

// LoadObserver is notified after every fetch attempt made by a Store.
type LoadObserver func(status Status, err error)

// Store holds the last successfully loaded catalog. The held slice is never
// mutated; a reload swaps it for a new one.
type Store struct {
	loader Loader
	group  singleflight.Group

	mu        sync.RWMutex
	exercises []domain.Exercise
	facets    domain.Facets
	status    Status
	observers []LoadObserver
}

// NewStore creates an empty, uninitialized store backed by loader.
func NewStore(loader Loader) *Store {
	return &Store{
		loader: loader,
		facets: ExtractFacets(nil),
	}
}

// Load fetches the catalog through the loader. Concurrent calls share one fetch.
// On failure the previously loaded catalog, if any, is kept.
func (s *Store) Load(ctx context.Context) (Status, error) {
	v, err, _ := s.group.Do("load", func() (interface{}, error) {
		exercises, source, err := s.loader.Load(ctx)
		if err != nil {
			s.notify(s.Status(), err)
			return nil, err
		}
		s.replace(exercises, source)
		status := s.Status()
		s.notify(status, nil)
		return status, nil
	})
	if err != nil {
		log.WithField("component", "catalog").Errorf("catalog load failed, keeping %d stale exercises: %s", s.Status().Count, err)
		return s.Status(), err
	}
	return v.(Status), nil
}

// Observe registers fn to be called after each fetch attempt.
func (s *Store) Observe(fn LoadObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(status Status, err error) {
	s.mu.RLock()
	observers := s.observers
	s.mu.RUnlock()
	for _, fn := range observers {
		fn(status, err)
	}
}

func (s *Store) replace(exercises []domain.Exercise, source string) {
	facets := ExtractFacets(exercises)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = exercises
	s.facets = facets
	s.status = Status{
		Initialized: true,
		Version:     uuid.NewString(),
		Source:      source,
		LoadedAt:    time.Now().UTC(),
		Count:       len(exercises),
	}
	log.WithField("component", "catalog").Infof("loaded %d exercises from %s (version %s)", len(exercises), source, s.status.Version)
}

// Initialized reports whether a catalog has ever been loaded.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status.Initialized
}

// Status returns a description of the held catalog.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Exercises returns a copy of the full catalog in its original order.
func (s *Store) Exercises() []domain.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.exercises)
}

// Search filters the held catalog. An uninitialized store yields no matches.
// The returned records are copies and may be modified freely.
func (s *Store) Search(filter domain.SearchFilter) []domain.Exercise {
	s.mu.RLock()
	exercises := s.exercises
	s.mu.RUnlock()
	return cloneAll(Filter(exercises, filter))
}

// SearchWithVersion is Search that also returns the version of the catalog it ran against.
func (s *Store) SearchWithVersion(filter domain.SearchFilter) ([]domain.Exercise, string) {
	s.mu.RLock()
	exercises, version := s.exercises, s.status.Version
	s.mu.RUnlock()
	return cloneAll(Filter(exercises, filter)), version
}

// Facets returns the facets of the held catalog.
func (s *Store) Facets() domain.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Facets{
		Categories:     cloneStrings(s.facets.Categories),
		Equipment:      cloneStrings(s.facets.Equipment),
		PrimaryMuscles: cloneStrings(s.facets.PrimaryMuscles),
	}
}

// FindByName looks up an exercise by name, ignoring case.
func (s *Store) FindByName(name string) (domain.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name = strings.TrimSpace(name)
	for _, ex := range s.exercises {
		if strings.EqualFold(ex.Name, name) {
			return clone(ex), true
		}
	}
	return domain.Exercise{}, false
}

// clone copies the list fields too, so callers never share backing arrays with the held catalog.
func clone(ex domain.Exercise) domain.Exercise {
	ex.PrimaryMuscles = cloneStrings(ex.PrimaryMuscles)
	ex.SecondaryMuscles = cloneStrings(ex.SecondaryMuscles)
	ex.Equipment = cloneStrings(ex.Equipment)
	ex.Instructions = cloneStrings(ex.Instructions)
	ex.Tips = cloneStrings(ex.Tips)
	return ex
}

func cloneAll(exercises []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = clone(ex)
	}
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// RunRefresh reloads the catalog every interval until ctx is done.
// Failed reloads are logged and leave the held catalog untouched.
func (s *Store) RunRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithField("component", "catalog").Debugln("catalog refresh stopped")
			return
		case <-ticker.C:
			_, _ = s.Load(ctx)
		}
	}
}
