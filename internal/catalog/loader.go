package catalog

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/exercise-catalog/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	// ErrCatalogUnavailable is returned when no tier could provide a catalog.
	ErrCatalogUnavailable = errors.New("exercise catalog unavailable")
	// ErrEmptyCatalog is returned by a tier that answered with zero records.
	ErrEmptyCatalog = errors.New("exercise catalog is empty")
)

// Source provides the full, ordered exercise catalog.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Exercise, error)
}

// Sink persists a copy of the catalog for later use as a fallback tier.
type Sink interface {
	Save(ctx context.Context, exercises []domain.Exercise) error
}

// Loader returns the catalog together with the name of the source that served it.
type Loader interface {
	Load(ctx context.Context) ([]domain.Exercise, string, error)
}

// TieredLoader tries each source in order and returns the first non-empty catalog.
// A catalog served by the first tier is written through to every sink.
type TieredLoader struct {
	sources []Source
	sinks   []Sink
}

// NewTieredLoader creates a loader over the given sources, highest priority first.
func NewTieredLoader(sources []Source, sinks ...Sink) *TieredLoader {
	return &TieredLoader{
		sources: sources,
		sinks:   sinks,
	}
}

// Load implements Loader.
func (l *TieredLoader) Load(ctx context.Context) ([]domain.Exercise, string, error) {
	var errs error
	for i, src := range l.sources {
		exercises, err := src.Fetch(ctx)
		if err == nil && len(exercises) == 0 {
			err = ErrEmptyCatalog
		}
		if err != nil {
			log.WithField("component", "catalog").Warnf("source %s failed: %s", src.Name(), err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if i == 0 {
			l.writeThrough(ctx, exercises)
		}
		return exercises, src.Name(), nil
	}

	if errs == nil {
		return nil, "", ErrCatalogUnavailable
	}
	return nil, "", fmt.Errorf("%w: %w", ErrCatalogUnavailable, errs)
}

func (l *TieredLoader) writeThrough(ctx context.Context, exercises []domain.Exercise) {
	for _, sink := range l.sinks {
		if err := sink.Save(ctx, exercises); err != nil {
			log.WithField("component", "catalog").Warnf("failed to write catalog cache: %s", err)
		}
	}
}
