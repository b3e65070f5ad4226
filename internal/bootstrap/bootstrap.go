package bootstrap

import (
	"context"
	"fmt"
	"time"

	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/config"
	"alcyxob/exercise-catalog/internal/repository"
	fsrepo "alcyxob/exercise-catalog/internal/repository/firestore"
	"alcyxob/exercise-catalog/internal/repository/mongo"
	"alcyxob/exercise-catalog/internal/storage"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Deps holds the external dependencies selected by configuration.
// Repo and FileStorage are nil when their backend is disabled.
// Repo is also nil when the remote store could not be reached; RemoteErr then
// holds the reason and the loader falls back to the lower tiers.
type Deps struct {
	Repo        repository.ExerciseRepository
	FileStorage storage.FileStorage
	RemoteErr   error

	closers []func() error
}

// Connect opens the remote catalog repository and object storage.
// An unreachable remote store is not an error: the catalog is then served
// from the snapshot, local file or embedded tiers.
func Connect(ctx context.Context, cfg config.Config) (*Deps, error) {
	deps := &Deps{}

	if err := deps.connectRemote(ctx, cfg); err != nil {
		deps.RemoteErr = err
		log.Warnf("remote catalog %s unavailable, using fallback tiers: %s", cfg.Catalog.Source, err)
	}

	if cfg.S3.Enabled {
		fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("s3 init: %w", err)
		}
		deps.FileStorage = fileStorage
	}

	return deps, nil
}

func (d *Deps) connectRemote(ctx context.Context, cfg config.Config) error {
	switch cfg.Catalog.Source {
	case config.SourceMongo:
		client, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			return fmt.Errorf("mongo init: %w", err)
		}
		d.closers = append(d.closers, func() error { return mongo.DisconnectDB(client) })

		db := client.Database(cfg.Database.Name)
		go func() {
			indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureExerciseIndexes(indexCtx, db.Collection(mongo.ExerciseCollectionName))
		}()

		d.Repo = mongo.NewMongoExerciseRepository(db)
		log.Infof("catalog repository: mongo database %q", cfg.Database.Name)
	case config.SourceFirestore:
		client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID)
		if err != nil {
			return fmt.Errorf("firestore init: %w", err)
		}
		d.closers = append(d.closers, client.Close)

		d.Repo = fsrepo.NewExerciseRepository(client, cfg.Firestore.Collection)
		log.Infof("catalog repository: firestore project %q", cfg.Firestore.ProjectID)
	default:
		log.Info("catalog repository: none")
	}
	return nil
}

// Close releases every opened client.
func (d *Deps) Close() error {
	var err error
	for _, closeFn := range d.closers {
		err = multierr.Append(err, closeFn())
	}
	d.closers = nil
	return err
}

// Loader builds the tiered catalog loader: remote repository, S3 snapshot,
// local file and embedded seed, in that order. Every tier after the first
// also receives the write-through copy of a first-tier load.
func (d *Deps) Loader(cfg config.CatalogConfig) *catalog.TieredLoader {
	return d.loader(cfg, true)
}

// ReadOnlyLoader builds the same tiers as Loader but never writes to the
// snapshot or the local file.
func (d *Deps) ReadOnlyLoader(cfg config.CatalogConfig) *catalog.TieredLoader {
	return d.loader(cfg, false)
}

func (d *Deps) loader(cfg config.CatalogConfig, writeThrough bool) *catalog.TieredLoader {
	var sources []catalog.Source
	var caches []catalog.Sink

	addTier := func(src catalog.Source, sink catalog.Sink) {
		if writeThrough && len(sources) > 0 && sink != nil {
			caches = append(caches, sink)
		}
		sources = append(sources, src)
	}

	switch {
	case d.Repo != nil:
		addTier(catalog.NewRepositorySource(cfg.Source, d.Repo), nil)
	case d.RemoteErr != nil:
		// Keeps the remote as first tier, so fallback data is never written through.
		addTier(catalog.NewFailedSource(cfg.Source, d.RemoteErr), nil)
	}
	if d.FileStorage != nil && cfg.SnapshotKey != "" {
		snapshot := catalog.NewSnapshotSource(d.FileStorage, cfg.SnapshotKey)
		addTier(snapshot, snapshot)
	}
	if cfg.LocalPath != "" {
		file := catalog.NewFileSource(cfg.LocalPath)
		addTier(file, file)
	}
	if cfg.EmbeddedFallback {
		addTier(catalog.NewEmbeddedSource(), nil)
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name()
	}
	log.Infof("catalog tiers: %v", names)

	return catalog.NewTieredLoader(sources, caches...)
}
