package catalog

import (
	"context"
	_ "embed"

	"alcyxob/exercise-catalog/internal/domain"
)

//go:embed seed/exercises.json
var seedCatalog []byte

// EmbeddedSource serves the exercise library bundled with the binary.
// It is the last resort when neither the remote store nor a cache is reachable.
type EmbeddedSource struct{}

func NewEmbeddedSource() EmbeddedSource {
	return EmbeddedSource{}
}

func (EmbeddedSource) Name() string {
	return "embedded"
}

func (EmbeddedSource) Fetch(_ context.Context) ([]domain.Exercise, error) {
	return Decode(seedCatalog, FormatJSON)
}
