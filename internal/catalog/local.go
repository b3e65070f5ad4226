package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alcyxob/exercise-catalog/internal/domain"

	"gopkg.in/yaml.v3"
)

// FileSource reads the catalog from a local JSON or YAML file and keeps it
// up to date when used as a Sink. The format follows the file extension.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string {
	return "file:" + f.path
}

func (f *FileSource) Fetch(_ context.Context) ([]domain.Exercise, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(data, formatOf(f.path))
}

// Save writes the catalog atomically: to a temp file first, then renamed over the target.
func (f *FileSource) Save(_ context.Context, exercises []domain.Exercise) error {
	data, err := Encode(exercises, formatOf(f.path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".catalog-*")
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}

// Format is a catalog serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a catalog document: a top-level list of exercises.
func Decode(data []byte, format Format) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &exercises)
	default:
		err = json.Unmarshal(data, &exercises)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	return exercises, nil
}

// Encode serializes a catalog in the given format.
func Encode(exercises []domain.Exercise, format Format) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(exercises)
	default:
		data, err = json.MarshalIndent(exercises, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s catalog: %w", format, err)
	}
	return data, nil
}
