package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"movierec/internal/domain"
)

type document struct {
	Movies []domain.Movie `yaml:"movies"`
}

// Loader reads the catalog from a YAML file with a top-level movies list.
type Loader struct {
	path string
}

// NewLoader creates a loader for the YAML file at path.
func NewLoader(path string) *Loader { return &Loader{path: path} }

// Name returns the identifier of this loader.
func (l *Loader) Name() string { return "yaml" }

// Load parses the file and returns its movies in file order.
func (l *Loader) Load() ([]domain.Movie, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", l.path, err)
	}
	return doc.Movies, nil
}

// Save writes movies to path in the format Load reads.
func Save(path string, movies []domain.Movie) error {
	data, err := yaml.Marshal(document{Movies: movies})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
