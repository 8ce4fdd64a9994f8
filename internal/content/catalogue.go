// Package content serves the static marketing catalogue: service offerings
// and headline metrics. The built-in catalogue is embedded; CONTENT_PATH may
// point at a YAML file with the same shape to replace it.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"consultsite/internal/domain"
)

//go:embed catalogue.yaml
var builtin []byte

// Catalogue is immutable after Load
type Catalogue struct {
	services   []domain.Service
	highlights []domain.Highlight
	byID       map[string]struct{}
}

type catalogueFile struct {
	Services   []domain.Service   `yaml:"services"`
	Highlights []domain.Highlight `yaml:"highlights"`
}

// Load reads the catalogue at path, or the built-in one when path is empty
func Load(path string) (*Catalogue, error) {
	data := builtin
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue
func Parse(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	c := &Catalogue{
		services:   f.Services,
		highlights: f.Highlights,
		byID:       make(map[string]struct{}, len(f.Services)),
	}
	for i, s := range f.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("service #%d has no id", i+1)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate service id %q", s.ID)
		}
		c.byID[s.ID] = struct{}{}
	}
	return c, nil
}

// Services returns the service offerings in catalogue order
func (c *Catalogue) Services() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Highlights returns the headline metrics in catalogue order
func (c *Catalogue) Highlights() []domain.Highlight {
	out := make([]domain.Highlight, len(c.highlights))
	copy(out, c.highlights)
	return out
}

// HasService reports whether id names a known service offering
func (c *Catalogue) HasService(id string) bool {
	_, ok := c.byID[id]
	return ok
}
