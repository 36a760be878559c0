package location

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/locations.yaml
var defaultCatalogYAML []byte

// yamlCatalogFile is the top-level YAML structure for catalog files.
type yamlCatalogFile struct {
	Start     string         `yaml:"start"`
	Locations []yamlLocation `yaml:"locations"`
}

// yamlLocation is the YAML representation of a location.
type yamlLocation struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Level       int      `yaml:"level"`
	Actions     []string `yaml:"actions"`
}

// DefaultCatalog returns the built-in City of Wonders catalog.
//
// Postcondition: Returns a validated Catalog; panics only if the embedded
// content is broken, which the package tests rule out.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalogFromBytes(defaultCatalogYAML)
	if err != nil {
		panic("location: embedded catalog invalid: " + err.Error())
	}
	return c
}

// LoadCatalogFromFile reads and validates a catalog YAML file.
//
// Precondition: path must point to a valid YAML catalog file.
// Postcondition: Returns a validated Catalog or a non-nil error.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	return LoadCatalogFromBytes(data)
}

// LoadCatalogFromBytes parses and validates catalog YAML.
//
// Postcondition: Returns a validated Catalog or a non-nil error.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	locs := make([]*Location, 0, len(file.Locations))
	for _, yl := range file.Locations {
		l := &Location{
			ID:          ID(yl.ID),
			Name:        yl.Name,
			Description: strings.TrimSpace(yl.Description),
			Level:       yl.Level,
		}
		for _, a := range yl.Actions {
			l.Actions = append(l.Actions, Action(a))
		}
		locs = append(locs, l)
	}
	c, err := NewCatalog(ID(file.Start), locs)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}
