package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type fixtures struct {
	Artists     []Artist     `yaml:"artists"`
	Artworks    []Artwork    `yaml:"artworks"`
	Exhibitions []Exhibition `yaml:"exhibitions"`
}

// Seed returns a fresh catalog built from the embedded fixtures.
func Seed() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse builds a catalog from a YAML fixture document.
func Parse(doc []byte) (*Catalog, error) {
	var f fixtures
	if err := yaml.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("parse catalog fixtures: %w", err)
	}
	for i := range f.Artworks {
		if f.Artworks[i].Reviews == nil {
			f.Artworks[i].Reviews = []Review{}
		}
	}
	return New(f.Artists, f.Artworks, f.Exhibitions), nil
}

// MustSeed panics when the embedded fixtures are broken.
func MustSeed() *Catalog {
	c, err := Seed()
	if err != nil {
		panic(err)
	}
	return c
}
