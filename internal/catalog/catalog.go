// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/platepick/internal/models"
	"github.com/tomtom215/platepick/internal/validation"
)

//go:embed data/restaurants.json
var defaultDataset []byte

// ErrNotFound is returned by Get for an unknown restaurant id.
var ErrNotFound = errors.New("restaurant not found")

// Catalog is the immutable set of restaurants that can be ranked.
type Catalog struct {
	restaurants []models.Restaurant
	byID        map[string]int
	cuisines    []string
}

// dataset is the on-disk layout of JSON and YAML catalog files.
type dataset struct {
	Restaurants []models.Restaurant `json:"restaurants" koanf:"restaurants"`
}

// New validates restaurants and builds a catalog. Every restaurant must pass
// its validate tags and ids must be unique.
func New(restaurants []models.Restaurant) (*Catalog, error) {
	c := &Catalog{
		restaurants: make([]models.Restaurant, len(restaurants)),
		byID:        make(map[string]int, len(restaurants)),
	}
	copy(c.restaurants, restaurants)

	seenCuisines := make(map[string]struct{})
	for i := range c.restaurants {
		r := &c.restaurants[i]
		// Distance is computed per request, never loaded.
		r.Distance = nil

		if verr := validation.ValidateStruct(r); verr != nil {
			return nil, fmt.Errorf("restaurant %d (%q): %w", i, r.ID, verr)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate restaurant id %q", r.ID)
		}
		c.byID[r.ID] = i

		if _, ok := seenCuisines[r.Cuisine]; !ok {
			seenCuisines[r.Cuisine] = struct{}{}
			c.cuisines = append(c.cuisines, r.Cuisine)
		}
	}
	sort.Strings(c.cuisines)

	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return parseJSON(defaultDataset)
}

// Load reads a catalog file. The format follows the extension: .json, or
// .yaml/.yml. An empty path loads the embedded default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		return parseJSON(data)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

func parseJSON(data []byte) (*Catalog, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	return New(ds.Restaurants)
}

func loadYAML(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog YAML: %w", err)
	}

	var ds dataset
	if err := k.UnmarshalWithConf("", &ds, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	return New(ds.Restaurants)
}

// All returns a copy of every restaurant in catalog order.
func (c *Catalog) All() []models.Restaurant {
	out := make([]models.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

// Len returns the number of restaurants.
func (c *Catalog) Len() int {
	return len(c.restaurants)
}

// Get returns one restaurant by id.
func (c *Catalog) Get(id string) (models.Restaurant, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Restaurant{}, ErrNotFound
	}
	return c.restaurants[i], nil
}

// ByCuisine returns the restaurants of one cuisine, matched case-insensitively.
func (c *Catalog) ByCuisine(cuisine string) []models.Restaurant {
	out := make([]models.Restaurant, 0)
	for i := range c.restaurants {
		if strings.EqualFold(c.restaurants[i].Cuisine, cuisine) {
			out = append(out, c.restaurants[i])
		}
	}
	return out
}

// Resolve maps ids to restaurants in the given order, skipping unknown ids.
func (c *Catalog) Resolve(ids []string) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.byID[id]; ok {
			out = append(out, c.restaurants[i])
		}
	}
	return out
}

// Cuisines returns the distinct cuisines, sorted.
func (c *Catalog) Cuisines() []string {
	out := make([]string, len(c.cuisines))
	copy(out, c.cuisines)
	return out
}
