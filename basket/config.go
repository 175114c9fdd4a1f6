// SPDX-License-Identifier: MIT

package basket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a configuration document.
type Format int

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = iota
	// FormatYAML is a YAML document.
	FormatYAML
)

// FormatOf guesses the format from the file extension: .yaml and .yml are
// YAML, anything else is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Config describes the delivery groups available to a store.
type Config struct {
	// Groups maps a delivery-group label to the categories it serves.
	Groups map[string][]string `json:"groups" yaml:"groups"`

	// Catalog maps a product name to its category. Products missing from the
	// catalog resolve to themselves when that name is a served category.
	Catalog map[string]string `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}

// LoadConfig reads and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("basket: read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes a configuration document in either the structured or
// the flat shape (see package documentation) and validates it.
func ParseConfig(data []byte, format Format) (*Config, error) {
	// 1. Decode into a generic document.
	var (
		doc any
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
		doc = stringKeys(doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be an object", ErrConfigInvalid)
	}

	// 2. Interpret the shape.
	var cfg *Config
	if groups, structured := root["groups"].(map[string]any); structured {
		cfg, err = structuredConfig(groups, root["catalog"])
	} else {
		cfg, err = flatConfig(root)
	}
	if err != nil {
		return nil, err
	}

	// 3. Validate semantics.
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// structuredConfig reads {"groups": {...}, "catalog": {...}}.
func structuredConfig(groups map[string]any, catalog any) (*Config, error) {
	cfg := &Config{Groups: make(map[string][]string, len(groups))}
	for label, v := range groups {
		categories, ok := stringList(v)
		if !ok {
			return nil, fmt.Errorf("%w: group %q must list category names", ErrConfigInvalid, label)
		}
		cfg.Groups[label] = categories
	}

	if catalog == nil {
		return cfg, nil
	}
	entries, ok := catalog.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: catalog must map products to categories", ErrConfigInvalid)
	}
	cfg.Catalog = make(map[string]string, len(entries))
	for product, v := range entries {
		category, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: catalog entry %q must be a category name", ErrConfigInvalid, product)
		}
		cfg.Catalog[product] = category
	}

	return cfg, nil
}

// flatConfig reads {"product": ["group", ...]} and inverts it. Every product
// becomes its own category and is recorded in the catalog, so products
// without any group stay known.
func flatConfig(root map[string]any) (*Config, error) {
	cfg := &Config{
		Groups:  make(map[string][]string),
		Catalog: make(map[string]string, len(root)),
	}
	products := lo.Keys(root)
	slices.Sort(products)
	for _, product := range products {
		labels, ok := stringList(root[product])
		if !ok {
			return nil, fmt.Errorf("%w: product %q must list delivery groups", ErrConfigInvalid, product)
		}
		cfg.Catalog[product] = product
		for _, label := range labels {
			cfg.Groups[label] = append(cfg.Groups[label], product)
		}
	}

	return cfg, nil
}

// stringKeys rewrites YAML mappings with non-string keys (e.g. a numeric
// product ID) into map[string]any, recursively, so both formats decode to
// the same shapes.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

// stringList converts a decoded JSON/YAML sequence of strings.
func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}

	return out, true
}

// Validate checks that the configuration names at least one group and no
// empty labels, categories or products.
func (c *Config) Validate() error {
	if c == nil || len(c.Groups) == 0 {
		return fmt.Errorf("%w: no delivery groups", ErrConfigInvalid)
	}
	for label, categories := range c.Groups {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("%w: empty delivery group label", ErrConfigInvalid)
		}
		if lo.Contains(categories, "") {
			return fmt.Errorf("%w: group %q lists an empty category", ErrConfigInvalid, label)
		}
	}
	for product, category := range c.Catalog {
		if product == "" || category == "" {
			return fmt.Errorf("%w: catalog entry %q -> %q", ErrConfigInvalid, product, category)
		}
	}

	return nil
}

// Labels returns the delivery-group labels in ascending order.
func (c *Config) Labels() []string {
	labels := lo.Keys(c.Groups)
	slices.Sort(labels)

	return labels
}

// CategoryOf resolves a product to its category.
func (c *Config) CategoryOf(product string) (string, bool) {
	if category, ok := c.Catalog[product]; ok {
		return category, true
	}
	for _, categories := range c.Groups {
		if slices.Contains(categories, product) {
			return product, true
		}
	}

	return "", false
}
