// Package variants loads the catalog of classifier variants.
package variants

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ressKim-io/emotion-classifier/internal/domain/entity"
)

// DefaultVariant is selected when no variant is configured
const DefaultVariant = "classic"

//go:embed variants.yaml
var builtin []byte

// ErrUnknownVariant is returned by Get for a name not in the catalog
var ErrUnknownVariant = errors.New("unknown classifier variant")

// Catalog is a set of validated variants keyed by name
type Catalog struct {
	variants map[string]*entity.Variant
}

type catalogFile struct {
	Variants []entity.Variant `yaml:"variants"`
}

// Builtin returns the catalog shipped with the binary
func Builtin() (*Catalog, error) {
	return Parse(builtin)
}

// Load returns the built-in catalog, overlaid with the variants in path when
// path is non-empty. A file variant replaces a built-in one of the same name.
func Load(path string) (*Catalog, error) {
	catalog, err := Builtin()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variants file: %w", err)
	}
	overlay, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for name, v := range overlay.variants {
		catalog.variants[name] = v
	}
	return catalog, nil
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}

	catalog := &Catalog{variants: make(map[string]*entity.Variant, len(file.Variants))}
	for _, raw := range file.Variants {
		v, err := entity.NewVariant(raw.Name, raw.AllowedEmotions, raw.DefaultEmotion, raw.SystemPrompt)
		if err != nil {
			return nil, err
		}
		if _, dup := catalog.variants[v.Name]; dup {
			return nil, fmt.Errorf("variant %q defined twice", v.Name)
		}
		catalog.variants[v.Name] = v
	}
	return catalog, nil
}

// Get returns the named variant; an empty name selects DefaultVariant
func (c *Catalog) Get(name string) (*entity.Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	v, ok := c.variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Names returns the variant names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.variants))
	for name := range c.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
