package product

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the on-disk layout of a dataset. JSON files decode through the
// same path since JSON is valid YAML.
type seedFile struct {
	Products []Product `yaml:"products"`
}

// DefaultSeed returns the built-in initial dataset.
func DefaultSeed() ([]Product, error) {
	products, err := ParseSeed(defaultSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in dataset: %w", err)
	}
	return products, nil
}

// LoadSeedFile reads a dataset from a YAML or JSON file.
func LoadSeedFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	products, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}
	return products, nil
}

// ParseSeed decodes a dataset and checks the collection invariants:
// unique ids, and a non-empty name and category on every record.
func ParseSeed(data []byte) ([]Product, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(file.Products))
	for i, p := range file.Products {
		if seen[p.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("record %d (id %d): name is empty", i, p.ID)
		}
		if strings.TrimSpace(p.Category) == "" {
			return nil, fmt.Errorf("record %d (id %d): category is empty", i, p.ID)
		}
	}

	return file.Products, nil
}
