// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package venue

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/venue.yaml
var embeddedDataset []byte

type dataset struct {
	Buildings []Building `yaml:"buildings"`
}

// Parse decodes a YAML venue dataset and validates vendor types.
func Parse(raw []byte) (*Static, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse venue dataset: %w", err)
	}
	for _, b := range ds.Buildings {
		if b.Name == "" {
			return nil, fmt.Errorf("parse venue dataset: building without name")
		}
		for _, v := range b.Vendors {
			if _, err := ParseVendorType(string(v.Type)); err != nil {
				return nil, fmt.Errorf("parse venue dataset: vendor %q: %w", v.Name, err)
			}
		}
	}
	return NewStatic(ds.Buildings), nil
}

// Load reads the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Static, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read venue dataset: %w", err)
	}
	return Parse(raw)
}

// Default returns the embedded dataset.
func Default() *Static {
	s, err := Parse(embeddedDataset)
	if err != nil {
		panic(err)
	}
	return s
}
