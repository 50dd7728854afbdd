// Package loader reads a recipe collection from disk.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"recipeview/internal/model"
)

// Load reads, decodes and validates the recipe file at path. Any failure is
// returned; callers must not fall back to an empty collection.
func Load(path string) (*model.Collection, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	data, err := ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	c, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	c.BaseDir = baseDir(path)
	return c, nil
}

// Decode turns raw bytes into a validated collection.
func Decode(format Format, data []byte) (*model.Collection, error) {
	recipes, err := format.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format.Name(), err)
	}
	if err := Validate(recipes); err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Ingredients == nil {
			recipes[i].Ingredients = make(map[string]float64)
		}
	}
	return model.NewCollection(recipes)
}

// Validate checks every record, reporting the first bad one by index.
func Validate(recipes []model.Recipe) error {
	for i, r := range recipes {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recipe %d: %w", i, err)
		}
	}
	return nil
}

func baseDir(path string) string {
	if path == StdinPath {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		return wd
	}
	abs, err := filepath.Abs(model.ExpandTilde(path))
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}
