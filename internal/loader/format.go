package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"recipeview/internal/model"
)

var (
	// ErrUnknownFormat is returned when a recipe file's extension is not recognised.
	ErrUnknownFormat = errors.New("unknown recipe file format")
	// ErrTrailingData is returned when a source holds more than one document.
	ErrTrailingData = errors.New("trailing data after recipe list")
)

// decoder is the streaming shape shared by the JSON and YAML decoders.
type decoder interface {
	Decode(v any) error
}

// expectEOF fails unless dec has nothing left after the first document.
func expectEOF(dec decoder) error {
	var rest any
	if err := dec.Decode(&rest); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}

// Format defines how a recipe file is encoded on disk.
type Format interface {
	Name() string
	Extensions() []string
	Decode(data []byte) ([]model.Recipe, error)
	Encode(recipes []model.Recipe) ([]byte, error)
}

// JSONFormat reads a top-level JSON array of recipes.
type JSONFormat struct{}

func (f *JSONFormat) Name() string {
	return "json"
}

func (f *JSONFormat) Extensions() []string {
	return []string{".json"}
}

func (f *JSONFormat) Decode(data []byte) ([]model.Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var recipes []model.Recipe
	if err := dec.Decode(&recipes); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (f *JSONFormat) Encode(recipes []model.Recipe) ([]byte, error) {
	return json.MarshalIndent(recipes, "", "  ")
}

// YAMLFormat reads a top-level YAML sequence of recipes.
type YAMLFormat struct{}

func (f *YAMLFormat) Name() string {
	return "yaml"
}

func (f *YAMLFormat) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (f *YAMLFormat) Decode(data []byte) ([]model.Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var recipes []model.Recipe
	if err := dec.Decode(&recipes); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (f *YAMLFormat) Encode(recipes []model.Recipe) ([]byte, error) {
	return yaml.Marshal(recipes)
}

// tomlDocument is the TOML file shape: one [[recipe]] table per recipe.
type tomlDocument struct {
	Recipe []model.Recipe `toml:"recipe"`
}

// TOMLFormat reads [[recipe]] array tables.
type TOMLFormat struct{}

func (f *TOMLFormat) Name() string {
	return "toml"
}

func (f *TOMLFormat) Extensions() []string {
	return []string{".toml"}
}

func (f *TOMLFormat) Decode(data []byte) ([]model.Recipe, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc tomlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Recipe, nil
}

func (f *TOMLFormat) Encode(recipes []model.Recipe) ([]byte, error) {
	return toml.Marshal(tomlDocument{Recipe: recipes})
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{&JSONFormat{}, &YAMLFormat{}, &TOMLFormat{}}
}

// DetectFormat picks a format from the file extension.
// Standard input ("-") is read as JSON.
func DetectFormat(path string) (Format, error) {
	if path == StdinPath {
		return &JSONFormat{}, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats() {
		for _, e := range f.Extensions() {
			if e == ext {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// FormatByName looks a format up by its Name.
func FormatByName(name string) (Format, error) {
	for _, f := range Formats() {
		if f.Name() == strings.ToLower(name) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
