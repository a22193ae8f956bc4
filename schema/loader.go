package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a definition file. Files ending in .toml are
// read as TOML, everything else as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// LoadRegistry loads a definition file, rejects it when validation reports
// errors and returns the resulting registry.
func LoadRegistry(path string) (*Registry, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid definition file %s: %w", path, diags.Error())
	}

	return f.Registry()
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	err := toml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition TOML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// MarshalTOML serializes a File to TOML.
func MarshalTOML(f *File) ([]byte, error) {
	return toml.Marshal(f)
}

// WriteFile writes a File to the given path, as TOML when the path ends in
// .toml and as YAML otherwise.
func WriteFile(f *File, path string) error {
	marshal := Marshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		marshal = MarshalTOML
	}

	data, err := marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal definitions: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
