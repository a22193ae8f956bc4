package schema

import (
	"fmt"

	"modelbind/primitive"
)

// File represents the root of a definition file.
type File struct {
	// Version of the file format (for future compatibility).
	Version string      `yaml:"version,omitempty" toml:"version,omitempty"`
	Models  []ModelSpec `yaml:"models" toml:"models"`
}

// ModelSpec declares one model in a definition file.
type ModelSpec struct {
	Name string `yaml:"name" toml:"name"`
	// Strict is true, false, "throw" or absent.
	Strict     any            `yaml:"strict,omitempty" toml:"strict,omitempty"`
	Properties []PropertySpec `yaml:"properties,omitempty" toml:"properties,omitempty"`
	Relations  []RelationSpec `yaml:"relations,omitempty" toml:"relations,omitempty"`
}

// PropertySpec declares one property in a definition file.
type PropertySpec struct {
	Name      string            `yaml:"name" toml:"name"`
	Type      primitive.TypeTag `yaml:"type,omitempty" toml:"type,omitempty"`
	Default   any               `yaml:"default,omitempty" toml:"default,omitempty"`
	DefaultFn string            `yaml:"default_fn,omitempty" toml:"default_fn,omitempty"`
}

// RelationSpec declares one relation in a definition file.
type RelationSpec struct {
	Name    string `yaml:"name" toml:"name"`
	Model   string `yaml:"model" toml:"model"`
	Type    string `yaml:"type,omitempty" toml:"type,omitempty"`
	KeyFrom string `yaml:"key_from" toml:"key_from"`
	KeyTo   string `yaml:"key_to" toml:"key_to"`
}

// Registry converts the file into a registry of definitions. Defaults of
// base-typed properties are cast to their property type once, here.
func (f *File) Registry() (*Registry, error) {
	reg := NewRegistry()

	for i := range f.Models {
		def, err := f.Models[i].Definition()
		if err != nil {
			return nil, err
		}

		reg.Register(def)
	}

	return reg, nil
}

// Definition converts one model spec.
func (m *ModelSpec) Definition() (*Definition, error) {
	strict, err := ParseStrict(m.Strict)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", m.Name, err)
	}

	def := NewDefinition(m.Name, Settings{Strict: strict})

	for _, p := range m.Properties {
		dflt := p.Default
		if p.Type.IsBase() {
			dflt = primitive.Cast(p.Type, dflt)
		}

		def.Define(PropertyDescriptor{
			Name:      p.Name,
			Type:      p.Type,
			Default:   dflt,
			DefaultFn: p.DefaultFn,
		})
	}

	for _, r := range m.Relations {
		def.Relate(Relation(r))
	}

	return def, nil
}

// SpecOf renders a definition back into its file form.
func SpecOf(def *Definition) ModelSpec {
	spec := ModelSpec{Name: def.Name}
	if def.Settings.Strict != StrictUnset {
		spec.Strict = def.Settings.Strict.String()
	}

	for _, p := range def.Build() {
		ps := PropertySpec{Name: p.Name, Type: p.Type, DefaultFn: p.DefaultFn}

		switch p.Default.(type) {
		case DefaultFunc, func() any:
			// factories have no file form
		default:
			ps.Default = p.Default
		}

		spec.Properties = append(spec.Properties, ps)
	}

	for _, r := range def.Relations() {
		spec.Relations = append(spec.Relations, RelationSpec(r))
	}

	return spec
}
