package model

import (
	"modelbind/schema"
)

// Catalog holds one Model per definition of a registry. Models built by a
// catalog cast maps assigned to properties of a named structured type into
// nested instances of that model.
type Catalog struct {
	reg    *schema.Registry
	models map[string]*Model
}

// NewCatalog builds a model for every definition in reg, applying opts to
// each of them.
func NewCatalog(reg *schema.Registry, opts ...ModelOption) *Catalog {
	c := &Catalog{reg: reg, models: make(map[string]*Model)}

	for _, name := range reg.Names() {
		def, _ := reg.Definition(name)
		m := NewModel(def, opts...)
		m.catalog = c
		c.models[name] = m
	}

	return c
}

// Model returns the model registered under name.
func (c *Catalog) Model(name string) (*Model, bool) {
	m, ok := c.models[name]
	return m, ok
}

// Registry returns the registry the catalog was built from.
func (c *Catalog) Registry() *schema.Registry {
	return c.reg
}

// castModel converts v into an instance of the named model when v is a plain
// map and the model is known. Anything else is returned unchanged.
func (m *Model) castModel(name string, v any) any {
	if m.catalog == nil {
		return v
	}

	nested, ok := m.catalog.Model(name)
	if !ok {
		return v
	}

	raw, ok := v.(map[string]any)
	if !ok {
		return v
	}

	child, err := nested.New(raw)
	if err != nil {
		m.logger.Debug().Err(err).Str("type", name).Msg("nested value kept as plain map")
		return v
	}

	return child
}
