package schema

import (
	"slices"
)

// Definition is the declared shape of one model type.
type Definition struct {
	Name     string
	Settings Settings

	props    []PropertyDescriptor
	index    map[string]int
	rels     []Relation
	relIndex map[string]int
}

// NewDefinition creates an empty definition.
func NewDefinition(name string, settings Settings) *Definition {
	return &Definition{
		Name:     name,
		Settings: settings,
		index:    make(map[string]int),
		relIndex: make(map[string]int),
	}
}

// Define adds a property. Redefining a name replaces the earlier descriptor
// and keeps its position.
func (d *Definition) Define(p PropertyDescriptor) *Definition {
	if i, ok := d.index[p.Name]; ok {
		d.props[i] = p
		return d
	}

	d.index[p.Name] = len(d.props)
	d.props = append(d.props, p)

	return d
}

// Relate adds a relation, replacing one with the same name.
func (d *Definition) Relate(r Relation) *Definition {
	if i, ok := d.relIndex[r.Name]; ok {
		d.rels[i] = r
		return d
	}

	d.relIndex[r.Name] = len(d.rels)
	d.rels = append(d.rels, r)

	return d
}

// Build returns the property descriptors in declaration order.
func (d *Definition) Build() []PropertyDescriptor {
	return slices.Clone(d.props)
}

// Property looks up a property descriptor by name.
func (d *Definition) Property(name string) (PropertyDescriptor, bool) {
	i, ok := d.index[name]
	if !ok {
		return PropertyDescriptor{}, false
	}

	return d.props[i], true
}

// HasProperty returns true if name is a declared property.
func (d *Definition) HasProperty(name string) bool {
	_, ok := d.index[name]
	return ok
}

// PropertyNames returns the declared property names in order.
func (d *Definition) PropertyNames() []string {
	names := make([]string, len(d.props))
	for i, p := range d.props {
		names[i] = p.Name
	}

	return names
}

// Relation looks up a relation by name.
func (d *Definition) Relation(name string) (Relation, bool) {
	i, ok := d.relIndex[name]
	if !ok {
		return Relation{}, false
	}

	return d.rels[i], true
}

// HasRelation returns true if name is a declared relation.
func (d *Definition) HasRelation(name string) bool {
	_, ok := d.relIndex[name]
	return ok
}

// Relations returns the relations in declaration order.
func (d *Definition) Relations() []Relation {
	return slices.Clone(d.rels)
}

// Registry holds the definitions of a set of models by name.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates a registry holding defs.
func NewRegistry(defs ...*Definition) *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	for _, d := range defs {
		r.Register(d)
	}

	return r
}

// Register adds or replaces a definition.
func (r *Registry) Register(d *Definition) {
	if _, ok := r.defs[d.Name]; !ok {
		r.order = append(r.order, d.Name)
	}

	r.defs[d.Name] = d
}

// Definition returns the definition registered under name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Names returns the registered model names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
