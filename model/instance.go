package model

import (
	"maps"
	"slices"

	"modelbind/list"
	"modelbind/primitive"
	"modelbind/schema"
)

// Instance is one bound record.
//
// data holds the current value of every declared property and any
// free-form value accepted while initializing. dataWas is the baseline
// snapshot taken at the end of initialization. cachedRelations holds related
// objects that came embedded in the input. Values assigned to names that are
// neither properties nor relations live in own, the instance's own
// properties.
type Instance struct {
	model           *Model
	data            map[string]any
	dataWas         map[string]any
	cachedRelations map[string]any
	own             *ownProps
	strict          schema.StrictMode
	dataSource      DataSource
}

// Model returns the model type of the instance.
func (inst *Instance) Model() *Model {
	return inst.model
}

// ModelName returns the name of the model type.
func (inst *Instance) ModelName() string {
	return inst.model.Name()
}

// Get reads a property, a cached relation or an own property, in that order.
func (inst *Instance) Get(name string) any {
	def := inst.model.def

	switch {
	case def.HasProperty(name):
		return inst.data[name]
	case def.HasRelation(name):
		return inst.cachedRelations[name]
	default:
		v, _ := inst.own.get(name)
		return v
	}
}

// Set is the normal property assignment path. Declared properties are cast
// to their type and passed through their setter, relations update the cached
// object and the foreign key, any other name becomes an own property.
func (inst *Instance) Set(name string, v any) {
	def := inst.model.def

	if p, ok := def.Property(name); ok {
		v = inst.Cast(p.Type, v)
		if p.Setter != nil {
			v = p.Setter(v)
		}

		inst.data[name] = v

		return
	}

	if rel, ok := def.Relation(name); ok {
		inst.cachedRelations[name] = v
		if v != nil {
			inst.setForeignKey(rel, v)
		}

		return
	}

	inst.own.set(name, v)
}

// Cast converts v to the representation of tag. Arrays become lists bound to
// the instance and maps assigned to a model type known to the catalog become
// nested instances.
func (inst *Instance) Cast(tag primitive.TypeTag, v any) any {
	switch {
	case v == nil:
		return nil
	case tag.IsBase():
		return primitive.Cast(tag, v)
	case tag.Kind == primitive.KindArray:
		if l, ok := v.(*list.List); ok {
			return l
		}

		return list.New(v, tag.ElemType(), inst)
	case tag.Kind == primitive.KindModel:
		return inst.model.castModel(tag.Name, v)
	default:
		return v
	}
}

// Was returns the baseline value of name.
func (inst *Instance) Was(name string) any {
	return inst.dataWas[name]
}

// Own returns an own property.
func (inst *Instance) Own(name string) (any, bool) {
	return inst.own.get(name)
}

// OwnKeys returns the own property names in insertion order.
func (inst *Instance) OwnKeys() []string {
	return inst.own.names()
}

// CachedRelations returns the relation cache itself, not a copy.
func (inst *Instance) CachedRelations() map[string]any {
	return inst.cachedRelations
}

// DataKeys returns the keys of the data store in sorted order.
func (inst *Instance) DataKeys() []string {
	return slices.Sorted(maps.Keys(inst.data))
}

// GetDataSource returns the instance override, or the model's data source.
func (inst *Instance) GetDataSource() DataSource {
	if inst.dataSource != nil {
		return inst.dataSource
	}

	return inst.model.dataSource
}

// Strict returns the strict mode resolved for the instance.
func (inst *Instance) Strict() schema.StrictMode {
	return inst.strict
}

// SetStrict changes the strict mode of the instance. The mode only governs
// construction: serialization follows the strict setting of the definition.
func (inst *Instance) SetStrict(mode schema.StrictMode) {
	inst.strict = mode
}

// IsValid delegates to the model's validator. Without one every instance is
// valid.
func (inst *Instance) IsValid() error {
	if inst.model.validator == nil {
		return nil
	}

	return inst.model.validator.Validate(inst)
}

// setForeignKey copies the referenced field of a related object into the
// key property, cast to the key's declared type.
func (inst *Instance) setForeignKey(rel schema.Relation, related any) {
	key := fieldOf(related, rel.KeyTo)
	if p, ok := inst.model.def.Property(rel.KeyFrom); ok {
		key = inst.Cast(p.Type, key)
	}

	inst.data[rel.KeyFrom] = key
}

// fieldOf reads key from a related object: a plain map or anything with a
// Get method, instances included.
func fieldOf(v any, key string) any {
	switch x := v.(type) {
	case map[string]any:
		return x[key]
	case interface{ Get(string) any }:
		return x.Get(key)
	default:
		return nil
	}
}

// ownProps is an insertion-ordered property bag.
type ownProps struct {
	keys []string
	vals map[string]any
}

func newOwnProps() *ownProps {
	return &ownProps{vals: make(map[string]any)}
}

func (o *ownProps) get(name string) (any, bool) {
	v, ok := o.vals[name]
	return v, ok
}

func (o *ownProps) set(name string, v any) {
	if _, ok := o.vals[name]; !ok {
		o.keys = append(o.keys, name)
	}

	o.vals[name] = v
}

func (o *ownProps) del(name string) {
	if _, ok := o.vals[name]; !ok {
		return
	}

	delete(o.vals, name)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == name })
}

func (o *ownProps) names() []string {
	return slices.Clone(o.keys)
}
