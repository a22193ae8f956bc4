package model

import (
	"maps"
	"slices"
	"strings"

	"modelbind/internal/jsonlit"
	"modelbind/internal/plain"
	"modelbind/schema"
)

// ToObject projects the instance into fresh maps, slices and scalars.
//
// With onlySchema set, and a definition that is not declared with
// strict: false, only declared properties are emitted, absent ones as nil.
// Otherwise the projection is schema-less and also carries own properties
// and every other key of the data store.
func (inst *Instance) ToObject(onlySchema bool) map[string]any {
	def := inst.model.def
	schemaLess := def.Settings.Strict == schema.StrictOff || !onlySchema

	out := make(map[string]any)

	for _, name := range def.PropertyNames() {
		out[name] = plain.Value(inst.data[name], !schemaLess)
	}

	if !schemaLess {
		return out
	}

	for _, name := range inst.own.names() {
		if _, done := out[name]; done || strings.HasPrefix(name, "__") {
			continue
		}

		v, _ := inst.own.get(name)
		if isFunc(v) {
			continue
		}

		out[name] = plain.Value(v, !schemaLess)
	}

	for _, name := range slices.Sorted(maps.Keys(inst.data)) {
		if _, done := out[name]; done {
			continue
		}

		out[name] = plain.Value(inst.data[name], !schemaLess)
	}

	return out
}

// ToJSON is the schema-less projection, whatever the strict mode.
func (inst *Instance) ToJSON() map[string]any {
	return inst.ToObject(false)
}

// MarshalJSON encodes ToJSON with sorted keys.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	return jsonlit.Encode(inst.ToJSON())
}

// FromObject assigns every key of obj through Set, in sorted key order.
func (inst *Instance) FromObject(obj map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(obj)) {
		inst.Set(k, obj[k])
	}
}
