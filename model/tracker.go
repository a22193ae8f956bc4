package model

import (
	"reflect"
	"slices"
)

// wasSuffix names the companion own property Reset restores from.
const wasSuffix = "$was"

// PropertyChanged reports whether the current value of name is a different
// value than its baseline. Maps, slices, lists and instances compare by
// reference, so mutating them in place is not a change.
func (inst *Instance) PropertyChanged(name string) bool {
	return !sameValue(inst.data[name], inst.dataWas[name])
}

// Reset discards own properties and restores changed properties from their
// name+"$was" companion. Own properties, companions included, are removed
// before any property is restored, so a restore assigns nil unless the
// companion is a declared property.
func (inst *Instance) Reset() {
	def := inst.model.def

	keys := inst.own.names()
	for _, name := range def.PropertyNames() {
		if !slices.Contains(keys, name) {
			keys = append(keys, name)
		}
	}

	for _, k := range keys {
		if k != "id" && !def.HasProperty(k) {
			inst.own.del(k)
		}

		if inst.PropertyChanged(k) {
			inst.Set(k, inst.Get(k+wasSuffix))
		}
	}
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}

	if !ra.Comparable() {
		return false
	}

	return ra.Equal(rb)
}
