package model

import (
	"maps"
	"reflect"
	"slices"

	"modelbind/internal/jsonlit"
	"modelbind/internal/match"
	"modelbind/list"
	"modelbind/primitive"
	"modelbind/schema"
)

// CachedRelationsKey is the input key carrying pre-resolved relations. Its
// value, a map from relation name to related object, is adopted as the
// relation cache of the new instance without copying.
const CachedRelationsKey = "__cachedRelations"

// KeyClass is the role of one input key during initialization.
type KeyClass int

const (
	SchemaProperty KeyClass = iota + 1
	RelationProperty
	FreeFormProperty
	RejectedProperty
)

type classifiedKey struct {
	name  string
	class KeyClass
}

// classify assigns a class to every input key, in sorted key order.
// Function values and the relation cache key are not data and are skipped.
func classify(def *schema.Definition, strict schema.StrictMode, raw map[string]any) []classifiedKey {
	keys := make([]classifiedKey, 0, len(raw))

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		if name == CachedRelationsKey || isFunc(raw[name]) {
			continue
		}

		class := RejectedProperty

		switch {
		case def.HasProperty(name):
			class = SchemaProperty
		case def.HasRelation(name):
			class = RelationProperty
		case strict == schema.StrictOff:
			class = FreeFormProperty
		}

		keys = append(keys, classifiedKey{name: name, class: class})
	}

	return keys
}

func initialize(inst *Instance, def *schema.Definition, raw map[string]any, o options) error {
	applySetters := !o.skipSetters
	inst.strict = o.strict.Or(def.Settings.Strict).Or(schema.StrictDrop)

	keys := classify(def, inst.strict, raw)

	if inst.strict == schema.StrictThrow {
		for _, k := range keys {
			if k.class == RejectedProperty {
				return unknownProperty(def, k.name)
			}
		}
	}

	inst.data = make(map[string]any)
	inst.dataWas = make(map[string]any)
	inst.cachedRelations = make(map[string]any)

	if cached, ok := raw[CachedRelationsKey].(map[string]any); ok {
		inst.cachedRelations = cached
	}

	// Values are stored as given, not cloned: later mutation of the input is
	// visible through the instance.
	for _, k := range keys {
		v := raw[k.name]

		switch k.class {
		case SchemaProperty, FreeFormProperty:
			inst.data[k.name] = v
			inst.dataWas[k.name] = v
		case RelationProperty:
			rel, _ := def.Relation(k.name)
			if v != nil {
				inst.setForeignKey(rel, v)
			}

			inst.dataWas[k.name] = v
			inst.cachedRelations[k.name] = v
		case RejectedProperty:
			inst.model.logger.Debug().Str("property", k.name).Msg("dropping unknown property")
		}
	}

	if applySetters {
		for _, k := range keys {
			if k.class == SchemaProperty || k.class == RelationProperty {
				inst.Set(k.name, raw[k.name])
			}
		}
	}

	if inst.strict == schema.StrictOff {
		for _, k := range keys {
			if k.class == FreeFormProperty {
				inst.Set(k.name, raw[k.name])
			}
		}
	}

	for _, p := range def.Build() {
		if v, ok := inst.data[p.Name]; ok {
			inst.dataWas[p.Name] = v
			continue
		}

		v := p.DefaultValue()
		inst.data[p.Name] = v
		inst.dataWas[p.Name] = v
	}

	for _, p := range def.Build() {
		if p.Type.IsZero() || p.Type.IsBase() {
			continue
		}

		inst.data[p.Name] = coerceStructured(inst, p)
	}

	inst.model.logger.Trace().Int("keys", len(keys)).Msg("initialized")

	if inst.model.hooks != nil {
		inst.model.hooks.Notify(EventInitialize, inst)
	}

	return nil
}

// coerceStructured parses scalar values of a structured property as JSON
// literals, falling back to their string form, and wraps array values into a
// list. The baseline is left alone.
func coerceStructured(inst *Instance, p schema.PropertyDescriptor) any {
	v := inst.data[p.Name]

	if v != nil && primitive.IsScalar(v) {
		s := primitive.ToString(v)

		parsed, err := jsonlit.Parse(s)
		if err != nil {
			inst.model.logger.Debug().Str("property", p.Name).Err(err).Msg("storing structured value as string")
			v = s
		} else {
			v = parsed
		}
	}

	if p.Type.Kind == primitive.KindArray {
		if _, ok := v.(*list.List); !ok {
			v = list.New(v, p.Type.ElemType(), inst)
		}
	}

	return v
}

func unknownProperty(def *schema.Definition, name string) error {
	candidates := def.PropertyNames()
	for _, r := range def.Relations() {
		candidates = append(candidates, r.Name)
	}

	suggestion, _ := match.Suggest(name, candidates)

	return &UnknownPropertyError{Model: def.Name, Property: name, Suggestion: suggestion}
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
