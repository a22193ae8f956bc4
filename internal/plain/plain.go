// Package plain projects bound values into fresh plain structures made of
// maps, slices and scalars.
package plain

// MapObjecter is implemented by values that serialize to an object,
// model instances in particular.
type MapObjecter interface {
	ToObject(onlySchema bool) map[string]any
}

// SliceObjecter is implemented by values that serialize to a sequence,
// list containers in particular.
type SliceObjecter interface {
	ToObject(onlySchema bool) []any
}

// Value returns the plain form of v. Objecters are asked to serialize
// themselves, maps and slices are copied element by element and everything
// else is returned as is.
//
// There is no cycle detection: a self-referencing graph recurses until the
// stack is exhausted.
func Value(v any, onlySchema bool) any {
	switch x := v.(type) {
	case nil:
		return nil
	case MapObjecter:
		return x.ToObject(onlySchema)
	case SliceObjecter:
		return x.ToObject(onlySchema)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Value(e, onlySchema)
		}

		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Value(e, onlySchema)
		}

		return out
	default:
		return v
	}
}
