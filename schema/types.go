package schema

import (
	"fmt"
	"strings"
	"time"

	"modelbind/primitive"
)

// DefaultFunc produces a default value each time a property needs one.
// The returned value is stored as is, never copied.
type DefaultFunc func() any

// SetterFunc normalizes a value assigned to a property, after the cast
// implied by the property type.
type SetterFunc func(v any) any

// DefaultFnNow is the named default function yielding the current time.
const DefaultFnNow = "now"

// PropertyDescriptor declares one property of a model.
type PropertyDescriptor struct {
	Name string
	Type primitive.TypeTag
	// Default is a literal value, a DefaultFunc or a func() any.
	Default any
	// DefaultFn names a built-in default function; it wins over Default.
	DefaultFn string
	Setter    SetterFunc
}

// HasDefault reports whether the property declares any kind of default.
func (p PropertyDescriptor) HasDefault() bool {
	return p.Default != nil || p.DefaultFn == DefaultFnNow
}

// DefaultValue returns the default for a fresh instance: the literal itself
// (shared, not cloned) or the result of invoking the default factory.
func (p PropertyDescriptor) DefaultValue() any {
	if p.DefaultFn == DefaultFnNow {
		return time.Now()
	}

	switch fn := p.Default.(type) {
	case DefaultFunc:
		return fn()
	case func() any:
		return fn()
	default:
		return p.Default
	}
}

// Relation declares that the local property KeyFrom mirrors the field KeyTo
// of the related model.
type Relation struct {
	Name    string
	Model   string
	Type    string // belongsTo, hasOne, hasMany, ...
	KeyFrom string
	KeyTo   string
}

// StrictMode is the policy for input keys that are neither declared
// properties nor relations.
type StrictMode int

const (
	// StrictUnset defers to the next level: instance option, then model
	// settings. Unresolved, it behaves like StrictDrop.
	StrictUnset StrictMode = iota
	// StrictDrop silently ignores unknown keys (strict: true).
	StrictDrop
	// StrictOff keeps unknown keys as free-form values (strict: false).
	StrictOff
	// StrictThrow rejects input carrying unknown keys (strict: "throw").
	StrictThrow
)

func (m StrictMode) String() string {
	switch m {
	case StrictDrop:
		return "true"
	case StrictOff:
		return "false"
	case StrictThrow:
		return "throw"
	default:
		return ""
	}
}

// Or returns m, or fallback when m is unset.
func (m StrictMode) Or(fallback StrictMode) StrictMode {
	if m == StrictUnset {
		return fallback
	}

	return m
}

// ParseStrict reads a strict setting as found in definition files:
// a boolean, "true", "false", "throw" or nothing.
func ParseStrict(v any) (StrictMode, error) {
	switch x := v.(type) {
	case nil:
		return StrictUnset, nil
	case StrictMode:
		return x, nil
	case bool:
		if x {
			return StrictDrop, nil
		}

		return StrictOff, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "":
			return StrictUnset, nil
		case "true":
			return StrictDrop, nil
		case "false":
			return StrictOff, nil
		case "throw":
			return StrictThrow, nil
		}
	}

	return StrictUnset, fmt.Errorf("invalid strict mode %v", v)
}

// Settings are per-model options.
type Settings struct {
	Strict StrictMode
}
