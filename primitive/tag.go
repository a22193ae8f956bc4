package primitive

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeTag is the declared type of a property: a base scalar kind, a free-form
// object, a named structured type or an ordered list of another tag.
type TypeTag struct {
	Kind Kind
	Name string   // model name for KindModel
	Elem *TypeTag // element tag for KindArray, nil when untyped
}

var (
	String  = TypeTag{Kind: KindString}
	Boolean = TypeTag{Kind: KindBoolean}
	Number  = TypeTag{Kind: KindNumber}
	Date    = TypeTag{Kind: KindDate}
	Text    = TypeTag{Kind: KindText}
	Object  = TypeTag{Kind: KindObject}
)

// ArrayOf returns the tag of a list whose elements are of type elem.
func ArrayOf(elem TypeTag) TypeTag {
	return TypeTag{Kind: KindArray, Elem: &elem}
}

// ModelOf returns the tag of the named structured type.
func ModelOf(name string) TypeTag {
	return TypeTag{Kind: KindModel, Name: name}
}

var baseNames = map[string]Kind{
	"string":  KindString,
	"boolean": KindBoolean,
	"bool":    KindBoolean,
	"number":  KindNumber,
	"date":    KindDate,
	"text":    KindText,
	"object":  KindObject,
	"json":    KindObject,
	"any":     KindObject,
}

// ParseTag parses a textual type declaration.
// Supported forms: "String", "Number", "[String]", "String[]", "Array",
// "Object" and any identifier naming a structured type.
// The empty string yields the zero tag, i.e. no declared type.
func ParseTag(s string) (TypeTag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeTag{}, nil
	}

	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return parseArray(s, s[1:len(s)-1])
	case strings.HasSuffix(s, "[]"):
		return parseArray(s, strings.TrimSuffix(s, "[]"))
	case strings.EqualFold(s, "array"):
		return TypeTag{Kind: KindArray}, nil
	}

	if kind, ok := baseNames[strings.ToLower(s)]; ok {
		return TypeTag{Kind: kind}, nil
	}

	if !isIdent(s) {
		return TypeTag{}, fmt.Errorf("invalid type %q", s)
	}

	return ModelOf(s), nil
}

func parseArray(full, inner string) (TypeTag, error) {
	if strings.TrimSpace(inner) == "" {
		return TypeTag{Kind: KindArray}, nil
	}

	elem, err := ParseTag(inner)
	if err != nil {
		return TypeTag{}, fmt.Errorf("invalid array type %q: %w", full, err)
	}

	return ArrayOf(elem), nil
}

// MustParseTag is like ParseTag but panics on malformed input.
func MustParseTag(s string) TypeTag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}

	return t
}

// IsZero returns true if no type was declared.
func (t TypeTag) IsZero() bool {
	return t.Kind == 0
}

// IsBase returns true for String, Boolean, Number, Date and Text.
func (t TypeTag) IsBase() bool {
	return t.Kind.IsBase()
}

// ElemType returns the element tag of an array tag, or the zero tag when the
// array is untyped or t is not an array.
func (t TypeTag) ElemType() TypeTag {
	if t.Kind != KindArray || t.Elem == nil {
		return TypeTag{}
	}

	return *t.Elem
}

// TypeName returns the short type name: the base name, "Object", "Array" or
// the name of the structured type.
func (t TypeTag) TypeName() string {
	if t.Kind == KindModel {
		return t.Name
	}

	return t.Kind.typeName()
}

// String returns the declaration form accepted by ParseTag.
func (t TypeTag) String() string {
	switch t.Kind {
	case 0:
		return ""
	case KindArray:
		if t.Elem == nil {
			return "Array"
		}

		return "[" + t.Elem.String() + "]"
	default:
		return t.TypeName()
	}
}

// Equal compares two tags structurally.
func (t TypeTag) Equal(o TypeTag) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}

	if t.Elem == nil || o.Elem == nil {
		return t.Elem == nil && o.Elem == nil
	}

	return t.Elem.Equal(*o.Elem)
}

// UnmarshalYAML accepts a scalar ("Number", "[String]") or a one-element
// sequence ([String]) which YAML parses from the bracket form.
func (t *TypeTag) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		parsed, err := ParseTag(s)
		if err != nil {
			return err
		}

		*t = parsed

		return nil

	case yaml.SequenceNode:
		if len(node.Content) > 1 {
			return errors.New("array type must declare at most one element type")
		}

		if len(node.Content) == 0 {
			*t = TypeTag{Kind: KindArray}
			return nil
		}

		var elem TypeTag

		err := node.Content[0].Decode(&elem)
		if err != nil {
			return err
		}

		*t = ArrayOf(elem)

		return nil

	default:
		return fmt.Errorf("expected type name or array, got %v", node.Kind)
	}
}

// MarshalYAML writes the tag in its textual form.
func (t TypeTag) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeTag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func isIdent(s string) bool {
	for i, r := range s {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		if i == 0 && !letter {
			return false
		}

		if !letter && !(r >= '0' && r <= '9') && r != '.' {
			return false
		}
	}

	return true
}
