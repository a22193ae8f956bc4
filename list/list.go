// Package list implements the ordered list container that holds the value of
// array-typed model properties.
package list

import (
	"reflect"
	"slices"

	"modelbind/internal/jsonlit"
	"modelbind/internal/plain"
	"modelbind/primitive"
)

// Owner is the instance a list belongs to. It casts elements on insertion.
type Owner interface {
	ModelName() string
	Cast(tag primitive.TypeTag, v any) any
}

// List is an ordered sequence of elements of one declared type.
type List struct {
	items []any
	elem  primitive.TypeTag
	owner Owner
}

// New builds a list from data:
//   - nil gives an empty list
//   - a *List or any slice or array is copied element by element
//   - a string holding a JSON array is parsed
//   - any other value becomes the single element
//
// Elements are cast to elem through the owner, or with primitive.Cast when
// there is no owner.
func New(data any, elem primitive.TypeTag, owner Owner) *List {
	l := &List{elem: elem, owner: owner}
	l.Push(elements(data)...)

	return l
}

func elements(data any) []any {
	switch x := data.(type) {
	case nil:
		return nil
	case *List:
		return slices.Clone(x.items)
	case []any:
		return slices.Clone(x)
	case string:
		if parsed, err := jsonlit.Parse(x); err == nil {
			if arr, ok := parsed.([]any); ok {
				return arr
			}
		}

		return []any{x}
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out
	}

	return []any{data}
}

func (l *List) cast(v any) any {
	if l.elem.IsZero() {
		return v
	}

	if l.owner != nil {
		return l.owner.Cast(l.elem, v)
	}

	return primitive.Cast(l.elem, v)
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l *List) At(i int) any {
	return l.items[i]
}

// Items returns a copy of the elements.
func (l *List) Items() []any {
	return slices.Clone(l.items)
}

// Push appends elements, casting each one.
func (l *List) Push(vs ...any) {
	for _, v := range vs {
		l.items = append(l.items, l.cast(v))
	}
}

// SetAt replaces the element at index i.
func (l *List) SetAt(i int, v any) {
	l.items[i] = l.cast(v)
}

// RemoveAt deletes the element at index i and returns it.
func (l *List) RemoveAt(i int) any {
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)

	return v
}

// ElemType returns the declared element type.
func (l *List) ElemType() primitive.TypeTag {
	return l.elem
}

// Owner returns the instance the list is bound to, possibly nil.
func (l *List) Owner() Owner {
	return l.owner
}

// ToObject returns the elements as a fresh plain slice, serializing nested
// lists and instances.
func (l *List) ToObject(onlySchema bool) []any {
	out := make([]any, len(l.items))
	for i, v := range l.items {
		out[i] = plain.Value(v, onlySchema)
	}

	return out
}
