package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelbind/list"
	"modelbind/schema"
)

func TestPropertyChangedScalars(t *testing.T) {
	inst, err := NewModel(customerDefinition(schema.StrictUnset)).New(map[string]any{"id": 1, "name": "Ann"})
	require.NoError(t, err)

	assert.False(t, inst.PropertyChanged("id"))
	assert.False(t, inst.PropertyChanged("name"))

	inst.Set("name", "Bob")
	assert.True(t, inst.PropertyChanged("name"))

	inst.Set("name", "Ann")
	assert.False(t, inst.PropertyChanged("name"))

	inst.Set("id", "1")
	assert.False(t, inst.PropertyChanged("id"), "cast to the same number")
}

func TestPropertyChangedIsShallow(t *testing.T) {
	meta := map[string]any{"tier": "gold"}

	inst, err := NewModel(customerDefinition(schema.StrictUnset)).New(map[string]any{
		"meta": meta,
		"tags": []any{"a"},
	})
	require.NoError(t, err)

	assert.False(t, inst.PropertyChanged("meta"))
	assert.False(t, inst.PropertyChanged("tags"))

	meta["tier"] = "silver"
	inst.Get("tags").(*list.List).Push("b")

	assert.False(t, inst.PropertyChanged("meta"))
	assert.False(t, inst.PropertyChanged("tags"))

	inst.Set("meta", map[string]any{"tier": "silver"})
	assert.True(t, inst.PropertyChanged("meta"), "equal content, different map")

	inst.Set("tags", []any{"a", "b"})
	assert.True(t, inst.PropertyChanged("tags"))
}

// Arrays filled in by the coercion pass have no matching baseline.
func TestPropertyChangedAbsentArray(t *testing.T) {
	inst, err := NewModel(customerDefinition(schema.StrictUnset)).New(nil)
	require.NoError(t, err)

	assert.Nil(t, inst.Was("tags"))
	assert.True(t, inst.PropertyChanged("tags"))
}

// Reset restores the absent array from its empty companion, so the list
// the coercion pass created is replaced by nil.
func TestResetClearsAbsentArray(t *testing.T) {
	inst, err := NewModel(customerDefinition(schema.StrictUnset)).New(nil)
	require.NoError(t, err)
	require.IsType(t, &list.List{}, inst.Get("tags"))

	inst.Reset()

	assert.Nil(t, inst.Get("tags"))
	assert.False(t, inst.PropertyChanged("tags"))
}

func TestSameValue(t *testing.T) {
	m := map[string]any{}
	s := []any{1, 2}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "nil", a: nil, b: nil, want: true},
		{name: "nil and value", a: nil, b: 0, want: false},
		{name: "strings", a: "a", b: "a", want: true},
		{name: "numbers", a: 1.0, b: 1.0, want: true},
		{name: "number kinds", a: 1, b: 1.0, want: false},
		{name: "same map", a: m, b: m, want: true},
		{name: "equal maps", a: map[string]any{}, b: map[string]any{}, want: false},
		{name: "same slice", a: s, b: s, want: true},
		{name: "resliced", a: s, b: s[:1], want: false},
		{name: "equal slices", a: []any{1, 2}, b: []any{1, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameValue(tt.a, tt.b))
		})
	}
}

func TestResetDropsOwnProperties(t *testing.T) {
	inst, err := NewModel(scalarDefinition(schema.StrictUnset)).New(
		map[string]any{"id": 1, "name": "Ann", "extra": 1},
		WithStrict(schema.StrictOff),
	)
	require.NoError(t, err)

	inst.Reset()

	assert.Empty(t, inst.OwnKeys())
	assert.Equal(t, 1.0, inst.Get("id"))
	assert.Equal(t, "Ann", inst.Get("name"))
}

// Reset reads the previous value from a name$was companion, which is an own
// property and is removed before it is read. A changed property is
// therefore reset to nil, not to its baseline.
func TestResetRestoresFromCompanion(t *testing.T) {
	inst, err := NewModel(scalarDefinition(schema.StrictUnset)).New(map[string]any{"id": 1, "name": "Ann"})
	require.NoError(t, err)

	inst.Set("name", "Bob")
	inst.Set("name$was", "Ann")
	require.True(t, inst.PropertyChanged("name"))

	inst.Reset()

	assert.Nil(t, inst.Get("name"))
	assert.Equal(t, "Ann", inst.Was("name"))
	assert.Equal(t, 1.0, inst.Get("id"))
	_, ok := inst.Own("name$was")
	assert.False(t, ok)
}
