package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelbind/primitive"
)

func TestDefinitionKeepsOrder(t *testing.T) {
	def := NewDefinition("Customer", Settings{}).
		Define(PropertyDescriptor{Name: "id", Type: primitive.Number}).
		Define(PropertyDescriptor{Name: "name", Type: primitive.String}).
		Define(PropertyDescriptor{Name: "email", Type: primitive.String})

	assert.Equal(t, []string{"id", "name", "email"}, def.PropertyNames())

	def.Define(PropertyDescriptor{Name: "name", Type: primitive.Text})
	assert.Equal(t, []string{"id", "name", "email"}, def.PropertyNames())

	p, ok := def.Property("name")
	require.True(t, ok)
	assert.Equal(t, primitive.KindText, p.Type.Kind)

	built := def.Build()
	built[0].Name = "changed"
	assert.True(t, def.HasProperty("id"))
	assert.False(t, def.HasProperty("changed"))
}

func TestDefinitionRelations(t *testing.T) {
	def := NewDefinition("Order", Settings{}).
		Define(PropertyDescriptor{Name: "customerId", Type: primitive.Number}).
		Relate(Relation{Name: "customer", Model: "Customer", KeyFrom: "customerId", KeyTo: "id"})

	assert.True(t, def.HasRelation("customer"))
	assert.False(t, def.HasRelation("customerId"))

	rel, ok := def.Relation("customer")
	require.True(t, ok)
	assert.Equal(t, "id", rel.KeyTo)

	def.Relate(Relation{Name: "customer", Model: "Customer", KeyFrom: "customerId", KeyTo: "uuid"})
	require.Len(t, def.Relations(), 1)
	assert.Equal(t, "uuid", def.Relations()[0].KeyTo)
}

func TestPropertyDefaults(t *testing.T) {
	shared := map[string]any{"k": 1}

	literal := PropertyDescriptor{Name: "a", Default: shared}
	assert.True(t, literal.HasDefault())

	first := literal.DefaultValue().(map[string]any)
	first["k"] = 2
	assert.Equal(t, 2, shared["k"], "literal defaults are shared, not cloned")

	calls := 0
	factory := PropertyDescriptor{Name: "b", Default: DefaultFunc(func() any { calls++; return calls })}
	assert.Equal(t, 1, factory.DefaultValue())
	assert.Equal(t, 2, factory.DefaultValue())

	plain := PropertyDescriptor{Name: "c", Default: func() any { return "x" }}
	assert.Equal(t, "x", plain.DefaultValue())

	none := PropertyDescriptor{Name: "d"}
	assert.False(t, none.HasDefault())
	assert.Nil(t, none.DefaultValue())
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		in      any
		want    StrictMode
		wantErr bool
	}{
		{nil, StrictUnset, false},
		{true, StrictDrop, false},
		{false, StrictOff, false},
		{"throw", StrictThrow, false},
		{"FALSE", StrictOff, false},
		{"", StrictUnset, false},
		{StrictThrow, StrictThrow, false},
		{"maybe", StrictUnset, true},
		{3, StrictUnset, true},
	}

	for _, tt := range tests {
		got, err := ParseStrict(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestStrictModeOr(t *testing.T) {
	assert.Equal(t, StrictDrop, StrictUnset.Or(StrictDrop))
	assert.Equal(t, StrictOff, StrictOff.Or(StrictDrop))
	assert.Equal(t, "throw", StrictThrow.String())
	assert.Equal(t, "", StrictUnset.String())
}

func TestRegistry(t *testing.T) {
	a := NewDefinition("A", Settings{})
	b := NewDefinition("B", Settings{})

	reg := NewRegistry(a, b)
	assert.Equal(t, []string{"A", "B"}, reg.Names())

	reg.Register(NewDefinition("A", Settings{Strict: StrictOff}))
	assert.Equal(t, []string{"A", "B"}, reg.Names())

	got, ok := reg.Definition("A")
	require.True(t, ok)
	assert.Equal(t, StrictOff, got.Settings.Strict)

	_, ok = reg.Definition("C")
	assert.False(t, ok)
}
