package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelbind/primitive"
	"modelbind/schema"
)

func reflectTag(s string) reflect.StructTag {
	return reflect.StructTag(s)
}

func modelByName(t *testing.T, f *schema.File, name string) schema.ModelSpec {
	t.Helper()

	for _, m := range f.Models {
		if m.Name == name {
			return m
		}
	}

	require.Failf(t, "model not found", "no model %s", name)

	return schema.ModelSpec{}
}

func propertyTypes(m schema.ModelSpec) map[string]string {
	out := make(map[string]string, len(m.Properties))
	for _, p := range m.Properties {
		out[p.Name] = p.Type.String()
	}

	return out
}

func TestTypeGraph_File(t *testing.T) {
	f, diags := loadStore(t).File()
	require.False(t, diags.HasErrors(), diags.Codes())

	var names []string
	for _, m := range f.Models {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"Address", "Audit", "Customer", "Order", "OrderLine"}, names)
	assert.Equal(t, "1", f.Version)
}

func TestTypeGraph_FileCustomer(t *testing.T) {
	f, _ := loadStore(t).File()
	customer := modelByName(t, f, "Customer")

	assert.Equal(t, map[string]string{
		"createdAt": "Date",
		"updatedAt": "Date",
		"id":        "Number",
		"email":     "String",
		"fullName":  "String",
		"notes":     "Text",
		"isActive":  "Boolean",
		"address":   "Address",
		"tags":      "[String]",
		"prefs":     "Object",
	}, propertyTypes(customer))

	assert.Equal(t, "createdAt", customer.Properties[0].Name, "embedded fields come first")
	assert.Empty(t, customer.Relations)
}

func TestTypeGraph_FileOrder(t *testing.T) {
	f, _ := loadStore(t).File()
	order := modelByName(t, f, "Order")

	types := propertyTypes(order)
	assert.Equal(t, "Number", types["customerId"])
	assert.Equal(t, "String", types["status"])
	assert.Equal(t, "[OrderLine]", types["lines"])
	assert.Equal(t, "String", types["checksum"])
	assert.NotContains(t, types, "Trace")
	assert.NotContains(t, types, "Scratch")
	assert.NotContains(t, types, "customer")

	require.Len(t, order.Relations, 1)
	assert.Equal(t, schema.RelationSpec{
		Name:    "customer",
		Model:   "Customer",
		Type:    "belongsTo",
		KeyFrom: "customerId",
		KeyTo:   "id",
	}, order.Relations[0])
}

func TestTypeGraph_FileValidates(t *testing.T) {
	f, _ := loadStore(t).File()

	diags := schema.Validate(f)
	assert.False(t, diags.HasErrors(), diags.Codes())

	reg, err := f.Registry()
	require.NoError(t, err)

	def, ok := reg.Definition("Order")
	require.True(t, ok)
	assert.True(t, def.HasRelation("customer"))
}

func TestMapType(t *testing.T) {
	str := &TypeInfo{Kind: TypeKindBasic}

	tests := []struct {
		name string
		info *TypeInfo
		want primitive.TypeTag
		ok   bool
	}{
		{name: "map", info: &TypeInfo{Kind: TypeKindMap}, want: primitive.Object, ok: true},
		{name: "interface", info: &TypeInfo{Kind: TypeKindInterface}, want: primitive.Object, ok: true},
		{name: "named struct", info: &TypeInfo{Kind: TypeKindStruct, ID: TypeID{Name: "Address"}}, want: primitive.ModelOf("Address"), ok: true},
		{name: "anonymous struct", info: &TypeInfo{Kind: TypeKindStruct}, want: primitive.Object, ok: true},
		{name: "external", info: &TypeInfo{Kind: TypeKindExternal, ID: TypeID{PkgPath: "net/url", Name: "URL"}}, want: primitive.Object, ok: true},
		{name: "slice of unknown", info: &TypeInfo{Kind: TypeKindSlice, ElemType: &TypeInfo{}}, want: primitive.TypeTag{Kind: primitive.KindArray}, ok: true},
		{name: "unknown", info: &TypeInfo{}, ok: false},
		{name: "basic without go type", info: str, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapType(tt.info)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
