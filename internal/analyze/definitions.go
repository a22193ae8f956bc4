package analyze

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"modelbind/internal/diagnostic"
	"modelbind/primitive"
	"modelbind/schema"
)

// File renders every exported struct of the graph as a model spec. Models
// are ordered by package path, then by type name. Fields whose type cannot
// be mapped become untyped properties and are reported as warnings.
func (g *TypeGraph) File() (*schema.File, *diagnostic.Diagnostics) {
	f := &schema.File{Version: "1"}
	diags := &diagnostic.Diagnostics{}

	for _, path := range slices.Sorted(maps.Keys(g.Packages)) {
		for _, id := range g.Packages[path].Types {
			info := g.Types[id]
			if info.Kind != TypeKindStruct {
				continue
			}

			f.Models = append(f.Models, g.modelSpec(info, diags))
		}
	}

	return f, diags
}

func (g *TypeGraph) modelSpec(info *TypeInfo, diags *diagnostic.Diagnostics) schema.ModelSpec {
	spec := schema.ModelSpec{Name: info.ID.Name}
	seen := make(map[string]bool)

	g.collectFields(&spec, info, diags, seen, map[*TypeInfo]bool{info: true})

	return spec
}

func (g *TypeGraph) collectFields(
	spec *schema.ModelSpec,
	info *TypeInfo,
	diags *diagnostic.Diagnostics,
	seen map[string]bool,
	visiting map[*TypeInfo]bool,
) {
	for i := range info.Fields {
		field := &info.Fields[i]
		if field.Skipped() {
			continue
		}

		if embedded := embeddedStruct(field); embedded != nil && field.Tag.Get("json") == "" {
			if !visiting[embedded] {
				visiting[embedded] = true
				g.collectFields(spec, embedded, diags, seen, visiting)
			}

			continue
		}

		name := field.JSONName()
		if seen[name] {
			diags.AddWarning("duplicate_field", fmt.Sprintf("field %s repeats property %q", field.Name, name), spec.Name, name)
			continue
		}

		seen[name] = true
		tag := field.ModelTag()

		if tag.Relation != "" {
			spec.Relations = append(spec.Relations, relationSpec(name, field, tag, diags, spec.Name))
			continue
		}

		spec.Properties = append(spec.Properties, schema.PropertySpec{
			Name: name,
			Type: propertyType(field, tag, diags, spec.Name, name),
		})
	}
}

func relationSpec(name string, field *FieldInfo, tag ModelTag, diags *diagnostic.Diagnostics, model string) schema.RelationSpec {
	rel := schema.RelationSpec{
		Name:    name,
		Type:    tag.Relation,
		KeyFrom: tag.Key,
		KeyTo:   tag.Ref,
	}

	if rel.KeyTo == "" {
		rel.KeyTo = "id"
	}

	if target := structTarget(field.Type); target != nil {
		rel.Model = target.ID.Name
	} else {
		diags.AddWarning("relation_target", fmt.Sprintf("field %s does not point to a struct", field.Name), model, name)
	}

	if rel.KeyFrom == "" {
		diags.AddWarning("relation_key", fmt.Sprintf("field %s has no key option", field.Name), model, name)
	}

	return rel
}

func propertyType(field *FieldInfo, tag ModelTag, diags *diagnostic.Diagnostics, model, name string) primitive.TypeTag {
	if tag.Type != "" {
		t, err := primitive.ParseTag(tag.Type)
		if err == nil {
			return t
		}

		diags.AddWarning("invalid_type_override", err.Error(), model, name)
	}

	t, ok := mapType(field.Type)
	if !ok {
		diags.AddWarning("unmapped_type", fmt.Sprintf("no property type for %s", goTypeString(field.Type)), model, name)
	}

	return t
}

// mapType maps a Go type to a property type.
func mapType(info *TypeInfo) (primitive.TypeTag, bool) {
	switch info.Kind {
	case TypeKindBasic:
		return basicType(info)
	case TypeKindAlias:
		return mapType(info.Underlying)
	case TypeKindPointer:
		return mapType(info.ElemType)
	case TypeKindSlice, TypeKindArray:
		if isBytes(info) {
			return primitive.String, true
		}

		elem, ok := mapType(info.ElemType)
		if !ok {
			return primitive.TypeTag{Kind: primitive.KindArray}, true
		}

		return primitive.ArrayOf(elem), true
	case TypeKindStruct:
		if info.IsNamed() {
			return primitive.ModelOf(info.ID.Name), true
		}

		return primitive.Object, true
	case TypeKindMap, TypeKindInterface:
		return primitive.Object, true
	case TypeKindExternal:
		if info.ID == (TypeID{PkgPath: "time", Name: "Time"}) {
			return primitive.Date, true
		}

		return primitive.Object, true
	default:
		return primitive.TypeTag{}, false
	}
}

func basicType(info *TypeInfo) (primitive.TypeTag, bool) {
	name := goTypeString(info)

	switch {
	case name == "string":
		return primitive.String, true
	case name == "bool":
		return primitive.Boolean, true
	case strings.HasPrefix(name, "int"), strings.HasPrefix(name, "uint"), strings.HasPrefix(name, "float"):
		return primitive.Number, true
	case name == "byte", name == "rune":
		return primitive.Number, true
	default:
		return primitive.TypeTag{}, false
	}
}

func isBytes(info *TypeInfo) bool {
	elem := info.ElemType
	return elem != nil && elem.Kind == TypeKindBasic && (goTypeString(elem) == "byte" || goTypeString(elem) == "uint8")
}

func embeddedStruct(field *FieldInfo) *TypeInfo {
	if !field.Embedded {
		return nil
	}

	t := field.Type
	if t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	if t == nil || t.Kind != TypeKindStruct {
		return nil
	}

	return t
}

func structTarget(info *TypeInfo) *TypeInfo {
	for info != nil && (info.Kind == TypeKindPointer || info.Kind == TypeKindSlice) {
		info = info.ElemType
	}

	if info == nil || info.Kind != TypeKindStruct || !info.IsNamed() {
		return nil
	}

	return info
}

func goTypeString(info *TypeInfo) string {
	if info.GoType == nil {
		return info.Kind.String()
	}

	return info.GoType.String()
}
