package schema

import (
	"fmt"

	"modelbind/internal/diagnostic"
	"modelbind/primitive"
)

// Validate checks a definition file for structural problems. Errors make the
// file unusable; warnings flag declarations that will only fail once used,
// such as a property without a type.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "definition file is nil", "", "")
		return res
	}

	models := map[string]struct{}{}

	for i := range f.Models {
		name := f.Models[i].Name
		if name == "" {
			res.AddError("missing_model_name", fmt.Sprintf("model #%d has no name", i+1), "", "")
			continue
		}

		if _, ok := models[name]; ok {
			res.AddError("duplicate_model", fmt.Sprintf("duplicate model %q", name), name, "")
			continue
		}

		models[name] = struct{}{}
	}

	for i := range f.Models {
		validateModel(res, &f.Models[i], models)
	}

	return res
}

func validateModel(res *diagnostic.Diagnostics, m *ModelSpec, models map[string]struct{}) {
	if _, err := ParseStrict(m.Strict); err != nil {
		res.AddError("invalid_strict", err.Error(), m.Name, "")
	}

	props := map[string]struct{}{}

	for _, p := range m.Properties {
		if p.Name == "" {
			res.AddError("missing_property_name", "property has no name", m.Name, "")
			continue
		}

		if _, ok := props[p.Name]; ok {
			res.AddError("duplicate_property", fmt.Sprintf("duplicate property %q", p.Name), m.Name, p.Name)
			continue
		}

		props[p.Name] = struct{}{}

		if p.Type.IsZero() {
			res.AddWarning("missing_type", "property has no type", m.Name, p.Name)
		}

		if name, ok := unknownModelType(p.Type, models); ok {
			res.AddWarning("unknown_type",
				fmt.Sprintf("type %q is not a declared model, values stay free-form", name), m.Name, p.Name)
		}

		if p.DefaultFn != "" && p.DefaultFn != DefaultFnNow {
			res.AddError("unknown_default_fn", fmt.Sprintf("unknown default function %q", p.DefaultFn), m.Name, p.Name)
		}
	}

	rels := map[string]struct{}{}

	for _, r := range m.Relations {
		if r.Name == "" {
			res.AddError("missing_relation_name", "relation has no name", m.Name, "")
			continue
		}

		if _, ok := rels[r.Name]; ok {
			res.AddError("duplicate_relation", fmt.Sprintf("duplicate relation %q", r.Name), m.Name, r.Name)
			continue
		}

		rels[r.Name] = struct{}{}

		if _, ok := props[r.Name]; ok {
			res.AddError("relation_shadows_property",
				fmt.Sprintf("relation %q has the same name as a property", r.Name), m.Name, r.Name)
		}

		if _, ok := props[r.KeyFrom]; !ok {
			res.AddError("unknown_key_from",
				fmt.Sprintf("key_from %q is not a declared property", r.KeyFrom), m.Name, r.Name)
		}

		if r.KeyTo == "" {
			res.AddError("missing_key_to", "relation has no key_to", m.Name, r.Name)
		}

		if _, ok := models[r.Model]; !ok {
			res.AddWarning("unknown_relation_model",
				fmt.Sprintf("related model %q is not declared in this file", r.Model), m.Name, r.Name)
		}
	}
}

// unknownModelType reports the first named structured type in tag that is
// not one of models.
func unknownModelType(tag primitive.TypeTag, models map[string]struct{}) (string, bool) {
	switch tag.Kind {
	case primitive.KindModel:
		if _, ok := models[tag.Name]; !ok {
			return tag.Name, true
		}
	case primitive.KindArray:
		if tag.Elem != nil {
			return unknownModelType(*tag.Elem, models)
		}
	}

	return "", false
}
