package model

import (
	"modelbind/primitive"
	"modelbind/schema"
)

func customerDefinition(strict schema.StrictMode) *schema.Definition {
	return schema.NewDefinition("Customer", schema.Settings{Strict: strict}).
		Define(schema.PropertyDescriptor{Name: "id", Type: primitive.Number}).
		Define(schema.PropertyDescriptor{Name: "name", Type: primitive.String}).
		Define(schema.PropertyDescriptor{Name: "active", Type: primitive.Boolean, Default: true}).
		Define(schema.PropertyDescriptor{Name: "tags", Type: primitive.ArrayOf(primitive.String)}).
		Define(schema.PropertyDescriptor{Name: "meta", Type: primitive.Object}).
		Define(schema.PropertyDescriptor{Name: "accountId", Type: primitive.Number}).
		Relate(schema.Relation{Name: "account", Model: "Account", Type: "belongsTo", KeyFrom: "accountId", KeyTo: "id"})
}

func scalarDefinition(strict schema.StrictMode) *schema.Definition {
	return schema.NewDefinition("Contact", schema.Settings{Strict: strict}).
		Define(schema.PropertyDescriptor{Name: "id", Type: primitive.Number}).
		Define(schema.PropertyDescriptor{Name: "name", Type: primitive.String}).
		Define(schema.PropertyDescriptor{Name: "active", Type: primitive.Boolean, Default: true})
}
