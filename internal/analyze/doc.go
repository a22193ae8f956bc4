// Package analyze derives model definitions from Go source.
//
// It loads packages with golang.org/x/tools/go/packages, builds a graph of
// the exported named types and renders every struct as a schema.ModelSpec.
//
// Field mapping:
//   - the property name is the json name of the field
//   - strings, booleans and numbers map to the base types, time.Time to Date
//   - slices and arrays map to [T], structs of the loaded packages to their
//     model name, maps and interfaces to Object
//   - pointers map like their element
//   - embedded structs contribute their fields
//
// The model struct tag adjusts the mapping:
//
//	Notes    string   `json:"notes" model:"Text"`
//	Internal string   `model:"-"`
//	Customer *Customer `json:"customer" model:",relation=belongsTo,key=customer_id"`
//
// The first element overrides the type. A relation option turns the field
// into a relation whose foreign key is the property named by key; ref names
// the field of the related model, "id" unless given.
package analyze
