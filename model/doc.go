// Package model binds raw data to typed, change-tracked model instances.
//
// A Model pairs a schema.Definition with its collaborators (hooks,
// validator, data source, logger). Model.New runs the initialization
// pipeline over a raw map:
//
//  1. resolve the setter and strict options
//  2. classify every input key as a schema property, a relation, a
//     free-form value or a rejected key
//  3. store schema values and relation keys, caching related objects
//  4. run property setters, mirror free-form keys when strict is off
//  5. fill defaults and snapshot the baseline
//  6. coerce structured properties and wrap arrays into lists
//  7. notify the "initialize" hook
//
// Change tracking compares the current value of a property with the
// baseline by identity: reassigning a property marks it changed, mutating
// a map or list it holds in place does not.
//
// ToObject projects an instance into plain maps, slices and scalars, either
// restricted to declared properties or including free-form values.
package model
