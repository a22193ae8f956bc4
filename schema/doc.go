// Package schema holds model definitions: the ordered property descriptors
// of each model type, its relations and its settings.
//
// Definitions are usually built in code with NewDefinition, or loaded from a
// YAML or TOML definition file:
//
//	version: "1"
//	models:
//	  - name: Customer
//	    strict: throw
//	    properties:
//	      - name: id
//	        type: Number
//	      - name: name
//	        type: String
//	        default: anonymous
//	      - name: tags
//	        type: [String]
//	      - name: address
//	        type: Address
//	      - name: createdAt
//	        type: Date
//	        default_fn: now
//	    relations:
//	      - name: account
//	        model: Account
//	        type: belongsTo
//	        key_from: accountId
//	        key_to: id
//
// # Strict mode
//
// The strict setting decides what happens to input keys that are neither a
// declared property nor a relation:
//   - true (the default) drops them silently
//   - false keeps them as free-form values
//   - "throw" rejects the input
package schema
