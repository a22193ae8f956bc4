// Package diagnostic collects structured errors and warnings produced while
// checking model definitions.
//
// Each diagnostic carries a stable code, the model it concerns and,
// when relevant, the property or relation name.
package diagnostic
