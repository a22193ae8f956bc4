package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty matches every UnknownPropertyError.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrMissingType matches every MissingTypeError.
	ErrMissingType = errors.New("missing property type")
)

// UnknownPropertyError is returned by Model.New when strict mode is "throw"
// and the input carries a key that is neither a property nor a relation.
type UnknownPropertyError struct {
	Model    string
	Property string
	// Suggestion is the closest declared name, if any is close enough.
	Suggestion string
}

func (e *UnknownPropertyError) Error() string {
	msg := fmt.Sprintf("%s: unknown property %q", e.Model, e.Property)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}

	return msg
}

func (e *UnknownPropertyError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// MissingTypeError is returned when the type of a property declared without
// one is queried. It points at a defect in the definition, not in data.
type MissingTypeError struct {
	Model    string
	Property string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("%s: property %q has no type", e.Model, e.Property)
}

func (e *MissingTypeError) Is(target error) bool {
	return target == ErrMissingType
}
