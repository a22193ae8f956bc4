// Package jsonlit reads and writes structured JSON literals on a shared
// ugorji codec handle.
//
// Decoded objects are map[string]any, arrays []any and numbers float64, the
// same shapes the model store holds for free-form structured values.
package jsonlit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ugorji/go/codec"
)

var handle = newHandle()

func newHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{PreferFloat: true}
	h.MapType = reflect.TypeOf(map[string]any(nil))
	h.SliceType = reflect.TypeOf([]any(nil))
	h.Canonical = true

	return h
}

// Parse decodes s as a single JSON value. Trailing input is an error.
func Parse(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty literal")
	}

	var v any

	dec := codec.NewDecoderBytes([]byte(s), handle)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse literal %q: %w", s, err)
	}

	if n := dec.NumBytesRead(); n != len(s) {
		return nil, fmt.Errorf("failed to parse literal %q: unexpected data at offset %d", s, n)
	}

	return v, nil
}

// Encode renders v as JSON with map keys in sorted order.
func Encode(v any) ([]byte, error) {
	var out []byte

	enc := codec.NewEncoderBytes(&out, handle)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}

	return out, nil
}
