package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Cast normalizes v to the representation used for values of tag.
// It is the conversion a property setter applies on assignment.
// nil stays nil and non-base tags are returned unchanged.
func Cast(tag TypeTag, v any) any {
	if v == nil {
		return nil
	}

	switch tag.Kind {
	case KindString, KindText:
		return ToString(v)
	case KindNumber:
		return ToNumber(v)
	case KindBoolean:
		return ToBoolean(v)
	case KindDate:
		return ToDate(v)
	default:
		return v
	}
}

// ToString returns the canonical textual form of v.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	}

	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}

// ToNumber converts v to float64. Values without a numeric reading become NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}

		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}

		return f
	case time.Time:
		return float64(x.UnixMilli())
	}

	if f, ok := toFloat(v); ok {
		return f
	}

	return math.NaN()
}

// ToBoolean reads textual booleans (true/false, yes/no, on/off, 1/0) and
// falls back to truthiness for everything else.
func ToBoolean(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0", "":
			return false
		}

		return true
	}

	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}

	return true
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ToDate parses RFC3339 or date-only strings and reads numbers as unix
// milliseconds. Unreadable input yields the zero time.
func ToDate(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}

		return time.Time{}
	}

	if f, ok := toFloat(v); ok && !math.IsNaN(f) {
		return time.UnixMilli(int64(f)).UTC()
	}

	return time.Time{}
}

// IsScalar returns true for strings, booleans and numbers: values that are
// not objects and therefore candidates for structured-literal parsing.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, bool:
		return true
	}

	_, ok := toFloat(v)

	return ok
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
