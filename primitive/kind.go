package primitive

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies the declared type of a model property.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks a property declared without a type

	KindString
	KindBoolean
	KindNumber
	KindDate
	KindText
	KindObject // free-form structured value (Object, JSON, Any)
	KindModel  // named structured type, usually another model
	KindArray  // ordered list of an element type

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsBase reports whether values of the kind are stored as plain scalars and
// never go through structured-literal coercion.
func (k Kind) IsBase() bool {
	switch k {
	default:
		return false
	case KindString, KindBoolean, KindNumber, KindDate, KindText:
		return true
	}
}

func (k Kind) IsTextual() bool {
	return k == KindString || k == KindText
}

func (k Kind) IsStructured() bool {
	switch k {
	default:
		return false
	case KindObject, KindModel, KindArray:
		return true
	}
}

// typeName is the name reported for the kind by property type lookups.
func (k Kind) typeName() string {
	switch k {
	default:
		return ""
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindDate:
		return "Date"
	case KindText:
		return "Text"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	}
}
