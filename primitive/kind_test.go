package primitive_test

import (
	"fmt"

	"modelbind/primitive"
)

func Example() {
	fmt.Println(primitive.MustParseTag("String").Kind)
	fmt.Println(primitive.MustParseTag("[Number]").Kind)
	fmt.Println(primitive.MustParseTag("[Number]").ElemType().Kind)
	fmt.Println(primitive.MustParseTag("Address").Kind)
	fmt.Println(primitive.MustParseTag("").Kind)
	// Output:
	// KindString
	// KindArray
	// KindNumber
	// KindModel
	// Kind(0)
}
