package checkers

import (
	"reflect"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic"
)

// IsEmpty reports whether value is empty:
//   - nil, including typed nil pointers, maps, slices and funcs
//   - a string that is "" (after trimming when WithTrimStr is set)
//   - a slice, array or map of length 0
//   - a garlic.NDArray of size 0 or a garlic.Tensor with no elements
//
// Non-nil pointers are classified by what they point to. Everything else,
// numbers and structs included, is not empty.
func IsEmpty(value any, opts ...EmptyOption) bool {
	return isEmpty(value, resolveEmpty(opts), 0)
}

// maxIndirections bounds pointer following so self-referential pointer
// types terminate.
const maxIndirections = garlic.MaxIndirections

func isEmpty(value any, o EmptyOptions, depth int) bool {
	if garlic.IsNil(value) {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if o.TrimStr {
			s = strings.TrimSpace(s)
		}
		return s == ""
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return true
		}
	}

	if a, ok := value.(garlic.NDArray); ok && a.Size() == 0 {
		return true
	}

	if t, ok := value.(garlic.Tensor); ok && t.NumElements() == 0 {
		return true
	}

	if rv.Kind() == reflect.Ptr && depth < maxIndirections {
		return isEmpty(rv.Elem().Interface(), o, depth+1)
	}

	return false
}

// IsNDArray reports whether value is a dense array, i.e. implements garlic.NDArray.
func IsNDArray(value any) bool {
	_, ok := value.(garlic.NDArray)
	return ok
}

// IsTensor reports whether value implements garlic.Tensor.
func IsTensor(value any) bool {
	_, ok := value.(garlic.Tensor)
	return ok
}
