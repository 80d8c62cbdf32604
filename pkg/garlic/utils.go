package garlic

import (
	"reflect"
)

// IsNil reports untyped nil and typed nil values of every nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// MaxIndirections bounds how many pointers Indirect follows.
const MaxIndirections = 32

// Indirect follows non-nil pointers and interfaces down to the first concrete
// value. ok is false when a nil is hit on the way or the chain is longer
// than MaxIndirections.
func Indirect(i interface{}) (v reflect.Value, ok bool) {
	if i == nil {
		return reflect.Value{}, false
	}

	v = reflect.ValueOf(i)
	for n := 0; v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface; n++ {
		if v.IsNil() || n == MaxIndirections {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}
