package checkers

import (
	"reflect"

	"github.com/ib-77/garlic/pkg/garlic"
)

// IsTruthy reports whether value is one of the fixed representations of
// true: true, 1, "1", "1.0", "TRUE", "True", "true", "YES", "Yes", "yes",
// "Y" or "y". This is not general truthiness: 1.1 and []int{1} are not truthy.
func IsTruthy(value any) bool {
	return garlic.InTruthy(value)
}

// IsFalsy reports whether value is one of the fixed representations of
// false: false, 0, "0", "0.0", "FALSE", "False", "false", "NO", "No", "no",
// "N" or "n".
func IsFalsy(value any) bool {
	return garlic.InFalsy(value)
}

// IsBool reports whether value is a bool. With WithCoerce it also reports
// true for anything IsTruthy or IsFalsy accepts, so IsBool(1, WithCoerce())
// is true while IsBool(1) is false. Nothing is converted; see validators.Bool.
func IsBool(value any, opts ...BoolOption) bool {
	if value != nil && reflect.ValueOf(value).Kind() == reflect.Bool {
		return true
	}

	if resolveBool(opts).CoerceValue {
		return IsTruthy(value) || IsFalsy(value)
	}
	return false
}
