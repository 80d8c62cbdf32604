package validators

import (
	"reflect"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opBool = "Bool"

// Bool returns native booleans as-is. With WithCoerce it also converts the
// fixed truthy/falsy vocabulary (see garlic.InTruthy and garlic.InFalsy).
func Bool(value any, opts ...Option) (bool, error) {
	o := resolve(opts)

	if isBlank(value) {
		if o.AllowEmpty {
			return false, nil
		}
		return false, errs.New(opBool, value, errs.ErrEmptyValue)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Bool {
		return rv.Bool(), nil
	}

	if o.Coerce {
		switch {
		case garlic.InTruthy(value):
			return true, nil
		case garlic.InFalsy(value):
			return false, nil
		}
	}
	return false, errs.New(opBool, value, errs.ErrCannotCoerce)
}
