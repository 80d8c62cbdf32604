package validators

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opString = "String"

// String returns value as a string. Non-strings fail with
// errs.ErrCannotCoerce unless WithCoerce is set. WithTrim and WithNormalize
// run before the empty and length checks; lengths count runes.
func String(value any, opts ...Option) (string, error) {
	o := resolve(opts)
	if err := o.validate(opString); err != nil {
		return "", err
	}

	if garlic.IsNil(value) {
		if o.AllowEmpty {
			return "", nil
		}
		return "", errs.New(opString, value, errs.ErrEmptyValue)
	}

	return start[string](toString(value, o.Coerce)).
		then(func(s string) (string, error) {
			if o.Trim {
				s = strings.TrimSpace(s)
			}
			if o.Normalize {
				s = norm.NFC.String(s)
			}
			return s, nil
		}).
		finishIf(func(s string) bool { return s == "" && o.AllowEmpty }).
		then(func(s string) (string, error) {
			if s == "" {
				return s, errs.New(opString, value, errs.ErrEmptyValue)
			}
			return s, nil
		}).
		then(func(s string) (string, error) {
			n := utf8.RuneCountInString(s)
			if o.MinLength != nil && n < *o.MinLength {
				return s, errs.New(opString, s, errs.ErrMinimumLength)
			}
			if o.MaxLength != nil && n > *o.MaxLength {
				return s, errs.New(opString, s, errs.ErrMaximumLength)
			}
			return s, nil
		}).
		result()
}

func toString(value any, coerce bool) (string, error) {
	rv, ok := garlic.Indirect(value)
	if !ok {
		return "", errs.New(opString, value, errs.ErrEmptyValue)
	}
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	if !coerce {
		return "", errs.New(opString, value, errs.ErrCannotCoerce)
	}
	if b, ok := value.([]byte); ok {
		return string(b), nil
	}
	return fmt.Sprint(rv.Interface()), nil
}
