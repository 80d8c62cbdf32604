package checkers

import (
	"reflect"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic/errs"
	"github.com/ib-77/garlic/pkg/garlic/validators"
)

// CheckFloat reports whether value can be read as a float64 within the
// bounds given in opts. Strings containing '_' are rejected before parsing.
// The only error returned is a configuration error (errs.ErrInvalidBounds);
// every other validation failure yields false.
func CheckFloat(value any, opts ...validators.Option) (bool, error) {
	if hasUnderscore(value) {
		return false, nil
	}
	_, err := validators.Float(value, opts...)
	return verdict(err)
}

// IsFloat is CheckFloat for callers with fixed, known-good options.
// It panics on a configuration error.
func IsFloat(value any, opts ...validators.Option) bool {
	return must(CheckFloat(value, opts...))
}

// CheckInteger reports whether value can be read as an int64 within bounds.
func CheckInteger(value any, opts ...validators.Option) (bool, error) {
	if hasUnderscore(value) {
		return false, nil
	}
	_, err := validators.Integer(value, opts...)
	return verdict(err)
}

func IsInteger(value any, opts ...validators.Option) bool {
	return must(CheckInteger(value, opts...))
}

// CheckString reports whether value passes validators.String with opts.
func CheckString(value any, opts ...validators.Option) (bool, error) {
	_, err := validators.String(value, opts...)
	return verdict(err)
}

func IsString(value any, opts ...validators.Option) bool {
	return must(CheckString(value, opts...))
}

// IsUUID reports whether value is a non-nil UUID or a string form of one.
func IsUUID(value any) bool {
	_, err := validators.UUID(value)
	return err == nil
}

// IsEmail reports whether value is a bare email address; see validators.Email.
func IsEmail(value any) bool {
	_, err := validators.Email(value)
	return err == nil
}

func hasUnderscore(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.String && strings.Contains(rv.String(), "_")
}

func verdict(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errs.IsConfiguration(err) {
		return false, err
	}
	return false, nil
}

func must(ok bool, err error) bool {
	if err != nil {
		panic(err)
	}
	return ok
}
