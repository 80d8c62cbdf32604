package validators

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opInteger = "Integer"

// Integer coerces value to an int64. Floats and numeric strings with a
// fractional part fail with errs.ErrNotAnInteger unless WithCoerce is set,
// which truncates toward zero. Bounds and empty handling follow Float.
func Integer(value any, opts ...Option) (int64, error) {
	o := resolve(opts)
	if err := o.validate(opInteger); err != nil {
		return 0, err
	}

	if isBlank(value) {
		if o.AllowEmpty {
			return 0, nil
		}
		return 0, errs.New(opInteger, value, errs.ErrEmptyValue)
	}

	n, err := toInteger(value, o.Coerce)
	if err != nil {
		return 0, err
	}

	if _, err := start(float64(n), nil).
		then(o.minimum(opInteger)).
		then(o.maximum(opInteger)).
		result(); err != nil {
		return 0, err
	}
	return n, nil
}

func toInteger(value any, coerce bool) (int64, error) {
	if n, ok := value.(json.Number); ok {
		return parseInteger(value, n.String(), coerce)
	}

	rv, ok := garlic.Indirect(value)
	if !ok {
		return 0, errs.New(opInteger, value, errs.ErrEmptyValue)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, errs.New(opInteger, value, errs.ErrCannotCoerce)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return fromFloat(value, rv.Float(), coerce)
	case reflect.String:
		return parseInteger(value, rv.String(), coerce)
	}
	return 0, errs.New(opInteger, value, errs.ErrCannotCoerce)
}

func parseInteger(value any, s string, coerce bool) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "_") {
		return 0, errs.New(opInteger, value, errs.ErrCannotCoerce)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := parseFloat(opInteger, value, s)
	if err != nil {
		return 0, err
	}
	return fromFloat(value, f, coerce)
}

func fromFloat(value any, f float64, coerce bool) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errs.New(opInteger, value, errs.ErrCannotCoerce)
	}
	if f != math.Trunc(f) && !coerce {
		return 0, errs.New(opInteger, value, errs.ErrNotAnInteger)
	}
	return int64(f), nil
}
