package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opFloat = "Float"

// Float coerces value to a float64 and checks it against WithMinimum and
// WithMaximum. Empty input (nil, blank string) fails with errs.ErrEmptyValue
// unless WithAllowEmpty is set, in which case 0 is returned.
func Float(value any, opts ...Option) (float64, error) {
	o := resolve(opts)
	if err := o.validate(opFloat); err != nil {
		return 0, err
	}

	if isBlank(value) {
		if o.AllowEmpty {
			return 0, nil
		}
		return 0, errs.New(opFloat, value, errs.ErrEmptyValue)
	}

	return start[float64](toFloat(opFloat, value)).
		then(o.minimum(opFloat)).
		then(o.maximum(opFloat)).
		result()
}

func toFloat(op string, value any) (float64, error) {
	if n, ok := value.(json.Number); ok {
		return parseFloat(op, value, n.String())
	}

	rv, ok := garlic.Indirect(value)
	if !ok {
		return 0, errs.New(op, value, errs.ErrEmptyValue)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return 0, errs.New(op, value, errs.ErrCannotCoerce)
	case reflect.String:
		return parseFloat(op, value, rv.String())
	}

	if f, ok := garlic.Number(rv); ok {
		return f, nil
	}
	return 0, errs.New(op, value, errs.ErrCannotCoerce)
}

func parseFloat(op string, value any, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.New(op, value, errs.ErrEmptyValue)
	}
	if strings.Contains(s, "_") || hasHexPrefix(s) {
		return 0, errs.New(op, value, errs.ErrCannotCoerce)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range literals resolve to ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, errs.New(op, value, fmt.Errorf("%w: %v", errs.ErrCannotCoerce, err))
	}
	return f, nil
}
