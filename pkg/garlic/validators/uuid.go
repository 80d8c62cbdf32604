package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opUUID = "UUID"

// UUID accepts uuid.UUID, [16]byte, 16-byte slices and the string forms
// understood by uuid.Parse. uuid.Nil counts as empty.
func UUID(value any, opts ...Option) (uuid.UUID, error) {
	o := resolve(opts)

	if isBlank(value) {
		return emptyUUID(value, o)
	}

	id, err := toUUID(value)
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return emptyUUID(value, o)
	}
	return id, nil
}

func emptyUUID(value any, o Options) (uuid.UUID, error) {
	if o.AllowEmpty {
		return uuid.Nil, nil
	}
	return uuid.Nil, errs.New(opUUID, value, errs.ErrEmptyValue)
}

func toUUID(value any) (uuid.UUID, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return uuid.Nil, errs.New(opUUID, value, fmt.Errorf("%w: %v", errs.ErrCannotCoerce, err))
		}
		return id, nil
	}

	rv, ok := garlic.Indirect(value)
	if !ok || rv.Kind() != reflect.String {
		return uuid.Nil, errs.New(opUUID, value, errs.ErrCannotCoerce)
	}

	id, err := uuid.Parse(strings.TrimSpace(rv.String()))
	if err != nil {
		return uuid.Nil, errs.New(opUUID, value, fmt.Errorf("%w: %v", errs.ErrCannotCoerce, err))
	}
	return id, nil
}
