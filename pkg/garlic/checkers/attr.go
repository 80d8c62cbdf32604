package checkers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic"
	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const opAttr = "IsAttrEmpty"

// IsAttrEmpty reports whether the field, key or getter called name on obj is
// empty as defined by IsEmpty. A missing key or an unresolvable field counts
// as empty. An empty obj (maps excepted) or a blank name is rejected with an
// error wrapping errs.ErrInvalidArgument, which is also logged.
func IsAttrEmpty(obj any, name string) (bool, error) {
	r := InspectAttr(obj, name)
	if r.IsInvalid() {
		return false, r.Err()
	}
	return r.IsEmpty(), nil
}

// InspectAttr resolves name on obj and returns the value with its verdict.
//
// Maps, and pointers to maps, are looked up by key; the key type must be a string kind or an
// interface. For anything else pointers are followed and name is matched
// against struct fields, then json tag names, then zero-argument methods
// returning a single value.
func InspectAttr(obj any, name string) garlic.Result[any] {
	rv := reflect.ValueOf(obj)
	mv, ok := garlic.Indirect(obj)
	isMap := ok && mv.Kind() == reflect.Map

	if !isMap && IsEmpty(obj) {
		return reject(obj, name, fmt.Errorf("%w: obj is empty", errs.ErrInvalidArgument))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return reject(obj, name, fmt.Errorf("%w: attribute name is empty", errs.ErrInvalidArgument))
	}

	if isMap {
		return inspectKey(mv, name)
	}

	v, ok := lookup(rv, name)
	if !ok {
		return garlic.Empty[any]()
	}
	return classify(v)
}

func reject(obj any, name string, err error) garlic.Result[any] {
	verr := errs.New(opAttr, obj, err)
	logger().Error("attribute check rejected", "op", opAttr, "attr", name, "error", verr)
	return garlic.Invalid[any](verr)
}

func classify(v any) garlic.Result[any] {
	if IsEmpty(v) {
		return garlic.EmptyWith(v)
	}
	return garlic.Present(v)
}

func inspectKey(m reflect.Value, name string) garlic.Result[any] {
	if m.Len() == 0 {
		return garlic.Empty[any]()
	}

	var key reflect.Value
	kt := m.Type().Key()
	switch {
	case kt.Kind() == reflect.String:
		key = reflect.ValueOf(name).Convert(kt)
	case kt.Kind() == reflect.Interface && reflect.TypeOf(name).Implements(kt):
		key = reflect.ValueOf(name)
	default:
		return garlic.Empty[any]()
	}

	v := m.MapIndex(key)
	if !v.IsValid() {
		return garlic.Empty[any]()
	}
	return classify(v.Interface())
}

func lookup(rv reflect.Value, name string) (any, bool) {
	sv, ok := garlic.Indirect(rv.Interface())
	if !ok {
		return nil, false
	}

	if sv.Kind() == reflect.Struct {
		if v, ok := field(sv, name); ok {
			return v, true
		}
	}
	return getter(rv, name)
}

func field(sv reflect.Value, name string) (any, bool) {
	st := sv.Type()
	if sf, ok := st.FieldByName(name); ok {
		if v, ok := fieldValue(sv, sf.Index); ok {
			return v, true
		}
	}

	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag != "" && tag != "-" && tag == name {
			if v, ok := fieldValue(sv, sf.Index); ok {
				return v, true
			}
		}
	}
	return nil, false
}

func fieldValue(sv reflect.Value, index []int) (any, bool) {
	fv, err := sv.FieldByIndexErr(index)
	if err != nil || !fv.CanInterface() {
		return nil, false
	}
	return fv.Interface(), true
}

func getter(rv reflect.Value, name string) (any, bool) {
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}
	if mt := m.Type(); mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}
