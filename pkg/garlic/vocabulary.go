package garlic

import "reflect"

var (
	truthyStrings = newStringSet("1", "1.0", "TRUE", "True", "true", "YES", "Yes", "yes", "Y", "y")
	falsyStrings  = newStringSet("0", "0.0", "FALSE", "False", "false", "NO", "No", "no", "N", "n")
)

type stringSet map[string]struct{}

func newStringSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// TruthyStrings returns a copy of the string representations of true.
func TruthyStrings() []string {
	return truthyStrings.list()
}

// FalsyStrings returns a copy of the string representations of false.
func FalsyStrings() []string {
	return falsyStrings.list()
}

func (s stringSet) list() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// InTruthy reports whether v is one of the fixed representations of true:
// the bool true, a number equal to 1, or one of TruthyStrings (case-sensitive).
func InTruthy(v any) bool {
	return inVocabulary(v, true, 1, truthyStrings)
}

// InFalsy reports whether v is one of the fixed representations of false:
// the bool false, a number equal to 0, or one of FalsyStrings (case-sensitive).
func InFalsy(v any) bool {
	return inVocabulary(v, false, 0, falsyStrings)
}

func inVocabulary(v any, b bool, n float64, strs stringSet) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool() == b
	case reflect.String:
		return strs.has(rv.String())
	}

	if f, ok := Number(rv); ok {
		return f == n
	}
	return false
}

// Number converts integer and float kinds to float64.
func Number(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
