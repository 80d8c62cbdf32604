package validators

import (
	"reflect"
	"strings"

	"github.com/ib-77/garlic/pkg/garlic"
)

// isBlank reports nil values and strings that are empty after trimming.
func isBlank(value any) bool {
	if garlic.IsNil(value) {
		return true
	}
	rv, ok := garlic.Indirect(value)
	if !ok {
		return true
	}
	return rv.Kind() == reflect.String && strings.TrimSpace(rv.String()) == ""
}

// hasHexPrefix reports literals such as "0x1p-2" that strconv accepts but a
// decimal parser would not.
func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
