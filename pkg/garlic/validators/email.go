package validators

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/net/idna"

	"github.com/ib-77/garlic/pkg/garlic/errs"
)

const (
	opEmail = "Email"

	maxLocalPart = 64
	maxAddress   = 254
)

// Email checks that value is a bare address such as "user@example.com".
// Display names ("Name <user@example.com>") are rejected, and the domain must
// be a dotted host name valid under IDNA lookup rules.
func Email(value any, opts ...Option) (string, error) {
	o := resolve(opts)

	if isBlank(value) {
		if o.AllowEmpty {
			return "", nil
		}
		return "", errs.New(opEmail, value, errs.ErrEmptyValue)
	}

	s, err := toString(value, false)
	if err != nil {
		return "", errs.New(opEmail, value, errs.ErrCannotCoerce)
	}
	s = strings.TrimSpace(s)

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", errs.New(opEmail, value, fmt.Errorf("%w: %v", errs.ErrInvalidEmail, err))
	}
	if addr.Name != "" || addr.Address != s || len(s) > maxAddress {
		return "", errs.New(opEmail, value, errs.ErrInvalidEmail)
	}

	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	if len(local) > maxLocalPart || !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", errs.New(opEmail, value, errs.ErrInvalidEmail)
	}
	if _, err := idna.Lookup.ToASCII(domain); err != nil {
		return "", errs.New(opEmail, value, fmt.Errorf("%w: %v", errs.ErrInvalidEmail, err))
	}
	return s, nil
}
