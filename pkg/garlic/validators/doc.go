// Package validators contains strict validators: each coerces its input to a
// concrete type or returns an *errs.ValidationError wrapping one of the errs
// sentinels.
//
// Highlights:
// - Float/Integer: numeric coercion with WithMinimum/WithMaximum bounds
// - String: trimming, NFC normalization and rune length limits
// - Bool: native booleans, plus the truthy/falsy vocabulary WithCoerce
// - Email: bare addresses via net/mail, IDNA-checked domains (golang.org/x/net/idna)
// - UUID: RFC 4122 identifiers via github.com/google/uuid
//
// Options a validator does not use are ignored. Misconfigured bounds fail with
// errs.ErrInvalidBounds before the value is looked at.
package validators
