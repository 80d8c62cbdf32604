package validators

import (
	"math"

	"github.com/ib-77/garlic/pkg/garlic/errs"
)

// Options collects the settings shared by every validator. A validator
// ignores the fields that do not apply to it.
type Options struct {
	Minimum    *float64
	Maximum    *float64
	MinLength  *int
	MaxLength  *int
	AllowEmpty bool
	Coerce     bool
	Trim       bool
	Normalize  bool
}

type Option func(*Options)

// WithMinimum rejects numbers below v.
func WithMinimum(v float64) Option {
	return func(o *Options) { o.Minimum = &v }
}

// WithMaximum rejects numbers above v.
func WithMaximum(v float64) Option {
	return func(o *Options) { o.Maximum = &v }
}

// WithMinLength rejects strings with fewer than n runes.
func WithMinLength(n int) Option {
	return func(o *Options) { o.MinLength = &n }
}

// WithMaxLength rejects strings with more than n runes.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = &n }
}

// WithAllowEmpty returns the zero value instead of ErrEmptyValue for empty input.
func WithAllowEmpty() Option {
	return func(o *Options) { o.AllowEmpty = true }
}

// WithCoerce lets a validator convert values it would otherwise reject:
// Integer truncates fractions, String formats non-strings, Bool accepts the
// truthy/falsy vocabulary.
func WithCoerce() Option {
	return func(o *Options) { o.Coerce = true }
}

// WithTrim strips leading and trailing whitespace from strings.
func WithTrim() Option {
	return func(o *Options) { o.Trim = true }
}

// WithNormalize applies Unicode NFC normalization to strings.
func WithNormalize() Option {
	return func(o *Options) { o.Normalize = true }
}

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) validate(op string) error {
	if o.Minimum != nil && math.IsNaN(*o.Minimum) {
		return errs.New(op, *o.Minimum, errs.ErrInvalidBounds)
	}
	if o.Maximum != nil && math.IsNaN(*o.Maximum) {
		return errs.New(op, *o.Maximum, errs.ErrInvalidBounds)
	}
	if o.Minimum != nil && o.Maximum != nil && *o.Minimum > *o.Maximum {
		return errs.New(op, [2]float64{*o.Minimum, *o.Maximum}, errs.ErrInvalidBounds)
	}
	if o.MinLength != nil && *o.MinLength < 0 {
		return errs.New(op, *o.MinLength, errs.ErrInvalidBounds)
	}
	if o.MaxLength != nil && *o.MaxLength < 0 {
		return errs.New(op, *o.MaxLength, errs.ErrInvalidBounds)
	}
	if o.MinLength != nil && o.MaxLength != nil && *o.MinLength > *o.MaxLength {
		return errs.New(op, [2]int{*o.MinLength, *o.MaxLength}, errs.ErrInvalidBounds)
	}
	return nil
}

func (o Options) minimum(op string) func(float64) (float64, error) {
	return func(f float64) (float64, error) {
		if o.Minimum != nil && f < *o.Minimum {
			return f, errs.New(op, f, errs.ErrMinimumValue)
		}
		return f, nil
	}
}

func (o Options) maximum(op string) func(float64) (float64, error) {
	return func(f float64) (float64, error) {
		if o.Maximum != nil && f > *o.Maximum {
			return f, errs.New(op, f, errs.ErrMaximumValue)
		}
		return f, nil
	}
}
