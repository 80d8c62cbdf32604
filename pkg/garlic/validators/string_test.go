package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/garlic/pkg/garlic/errs"
)

type label string

func TestString(t *testing.T) {
	t.Parallel()

	got, err := String("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = String(label("named"))
	require.NoError(t, err)
	assert.Equal(t, "named", got)

	got, err = String("  padded  ", WithTrim())
	require.NoError(t, err)
	assert.Equal(t, "padded", got)

	got, err = String("  padded  ")
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got)
}

func TestString_Empty(t *testing.T) {
	t.Parallel()

	_, err := String(nil)
	assert.ErrorIs(t, err, errs.ErrEmptyValue)

	_, err = String("")
	assert.ErrorIs(t, err, errs.ErrEmptyValue)

	_, err = String("   ", WithTrim())
	assert.ErrorIs(t, err, errs.ErrEmptyValue)

	got, err := String("   ", WithTrim(), WithAllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = String(nil, WithAllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestString_Coerce(t *testing.T) {
	t.Parallel()

	_, err := String(12)
	assert.ErrorIs(t, err, errs.ErrCannotCoerce)

	got, err := String(12, WithCoerce())
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	got, err = String([]byte("raw"), WithCoerce())
	require.NoError(t, err)
	assert.Equal(t, "raw", got)
}

func TestString_NormalizeAndLength(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent composes to a single rune
	decomposed := "e\u0301"

	got, err := String(decomposed, WithNormalize())
	require.NoError(t, err)
	assert.Equal(t, "\u00e9", got)

	_, err = String(decomposed, WithMaxLength(1))
	assert.ErrorIs(t, err, errs.ErrMaximumLength)

	_, err = String(decomposed, WithNormalize(), WithMaxLength(1))
	assert.NoError(t, err)

	_, err = String("ab", WithMinLength(3))
	assert.ErrorIs(t, err, errs.ErrMinimumLength)

	_, err = String("ab", WithMinLength(3), WithMaxLength(2))
	assert.ErrorIs(t, err, errs.ErrInvalidBounds)
}
