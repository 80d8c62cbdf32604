package checkers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/garlic/pkg/garlic/errs"
	"github.com/ib-77/garlic/pkg/garlic/validators"
)

type grouped string

func TestIsFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		want  bool
	}{
		{0, true},
		{1.0, true},
		{1.123, true},
		{-2.12, true},
		{+123.0001, true},
		{1e+123, true},
		{"123", true},
		{"123.123", true},
		{"0123.000", true},
		{"1e+12", true},
		{nil, false},
		{"", false},
		{" ", false},
		{[]int{}, false},
		{[]float64{1, 2.3}, false},
		{"123_123", false},
		{"123_456", false},
		{grouped("2002_12"), false},
		{"123asd", false},
		{"123+asd", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsFloat(tt.value), "value %#v", tt.value)
	}
}

func TestIsFloat_Bounds(t *testing.T) {
	t.Parallel()
	assert.True(t, IsFloat("5.5", validators.WithMinimum(5), validators.WithMaximum(6)))
	assert.False(t, IsFloat("4.5", validators.WithMinimum(5)))
	assert.False(t, IsFloat(7, validators.WithMaximum(6)))
}

func TestCheckFloat_ConfigurationErrorPropagates(t *testing.T) {
	t.Parallel()

	ok, err := CheckFloat(1, validators.WithMinimum(2), validators.WithMaximum(1))
	assert.False(t, ok)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidBounds)

	ok, err = CheckFloat("abc")
	assert.False(t, ok)
	assert.NoError(t, err)

	assert.Panics(t, func() {
		IsFloat(1, validators.WithMinimum(2), validators.WithMaximum(1))
	})
}

func TestIsInteger(t *testing.T) {
	t.Parallel()
	assert.True(t, IsInteger(3))
	assert.True(t, IsInteger("42"))
	assert.True(t, IsInteger(2.0))
	assert.False(t, IsInteger(2.5))
	assert.True(t, IsInteger(2.5, validators.WithCoerce()))
	assert.False(t, IsInteger("1_000"))
	assert.False(t, IsInteger(10, validators.WithMaximum(9)))

	_, err := CheckInteger(1, validators.WithMinimum(3), validators.WithMaximum(2))
	assert.ErrorIs(t, err, errs.ErrInvalidBounds)
}

func TestIsString(t *testing.T) {
	t.Parallel()
	assert.True(t, IsString("x"))
	assert.False(t, IsString(""))
	assert.False(t, IsString(" ", validators.WithTrim()))
	assert.False(t, IsString(5))
	assert.True(t, IsString(5, validators.WithCoerce()))
	assert.False(t, IsString("abc", validators.WithMaxLength(2)))

	_, err := CheckString("abc", validators.WithMinLength(3), validators.WithMaxLength(1))
	assert.ErrorIs(t, err, errs.ErrInvalidBounds)
}

func TestIsFloat_BoolIsNotANumber(t *testing.T) {
	t.Parallel()
	assert.False(t, IsFloat(true))
	assert.False(t, IsFloat(false))
	assert.False(t, IsInteger(true))
}

func TestIsEmail(t *testing.T) {
	t.Parallel()
	assert.True(t, IsEmail("test@domain.dev"))
	assert.False(t, IsEmail("this-is-an-invalid-email"))
	assert.False(t, IsEmail(nil))
	assert.False(t, IsEmail(""))
}

func TestIsUUID(t *testing.T) {
	t.Parallel()
	assert.True(t, IsUUID(uuid.New()))
	assert.True(t, IsUUID(uuid.NewString()))
	assert.False(t, IsUUID(uuid.Nil))
	assert.False(t, IsUUID("123e4567"))
	assert.False(t, IsUUID(nil))
}
