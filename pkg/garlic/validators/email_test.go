package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/garlic/pkg/garlic/errs"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []string{
		"test@domain.dev",
		"first.last+tag@sub.example.com",
		"a@b.co",
	}

	for _, in := range tests {
		got, err := Email(in)
		require.NoError(t, err, "value %q", in)
		assert.Equal(t, in, got)
	}

	got, err := Email("  test@domain.dev ")
	require.NoError(t, err)
	assert.Equal(t, "test@domain.dev", got)
}

func TestEmail_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  error
	}{
		{"nil", nil, errs.ErrEmptyValue},
		{"empty", "", errs.ErrEmptyValue},
		{"no at sign", "this-is-an-invalid-email", errs.ErrInvalidEmail},
		{"display name", "John <john@example.com>", errs.ErrInvalidEmail},
		{"no dot in domain", "user@localhost", errs.ErrInvalidEmail},
		{"trailing dot", "user@example.com.", errs.ErrInvalidEmail},
		{"double at", "a@b@example.com", errs.ErrInvalidEmail},
		{"long local part", strings.Repeat("a", 65) + "@example.com", errs.ErrInvalidEmail},
		{"not a string", 42, errs.ErrCannotCoerce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Email(tt.value)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEmail_AllowEmpty(t *testing.T) {
	t.Parallel()

	got, err := Email(nil, WithAllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = Email("", WithAllowEmpty())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
