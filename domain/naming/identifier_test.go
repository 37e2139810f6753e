package naming

import (
	"errors"
	"testing"

	domainerrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdentifier_Valid(t *testing.T) {
	names := []string{
		"a",
		"greet",
		"_private",
		"$dollar",
		"camelCase42",
		"snake_case_name",
		"class_",
		"ünïcödé",
		"日本語",
		"x\u0301", // combining acute accent as continuation
		"€uro",
		"n",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			got, err := ValidateIdentifier(name)
			require.NoError(t, err)
			assert.Equal(t, name, got)
			assert.True(t, IsValidIdentifier(name))
		})
	}
}

func TestValidateIdentifier_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"empty", "", "empty"},
		{"leading digit", "1abc", "must not start"},
		{"only digits", "42", "must not start"},
		{"inner space", "a b", "must not contain"},
		{"leading space", " a", "must not start"},
		{"trailing newline", "abc\n", "must not contain"},
		{"tab", "a\tb", "must not contain"},
		{"hyphen", "my-name", "must not contain"},
		{"dot", "a.b", "must not contain"},
		{"quote", "a'b", "must not contain"},
		{"bracket", "a]", "must not contain"},
		{"invalid utf8", "a\xffb", "invalid UTF-8"},
		{"combining mark start", "\u0301x", "must not start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateIdentifier(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
			assert.False(t, IsValidIdentifier(tt.input))

			var idErr *domainerrors.InvalidIdentifierError
			require.True(t, errors.As(err, &idErr))
			assert.Equal(t, tt.input, idErr.Name)
			assert.Contains(t, idErr.Reason, tt.reason)
		})
	}
}

func TestValidateIdentifier_DigitPrefixProperty(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		for _, rest := range []string{"", "a", "_x", "9"} {
			name := string(d) + rest
			assert.False(t, IsValidIdentifier(name), name)
		}
	}
}

func TestValidateIdentifier_WhitespaceProperty(t *testing.T) {
	for _, ws := range []string{" ", "\t", "\n", "\r", "\u00a0", "\u2003"} {
		for _, name := range []string{ws + "a", "a" + ws, "a" + ws + "b"} {
			assert.False(t, IsValidIdentifier(name), "%q", name)
		}
	}
}
