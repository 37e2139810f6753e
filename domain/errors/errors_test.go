package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidIdentifierError(t *testing.T) {
	err := &InvalidIdentifierError{Name: "1abc", Reason: "must not start with '1'"}

	assert.Equal(t, "'1abc' is not a valid identifier: must not start with '1'", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))
	assert.False(t, errors.Is(err, ErrReservedIdentifier))

	wrapped := fmt.Errorf("set: %w", err)
	var idErr *InvalidIdentifierError
	require.True(t, errors.As(wrapped, &idErr))
	assert.Equal(t, "1abc", idErr.Name)
}

func TestInvalidIdentifierError_NoReason(t *testing.T) {
	err := &InvalidIdentifierError{Name: ""}
	assert.Equal(t, "'' is not a valid identifier", err.Error())
}

func TestReservedIdentifierError(t *testing.T) {
	err := &ReservedIdentifierError{Name: "var", Runtime: "javascript"}

	assert.Equal(t, "'var' is a reserved keyword in javascript", err.Error())
	assert.True(t, errors.Is(err, ErrReservedIdentifier))

	detail := err.ToErrorDetail()
	assert.Equal(t, "reserved", detail.Type)
	assert.Equal(t, "var", detail.Code)
}

func TestMangleCollisionError(t *testing.T) {
	t.Run("conflicts with binding", func(t *testing.T) {
		err := &MangleCollisionError{Original: "class", Mangled: "class_", ConflictsWith: "class_"}
		assert.Equal(t, "'class' mangles to 'class_' which is already bound by 'class_'", err.Error())
		assert.True(t, errors.Is(err, ErrMangleCollision))
	})

	t.Run("unusable", func(t *testing.T) {
		err := &MangleCollisionError{Original: "do", Mangled: "do_"}
		assert.Contains(t, err.Error(), "not usable")

		detail := err.ToErrorDetail()
		assert.Equal(t, "collision", detail.Type)
		assert.Equal(t, "do_", detail.Details["mangled"])
	})
}

func TestEngineCreationError(t *testing.T) {
	base := errors.New("runtime unavailable")
	err := &EngineCreationError{Runtime: "lua", Err: base}

	assert.Equal(t, "failed to create lua engine: runtime unavailable", err.Error())
	assert.True(t, errors.Is(err, base))
	assert.True(t, errors.Is(err, ErrEngineCreation))

	detail := err.ToErrorDetail()
	require.NotNil(t, detail.Wrapped)
	assert.Equal(t, "runtime unavailable", detail.Wrapped.Message)
	assert.Equal(t, "engine: failed to create lua engine [lua]: runtime unavailable", detail.Error())
}

func TestScriptExecutionError(t *testing.T) {
	base := errors.New("SyntaxError: unexpected token")
	src := "var a = __scriptbox[\"a\"];\nvar b = __scriptbox[\"b\"];\ndelete __scriptbox;\n"
	err := &ScriptExecutionError{Runtime: "javascript", Source: src, Err: base}

	assert.Equal(t, "javascript evaluation failed: SyntaxError: unexpected token", err.Error())
	assert.True(t, errors.Is(err, base))
	assert.True(t, errors.Is(err, ErrScriptExecution))
	assert.Equal(t, "var a = __scriptbox[\"a\"];\n...", err.Excerpt(1))

	detail := err.ToErrorDetail()
	assert.Equal(t, "script", detail.Type)
	assert.Equal(t, src, detail.Source)
	assert.Equal(t, "javascript", detail.Code)
	require.NotNil(t, detail.Wrapped)
	assert.Equal(t, "internal", detail.Wrapped.Type)
	assert.Equal(t, "script: javascript evaluation failed [javascript]: SyntaxError: unexpected token", detail.Error())
}

func TestScriptExecutionError_NestedCauseDetail(t *testing.T) {
	cause := &EngineCreationError{Runtime: "lua", Err: errors.New("x")}
	err := &ScriptExecutionError{Runtime: "lua", Err: cause}

	detail := err.ToErrorDetail()
	require.NotNil(t, detail.Wrapped)
	assert.Equal(t, "engine", detail.Wrapped.Type)
	require.NotNil(t, detail.Wrapped.Wrapped)
	assert.Equal(t, "x", detail.Wrapped.Wrapped.Message)
}

func TestConfigError(t *testing.T) {
	base := errors.New("must be one of error mangle skip")
	err := &ConfigError{Field: "policy", Err: base}

	assert.Equal(t, "config validation failed for field 'policy': must be one of error mangle skip", err.Error())
	assert.True(t, errors.Is(err, base))

	noField := &ConfigError{Err: base}
	assert.Equal(t, "config validation failed: must be one of error mangle skip", noField.Error())
}

func TestSchemaError(t *testing.T) {
	base := errors.New("additionalProperties 'polcy' not allowed")
	err := &SchemaError{Type: "Config", Err: base}
	assert.Equal(t, "schema error for type Config: additionalProperties 'polcy' not allowed", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestToErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{"invalid identifier", &InvalidIdentifierError{Name: "a b"}, "identifier"},
		{"reserved", &ReservedIdentifierError{Name: "this"}, "reserved"},
		{"engine", &EngineCreationError{Runtime: "lua", Err: errors.New("x")}, "engine"},
		{"wrapped script", fmt.Errorf("bind: %w", &ScriptExecutionError{Runtime: "lua", Err: errors.New("x")}), "script"},
		{"entity passthrough", entities.NewErrorDetail("call", "boom"), "call"},
		{"generic", errors.New("plain"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ToErrorDetail(tt.err)
			require.NotNil(t, detail)
			assert.Equal(t, tt.wantType, detail.Type)
		})
	}

	assert.Nil(t, ToErrorDetail(nil))
}
