// Package testutil provides common test utilities, assertions and mocks for
// scriptbox tests.
package testutil

import (
	"testing"

	sberrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertNumber asserts that actual is a number equal to expected, whatever
// numeric type the script runtime exported it as.
func AssertNumber(t *testing.T, expected float64, actual any, msgAndArgs ...any) {
	t.Helper()

	var got float64
	switch v := actual.(type) {
	case int:
		got = float64(v)
	case int64:
		got = float64(v)
	case float64:
		got = v
	default:
		assert.Failf(t, "not a number", "got %T (%v)", actual, actual)
		return
	}
	assert.Equal(t, expected, got, msgAndArgs...)
}

// AssertErrorType asserts that err converts to an ErrorDetail of errType.
func AssertErrorType(t *testing.T, err error, errType string, msgAndArgs ...any) {
	t.Helper()

	require.Error(t, err, msgAndArgs...)
	detail := sberrors.ToErrorDetail(err)
	require.NotNil(t, detail)
	assert.Equal(t, errType, detail.Type, msgAndArgs...)
}
