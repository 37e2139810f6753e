package typed

import (
	"math"
	"testing"

	sberrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Numbers(t *testing.T) {
	t.Run("int from int64", func(t *testing.T) {
		n, err := Convert[int](int64(42))
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("int from integral float", func(t *testing.T) {
		n, err := Convert[int](float64(42))
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("int from fractional float fails", func(t *testing.T) {
		_, err := Convert[int](1.5)
		var tm *TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, "int", tm.Expected)
		assert.Equal(t, "float64", tm.Actual)
	})

	t.Run("int64 from huge float fails", func(t *testing.T) {
		_, err := Convert[int64](math.MaxFloat64)
		assert.Error(t, err)
	})

	t.Run("float from int64", func(t *testing.T) {
		f, err := Convert[float64](int64(3))
		require.NoError(t, err)
		assert.Equal(t, 3.0, f)
	})
}

func TestConvert_Identity(t *testing.T) {
	s, err := Convert[string]("xy")
	require.NoError(t, err)
	assert.Equal(t, "xy", s)

	b, err := Convert[bool](true)
	require.NoError(t, err)
	assert.True(t, b)

	m, err := Convert[map[string]any](map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "v", m["k"])

	a, err := Convert[any](int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
}

func TestConvert_Nil(t *testing.T) {
	m, err := Convert[map[string]any](nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	a, err := Convert[any](nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	_, err = Convert[string](nil)
	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "nil", tm.Actual)
}

func TestConvert_StringSlice(t *testing.T) {
	s, err := Convert[[]string]([]any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s)

	_, err = Convert[[]string]([]any{"a", 1})
	assert.Error(t, err)
}

func TestConvert_NoCrossKindCoercion(t *testing.T) {
	_, err := Convert[string](int64(1))
	assert.Error(t, err)

	_, err = Convert[bool]("true")
	assert.Error(t, err)
}

func TestTypeMismatchError(t *testing.T) {
	err := &TypeMismatchError{Value: "x", Expected: "int", Actual: "string", Source: "label"}
	assert.Equal(t, "label: expected int, got string (x)", err.Error())

	detail := sberrors.ToErrorDetail(err)
	assert.Equal(t, "type", detail.Type)
	assert.Equal(t, "int", detail.Code)
	assert.Equal(t, "string", detail.Details["actual"])
}
