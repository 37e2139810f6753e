package hostfuncs

import (
	"context"
	"testing"
	"time"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHostContext(t *testing.T) {
	hc := NewHostContext(context.Background(), "greet", entities.KindFunc2)

	require.NotNil(t, hc)
	assert.Equal(t, "greet", hc.FunctionName())
	assert.Equal(t, entities.KindFunc2, hc.Kind())
}

func TestHostContext_SetGetValue(t *testing.T) {
	hc := NewHostContext(context.Background(), "greet", entities.KindFunc2)

	_, ok := hc.GetValue("key1")
	assert.False(t, ok)

	hc.SetValue("key1", "value1")
	hc.SetValue("key2", 42)

	val, ok := hc.GetValue("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", val)

	val, ok = hc.GetValue("key2")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	hc.SetValue("key1", "updated")
	val, _ = hc.GetValue("key1")
	assert.Equal(t, "updated", val)
}

func TestHostContext_InheritsParent(t *testing.T) {
	type ctxKey struct{}
	parent, cancel := context.WithTimeout(context.WithValue(context.Background(), ctxKey{}, "parent"), time.Minute)
	defer cancel()

	hc := NewHostContext(parent, "flag", entities.KindVoid0)

	assert.Equal(t, "parent", hc.Value(ctxKey{}))
	_, hasDeadline := hc.Deadline()
	assert.True(t, hasDeadline)

	cancel()
	<-hc.Done()
	assert.ErrorIs(t, hc.Err(), context.Canceled)
}

func TestHostContextFrom(t *testing.T) {
	t.Run("wraps plain context", func(t *testing.T) {
		hc := HostContextFrom(context.Background(), "greet", entities.KindFunc2)
		assert.Equal(t, "greet", hc.FunctionName())
	})

	t.Run("reuses matching host context", func(t *testing.T) {
		original := NewHostContext(context.Background(), "greet", entities.KindFunc2)
		original.SetValue("k", "v")

		hc := HostContextFrom(original, "greet", entities.KindFunc2)
		v, ok := hc.GetValue("k")
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("nested call gets its own context", func(t *testing.T) {
		outer := NewHostContext(context.Background(), "outer", entities.KindVoid0)
		outer.SetValue("k", "v")

		inner := HostContextFrom(outer, "inner", entities.KindFunc1)
		assert.Equal(t, "inner", inner.FunctionName())
		_, ok := inner.GetValue("k")
		assert.False(t, ok)
	})
}
