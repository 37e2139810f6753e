package hostfuncs

import (
	"context"
	"testing"

	"github.com/reglet-dev/scriptbox/domain/entities"
	sberrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Fluent(t *testing.T) {
	reg := NewRegistry()
	reg.Set("n").ToValue(42).
		Set("greet").ToFunc2(func(a, b any) any { return a.(string) + b.(string) }).
		Set("flag").ToVoid0(func() {})

	require.NoError(t, reg.Err())
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"n", "greet", "flag"}, reg.Names())

	n, ok := reg.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, entities.KindScalar, n.Kind)
	assert.Equal(t, 42, n.Value)

	greet, ok := reg.Lookup("greet")
	require.True(t, ok)
	assert.Equal(t, entities.KindFunc2, greet.Kind)

	flag, _ := reg.Lookup("flag")
	assert.Equal(t, entities.KindVoid0, flag.Kind)
}

func TestRegistry_AllSetters(t *testing.T) {
	reg := NewRegistry().
		Set("v0").ToVoid0(func() {}).
		Set("v1").ToVoid1(func(any) {}).
		Set("v2").ToVoid2(func(_, _ any) {}).
		Set("v3").ToVoid3(func(_, _, _ any) {}).
		Set("v4").ToVoid4(func(_, _, _, _ any) {}).
		Set("f0").ToFunc0(func() any { return nil }).
		Set("f1").ToFunc1(func(any) any { return nil }).
		Set("f2").ToFunc2(func(_, _ any) any { return nil }).
		Set("f3").ToFunc3(func(_, _, _ any) any { return nil }).
		Set("f4").ToFunc4(func(_, _, _, _ any) any { return nil })

	want := []entities.Kind{
		entities.KindVoid0, entities.KindVoid1, entities.KindVoid2, entities.KindVoid3, entities.KindVoid4,
		entities.KindFunc0, entities.KindFunc1, entities.KindFunc2, entities.KindFunc3, entities.KindFunc4,
	}
	bindings := reg.Bindings()
	require.Len(t, bindings, len(want))
	for i, b := range bindings {
		assert.Equal(t, want[i], b.Kind, b.Name)
	}

	entries, err := reg.Entries()
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotNil(t, e.Invoke, e.Binding.Name)
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Set("a").ToValue(1).
		Set("b").ToValue(2).
		Set("a").ToValue(3)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	a, _ := reg.Lookup("a")
	assert.Equal(t, 3, a.Value)
}

func TestRegistry_ToValueKeepsCallableKind(t *testing.T) {
	reg := NewRegistry()
	reg.Set("f").ToValue(entities.Func1(func(a any) any { return a }))

	b, _ := reg.Lookup("f")
	assert.Equal(t, entities.KindFunc1, b.Kind)
}

func TestRegistry_InvalidIdentifierIsSticky(t *testing.T) {
	reg := NewRegistry()
	reg.Set("ok").ToValue(1).
		Set("1bad").ToValue(2).
		Set("later").ToValue(3)

	err := reg.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, sberrors.ErrInvalidIdentifier)

	var idErr *sberrors.InvalidIdentifierError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, "1bad", idErr.Name)

	assert.Equal(t, []string{"ok"}, reg.Names())
	assert.False(t, reg.Has("later"))

	_, err = reg.Entries()
	assert.ErrorIs(t, err, sberrors.ErrInvalidIdentifier)
}

func TestRegistry_Put(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Put("x", entities.KindScalar, "v"))

	err := reg.Put("has space", entities.KindScalar, "v")
	assert.ErrorIs(t, err, sberrors.ErrInvalidIdentifier)
}

func TestRegistry_Invoker(t *testing.T) {
	reg := NewRegistry()
	reg.Set("greet").ToFunc2(func(a, b any) any { return a.(string) + b.(string) }).
		Set("n").ToValue(42)

	inv, err := reg.Invoker("greet")
	require.NoError(t, err)
	result, err := inv(context.Background(), []any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "xy", result)

	_, err = reg.Invoker("missing")
	assert.Error(t, err)

	_, err = reg.Invoker("n")
	assert.Error(t, err)
}

func TestRegistry_InvokerRecoversPanic(t *testing.T) {
	reg := NewRegistry(WithMiddleware(PanicRecoveryMiddleware()))
	reg.Set("boom").ToVoid0(func() { panic("kaboom") })

	inv, err := reg.Invoker("boom")
	require.NoError(t, err)

	_, err = inv(context.Background(), nil)
	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "boom", panicErr.Function)
}

func TestRegistry_Entries(t *testing.T) {
	reg := NewRegistry()
	reg.Set("n").ToValue(42).
		Set("flag").ToVoid0(func() {})

	entries, err := reg.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "n", entries[0].Binding.Name)
	assert.Nil(t, entries[0].Invoke)
	assert.Equal(t, "flag", entries[1].Binding.Name)
	assert.NotNil(t, entries[1].Invoke)
}

func TestRegistry_EntriesRejectsNilFunction(t *testing.T) {
	reg := NewRegistry()
	reg.Set("f").ToVoid0(nil)

	_, err := reg.Entries()
	assert.ErrorIs(t, err, ErrNilFunction)
}

func TestRegistry_WithBundle(t *testing.T) {
	reg := NewRegistry(WithBundle(Compose(ConsoleBundle(nil), EnvBundle(nil))))
	assert.Equal(t, []string{"print", "printf", "env"}, reg.Names())
}
