package policy_test

import (
	"errors"
	"testing"

	"github.com/reglet-dev/scriptbox/domain/entities"
	domainerrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jsReserved = naming.NewReservedWordSet("var", "class", "this", "do", "do_")

func scalars(names ...string) []entities.Binding {
	out := make([]entities.Binding, 0, len(names))
	for i, n := range names {
		out = append(out, entities.Binding{Name: n, Kind: entities.KindScalar, Value: i})
	}
	return out
}

func scriptNames(res *policy.Resolution) []string {
	out := make([]string, 0, len(res.Bindings))
	for _, b := range res.Bindings {
		out = append(out, b.ScriptName)
	}
	return out
}

type recordingHandler struct {
	mangled []string
	skipped []string
}

func (h *recordingHandler) OnMangle(runtime, original, mangled string) {
	h.mangled = append(h.mangled, runtime+":"+original+"->"+mangled)
}

func (h *recordingHandler) OnSkip(runtime, name string) {
	h.skipped = append(h.skipped, runtime+":"+name)
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    policy.CollisionPolicy
		wantErr bool
	}{
		{"error", policy.Error, false},
		{"MANGLE", policy.Mangle, false},
		{" skip ", policy.Skip, false},
		{"rename", policy.Error, true},
		{"", policy.Error, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := policy.ParseCollisionPolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
	assert.Equal(t, "policy(9)", policy.CollisionPolicy(9).String())
}

func mustParse(t *testing.T, s string) policy.CollisionPolicy {
	t.Helper()
	p, err := policy.ParseCollisionPolicy(s)
	require.NoError(t, err)
	return p
}

func TestResolve_UnreservedPassThrough(t *testing.T) {
	for _, p := range []policy.CollisionPolicy{policy.Error, policy.Mangle, policy.Skip} {
		t.Run(p.String(), func(t *testing.T) {
			res, err := policy.Resolve("js", scalars("greet", "n", "flag"), jsReserved, p)
			require.NoError(t, err)
			assert.Equal(t, []string{"greet", "n", "flag"}, scriptNames(res))
			assert.Empty(t, res.Mangled)
			assert.Empty(t, res.Skipped)
		})
	}
}

func TestResolve_ErrorPolicy(t *testing.T) {
	_, err := policy.Resolve("javascript", scalars("greet", "var", "class"), jsReserved, policy.Error)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReservedIdentifier))

	var resErr *domainerrors.ReservedIdentifierError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "var", resErr.Name, "first reserved name in registry order is reported")
	assert.Equal(t, "javascript", resErr.Runtime)
}

func TestResolve_ManglePolicy(t *testing.T) {
	h := &recordingHandler{}
	r := policy.NewResolver(policy.WithCollisionHandler(h))

	bindings := scalars("greet", "class", "this")
	res, err := r.Resolve("js", bindings, jsReserved, policy.Mangle)
	require.NoError(t, err)

	assert.Equal(t, []string{"greet", "class_", "this_"}, scriptNames(res))
	assert.Equal(t, "class", res.Bindings[1].Binding.Name, "original name is kept on the binding")
	assert.Equal(t, map[string]string{"class": "class_", "this": "this_"}, res.Mangled)
	assert.Equal(t, []string{"js:class->class_", "js:this->this_"}, h.mangled)
	assert.Empty(t, h.skipped)
}

func TestResolve_MangleCollidesWithUnreservedOriginal(t *testing.T) {
	// "class" mangles to "class_", which a later plain binding already owns
	h := &recordingHandler{}
	r := policy.NewResolver(policy.WithCollisionHandler(h))

	_, err := r.Resolve("js", scalars("class", "class_"), jsReserved, policy.Mangle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMangleCollision))

	var mcErr *domainerrors.MangleCollisionError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, "class", mcErr.Original)
	assert.Equal(t, "class_", mcErr.Mangled)
	assert.Equal(t, "class_", mcErr.ConflictsWith)
	assert.Empty(t, h.mangled, "handlers are not notified on failure")
}

func TestResolve_MangleCollidesWithOtherMangled(t *testing.T) {
	upper := naming.ManglerFunc(func(s string) string { return "reserved_" + string(s[0]) })
	r := policy.NewResolver(policy.WithMangler(upper), policy.WithCollisionHandler(&policy.NopCollisionHandler{}))

	reserved := naming.NewReservedWordSet("this", "throw")
	_, err := r.Resolve("js", scalars("this", "throw"), reserved, policy.Mangle)
	require.Error(t, err)

	var mcErr *domainerrors.MangleCollisionError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, "throw", mcErr.Original)
	assert.Equal(t, "reserved_t", mcErr.Mangled)
	assert.Equal(t, "this", mcErr.ConflictsWith)
}

func TestResolve_MangledNameReserved(t *testing.T) {
	// "do_" is itself reserved in jsReserved
	_, err := policy.Resolve("js", scalars("do"), jsReserved, policy.Mangle)
	require.Error(t, err)

	var mcErr *domainerrors.MangleCollisionError
	require.True(t, errors.As(err, &mcErr))
	assert.Equal(t, "do_", mcErr.Mangled)
	assert.Empty(t, mcErr.ConflictsWith)
}

func TestResolve_MangledNameInvalid(t *testing.T) {
	r := policy.NewResolver(
		policy.WithMangler(naming.AffixMangler{Suffix: "-x"}),
		policy.WithCollisionHandler(&policy.NopCollisionHandler{}),
	)
	_, err := r.Resolve("js", scalars("var"), jsReserved, policy.Mangle)
	assert.True(t, errors.Is(err, domainerrors.ErrMangleCollision))
}

func TestResolve_SkipPolicy(t *testing.T) {
	h := &recordingHandler{}
	r := policy.NewResolver(policy.WithCollisionHandler(h))

	res, err := r.Resolve("lua", scalars("this", "greet", "var"), jsReserved, policy.Skip)
	require.NoError(t, err)

	assert.Equal(t, []string{"greet"}, scriptNames(res))
	assert.Equal(t, []string{"this", "var"}, res.Skipped)
	assert.Equal(t, []string{"lua:this", "lua:var"}, h.skipped)
}

func TestResolve_UnhandledPolicy(t *testing.T) {
	_, err := policy.Resolve("js", scalars("var"), jsReserved, policy.CollisionPolicy(42))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhandled collision policy")
}

func TestResolve_Deterministic(t *testing.T) {
	bindings := scalars("z", "class", "a", "this", "m")
	first, err := policy.Resolve("js", bindings, jsReserved, policy.Mangle)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := policy.Resolve("js", bindings, jsReserved, policy.Mangle)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"z", "class_", "a", "this_", "m"}, scriptNames(first))
}
