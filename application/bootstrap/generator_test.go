package bootstrap_test

import (
	"testing"

	"github.com/reglet-dev/scriptbox/application/bootstrap"
	"github.com/reglet-dev/scriptbox/domain/entities"
	sberrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolved(script, original string) policy.Resolved {
	return policy.Resolved{ScriptName: script, Binding: entities.Binding{Name: original}}
}

func TestGenerate_JavaScript(t *testing.T) {
	src, err := bootstrap.Generate(bootstrap.JavaScriptDialect(), "__scriptbox", []policy.Resolved{
		resolved("greet", "greet"),
		resolved("class_", "class"),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"var greet = __scriptbox[\"greet\"];\n"+
			"var class_ = __scriptbox[\"class\"];\n"+
			"delete __scriptbox;\n",
		src)
}

func TestGenerate_Lua(t *testing.T) {
	src, err := bootstrap.Generate(bootstrap.LuaDialect(), "__scriptbox", []policy.Resolved{
		resolved("n", "n"),
		resolved("end_", "end"),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"n = __scriptbox[\"n\"]\n"+
			"end_ = __scriptbox[\"end\"]\n"+
			"__scriptbox = nil\n",
		src)
}

func TestGenerate_EmptyStillReleases(t *testing.T) {
	src, err := bootstrap.Generate(bootstrap.JavaScriptDialect(), "slot", nil)
	require.NoError(t, err)
	assert.Equal(t, "delete slot;\n", src)
}

func TestGenerate_ReleaseIsLastStatement(t *testing.T) {
	bindings := []policy.Resolved{resolved("a", "a"), resolved("b", "b"), resolved("c", "c")}
	for _, d := range []entities.Dialect{bootstrap.JavaScriptDialect(), bootstrap.LuaDialect()} {
		t.Run(d.Name, func(t *testing.T) {
			src, err := bootstrap.Generate(d, "__scriptbox", bindings)
			require.NoError(t, err)
			lines := splitLines(src)
			require.Len(t, lines, 4)
			assert.Contains(t, lines[3], "__scriptbox")
			assert.NotContains(t, lines[3], "[")
		})
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func TestGenerate_RejectsBadNames(t *testing.T) {
	t.Run("slot", func(t *testing.T) {
		_, err := bootstrap.Generate(bootstrap.JavaScriptDialect(), "bad slot", nil)
		assert.ErrorIs(t, err, sberrors.ErrInvalidIdentifier)
	})

	t.Run("script name", func(t *testing.T) {
		_, err := bootstrap.Generate(bootstrap.LuaDialect(), "__scriptbox", []policy.Resolved{resolved("x; os.exit()", "x")})
		assert.ErrorIs(t, err, sberrors.ErrInvalidIdentifier)
	})
}

func TestGenerate_QuotesOriginalName(t *testing.T) {
	// original names are validated upstream; the generator still escapes them
	src, err := bootstrap.Generate(bootstrap.JavaScriptDialect(), "s", []policy.Resolved{resolved("x", `a"];evil();//`)})
	require.NoError(t, err)
	assert.Contains(t, src, `var x = s["a\"];evil();//"];`)
}

func TestNewGenerator_InvalidTemplate(t *testing.T) {
	d := bootstrap.JavaScriptDialect()
	d.Declare = "var {{.ScriptName"
	_, err := bootstrap.NewGenerator(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declare template")
}

func TestGenerator_StrictMissingKey(t *testing.T) {
	d := bootstrap.JavaScriptDialect()
	d.Release = "delete {{.Missing}};"

	g, err := bootstrap.NewGenerator(d)
	require.NoError(t, err)
	_, err = g.Generate("s", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map has no entry for key")

	lenient, err := bootstrap.NewGenerator(d, bootstrap.WithStrict(false))
	require.NoError(t, err)
	src, err := lenient.Generate("s", nil)
	require.NoError(t, err)
	assert.Equal(t, "delete <no value>;\n", src)
}

func TestNewGenerator_DefaultQuote(t *testing.T) {
	d := bootstrap.LuaDialect()
	d.Quote = nil

	g, err := bootstrap.NewGenerator(d)
	require.NoError(t, err)
	src, err := g.Generate("s", []policy.Resolved{resolved("a", "a")})
	require.NoError(t, err)
	assert.Equal(t, "a = s[\"a\"]\ns = nil\n", src)
}
