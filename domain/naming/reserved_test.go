package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservedWordSet_Contains(t *testing.T) {
	set := NewReservedWordSet("var", "class", "this")

	assert.True(t, set.Contains("var"))
	assert.True(t, set.Contains("class"))
	assert.False(t, set.Contains("greet"))
	assert.False(t, set.Contains("Var"))
	assert.Equal(t, 3, set.Len())
}

func TestReservedWordSet_ZeroValue(t *testing.T) {
	var set ReservedWordSet
	assert.False(t, set.Contains("anything"))
	assert.Empty(t, set.Words())
	assert.Empty(t, set.Patterns())
}

func TestReservedWordSet_WithIsCopy(t *testing.T) {
	base := NewReservedWordSet("if")
	extended := base.With("__scriptbox", "")

	assert.True(t, extended.Contains("__scriptbox"))
	assert.True(t, extended.Contains("if"))
	assert.False(t, base.Contains("__scriptbox"))
	assert.Equal(t, []string{"__scriptbox", "if"}, extended.Words())
}

func TestReservedWordSet_Patterns(t *testing.T) {
	set := NewReservedWordSet("end").WithPatterns("_[A-Z]*", "java*", "[", "")

	tests := []struct {
		name string
		want bool
	}{
		{"_G", true},
		{"_VERSION", true},
		{"_private", false},
		{"javaClass", true},
		{"java", true},
		{"JavaObject", false},
		{"end", true},
		{"ending", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Contains(tt.name))
		})
	}

	// the malformed "[" pattern and the empty pattern are dropped
	assert.Equal(t, []string{"_[A-Z]*", "java*"}, set.Patterns())
}

func TestAffixMangler(t *testing.T) {
	assert.Equal(t, "class_", DefaultMangler.Mangle("class"))
	assert.Equal(t, "js_this", AffixMangler{Prefix: "js_"}.Mangle("this"))
	assert.Equal(t, "_do_", AffixMangler{Prefix: "_", Suffix: "_"}.Mangle("do"))
	assert.Equal(t, "VAR", ManglerFunc(func(s string) string { return "VAR" }).Mangle("var"))
}
