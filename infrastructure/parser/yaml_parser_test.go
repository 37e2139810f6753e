package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
	Depth int      `yaml:"depth"`
}

func TestYAMLParser_Document(t *testing.T) {
	p := NewYAMLParser()

	doc, err := p.Document([]byte("name: lua\nwords: [end, local]\ndepth: 3\n"))
	require.NoError(t, err)

	m, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "lua", m["name"])
	assert.Equal(t, []any{"end", "local"}, m["words"])
	assert.Equal(t, 3, m["depth"])
}

func TestYAMLParser_DocumentEmpty(t *testing.T) {
	doc, err := NewYAMLParser().Document(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, doc)
}

func TestYAMLParser_DocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "name: [unclosed"},
		{"sequence at top", "- a\n- b\n"},
		{"scalar at top", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLParser().Document([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse yaml")
		})
	}
}

func TestYAMLParser_DecodeKeepsDefaults(t *testing.T) {
	out := sample{Name: "javascript", Depth: 10}
	require.NoError(t, NewYAMLParser().Decode([]byte("depth: 2\n"), &out))

	assert.Equal(t, "javascript", out.Name)
	assert.Equal(t, 2, out.Depth)
}

func TestYAMLParser_DecodeEmpty(t *testing.T) {
	out := sample{Name: "kept"}
	require.NoError(t, NewYAMLParser().Decode([]byte(""), &out))
	assert.Equal(t, "kept", out.Name)
}

func TestYAMLParser_KnownFields(t *testing.T) {
	data := []byte("name: x\npolcy: mangle\n")

	var strict sample
	err := NewYAMLParser().Decode(data, &strict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polcy")

	var lax sample
	require.NoError(t, NewYAMLParser(WithKnownFields(false)).Decode(data, &lax))
	assert.Equal(t, "x", lax.Name)
}
