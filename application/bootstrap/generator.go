// Package bootstrap generates the script source that materializes resolved
// host bindings as script variables and then removes the transfer slot.
package bootstrap

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/reglet-dev/scriptbox/domain/entities"
	"github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
)

// generatorConfig holds configuration for the Generator.
type generatorConfig struct {
	strict bool // Fail on missing template keys
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		strict: true,
	}
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

// WithStrict enables/disables strict mode for missing keys.
// When enabled (default), generation fails if a dialect template references
// an unknown field.
func WithStrict(enabled bool) GeneratorOption {
	return func(c *generatorConfig) {
		c.strict = enabled
	}
}

// Generator renders bootstrap source for one dialect. It only produces text
// and never executes anything. A Generator is safe for concurrent use.
type Generator struct {
	declare *template.Template
	release *template.Template
	quote   func(string) string
	dialect string
}

// NewGenerator parses the dialect's statement templates.
func NewGenerator(d entities.Dialect, opts ...GeneratorOption) (*Generator, error) {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parse := func(name, src string) (*template.Template, error) {
		tmpl := template.New(d.Name + "." + name)
		if cfg.strict {
			tmpl = tmpl.Option("missingkey=error")
		}
		tmpl, err := tmpl.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s %s template: %w", d.Name, name, err)
		}
		return tmpl, nil
	}

	declare, err := parse("declare", d.Declare)
	if err != nil {
		return nil, err
	}
	release, err := parse("release", d.Release)
	if err != nil {
		return nil, err
	}

	quote := d.Quote
	if quote == nil {
		quote = QuoteJSON
	}

	return &Generator{declare: declare, release: release, quote: quote, dialect: d.Name}, nil
}

// Generate emits one declaration per resolved binding, in order, each reading
// the binding's original registration name from slot, followed by a single
// statement releasing slot.
func (g *Generator) Generate(slot string, bindings []policy.Resolved) (string, error) {
	if !naming.IsValidIdentifier(slot) {
		return "", &errors.InvalidIdentifierError{Name: slot, Reason: "transfer slot must be an identifier"}
	}

	var buf bytes.Buffer
	for _, rb := range bindings {
		if !naming.IsValidIdentifier(rb.ScriptName) {
			return "", &errors.InvalidIdentifierError{Name: rb.ScriptName, Reason: "script name must be an identifier"}
		}

		data := map[string]string{
			"Slot":       slot,
			"ScriptName": rb.ScriptName,
			"Original":   g.quote(rb.Binding.Name),
		}
		if err := g.declare.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to render %s declaration for %q: %w", g.dialect, rb.Binding.Name, err)
		}
		buf.WriteByte('\n')
	}

	if err := g.release.Execute(&buf, map[string]string{"Slot": slot}); err != nil {
		return "", fmt.Errorf("failed to render %s release: %w", g.dialect, err)
	}
	buf.WriteByte('\n')

	return buf.String(), nil
}

// Generate renders bootstrap source for d in one step.
func Generate(d entities.Dialect, slot string, bindings []policy.Resolved) (string, error) {
	g, err := NewGenerator(d)
	if err != nil {
		return "", err
	}
	return g.Generate(slot, bindings)
}
