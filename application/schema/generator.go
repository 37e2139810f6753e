// Package schema generates JSON Schema documents from Go configuration structs.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/scriptbox/domain/errors"
)

// generatorConfig holds configuration for schema generation.
type generatorConfig struct {
	id          string
	title       string
	description string
	strict      bool // additionalProperties: false on every object
	requireTags bool // only fields tagged jsonschema:"required" are required
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		strict:      true,
		requireTags: true,
	}
}

// Option configures schema generation.
type Option func(*generatorConfig)

// WithID sets the schema $id. Without it the schema is anonymous.
func WithID(id string) Option {
	return func(c *generatorConfig) {
		c.id = id
	}
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(c *generatorConfig) {
		c.title = title
	}
}

// WithDescription sets the schema description.
func WithDescription(description string) Option {
	return func(c *generatorConfig) {
		c.description = description
	}
}

// WithStrict controls whether unknown object keys are rejected. Default is true.
func WithStrict(enabled bool) Option {
	return func(c *generatorConfig) {
		c.strict = enabled
	}
}

// WithRequiredFromTags controls where required fields come from. When true
// (default) only fields tagged jsonschema:"required" are required; when false
// every field without omitempty is.
func WithRequiredFromTags(enabled bool) Option {
	return func(c *generatorConfig) {
		c.requireTags = enabled
	}
}

// Reflect builds the JSON Schema (Draft 2020-12) for v. Struct definitions
// are expanded inline so the result is a single self-contained document.
func Reflect(v any, opts ...Option) *jsonschema.Schema {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	reflector := jsonschema.Reflector{
		Anonymous:                  cfg.id == "",
		ExpandedStruct:             true,
		DoNotReference:             true,
		AllowAdditionalProperties:  !cfg.strict,
		RequiredFromJSONSchemaTags: cfg.requireTags,
	}
	s := reflector.Reflect(v)
	if cfg.id != "" {
		s.ID = jsonschema.ID(cfg.id)
	}
	if cfg.title != "" {
		s.Title = cfg.title
	}
	if cfg.description != "" {
		s.Description = cfg.description
	}
	return s
}

// GenerateSchema returns the indented JSON encoding of Reflect(v, opts...).
func GenerateSchema(v any, opts ...Option) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(Reflect(v, opts...), "", "  ")
	if err != nil {
		return nil, &errors.SchemaError{Type: fmt.Sprintf("%T", v), Err: fmt.Errorf("failed to marshal schema: %w", err)}
	}
	return jsonBytes, nil
}
