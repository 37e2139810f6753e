// Package parser decodes scriptbox configuration documents.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/reglet-dev/scriptbox/domain/ports"
	"gopkg.in/yaml.v3"
)

// parserConfig holds configuration for the YAML parser.
type parserConfig struct {
	knownFields bool // Reject keys the target struct does not declare
}

func defaultParserConfig() parserConfig {
	return parserConfig{
		knownFields: true,
	}
}

// ParserOption configures a YAMLParser.
type ParserOption func(*parserConfig)

// WithKnownFields enables/disables rejection of unknown keys in Decode.
// Default is true.
func WithKnownFields(enabled bool) ParserOption {
	return func(c *parserConfig) {
		c.knownFields = enabled
	}
}

// YAMLParser implements ports.ConfigParser for YAML (and therefore JSON) input.
type YAMLParser struct {
	config parserConfig
}

// NewYAMLParser creates a new YAMLParser.
func NewYAMLParser(opts ...ParserOption) ports.ConfigParser {
	cfg := defaultParserConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &YAMLParser{config: cfg}
}

// Document decodes data into a generic tree. An empty document yields an
// empty map. The top level must be a mapping.
func (p *YAMLParser) Document(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if doc == nil {
		return map[string]any{}, nil
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("failed to parse yaml: top level must be a mapping, got %T", doc)
	}
	return doc, nil
}

// Decode decodes data into out. Fields already set on out and absent from
// data keep their values.
func (p *YAMLParser) Decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(p.config.knownFields)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode yaml: %w", err)
	}
	return nil
}
