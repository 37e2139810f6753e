package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

// TOMLParser implements ports.ConfigParser for TOML input.
type TOMLParser struct {
	config parserConfig
}

// NewTOMLParser creates a new TOMLParser.
func NewTOMLParser(opts ...ParserOption) ports.ConfigParser {
	cfg := defaultParserConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TOMLParser{config: cfg}
}

// Document decodes data into a generic tree. TOML documents are always tables.
func (p *TOMLParser) Document(data []byte) (any, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse toml: %w", err)
	}
	return doc, nil
}

// Decode decodes data into out. Fields already set on out and absent from
// data keep their values.
func (p *TOMLParser) Decode(data []byte, out any) error {
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("failed to decode toml: %w", err)
	}
	if p.config.knownFields {
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("failed to decode toml: unknown field %q", undecoded[0].String())
		}
	}
	return nil
}

// ForPath returns the parser matching the file extension of path: TOML for
// ".toml", YAML (which also reads JSON) otherwise.
func ForPath(path string, opts ...ParserOption) ports.ConfigParser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return NewTOMLParser(opts...)
	}
	return NewYAMLParser(opts...)
}
