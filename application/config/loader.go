package config

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/reglet-dev/scriptbox/application/schema"
	"github.com/reglet-dev/scriptbox/application/validation"
	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/reglet-dev/scriptbox/infrastructure/parser"
)

// SchemaID names the configuration schema resource.
const SchemaID = "scriptbox.config.schema.json"

// Schema returns the JSON Schema describing Config.
func Schema() ([]byte, error) {
	return schema.GenerateSchema(&Config{},
		schema.WithTitle("scriptbox"),
		schema.WithDescription("scriptbox binder configuration"),
	)
}

var schemaValidator = sync.OnceValues(func() (ports.DocumentValidator, error) {
	raw, err := Schema()
	if err != nil {
		return nil, err
	}
	return validation.NewSchemaValidator(SchemaID, raw)
})

// loaderConfig holds configuration for the Loader.
type loaderConfig struct {
	parser    ports.ConfigParser // nil selects by file extension, YAML for Parse
	validator ports.DocumentValidator
	schema    bool // Validate the raw document against the schema
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		schema: true,
	}
}

// LoaderOption configures the Loader.
type LoaderOption func(*loaderConfig)

// WithParser sets the configuration parser for every input. By default Load
// picks TOML or YAML from the file extension and Parse reads YAML.
func WithParser(p ports.ConfigParser) LoaderOption {
	return func(c *loaderConfig) {
		c.parser = p
	}
}

// WithDocumentValidator replaces the generated Config schema validator.
func WithDocumentValidator(v ports.DocumentValidator) LoaderOption {
	return func(c *loaderConfig) {
		c.validator = v
	}
}

// WithSchemaValidation enables/disables the raw document schema check.
// Struct validation always runs.
func WithSchemaValidation(enabled bool) LoaderOption {
	return func(c *loaderConfig) {
		c.schema = enabled
	}
}

// Loader orchestrates the configuration pipeline: parse the raw document,
// validate it against the schema, decode it over Default, then validate the
// struct.
type Loader struct {
	config loaderConfig
}

// NewLoader creates a new Loader with defaults.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{config: cfg}
}

func defaultLoader() *Loader {
	return NewLoader()
}

// Load reads and parses the file at path.
func (l *Loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := l.parse(data, l.parserFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse runs the pipeline on data.
func (l *Loader) Parse(data []byte) (*Config, error) {
	return l.parse(data, l.parserFor(""))
}

func (l *Loader) parserFor(path string) ports.ConfigParser {
	if l.config.parser != nil {
		return l.config.parser
	}
	return parser.ForPath(path)
}

func (l *Loader) parse(data []byte, p ports.ConfigParser) (*Config, error) {
	if l.config.schema {
		doc, err := p.Document(data)
		if err != nil {
			return nil, err
		}

		v := l.config.validator
		if v == nil {
			if v, err = schemaValidator(); err != nil {
				return nil, err
			}
		}

		res, err := v.Validate(doc)
		if err != nil {
			return nil, fmt.Errorf("validation error: %w", err)
		}
		if err := validation.ResultError(res); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if err := p.Decode(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
