// Package config loads and validates scriptbox configuration files.
//
// A configuration file selects the target runtime and collision policy,
// extends the reserved set, chooses which host bundles to register, and may
// declare scalar globals to bind alongside them.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/reglet-dev/scriptbox/domain/naming"
	"github.com/reglet-dev/scriptbox/domain/policy"
	"github.com/reglet-dev/scriptbox/domain/ports"
	"github.com/reglet-dev/scriptbox/host"
	"github.com/reglet-dev/scriptbox/host/registry"
	"github.com/reglet-dev/scriptbox/hostfuncs"
	"github.com/reglet-dev/scriptbox/infrastructure/javascript"
	"github.com/reglet-dev/scriptbox/infrastructure/lua"
	sblog "github.com/reglet-dev/scriptbox/log"
)

// Config is the root of a scriptbox configuration file.
type Config struct {
	// Globals are bound as scalar host values before any bundle.
	Globals map[string]any `yaml:"globals" toml:"globals" json:"globals,omitempty" validate:"dive,keys,identifier,endkeys" jsonschema:"description=Scalar values bound under their key"`

	Runtime      string           `yaml:"runtime" toml:"runtime" json:"runtime" validate:"required,oneof=javascript lua" jsonschema:"enum=javascript,enum=lua,description=Target script runtime"`
	Policy       string           `yaml:"policy" toml:"policy" json:"policy,omitempty" validate:"required,oneof=error mangle skip" jsonschema:"enum=error,enum=mangle,enum=skip,description=Handling of names that are reserved in the runtime"`
	TransferSlot string           `yaml:"transfer_slot" toml:"transfer_slot" json:"transfer_slot,omitempty" validate:"required,identifier" jsonschema:"description=Temporary global the bindings are staged under"`
	Mangle       MangleConfig     `yaml:"mangle" toml:"mangle" json:"mangle,omitempty"`
	Reserved     []string         `yaml:"reserved" toml:"reserved" json:"reserved,omitempty" validate:"dive,identifier" jsonschema:"description=Extra reserved words"`
	Patterns     []string         `yaml:"reserved_patterns" toml:"reserved_patterns" json:"reserved_patterns,omitempty" validate:"dive,required,glob" jsonschema:"description=Extra reserved glob patterns"`
	Log          LogConfig        `yaml:"log" toml:"log" json:"log,omitempty"`
	Bundles      BundlesConfig    `yaml:"bundles" toml:"bundles" json:"bundles,omitempty"`
	JavaScript   JavaScriptConfig `yaml:"javascript" toml:"javascript" json:"javascript,omitempty"`
	Lua          LuaConfig        `yaml:"lua" toml:"lua" json:"lua,omitempty"`
}

// MangleConfig is the affix rename rule used under the mangle policy.
type MangleConfig struct {
	Prefix string `yaml:"prefix" toml:"prefix" json:"prefix,omitempty"`
	Suffix string `yaml:"suffix" toml:"suffix" json:"suffix,omitempty" validate:"required_without=Prefix"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level,omitempty" validate:"required,oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Format string `yaml:"format" toml:"format" json:"format,omitempty" validate:"required,oneof=text json" jsonschema:"enum=text,enum=json"`
	Source bool   `yaml:"source" toml:"source" json:"source,omitempty"`
}

// BundlesConfig selects the host function bundles to register.
type BundlesConfig struct {
	// Env lists the environment variables the env function may read.
	Env     []string `yaml:"env" toml:"env" json:"env,omitempty" validate:"dive,required"`
	Console bool     `yaml:"console" toml:"console" json:"console,omitempty"`
	Log     bool     `yaml:"log" toml:"log" json:"log,omitempty"`

	// MaxOutput caps captured console output in bytes. Zero means
	// hostfuncs.DefaultMaxOutputSize.
	MaxOutput int `yaml:"max_output" toml:"max_output" json:"max_output,omitempty" validate:"gte=0" jsonschema:"minimum=0"`
}

// JavaScriptConfig tunes the javascript runtime.
type JavaScriptConfig struct {
	FieldNameTag     string `yaml:"field_name_tag" toml:"field_name_tag" json:"field_name_tag,omitempty"`
	MaxCallStackSize int    `yaml:"max_call_stack_size" toml:"max_call_stack_size" json:"max_call_stack_size,omitempty" validate:"gte=0" jsonschema:"minimum=0"`
}

// LuaConfig tunes the lua runtime.
type LuaConfig struct {
	CallStackSize int  `yaml:"call_stack_size" toml:"call_stack_size" json:"call_stack_size,omitempty" validate:"gte=0" jsonschema:"minimum=0"`
	Sandbox       bool `yaml:"sandbox" toml:"sandbox" json:"sandbox,omitempty"`
}

// Default returns the configuration used when no file is given. It targets
// javascript, mangles reserved names, and registers the console and log bundles.
func Default() *Config {
	return &Config{
		Runtime:      javascript.Name,
		Policy:       policy.Mangle.String(),
		TransferSlot: host.DefaultTransferSlot,
		Mangle:       MangleConfig{Suffix: "_"},
		Log:          LogConfig{Level: "info", Format: string(sblog.FormatText)},
		Bundles:      BundlesConfig{Console: true, Log: true},
	}
}

// Parse decodes and validates a YAML or JSON document layered over Default.
func Parse(data []byte) (*Config, error) {
	return defaultLoader().Parse(data)
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	return defaultLoader().Load(path)
}

// CollisionPolicy returns the parsed policy.
func (c *Config) CollisionPolicy() (policy.CollisionPolicy, error) {
	return policy.ParseCollisionPolicy(c.Policy)
}

// BinderOptions translates the configuration into host.Binder options.
func (c *Config) BinderOptions(logger *slog.Logger) ([]host.Option, error) {
	p, err := c.CollisionPolicy()
	if err != nil {
		return nil, err
	}

	opts := []host.Option{
		host.WithPolicy(p),
		host.WithTransferSlot(c.TransferSlot),
		host.WithMangler(naming.AffixMangler{Prefix: c.Mangle.Prefix, Suffix: c.Mangle.Suffix}),
		host.WithReserved(c.Reserved...),
		host.WithReservedPatterns(c.Patterns...),
	}
	if logger != nil {
		opts = append(opts, host.WithLogger(logger))
	}
	return opts, nil
}

// Runtimes returns a runtime catalogue whose javascript and lua factories
// carry this configuration's runtime settings.
func (c *Config) Runtimes() *registry.Registry {
	js := c.JavaScript
	lc := c.Lua

	r := registry.NewRegistry()
	_ = r.Register(javascript.Name, func() ports.ScriptRuntime {
		var opts []javascript.RuntimeOption
		if js.FieldNameTag != "" {
			opts = append(opts, javascript.WithFieldNameMapper(js.FieldNameTag))
		}
		if js.MaxCallStackSize > 0 {
			opts = append(opts, javascript.WithMaxCallStackSize(js.MaxCallStackSize))
		}
		return javascript.NewRuntime(opts...)
	})
	_ = r.Register(lua.Name, func() ports.ScriptRuntime {
		opts := []lua.RuntimeOption{lua.WithSandbox(lc.Sandbox)}
		if lc.CallStackSize > 0 {
			opts = append(opts, lua.WithCallStackSize(lc.CallStackSize))
		}
		return lua.NewRuntime(opts...)
	})
	return r
}

// NewRuntime creates the configured runtime.
func (c *Config) NewRuntime() (ports.ScriptRuntime, error) {
	return c.Runtimes().Lookup(c.Runtime)
}

// Logger builds the configured slog logger writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := sblog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := sblog.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	return sblog.New(
		sblog.WithLevel(level),
		sblog.WithFormat(format),
		sblog.WithSource(c.Log.Source),
		sblog.WithWriter(w),
	), nil
}

// HostBundles returns the enabled host function bundles. Console output goes to
// out; log functions write through logger.
func (c *Config) HostBundles(out io.Writer, logger *slog.Logger) []hostfuncs.HostFuncBundle {
	var bundles []hostfuncs.HostFuncBundle
	if c.Bundles.Console {
		bundles = append(bundles, hostfuncs.ConsoleBundle(out))
	}
	if c.Bundles.Log {
		bundles = append(bundles, hostfuncs.LogBundle(logger))
	}
	if len(c.Bundles.Env) > 0 {
		bundles = append(bundles, hostfuncs.EnvBundle(c.Bundles.Env))
	}
	return bundles
}

// RegistryOptions returns hostfuncs.Registry options registering the
// configured bundles.
func (c *Config) RegistryOptions(out io.Writer, logger *slog.Logger) []hostfuncs.RegistryOption {
	var opts []hostfuncs.RegistryOption
	for _, b := range c.HostBundles(out, logger) {
		opts = append(opts, hostfuncs.WithBundle(b))
	}
	return opts
}

// BindGlobals registers Globals on reg in sorted key order.
func (c *Config) BindGlobals(reg *hostfuncs.Registry) *hostfuncs.Registry {
	for _, name := range sortedKeys(c.Globals) {
		reg.Set(name).ToValue(c.Globals[name])
	}
	return reg
}
