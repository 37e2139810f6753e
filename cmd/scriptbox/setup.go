package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reglet-dev/scriptbox"
	"github.com/reglet-dev/scriptbox/application/config"
	"github.com/reglet-dev/scriptbox/hostfuncs"
)

// commonFlags are shared by the commands that build engines.
type commonFlags struct {
	config  string
	runtime string
	policy  string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "configuration file (YAML, JSON or TOML)")
	fs.StringVar(&f.runtime, "runtime", "", "script runtime, overrides the configuration")
	fs.StringVar(&f.policy, "policy", "", "collision policy (error, mangle, skip), overrides the configuration")
}

// load reads the configuration file, if any, and applies flag overrides.
func (f *commonFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}

	if f.runtime != "" {
		cfg.Runtime = f.runtime
	}
	if f.policy != "" {
		cfg.Policy = strings.ToLower(f.policy)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is a configured box plus the options to build it with.
type session struct {
	cfg       *config.Config
	box       *scriptbox.Box
	logger    *slog.Logger
	buildOpts []scriptbox.BuildOption
}

// newSession registers the configured globals and bundles. Console output
// goes to out, logs to errOut.
func newSession(cfg *config.Config, out, errOut io.Writer) (*session, error) {
	logger, err := cfg.Logger(errOut)
	if err != nil {
		return nil, err
	}

	buildOpts, err := cfg.BinderOptions(logger)
	if err != nil {
		return nil, err
	}

	opts := []scriptbox.Option{
		scriptbox.WithRuntimes(cfg.Runtimes()),
		scriptbox.WithMiddleware(hostfuncs.LoggingMiddleware(logger)),
	}
	for _, b := range cfg.HostBundles(out, logger) {
		opts = append(opts, scriptbox.WithBundle(b))
	}

	box := scriptbox.Create(opts...)
	cfg.BindGlobals(box.Registry())
	if err := box.Err(); err != nil {
		return nil, fmt.Errorf("globals: %w", err)
	}

	return &session{cfg: cfg, box: box, logger: logger, buildOpts: buildOpts}, nil
}

func format(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
