package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reglet-dev/scriptbox"
	"github.com/reglet-dev/scriptbox/application/config"
	sberrors "github.com/reglet-dev/scriptbox/domain/errors"
	"github.com/reglet-dev/scriptbox/hostfuncs"
)

func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "%s: %v\n", appName, err)
	if detail := sberrors.ToErrorDetail(err); detail != nil && detail.Source != "" {
		fmt.Fprintf(a.stderr, "--- generated source ---\n%s", detail.Source)
	}
	return 1
}

func (a *app) cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var common commonFlags
	common.register(fs)
	timeout := fs.Duration("timeout", 0, "abort evaluation after this duration (0 disables)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(a.stderr, "usage: %s run [flags] <file> [--] [args...]\n", appName)
		return 2
	}

	file := fs.Arg(0)
	argv := fs.Args()[1:]
	if len(argv) > 0 && argv[0] == "--" {
		argv = argv[1:]
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return a.fail(fmt.Errorf("cannot read %s: %w", file, err))
	}

	cfg, err := common.load()
	if err != nil {
		return a.fail(err)
	}
	out := hostfuncs.NewBoundedBuffer(cfg.Bundles.MaxOutput)
	defer a.flush(out)
	s, err := newSession(cfg, out, a.stderr)
	if err != nil {
		return a.fail(err)
	}

	values := make([]any, len(argv))
	for i, v := range argv {
		values[i] = v
	}
	s.box.Set("argv").ToValue(values)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	engine, err := s.box.BuildNamed(ctx, cfg.Runtime, s.buildOpts...)
	if err != nil {
		return a.fail(err)
	}
	defer engine.Close()

	v, err := engine.Eval(ctx, string(src))
	if err != nil {
		return a.fail(err)
	}
	if v != nil {
		fmt.Fprintln(out, format(v))
	}
	return 0
}

// flush copies captured console output to stdout.
func (a *app) flush(out *hostfuncs.BoundedBuffer) {
	_, _ = io.WriteString(a.stdout, out.String())
	if out.Truncated() {
		fmt.Fprintf(a.stderr, "%s: output truncated at %d bytes\n", appName, out.Len())
	}
}

func (a *app) cmdBootstrap(args []string) int {
	fs := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var common commonFlags
	common.register(fs)
	slot := fs.String("slot", "", "transfer slot name, overrides the configuration")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(a.stderr, "usage: %s bootstrap [flags] name...\n", appName)
		return 2
	}

	cfg, err := common.load()
	if err != nil {
		return a.fail(err)
	}
	if *slot != "" {
		cfg.TransferSlot = *slot
	}

	box := scriptbox.Create()
	for _, name := range fs.Args() {
		box.Set(name).ToValue(nil)
	}

	rt, err := cfg.NewRuntime()
	if err != nil {
		return a.fail(err)
	}
	logger, err := cfg.Logger(a.stderr)
	if err != nil {
		return a.fail(err)
	}
	opts, err := cfg.BinderOptions(logger)
	if err != nil {
		return a.fail(err)
	}

	plan, err := box.Plan(rt, opts...)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprint(a.stdout, plan.Bootstrap)
	return 0
}

func (a *app) cmdSchema(args []string) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	raw, err := config.Schema()
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.stdout, string(raw))
	return 0
}

func (a *app) cmdRuntimes(args []string) int {
	fs := flag.NewFlagSet("runtimes", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	for _, name := range config.Default().Runtimes().List() {
		fmt.Fprintln(a.stdout, name)
	}
	return 0
}

// boundNames lists script-visible names with their registration names when
// they differ.
func boundNames(s *session) ([]string, error) {
	rt, err := s.cfg.NewRuntime()
	if err != nil {
		return nil, err
	}
	plan, err := s.box.Plan(rt, s.buildOpts...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, r := range plan.Resolution.Bindings {
		line := fmt.Sprintf("%-12s %s", r.ScriptName, r.Binding.Kind)
		if r.ScriptName != r.Binding.Name {
			line += fmt.Sprintf(" (registered as %s)", r.Binding.Name)
		}
		lines = append(lines, line)
	}
	for _, name := range plan.Resolution.Skipped {
		lines = append(lines, fmt.Sprintf("%-12s skipped", name))
	}
	return lines, nil
}
