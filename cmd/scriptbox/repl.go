package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reglet-dev/scriptbox/domain/ports"
)

const historyFile = ".scriptbox_history"

// lineReader is the part of liner.State the loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (a *app) cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := common.load()
	if err != nil {
		return a.fail(err)
	}
	s, err := newSession(cfg, a.stdout, a.stderr)
	if err != nil {
		return a.fail(err)
	}

	engine, err := s.box.BuildNamed(context.Background(), cfg.Runtime, s.buildOpts...)
	if err != nil {
		return a.fail(err)
	}
	defer engine.Close()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintf(a.stdout, "%s %s session. Type :help for commands.\n", appName, cfg.Runtime)
	return a.loop(ln, s, engine)
}

// loop reads lines until :quit or end of input.
func (a *app) loop(ln lineReader, s *session, engine ports.Engine) int {
	prompt := s.cfg.Runtime + "> "
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(a.stdout)
				return 0
			}
			return a.fail(err)
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(code)

		if strings.HasPrefix(code, ":") {
			if done := a.meta(strings.ToLower(code), s); done {
				return 0
			}
			continue
		}

		v, err := engine.Eval(context.Background(), code)
		if err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(a.stdout, format(v))
	}
}

// meta runs a colon command and reports whether the session should end.
func (a *app) meta(cmd string, s *session) bool {
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":names":
		lines, err := boundNames(s)
		if err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
			return false
		}
		for _, l := range lines {
			fmt.Fprintln(a.stdout, l)
		}
	case ":help":
		fmt.Fprintln(a.stdout, ":names  list bound names\n:quit   leave the session")
	default:
		fmt.Fprintf(a.stdout, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return false
}
