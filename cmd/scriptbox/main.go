// Command scriptbox runs scripts against a configured set of host bindings.
//
// Usage:
//
//	scriptbox run [-config f] [-runtime r] [-policy p] [-timeout d] <file> [--] [args...]
//	scriptbox repl [-config f] [-runtime r] [-policy p]
//	scriptbox bootstrap [-config f] [-runtime r] [-policy p] [-slot s] name...
//	scriptbox schema
//	scriptbox runtimes
package main

import (
	"fmt"
	"io"
	"os"
)

const appName = "scriptbox"

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.dispatch(os.Args[1:]))
}

// app carries the streams commands read and write, so commands can be
// exercised in tests.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) dispatch(args []string) int {
	if len(args) < 1 {
		a.usage(a.stderr)
		return 2
	}

	switch cmd := args[0]; cmd {
	case "run":
		return a.cmdRun(args[1:])
	case "repl":
		return a.cmdRepl(args[1:])
	case "bootstrap":
		return a.cmdBootstrap(args[1:])
	case "schema":
		return a.cmdSchema(args[1:])
	case "runtimes":
		return a.cmdRuntimes(args[1:])
	case "-h", "--help", "help":
		a.usage(a.stdout)
		return 0
	default:
		fmt.Fprintf(a.stderr, "%s: unknown command %q\n", appName, cmd)
		a.usage(a.stderr)
		return 2
	}
}

func (a *app) usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %[1]s run [-config f] [-runtime r] [-policy p] [-timeout d] <file> [--] [args...]
                                   Evaluate a script file and print its result.
  %[1]s repl [-config f] [-runtime r] [-policy p]
                                   Start an interactive session.
  %[1]s bootstrap [-config f] [-runtime r] [-policy p] [-slot s] name...
                                   Print the bootstrap source for the given names.
  %[1]s schema                      Print the configuration JSON Schema.
  %[1]s runtimes                    List available runtimes.
`, appName)
}
