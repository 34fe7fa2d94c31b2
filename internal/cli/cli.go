// Package cli implements the edom command line: argument parsing, wiring of
// config, logging, metrics and the solver, and exit-code mapping.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/edom/config"
	"github.com/katalvlaran/edom/eternal"
)

// Exit codes.
const (
	ExitSuccess   = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitTimeLimit = 3
)

const (
	programName    = "edom"
	commandSummary = `usage: edom <command> [flags] [args]

commands:
  solve    <file>             minimum eternal domination number of a DIMACS graph
  inspect  -k K <file>        dominating sets, configuration graph and safe sets for one k
  batch    <dir>              solve every instance in dir and write a CSV summary
  generate <kind> <params>    write a generated graph in DIMACS format

run "edom <command> -h" for command flags`
)

// Env carries the process boundary so Run is testable.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Lookup config.LookupFunc
}

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, args []string, env Env) int {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}
	if len(args) == 0 {
		fmt.Fprintln(env.Stderr, commandSummary)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "solve":
		err = runSolve(ctx, args[1:], env)
	case "inspect":
		err = runInspect(ctx, args[1:], env)
	case "batch":
		err = runBatch(ctx, args[1:], env)
	case "generate":
		err = runGenerate(args[1:], env)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(env.Stdout, commandSummary)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "%s: unknown command %q\n%s\n", programName, args[0], commandSummary)
		return ExitUsage
	}

	return exitCode(err, env.Stderr)
}

// exitCode reports err on stderr and maps it to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(stderr, "%s: %v\n", programName, err)

	var ee *ExitError
	switch {
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, eternal.ErrTimeLimitExceeded):
		return ExitTimeLimit
	default:
		return ExitFailure
	}
}
