// Command edom computes the eternal domination number of DIMACS graphs.
//
//	edom solve    [flags] <file>
//	edom inspect  -k K [flags] <file>
//	edom batch    [flags] <dir>
//	edom generate [flags] <kind> <params...>
//
// Exit codes: 0 success, 1 failure, 2 usage error, 3 time limit exceeded.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/edom/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], cli.Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Lookup: os.LookupEnv,
	})
	stop()
	os.Exit(code)
}
