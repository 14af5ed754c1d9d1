package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/assertx/internal/cli"
	"github.com/saylorsolutions/assertx/internal/config"
	"github.com/saylorsolutions/assertx/internal/interrupt"
	"os"
)

const usage = `Checks JSON and YAML data against rule documents.

Rules select a value with a dot separated path, and apply one check to it:
defined, array, typeof, keys, methods, or assert.

Settings are read from the environment.
  ASSERTX_LOG_LEVEL   debug, info, warn, or error (default warn)
  ASSERTX_COLOR       force colored output on or off (default auto)
  ASSERTX_TIMEOUT     deadline for evaluating rules (default 30s)`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	ctx, stop := interrupt.Context(context.Background())
	defer stop()

	app := newApp(ctx, conf, os.Stderr, os.Stderr)
	if app.RespondUsage(args, usage) {
		return 0
	}
	if err := app.Exec(args); err != nil {
		// Usage errors and failed rules have already been reported.
		if !errors.Is(err, ErrRulesFailed) && !errors.Is(err, &cli.UsageError{}) {
			app.Printer().Println(err)
		}
		return 1
	}
	return 0
}
