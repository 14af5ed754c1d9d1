package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/assertx/assert"
	"github.com/saylorsolutions/assertx/internal/cli"
	"github.com/saylorsolutions/assertx/internal/config"
	"github.com/saylorsolutions/assertx/internal/logging"
	"github.com/saylorsolutions/assertx/internal/rules"
	flag "github.com/spf13/pflag"
	"io"
	"runtime"
)

var (
	ErrRulesFailed = errors.New("rules failed")
	ErrNotObject   = errors.New("not an object")
)

// newApp sets up the assertx commands.
// Evaluation stops when ctx is done, user-visible output is written to out, and evaluation logs to logOut.
func newApp(ctx context.Context, conf config.Config, out, logOut io.Writer) *cli.CommandSet {
	app := cli.NewCommandSet("assertx")
	app.Printer().Redirect(out)
	switch conf.Color {
	case config.ColorAlways:
		app.Printer().SetColor(true)
	case config.ColorNever:
		app.Printer().SetColor(false)
	}

	check := app.AddCommand("check", "Evaluates a rule document against data files", "c")
	check.Usage("check [FLAGS] RULES DATA...")
	check.Flags().Bool("fail-fast", false, "Stops at the first failed rule in each data file")
	check.Flags().String("log-level", conf.LogLevel.String(), "Sets the level for evaluation logs")
	check.Flags().Duration("timeout", conf.Timeout, "Sets the deadline for evaluating all rules")
	check.Flags().Int("parallel", runtime.NumCPU(), "Sets how many data files are evaluated at once")
	check.Does(func(flags *flag.FlagSet, out *cli.Printer) error {
		var rulesPath, dataPath string
		more, err := cli.MapArgs(flags.Args(), 2, &rulesPath, &dataPath)
		if err != nil {
			return cli.NewUsageError("%w", err)
		}
		dataPaths := append([]string{dataPath}, more...)
		level, err := config.ParseLevel(cli.MustGet(flags.GetString("log-level")))
		if err != nil {
			return cli.NewUsageError("%w", err)
		}
		doc, err := rules.LoadDocument(rulesPath)
		if err != nil {
			return err
		}
		digest, err := doc.Digest()
		if err != nil {
			return err
		}
		logger := logging.New(logOut, level).With("rules", rulesPath, "digest", digest)
		logger.Info("Evaluating rules", "count", len(doc.Rules), "files", len(dataPaths))

		ctx, cancel := context.WithTimeout(ctx, cli.MustGet(flags.GetDuration("timeout")))
		defer cancel()
		eval := rules.NewEvaluator(
			rules.Logger(logger),
			rules.FailFast(cli.MustGet(flags.GetBool("fail-fast"))),
			rules.Parallel(cli.MustGet(flags.GetInt("parallel"))),
		)
		reports, err := eval.EvaluateFiles(ctx, doc, dataPaths...)
		var failed, total int
		for _, report := range reports {
			prefix := ""
			if len(reports) > 1 {
				prefix = report.Path + ": "
			}
			for _, result := range report.Results {
				if result.Passed() {
					out.Pass("%s%s", prefix, result.Rule.Name)
					continue
				}
				out.Fail("%s%s: %s", prefix, result.Rule.Name, result.Err)
			}
			failed += report.Failed()
			total += len(report.Results)
		}
		if errors.Is(err, &assert.AssertionError{}) {
			out.Printf("%d of %d rules failed\n", failed, total)
			return fmt.Errorf("%w: %d of %d", ErrRulesFailed, failed, total)
		}
		return err
	})

	app.AddCommand("typeof", "Prints the type of a value in a data file", "t").
		Usage("typeof DATA [PATH]").
		Does(func(flags *flag.FlagSet, out *cli.Printer) error {
			value, err := resolveArgs(flags.Args())
			if err != nil {
				return err
			}
			out.Println(assert.TypeOf(value))
			return nil
		})

	app.AddCommand("keys", "Prints the keys of an object in a data file", "k").
		Usage("keys DATA [PATH]").
		Does(func(flags *flag.FlagSet, out *cli.Printer) error {
			value, err := resolveArgs(flags.Args())
			if err != nil {
				return err
			}
			object, ok := value.(map[string]any)
			if !ok {
				if assert.IsUndefined(value) {
					return fmt.Errorf("%w: value is undefined", ErrNotObject)
				}
				return fmt.Errorf("%w: value has type %s (%T)", ErrNotObject, assert.TypeOf(value), value)
			}
			keys, err := assert.Keys(object)
			if err != nil {
				return err
			}
			for _, key := range keys {
				out.Println(key)
			}
			return nil
		})
	return app
}

// resolveArgs loads the DATA argument, and resolves the optional PATH within it.
func resolveArgs(args []string) (any, error) {
	var dataPath, path string
	if _, err := cli.MapArgs(args, 1, &dataPath, &path); err != nil {
		return nil, cli.NewUsageError("%w", err)
	}
	subject, err := rules.LoadSubject(dataPath)
	if err != nil {
		return nil, err
	}
	return rules.Resolve(subject, path), nil
}
