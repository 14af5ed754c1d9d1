package rules

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/assertx/assert"
	"github.com/saylorsolutions/assertx/internal/logging"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"runtime"
)

// Result is the outcome of one [Rule].
type Result struct {
	Rule Rule
	Err  error // The assertion failure, or nil if the rule passed.
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Report lists the results of evaluated rules, in document order.
// Rules skipped because of fail-fast or cancellation aren't included.
type Report struct {
	Results []Result
}

// Failed returns how many rules failed.
func (r Report) Failed() int {
	var failed int
	for _, result := range r.Results {
		if !result.Passed() {
			failed++
		}
	}
	return failed
}

// EvaluatorOption configures an [Evaluator].
type EvaluatorOption func(e *Evaluator)

// Logger sets the logger used to report each rule.
// Passing rules are logged at debug, and failures at warn.
func Logger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// FailFast stops evaluation at the first failed rule.
// With [Evaluator.EvaluateFiles], each file stops at its own first failure.
func FailFast(failFast bool) EvaluatorOption {
	return func(e *Evaluator) {
		e.failFast = failFast
	}
}

// Parallel limits how many files [Evaluator.EvaluateFiles] loads and evaluates at once.
// Values less than 1 are ignored.
func Parallel(limit int) EvaluatorOption {
	return func(e *Evaluator) {
		if limit > 0 {
			e.parallel = limit
		}
	}
}

// Evaluator runs a [Document] against a subject.
type Evaluator struct {
	logger   *slog.Logger
	failFast bool
	parallel int
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{logger: logging.Discard(), parallel: runtime.NumCPU()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate applies each rule in doc to the part of subject selected by its path.
//
// The returned error collects every failed rule, prefixed by the rule's name, and matches an [assert.AssertionError] with [errors.Is].
// If ctx is done before all rules have run, then the context error is returned with the partial [Report].
func (e *Evaluator) Evaluate(ctx context.Context, subject any, doc *Document) (Report, error) {
	return e.evaluate(ctx, e.logger, subject, doc)
}

func (e *Evaluator) evaluate(ctx context.Context, logger *slog.Logger, subject any, doc *Document) (Report, error) {
	var (
		report   = Report{Results: make([]Result, 0, len(doc.Rules))}
		failures = assert.CollectErrors()
	)
	for _, rule := range doc.Rules {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		log := logger.With("rule", rule.Name, "check", string(rule.Check))
		value := Resolve(subject, rule.Path)
		err := assert.Catch(func() {
			rule.apply(value)
		})
		report.Results = append(report.Results, Result{Rule: rule, Err: err})
		if err == nil {
			log.Debug("Rule passed")
			continue
		}
		log.Warn("Rule failed", "error", err)
		failures.Add(fmt.Errorf("%s: %w", rule.Name, err))
		if e.failFast {
			break
		}
	}
	return report, failures.Result()
}

// FileReport is the [Report] for one data file.
type FileReport struct {
	Path string
	Report
}

// EvaluateFiles loads each path with [LoadSubject] and evaluates doc against it, running up to the [Parallel] limit at once.
// Reports are returned in the same order as paths.
//
// Failed rules are collected as with [Evaluator.Evaluate], prefixed by the file path.
// A file that can't be loaded stops the remaining files, and its error is returned instead.
func (e *Evaluator) EvaluateFiles(ctx context.Context, doc *Document, paths ...string) ([]FileReport, error) {
	reports := make([]FileReport, len(paths))
	failed := make([]error, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.parallel)
	for i, path := range paths {
		reports[i].Path = path
		group.Go(func() error {
			subject, err := LoadSubject(path)
			if err != nil {
				return err
			}
			report, err := e.evaluate(ctx, e.logger.With("data", path), subject, doc)
			reports[i].Report = report
			if errors.Is(err, &assert.AssertionError{}) {
				failed[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return reports, err
	}
	return reports, assert.CollectErrors().Add(failed...).Result()
}
