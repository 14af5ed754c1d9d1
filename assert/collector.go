package assert

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Collector gathers the failures of independent checks, so they're reported together instead of one at a time.
// Each check still stops at its own first failure.
//
// A Collector is an error that wraps everything collected, so [errors.Is] and [errors.As] see through it.
// It isn't safe for concurrent use.
type Collector struct {
	errs []error
	sep  string
}

// CollectErrors creates a [Collector] whose message joins the collected errors with sep, or a newline if sep isn't given.
func CollectErrors(sep ...string) *Collector {
	c := &Collector{sep: "\n"}
	if len(sep) > 0 {
		c.sep = sep[0]
	}
	return c
}

// Add collects each non-nil error in errs.
func (c *Collector) Add(errs ...error) *Collector {
	for _, err := range errs {
		if err != nil {
			c.errs = append(c.errs, err)
		}
	}
	return c
}

// Addf collects an error created with [fmt.Errorf].
func (c *Collector) Addf(format string, args ...any) *Collector {
	return c.Add(fmt.Errorf(format, args...))
}

// Check runs fn with [Catch], and collects the [AssertionError] it raised, if any.
// Other panics aren't recovered.
func (c *Collector) Check(fn func()) *Collector {
	return c.Add(Catch(fn))
}

// Len returns how many errors have been collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Failures counts the collected errors that are assertion failures, leaving out other errors given to [Collector.Add].
func (c *Collector) Failures() int {
	var n int
	for _, err := range c.errs {
		if errors.Is(err, &AssertionError{}) {
			n++
		}
	}
	return n
}

// Result returns the Collector as an error, or nil if it's empty.
// Return this rather than the Collector itself, since an empty Collector is still a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, c.sep)
}

func (c *Collector) Unwrap() []error {
	return slices.Clone(c.errs)
}
