// Package interrupt cancels a context when the process is asked to stop.
package interrupt

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// Context returns a context that's canceled when one of signals is received, or [os.Interrupt] if none are given.
// A second signal exits the process with status 130, for rule evaluation that doesn't stop in time.
//
// The returned stop function releases the signal handler, and should be deferred.
func Context(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt}
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)
	ctx, stop := watch(parent, sigs, os.Exit)
	return ctx, func() {
		signal.Stop(sigs)
		stop()
	}
}

// watch cancels the returned context on the first signal, and calls exit on the second.
// The returned stop function cancels the context and ends the watch, whether or not a signal was received.
func watch(parent context.Context, sigs <-chan os.Signal, exit func(int)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	stopped := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(stopped)
			cancel()
		})
	}
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
			return
		}
		select {
		case <-sigs:
			exit(130)
		case <-stopped:
		case <-parent.Done():
		}
	}()
	return ctx, stop
}
