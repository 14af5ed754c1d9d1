package interrupt

import (
	"context"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	exited := make(chan int, 1)
	ctx, stop := watch(context.Background(), sigs, func(code int) {
		exited <- code
	})
	defer stop()

	sigs <- os.Interrupt
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("Context should be canceled by the first signal")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	sigs <- os.Interrupt
	select {
	case code := <-exited:
		assert.Equal(t, 130, code)
	case <-time.After(time.Second):
		t.Fatal("Second signal should exit")
	}
}

func TestWatch_Stop(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	ctx, stop := watch(context.Background(), sigs, func(int) {
		t.Error("Should not exit")
	})
	stop()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := Context(parent)
	defer stop()
	assert.NoError(t, ctx.Err())
	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestWatch_StopAfterSignal(t *testing.T) {
	sigs := make(chan os.Signal)
	exited := make(chan int, 1)
	ctx, stop := watch(context.Background(), sigs, func(code int) {
		exited <- code
	})

	sigs <- os.Interrupt
	<-ctx.Done()
	stop()
	stop()

	// Once stopped, nothing is left to receive a second signal.
	assert.Never(t, func() bool {
		select {
		case sigs <- os.Interrupt:
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)
	assert.Empty(t, exited)
}

func TestWatch_ParentDone(t *testing.T) {
	sigs := make(chan os.Signal)
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := watch(parent, sigs, func(int) {
		t.Error("Should not exit")
	})
	defer stop()

	sigs <- os.Interrupt
	<-ctx.Done()
	cancel()
	assert.Never(t, func() bool {
		select {
		case sigs <- os.Interrupt:
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)
}
