// Package lifecycle coordinates startup and shutdown of long-running subsystems.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether all startup hooks have completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator runs startup hooks concurrently, tracks readiness, and waits
// for shutdown hooks after cancelling the root context.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup
	ready      atomic.Bool
}

// New creates a Coordinator with a fresh root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the root context, cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine and tracks it for WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Add(1)
	go func() {
		defer c.startupWg.Done()
		fn()
	}()
}

// OnShutdown runs fn in its own goroutine and tracks it for Shutdown.
// Hooks typically block on Context().Done() before releasing resources.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Add(1)
	go func() {
		defer c.shutdownWg.Done()
		fn()
	}()
}

// WaitForStartup blocks until all startup hooks finish, then marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.ready.Store(true)
}

// Ready reports whether startup has completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the root context and waits up to timeout for shutdown hooks.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
