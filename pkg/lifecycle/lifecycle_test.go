package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

func TestCoordinator_Startup(t *testing.T) {
	lc := lifecycle.New()

	var checker lifecycle.ReadinessChecker = lc
	if checker.Ready() {
		t.Fatal("Ready() = true before startup")
	}

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(5 * time.Millisecond)
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks run = %d, want 3", got)
	}
	if !checker.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_Shutdown(t *testing.T) {
	lc := lifecycle.New()
	ctx := lc.Context()

	var released atomic.Int32
	for range 2 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			released.Add(1)
		})
	}

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled before Shutdown")
	default:
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if got := released.Load(); got != 2 {
		t.Errorf("shutdown hooks run = %d, want 2", got)
	}
	if ctx.Err() == nil {
		t.Error("context should be cancelled after Shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(300 * time.Millisecond)
	})

	if err := lc.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Shutdown() should report timeout")
	}
}
