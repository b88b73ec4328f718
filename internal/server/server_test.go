package server_test

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/JaimeStill/ministry-cms/internal/config"
	"github.com/JaimeStill/ministry-cms/internal/server"
	"github.com/JaimeStill/ministry-cms/pkg/lifecycle"
)

func TestServer_StartShutdown(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Port = 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := server.New(cfg, handler, logger)
	lc := lifecycle.New()
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := http.Get("http://" + srv.Addr() + "/"); err == nil {
		t.Error("server still accepting connections after shutdown")
	}
}

func TestServer_ShutdownDrainsInFlight(t *testing.T) {
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: 1}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Port = 0

	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-time.After(300 * time.Millisecond):
			w.Write([]byte("done"))
		case <-r.Context().Done():
			http.Error(w, r.Context().Err().Error(), http.StatusInternalServerError)
		}
	})

	srv := server.New(cfg, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
	lc := lifecycle.New()
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	type result struct {
		status int
		body   string
		err    error
	}
	results := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + srv.Addr() + "/convert")
		if err != nil {
			results <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		results <- result{status: resp.StatusCode, body: string(body)}
	}()

	<-started
	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	got := <-results
	if got.err != nil {
		t.Fatalf("in-flight request error = %v", got.err)
	}
	if got.status != http.StatusOK || got.body != "done" {
		t.Errorf("in-flight request = %d %q, want 200 \"done\"", got.status, got.body)
	}
}

func TestServer_StartListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer taken.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: taken.Addr().(*net.TCPAddr).Port}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Port = taken.Addr().(*net.TCPAddr).Port

	srv := server.New(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := srv.Start(lifecycle.New()); err == nil {
		t.Error("Start() on a bound port should fail")
	}
}
