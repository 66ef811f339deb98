package main

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// lockedBuffer is a zapcore.WriteSyncer that records what reaches it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Sync() error { return nil }

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestExitOnError_FlushesBufferedLog(t *testing.T) {
	out := &lockedBuffer{}
	buffered := &zapcore.BufferedWriteSyncer{WS: out, Size: 64 * 1024}
	defer func() { _ = buffered.Stop() }()

	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), buffered, zap.InfoLevel)
	logger := zap.New(core)

	logger.Info("starting HTTP server")
	if out.String() != "" {
		t.Fatalf("expected log line to stay buffered, got %q", out.String())
	}

	code := exitOnError(logger, errors.New("cannot init database: ping postgres: refused"))
	if code != 1 {
		t.Errorf("exit code = %d; want 1", code)
	}

	got := out.String()
	if !strings.Contains(got, "starting HTTP server") {
		t.Errorf("earlier buffered line lost:\n%s", got)
	}
	if !strings.Contains(got, `"level":"error"`) || !strings.Contains(got, "server stopped") || !strings.Contains(got, "ping postgres: refused") {
		t.Errorf("expected error-level stop line with cause, got:\n%s", got)
	}
}
