package gamepaint

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard even error records")
	}
}

func TestSetLoggerCapturesOutput(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	reg := NewRegistry()
	reg.Create("log-test", 10, 10, Transparent)
	if _, err := (PenLineOp{CanvasID: "log-test", X2: 5, Y2: 5}).Apply(reg); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "pen operation") {
		t.Errorf("debug output missing, got %q", out)
	}
	if !strings.Contains(out, "log-test") {
		t.Errorf("canvas id missing from output, got %q", out)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Warn("should vanish")
	if buf.Len() != 0 {
		t.Errorf("nil logger still wrote output: %q", buf.String())
	}
}

func TestNopHandlerContract(t *testing.T) {
	h := nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled should report false")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle returned %v", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs should return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return a nopHandler")
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(nopHandler{}))
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}
