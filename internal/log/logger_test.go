package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(component string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:     slog.LevelDebug,
		Component: component,
		Handler:   slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
	return logger, &buf
}

func TestLoggerStampsComponent(t *testing.T) {
	logger, buf := newBufferLogger(ComponentDataset)

	logger.Info("parsed dataset", FieldRows, 3)

	out := buf.String()
	if !strings.Contains(out, "component=dataset") {
		t.Errorf("output missing component attribute: %s", out)
	}
	if !strings.Contains(out, "rows=3") {
		t.Errorf("output missing rows attribute: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	logger, buf := newBufferLogger(ComponentApp)

	scoped := logger.WithComponent(ComponentWorker)
	if scoped.Component() != ComponentWorker {
		t.Errorf("Component() = %q, want %q", scoped.Component(), ComponentWorker)
	}

	scoped.Warn("export lagging")
	if !strings.Contains(buf.String(), "component=worker") {
		t.Errorf("output missing scoped component: %s", buf.String())
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	logger, buf := newBufferLogger(ComponentHTTP)

	logger.With(FieldRequestID, "req_abc").Error("request failed")

	out := buf.String()
	if !strings.Contains(out, "request_id=req_abc") {
		t.Errorf("output missing inherited attribute: %s", out)
	}
	if !strings.Contains(out, "component=http") {
		t.Errorf("output missing component: %s", out)
	}
}
