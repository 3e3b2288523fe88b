package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/freekieb7/tinyhttpd/config"
)

func TestSetupDisabled(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{ServiceName: "test", LogLevel: slog.LevelInfo}

	tel, err := Setup(context.Background(), cfg, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tel.Shutdown(context.Background())

	_, span := tel.Tracer().Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("expected a no-op span without an OTLP endpoint")
	}
	span.End()

	counter, err := tel.Meter().Int64Counter("noop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counter.Add(context.Background(), 1)

	tel.Logger.Debug("hidden")
	tel.Logger.Info("listening", "addr", "0.0.0.0:4221")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record written at info level: %q", got)
	}
	if !strings.Contains(got, "msg=listening") || !strings.Contains(got, "addr=0.0.0.0:4221") {
		t.Errorf("missing log record: %q", got)
	}
}

func TestShutdownWithoutExporters(t *testing.T) {
	tel := &Telemetry{}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
