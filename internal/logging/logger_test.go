package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerDoesNotPanic(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Format: "json", Service: "ign-lookup", Version: "test"})
	if logger == nil {
		t.Fatal("expected logger")
	}
	logger.Debug("hello")
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.Default()
	scoped := base.With(slog.String("request_id", "abc"))

	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, base); got != scoped {
		t.Fatal("expected scoped logger from context")
	}
	if got := FromContext(context.Background(), base); got != base {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(nil, base); got != base { //nolint:staticcheck // nil ctx is allowed
		t.Fatal("expected fallback logger on nil context")
	}
}
