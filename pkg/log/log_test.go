package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"keyword-soup/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-123")
	if got := log.RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus"},
	} {
		l := log.Init(cfg)
		l.Debugf(log.WithRequestID(context.Background(), "abc"), "level=%s", cfg.Level)
	}
	log.NewNop().Info(context.Background(), "discarded")
}

func TestRequestIDField(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON, Output: &buf})

	l.Infof(log.WithRequestID(context.Background(), "req-9"), "hello %d", 1)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["msg"] != "hello 1" {
		t.Errorf("expected msg hello 1, got %v", entry["msg"])
	}
	if entry["request_id"] != "req-9" {
		t.Errorf("expected request_id req-9, got %v", entry["request_id"])
	}
}
