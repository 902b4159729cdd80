package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestLogger_InfoContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(LevelInfo, &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "dataset loaded", "matches", 964)

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["msg"] != "dataset loaded" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["request_id"] != "req-1" {
		t.Fatalf("expected request_id req-1, got %v", line["request_id"])
	}
	if line["matches"] != float64(964) {
		t.Fatalf("unexpected matches field: %v", line["matches"])
	}
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(LevelInfo, &buf)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be dropped, got %q", buf.String())
	}

	logger.Warn("visible", "error", context.Canceled)
	if !strings.Contains(buf.String(), "context canceled") {
		t.Fatalf("expected error field in %q", buf.String())
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "")
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id to be ignored, got %q", got)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.WarnContext(context.Background(), "still no panic")
}

func TestLogger_WithAddsFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(LevelInfo, &buf).With("component", "importer")

	logger.Info("corpus imported", "matches", 3)

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["component"] != "importer" {
		t.Fatalf("unexpected component field: %v", line["component"])
	}
	caller, _ := line["caller"].(string)
	if !strings.HasPrefix(caller, "logging/logger_test.go:") {
		t.Fatalf("expected caller in logger_test.go, got %q", caller)
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	fields := zapFields([]any{"year", "1990", 42, "value", "dangling"})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected non-string key to become arg, got %q", fields[1].Key)
	}
	if fields[2].Key != "dangling" {
		t.Fatalf("unexpected trailing key: %q", fields[2].Key)
	}
}
