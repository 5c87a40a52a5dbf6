package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{ServiceName: "orcamentos", Level: zerolog.DebugLevel, Output: &buf})

	ctx := l.WithField(context.Background(), "request_id", "req-1")
	l.Error(ctx, "save version failed", errors.New("boom"), map[string]any{"budget_id": "b-1"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q", buf.String())
	}
	if entry["service"] != "orcamentos" || entry["request_id"] != "req-1" || entry["budget_id"] != "b-1" {
		t.Fatalf("missing fields: %v", entry)
	}
	if entry["error"] != "boom" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != zerolog.DebugLevel {
		t.Fatalf("expected debug")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Fatalf("expected info fallback")
	}
	if ParseLevel("") != zerolog.InfoLevel {
		t.Fatalf("expected info for empty")
	}
}
