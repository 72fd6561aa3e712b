package rslog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return NewWithHandler(h)
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	return entry
}

func TestLoggerModule(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	child := l.Module("rsdemo")

	child.Info("loaded fixtures")

	entry := decodeEntry(t, &buf)
	if entry["module"] != "rsdemo" {
		t.Fatalf("module = %v, want %q", entry["module"], "rsdemo")
	}
	if entry["msg"] != "loaded fixtures" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "loaded fixtures")
	}
}

func TestLoggerForAlgorithm(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	child := l.ForAlgorithm(AlgorithmBM)

	child.Info("decode succeeded")

	entry := decodeEntry(t, &buf)
	if entry["algorithm"] != "bm" {
		t.Fatalf("algorithm = %v, want %q", entry["algorithm"], "bm")
	}
}

func TestLoggerModuleThenAlgorithmChain(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	child := l.Module("rsdemo").ForAlgorithm(AlgorithmEuclidean).With("n", 10)

	child.Warn("fallback")

	entry := decodeEntry(t, &buf)
	if entry["module"] != "rsdemo" {
		t.Fatalf("module = %v, want %q", entry["module"], "rsdemo")
	}
	if entry["algorithm"] != "euclidean" {
		t.Fatalf("algorithm = %v, want %q", entry["algorithm"], "euclidean")
	}
	if entry["n"] != float64(10) {
		t.Fatalf("n = %v, want 10", entry["n"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelWarn)

	l.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at Debug below Warn level, got: %s", buf.String())
	}

	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Fatalf("expected output at Warn level")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, slog.LevelDebug))

	Default().Module("rsdemo").Info("via default")

	entry := decodeEntry(t, &buf)
	if entry["module"] != "rsdemo" {
		t.Fatalf("module = %v, want %q", entry["module"], "rsdemo")
	}
}
