package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	if Level(true) != slog.LevelDebug {
		t.Errorf("expected debug level when verbose, got %v", Level(true))
	}
	if Level(false) != slog.LevelWarn {
		t.Errorf("expected warn level by default, got %v", Level(false))
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet logger drops debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("hidden")
		logger.Warn("shown", "id", 3)

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("expected debug record to be dropped")
		}
		if !strings.Contains(out, "shown") || !strings.Contains(out, "id=3") {
			t.Errorf("expected warn record, got %q", out)
		}
		if !strings.Contains(out, "app=shopcatalog") {
			t.Errorf("expected app attribute, got %q", out)
		}
	})

	t.Run("verbose logger keeps debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Debug("visible")
		if !strings.Contains(buf.String(), "visible") {
			t.Errorf("expected debug record, got %q", buf.String())
		}
	})
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, false).Error("failed", "id", 9)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record: %v", err)
	}
	if record["msg"] != "failed" || record["app"] != "shopcatalog" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected discard logger to be disabled")
	}
}
