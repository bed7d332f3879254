package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "user_id", "u1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "kept" || entry["user_id"] != "u1" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "chatty")

	logger.Debug("dropped")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info, got %q", buf.String())
	}
	logger.Info("kept")
	if buf.Len() == 0 {
		t.Fatalf("info should be written")
	}
}
