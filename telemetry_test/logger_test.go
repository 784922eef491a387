package telemetry_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zefrenchwan/stochkit.git/telemetry"
)

func TestLoggerInfoEmitsJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(telemetry.LoggerConfig{Format: telemetry.LogFormatJSON, Output: &buf})

	logger.Info("run started", "algorithm", "direct", "steps", 10)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON log line, got error: %v, line: %s", err, buf.String())
	}
	if decoded["message"] != "run started" {
		t.Fatalf("expected message field, got %v", decoded["message"])
	}
	if decoded["algorithm"] != "direct" {
		t.Fatalf("expected algorithm field 'direct', got %v", decoded["algorithm"])
	}
}

func TestLoggerOddFieldCountReportsError(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(telemetry.LoggerConfig{Format: telemetry.LogFormatJSON, Output: &buf})

	logger.Info("broken", "onlykey")

	if !strings.Contains(buf.String(), "logging_error") {
		t.Fatalf("expected logging_error field for odd field count, got: %s", buf.String())
	}
}
