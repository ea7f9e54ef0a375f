package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kbukum/fiter/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
	if l.GetLogger().GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info level fallback, got %v", l.GetLogger().GetLevel())
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "fiter", &buf)

	l.Debug("cursor advanced", Fields(FieldSequence, "evens", FieldStep, 3))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := lines[0]
	if got["message"] != "cursor advanced" {
		t.Errorf("message = %v", got["message"])
	}
	if got["level"] != "debug" {
		t.Errorf("level = %v, want debug", got["level"])
	}
	if got[FieldSequence] != "evens" {
		t.Errorf("sequence = %v, want evens", got[FieldSequence])
	}
	if got[FieldStep] != float64(3) {
		t.Errorf("step = %v, want 3", got[FieldStep])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: "json"}, "fiter", &buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")

	if n := len(decodeLines(t, &buf)); n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
	if l.Enabled(zerolog.DebugLevel) {
		t.Error("debug should not be enabled at warn level")
	}
	if !l.Enabled(zerolog.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "fiter", &buf)
	l.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "[FIT][INF]") {
		t.Errorf("expected service and level tags, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "test", &buf)
	cl := l.WithComponent("observe")
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
	cl.Info("msg")
	if got := decodeLines(t, &buf)[0][FieldComponent]; got != "observe" {
		t.Errorf("component = %v, want observe", got)
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "test", &buf)
	l.WithFields(map[string]interface{}{"key": "value"}).
		WithError(fmt.Errorf("boom")).
		Error("failed")

	got := decodeLines(t, &buf)[0]
	if got["key"] != "value" {
		t.Errorf("key = %v, want value", got["key"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("discarded")
	if l.Enabled(zerolog.ErrorLevel) {
		t.Error("nop logger should not be enabled")
	}
}

func TestInit(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(NewWithWriter(&Config{Level: "debug", Format: "json"}, "test", &buf))
	defer SetGlobalLogger(nil)

	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	WithComponent("pkg").Info("component msg")

	if n := len(decodeLines(t, &buf)); n != 5 {
		t.Errorf("expected 5 lines, got %d", n)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("custom-component")
	Register("my-component", l)
	defer Unregister("my-component")

	if Get("my-component") != l {
		t.Error("expected Get to return the registered logger")
	}
}

func TestGetUnregistered(t *testing.T) {
	if Get("unregistered-component") == nil {
		t.Fatal("expected non-nil logger for unregistered component")
	}
}

func TestRegisterDefaults(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout"})
	RegisterDefaults("guard", "observe")

	for _, name := range []string{"guard", "observe"} {
		if Get(name) == nil {
			t.Errorf("expected non-nil logger for %q", name)
		}
		Unregister(name)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{
			"key-value pairs",
			[]interface{}{"op", "read", "step", 42},
			map[string]interface{}{"op": "read", "step": 42},
		},
		{
			"odd number of args",
			[]interface{}{"op", "read", "trailing"},
			map[string]interface{}{"op": "read"},
		},
		{
			"non-string key skipped",
			[]interface{}{123, "value", "key", "val"},
			map[string]interface{}{"key": "val"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("got %d fields, expected %d", len(result), len(tc.expected))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields("load", fmt.Errorf("something broke"))

	if fields[FieldOperation] != "load" {
		t.Errorf("expected operation 'load', got %v", fields[FieldOperation])
	}
	if fields[FieldError] != "something broke" {
		t.Errorf("expected error 'something broke', got %v", fields[FieldError])
	}
}
