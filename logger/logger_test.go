package logger

import (
	"errors"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
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
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc").WithComponent("chunker")
	if l == nil {
		t.Fatal("expected non-nil component logger")
	}
	if l.service != "svc" {
		t.Errorf("component logger lost service name: %q", l.service)
	}
}

func TestWithRun(t *testing.T) {
	l := NewDefault("svc").WithRun("run-123")
	if l == nil {
		t.Fatal("expected non-nil run logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Fatalf("unexpected fields map: %v", m)
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Fatalf("expected dangling key to be dropped, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("probe", errors.New("boom"))
	if m[FieldOperation] != "probe" {
		t.Errorf("expected operation 'probe', got %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("expected error 'boom', got %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("cut", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestApplyDefaultsKeepsNoTimestamp(t *testing.T) {
	cfg := &Config{NoTimestamp: true}
	cfg.ApplyDefaults()
	if !cfg.NoTimestamp {
		t.Fatal("expected timestamp suppression to survive defaulting")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("suppressed-timestamp config should validate: %v", err)
	}
}

func TestGlobalLogger(t *testing.T) {
	l := NewDefault("global-test")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Fatal("expected global logger to round-trip")
	}
}
