package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults_Success(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %s", cfg.Output)
	}
}

func TestConfig_Validate_RejectsBadLevel(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFields_PairsToMap(t *testing.T) {
	m := Fields("name", "bob", "count", 2)
	if m["name"] != "bob" {
		t.Errorf("expected name=bob, got %v", m["name"])
	}
	if m["count"] != 2 {
		t.Errorf("expected count=2, got %v", m["count"])
	}
}

func TestFields_OddArgsDropped(t *testing.T) {
	m := Fields("name", "bob", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestWithComponent_DoesNotMutateParent(t *testing.T) {
	parent := NewDefault("test")
	child := parent.WithComponent("identity")
	if child == parent {
		t.Error("expected a new logger instance")
	}
	// Both must remain usable.
	parent.Debug("parent ok")
	child.Debug("child ok")
}
