package observability

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected default sample rate 1.0, got %v", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected default interval 15s, got %v", cfg.Interval)
	}
}

func TestConfig_Validate_RejectsBadSampleRate(t *testing.T) {
	cfg := Config{SampleRate: 1.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected sample rate > 1 to be rejected")
	}
}

func TestInit_DisabledReturnsNilProviders(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Enabled: false}

	tp, err := InitTracer(ctx, cfg, "authd", "test")
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if tp != nil {
		t.Error("expected nil tracer provider when disabled")
	}

	mp, err := InitMeter(ctx, cfg, "authd", "test")
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}
	if mp != nil {
		t.Error("expected nil meter provider when disabled")
	}
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()

	m.RecordAuthentication(ctx, "success")
	m.RecordTokenIssued(ctx)
	m.RecordIdentityOp(ctx, "add", "success")
}

func TestNewMetrics(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer mp.Shutdown(context.Background())

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordAuthentication(ctx, "failed")
	m.RecordTokenIssued(ctx)
	m.RecordIdentityOp(ctx, "add", "success")
	m.RecordIdentityOp(ctx, "remove", "success")
}

func TestServiceHealth_DegradesOnComponentFailure(t *testing.T) {
	sh := NewServiceHealth("authd", "test")
	if sh.Status != HealthStatusUp {
		t.Fatalf("expected fresh health to be up, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "identity", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("healthy component must not degrade status, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "tokens", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected degraded, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "providers", Status: HealthStatusDown})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected down, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "late", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("down must stick, got %s", sh.Status)
	}
}
