package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/authd/logger"
)

// InitMeter initializes the OpenTelemetry meter provider. Returns nil when
// the pipeline is disabled; otherwise the returned provider should be shut
// down on exit.
func InitMeter(ctx context.Context, cfg Config, serviceName, serviceVersion string) (*sdkmetric.MeterProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	cfg.ApplyDefaults()

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(serviceName, serviceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.Interval),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", serviceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments tracking authentication and identity
// administration activity.
type Metrics struct {
	authentications metric.Int64Counter
	tokensIssued    metric.Int64Counter
	identityOps     metric.Int64Counter
	identityCount   metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	authentications, err := meter.Int64Counter("auth.authentications",
		metric.WithDescription("Authentication attempts by result state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.authentications counter: %w", err)
	}

	tokensIssued, err := meter.Int64Counter("auth.tokens.issued",
		metric.WithDescription("Bearer tokens issued"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.tokens.issued counter: %w", err)
	}

	identityOps, err := meter.Int64Counter("auth.identity.operations",
		metric.WithDescription("Identity mutations by operation and result state"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.identity.operations counter: %w", err)
	}

	identityCount, err := meter.Int64UpDownCounter("auth.identity.count",
		metric.WithDescription("Registered identities"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating auth.identity.count gauge: %w", err)
	}

	return &Metrics{
		authentications: authentications,
		tokensIssued:    tokensIssued,
		identityOps:     identityOps,
		identityCount:   identityCount,
	}, nil
}

// RecordAuthentication records an authentication attempt with its result
// state.
func (m *Metrics) RecordAuthentication(ctx context.Context, state string) {
	if m == nil {
		return
	}
	m.authentications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state", state),
	))
}

// RecordTokenIssued records a successful token issuance.
func (m *Metrics) RecordTokenIssued(ctx context.Context) {
	if m == nil {
		return
	}
	m.tokensIssued.Add(ctx, 1)
}

// RecordIdentityOp records an identity mutation (add, set, remove) with its
// result state.
func (m *Metrics) RecordIdentityOp(ctx context.Context, op, state string) {
	if m == nil {
		return
	}
	m.identityOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("state", state),
	))
	if state == "success" {
		switch op {
		case "add":
			m.identityCount.Add(ctx, 1)
		case "remove":
			m.identityCount.Add(ctx, -1)
		}
	}
}
