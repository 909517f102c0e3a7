// Package observability wires OpenTelemetry tracing and metrics for the
// authentication service.
//
//	tp, _ := observability.InitTracer(ctx, cfg, "authd", version.Version)
//	defer tp.Shutdown(ctx)
//
//	mp, _ := observability.InitMeter(ctx, cfg, "authd", version.Version)
//	metrics, _ := observability.NewMetrics(observability.Meter("authd"))
//	metrics.RecordAuthentication(ctx, "success")
//
// All Metrics methods are nil-receiver safe so handlers never need to guard
// for a disabled pipeline.
package observability
