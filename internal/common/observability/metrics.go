package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace"
)

type Observability struct {
	meterProvider   *metric.MeterProvider
	meter           otelmetric.Meter
	tracer          trace.Tracer
	missionCounter  otelmetric.Int64Counter
	missionDuration otelmetric.Float64Histogram
	stageDuration   otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	tracer := otel.Tracer(serviceName)

	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{tracer: tracer}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	missionCounter, _ := meter.Int64Counter(
		"missions.processed",
		otelmetric.WithDescription("Number of missions executed"),
	)

	missionDuration, _ := meter.Float64Histogram(
		"missions.duration",
		otelmetric.WithDescription("Mission execution duration"),
		otelmetric.WithUnit("ms"),
	)

	stageDuration, _ := meter.Float64Histogram(
		"missions.stage.duration",
		otelmetric.WithDescription("Duration of one mission execution stage"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		tracer:          tracer,
		missionCounter:  missionCounter,
		missionDuration: missionDuration,
		stageDuration:   stageDuration,
	}
}

// NewNoop returns an instance that records nothing. Spans come from the global no-op provider.
func NewNoop() *Observability {
	return &Observability{tracer: otel.Tracer("noop")}
}

// StartSpan opens a span under ctx. The returned func ends it and records the stage duration.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	if o == nil || o.tracer == nil {
		return ctx, func(error) {}
	}

	start := time.Now()
	ctx, span := o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
		}
		if o.stageDuration != nil {
			o.stageDuration.Record(ctx, float64(time.Since(start).Milliseconds()), otelmetric.WithAttributes(
				attribute.String("stage", name),
				attribute.Bool("failed", err != nil),
			))
		}
		span.End()
	}
}

func (o *Observability) RecordMissionProcessed(ctx context.Context, mode, status string) {
	if o != nil && o.missionCounter != nil {
		o.missionCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("mode", mode),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordMissionDuration(ctx context.Context, duration time.Duration, status string) {
	if o != nil && o.missionDuration != nil {
		o.missionDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
