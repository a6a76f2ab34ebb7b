package kafka

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/filings-platform/accounts-service/pkg/events"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/metrics"
	"github.com/filings-platform/accounts-service/pkg/tracing"
)

func addFilingEventAttributes(span trace.Span, event *events.FilingEvent) {
	if event.TransactionID != "" {
		span.SetAttributes(attribute.String("filing.transaction_id", event.TransactionID))
	}
	if event.CompanyAccountID != "" {
		span.SetAttributes(attribute.String("filing.company_account_id", event.CompanyAccountID))
	}
	if event.CorrelationID != "" {
		span.SetAttributes(attribute.String("filing.correlation_id", event.CorrelationID))
	}
}

// InstrumentedProducer wraps a Producer with metrics and tracing
type InstrumentedProducer struct {
	producer *Producer
	metrics  *metrics.Metrics
	logger   *logging.Logger
	tracer   trace.Tracer
}

// NewInstrumentedProducer creates a new instrumented producer
func NewInstrumentedProducer(producer *Producer, m *metrics.Metrics, logger *logging.Logger) *InstrumentedProducer {
	return &InstrumentedProducer{
		producer: producer,
		metrics:  m,
		logger:   logger,
		tracer:   otel.Tracer("kafka-producer"),
	}
}

// PublishEvent publishes a filing event with metrics and tracing
func (p *InstrumentedProducer) PublishEvent(ctx context.Context, topic string, event *events.FilingEvent) error {
	start := time.Now()

	ctx, span := p.tracer.Start(ctx, "kafka.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKey.String("kafka"),
			semconv.MessagingDestinationNameKey.String(topic),
			semconv.MessagingOperationKey.String("publish"),
			attribute.String("messaging.kafka.event_type", event.Type),
			attribute.String("messaging.message_id", event.ID),
		),
	)
	defer span.End()

	addFilingEventAttributes(span, event)

	// Propagate the current trace context on the event itself so consumers
	// can continue the trace.
	carrier := tracing.MapCarrier{}
	tracing.InjectTraceContext(ctx, carrier)
	if tp, ok := carrier["traceparent"]; ok {
		event.TraceParent = tp
	}
	if ts, ok := carrier["tracestate"]; ok {
		event.TraceState = ts
	}

	err := p.producer.PublishEvent(ctx, topic, event)
	duration := time.Since(start)

	success := err == nil
	if p.metrics != nil {
		p.metrics.RecordKafkaPublish(topic, event.Type, success, duration)
	}

	if p.logger != nil {
		p.logger.KafkaPublish(ctx, topic, event.Type, success, duration)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
		span.SetAttributes(attribute.Int64("messaging.duration_ms", duration.Milliseconds()))
	}

	return err
}

// PublishEventAsync publishes a filing event asynchronously with metrics
func (p *InstrumentedProducer) PublishEventAsync(ctx context.Context, topic string, event *events.FilingEvent, callback func(error)) {
	p.producer.PublishEventAsync(ctx, topic, event, func(err error) {
		if p.metrics != nil {
			p.metrics.RecordKafkaPublish(topic, event.Type, err == nil, 0)
		}
		if p.logger != nil && err != nil {
			p.logger.WithError(err).Error("async publish failed",
				"topic", topic, "event_type", event.Type, "event_id", event.ID)
		}
		if callback != nil {
			callback(err)
		}
	})
}

// Close closes the underlying producer
func (p *InstrumentedProducer) Close() error {
	return p.producer.Close()
}
