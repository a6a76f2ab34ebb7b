package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/filings-platform/accounts-service/pkg/events"
)

// OutboxEvent represents an event stored in the outbox for reliable delivery
type OutboxEvent struct {
	ID            string          `bson:"_id" json:"id"`
	AggregateID   string          `bson:"aggregate_id" json:"aggregateId"`
	AggregateType string          `bson:"aggregate_type" json:"aggregateType"`
	EventType     string          `bson:"event_type" json:"eventType"`
	Topic         string          `bson:"topic" json:"topic"`
	Payload       json.RawMessage `bson:"payload" json:"payload"`
	CreatedAt     time.Time       `bson:"created_at" json:"createdAt"`
	PublishedAt   *time.Time      `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	RetryCount    int             `bson:"retry_count" json:"retryCount"`
	LastError     string          `bson:"last_error,omitempty" json:"lastError,omitempty"`
	MaxRetries    int             `bson:"max_retries" json:"maxRetries"`
}

// NewOutboxEvent creates an outbox event from a filing event. The aggregate is
// the resource the event describes, keyed by its storage document id.
func NewOutboxEvent(aggregateID, aggregateType, topic string, event *events.FilingEvent) (*OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		ID:            uuid.New().String(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     event.Type,
		Topic:         topic,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
		RetryCount:    0,
		MaxRetries:    10,
	}, nil
}

// IsPublished checks if the event has been published
func (e *OutboxEvent) IsPublished() bool {
	return e.PublishedAt != nil
}

// ShouldRetry checks if the event should be retried
func (e *OutboxEvent) ShouldRetry() bool {
	return !e.IsPublished() && e.RetryCount < e.MaxRetries
}

// ToFilingEvent decodes the outbox payload back into a filing event
func (e *OutboxEvent) ToFilingEvent() (*events.FilingEvent, error) {
	var event events.FilingEvent
	if err := json.Unmarshal(e.Payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
