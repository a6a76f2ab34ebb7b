package events

import (
	"context"

	"github.com/filings-platform/accounts-service/pkg/events"
	"github.com/filings-platform/accounts-service/pkg/kafka"
	"github.com/filings-platform/accounts-service/pkg/outbox"
)

// OutboxRecorder stages filing events in the transactional outbox. The
// background publisher delivers them to Kafka, so a broker outage never fails
// the write that produced the event.
type OutboxRecorder struct {
	factory    *events.EventFactory
	repository outbox.Repository
}

// NewOutboxRecorder creates an OutboxRecorder staging events for the accounts
// events topic
func NewOutboxRecorder(factory *events.EventFactory, repository outbox.Repository) *OutboxRecorder {
	return &OutboxRecorder{
		factory:    factory,
		repository: repository,
	}
}

// ResourceChanged stages a resource lifecycle event keyed on the affected
// resource
func (r *OutboxRecorder) ResourceChanged(ctx context.Context, eventType, selfLink string, data events.ResourceEventData) error {
	event := r.factory.CreateResourceEvent(ctx, eventType, selfLink, data)

	entry, err := outbox.NewOutboxEvent(data.ResourceID, data.Kind, kafka.Topics.AccountsEvents, event)
	if err != nil {
		return err
	}
	return r.repository.Save(ctx, entry)
}

// ClosureChecked stages the outcome of a closure check keyed on the company
// account
func (r *OutboxRecorder) ClosureChecked(ctx context.Context, transactionID, companyAccountID string, isValid bool, errorCount int) error {
	event := r.factory.CreateClosureCheckedEvent(ctx, transactionID, companyAccountID, isValid, errorCount)

	entry, err := outbox.NewOutboxEvent(companyAccountID, "closure-check", kafka.Topics.AccountsEvents, event)
	if err != nil {
		return err
	}
	return r.repository.Save(ctx, entry)
}
