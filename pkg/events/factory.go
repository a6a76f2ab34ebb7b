package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventFactory creates filing events for a specific source
type EventFactory struct {
	source string
}

// NewEventFactory creates a new EventFactory for a specific source
func NewEventFactory(source string) *EventFactory {
	return &EventFactory{source: source}
}

// CreateEvent creates a new FilingEvent with the given parameters
func (f *EventFactory) CreateEvent(
	ctx context.Context,
	eventType string,
	subject string,
	data interface{},
) *FilingEvent {
	return &FilingEvent{
		SpecVersion:     "1.0",
		Type:            eventType,
		Source:          f.source,
		Subject:         subject,
		ID:              uuid.New().String(),
		Time:            time.Now().UTC(),
		DataContentType: "application/json",
		Data:            data,
	}
}

// CreateResourceEvent creates a resource lifecycle event. The subject is the
// resource's self link so consumers can key on the affected resource.
func (f *EventFactory) CreateResourceEvent(
	ctx context.Context,
	eventType string,
	selfLink string,
	data ResourceEventData,
) *FilingEvent {
	event := f.CreateEvent(ctx, eventType, selfLink, data)
	event.TransactionID = data.TransactionID
	event.CompanyAccountID = data.CompanyAccountID
	return event
}

// CreateClosureCheckedEvent creates a ClosureChecked event
func (f *EventFactory) CreateClosureCheckedEvent(
	ctx context.Context,
	transactionID string,
	companyAccountID string,
	isValid bool,
	errorCount int,
) *FilingEvent {
	data := ClosureCheckedData{
		TransactionID:    transactionID,
		CompanyAccountID: companyAccountID,
		IsValid:          isValid,
		ErrorCount:       errorCount,
	}
	event := f.CreateEvent(ctx, ClosureChecked,
		"transaction/"+transactionID+"/company-account/"+companyAccountID, data)
	event.TransactionID = transactionID
	event.CompanyAccountID = companyAccountID
	return event
}
