package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filings-platform/accounts-service/pkg/events"
	"github.com/filings-platform/accounts-service/pkg/kafka"
	"github.com/filings-platform/accounts-service/pkg/outbox"
)

type fakeRepository struct {
	saved   []*outbox.OutboxEvent
	saveErr error
}

func (r *fakeRepository) Save(ctx context.Context, event *outbox.OutboxEvent) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, event)
	return nil
}

func (r *fakeRepository) FindUnpublished(ctx context.Context, limit int) ([]*outbox.OutboxEvent, error) {
	return nil, nil
}

func (r *fakeRepository) MarkPublished(ctx context.Context, eventID string) error { return nil }

func (r *fakeRepository) IncrementRetry(ctx context.Context, eventID string, errorMsg string) error {
	return nil
}

func (r *fakeRepository) DeletePublished(ctx context.Context, olderThan time.Duration) error {
	return nil
}

func TestResourceChangedStagesOutboxEvent(t *testing.T) {
	repo := &fakeRepository{}
	recorder := NewOutboxRecorder(events.NewEventFactory(events.SourceAccountsService), repo)

	data := events.ResourceEventData{
		TransactionID:    "tx-1",
		CompanyAccountID: "ca-1",
		Kind:             "small-full#stocks",
		ResourceID:       "doc-1",
		Etag:             "etag-1",
	}
	selfLink := "/transactions/tx-1/company-accounts/ca-1/small-full/notes/stocks"

	err := recorder.ResourceChanged(context.Background(), events.ResourceCreated, selfLink, data)
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	entry := repo.saved[0]
	assert.Equal(t, "doc-1", entry.AggregateID)
	assert.Equal(t, "small-full#stocks", entry.AggregateType)
	assert.Equal(t, kafka.Topics.AccountsEvents, entry.Topic)
	assert.Equal(t, events.ResourceCreated, entry.EventType)
	assert.False(t, entry.IsPublished())
	assert.True(t, entry.ShouldRetry())

	event, err := entry.ToFilingEvent()
	require.NoError(t, err)
	assert.Equal(t, events.ResourceCreated, event.Type)
	assert.Equal(t, events.SourceAccountsService, event.Source)
	assert.Equal(t, selfLink, event.Subject)
	assert.Equal(t, "tx-1", event.TransactionID)
	assert.Equal(t, "ca-1", event.CompanyAccountID)

	payload, err := json.Marshal(event.Data)
	require.NoError(t, err)
	var decoded events.ResourceEventData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, data, decoded)
}

func TestClosureCheckedStagesOutboxEvent(t *testing.T) {
	repo := &fakeRepository{}
	recorder := NewOutboxRecorder(events.NewEventFactory(events.SourceAccountsService), repo)

	err := recorder.ClosureChecked(context.Background(), "tx-1", "ca-1", false, 3)
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	entry := repo.saved[0]
	assert.Equal(t, "ca-1", entry.AggregateID)
	assert.Equal(t, "closure-check", entry.AggregateType)
	assert.Equal(t, events.ClosureChecked, entry.EventType)

	event, err := entry.ToFilingEvent()
	require.NoError(t, err)

	payload, err := json.Marshal(event.Data)
	require.NoError(t, err)
	var decoded events.ClosureCheckedData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "tx-1", decoded.TransactionID)
	assert.Equal(t, "ca-1", decoded.CompanyAccountID)
	assert.False(t, decoded.IsValid)
	assert.Equal(t, 3, decoded.ErrorCount)
}

func TestRecorderSurfacesRepositoryFailure(t *testing.T) {
	repo := &fakeRepository{saveErr: context.DeadlineExceeded}
	recorder := NewOutboxRecorder(events.NewEventFactory(events.SourceAccountsService), repo)

	err := recorder.ClosureChecked(context.Background(), "tx-1", "ca-1", true, 0)
	assert.Error(t, err)
}
