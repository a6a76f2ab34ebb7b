package outbox

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filings-platform/accounts-service/pkg/logging"
)

func testLogger() *logging.Logger {
	return logging.New(&logging.Config{
		Level:       logging.LevelError,
		ServiceName: "test",
		Output:      io.Discard,
	})
}

type fakeRepository struct {
	pruned   []time.Duration
	pruneErr error
}

func (r *fakeRepository) Save(ctx context.Context, event *OutboxEvent) error { return nil }

func (r *fakeRepository) FindUnpublished(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (r *fakeRepository) MarkPublished(ctx context.Context, eventID string) error { return nil }

func (r *fakeRepository) IncrementRetry(ctx context.Context, eventID string, errorMsg string) error {
	return nil
}

func (r *fakeRepository) DeletePublished(ctx context.Context, olderThan time.Duration) error {
	r.pruned = append(r.pruned, olderThan)
	return r.pruneErr
}

func TestPruneDeletesEventsPastRetention(t *testing.T) {
	repo := &fakeRepository{}
	p := NewPublisher(repo, nil, testLogger(), nil, &PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		Retention:    48 * time.Hour,
	})

	p.pruneEvents(context.Background())

	require.Len(t, repo.pruned, 1)
	assert.Equal(t, 48*time.Hour, repo.pruned[0])
}

func TestPruneDisabledWithoutRetention(t *testing.T) {
	repo := &fakeRepository{}
	p := NewPublisher(repo, nil, testLogger(), nil, &PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})

	p.pruneEvents(context.Background())

	assert.Empty(t, repo.pruned)
}

func TestPruneFailureDoesNotPanic(t *testing.T) {
	repo := &fakeRepository{pruneErr: fmt.Errorf("collection unavailable")}
	p := NewPublisher(repo, nil, testLogger(), nil, nil)

	p.pruneEvents(context.Background())

	assert.Len(t, repo.pruned, 1)
}

func TestDefaultConfigCarriesRetention(t *testing.T) {
	cfg := DefaultPublisherConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.Retention)
}
