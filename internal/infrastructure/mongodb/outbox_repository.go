package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/filings-platform/accounts-service/pkg/mongodb"
	"github.com/filings-platform/accounts-service/pkg/outbox"
)

// OutboxRepository persists outbox events for the background publisher. It
// satisfies outbox.Repository.
type OutboxRepository struct {
	collection *mongodb.InstrumentedCollection
}

// NewOutboxRepository creates an OutboxRepository over the outbox collection
func NewOutboxRepository(collection *mongodb.InstrumentedCollection) *OutboxRepository {
	return &OutboxRepository{collection: collection}
}

// EnsureIndexes creates the indexes the publisher's polling query relies on
func (r *OutboxRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.CreateIndex(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "published_at", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
	return err
}

// Save stores a new outbox event
func (r *OutboxRepository) Save(ctx context.Context, event *outbox.OutboxEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindUnpublished retrieves unpublished events oldest first, capped at limit
func (r *OutboxRepository) FindUnpublished(ctx context.Context, limit int) ([]*outbox.OutboxEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{
		"published_at": bson.M{"$exists": false},
		"$expr":        bson.M{"$lt": bson.A{"$retry_count", "$max_retries"}},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*outbox.OutboxEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// MarkPublished stamps the event as delivered
func (r *OutboxRepository) MarkPublished(ctx context.Context, eventID string) error {
	now := time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$set": bson.M{"published_at": now}},
	)
	return err
}

// IncrementRetry bumps the retry count and records the last error
func (r *OutboxRepository) IncrementRetry(ctx context.Context, eventID string, errorMsg string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{
			"$inc": bson.M{"retry_count": 1},
			"$set": bson.M{"last_error": errorMsg},
		},
	)
	return err
}

// DeletePublished removes delivered events older than the given age
func (r *OutboxRepository) DeletePublished(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().UTC().Add(-olderThan)
	_, err := r.collection.Underlying().DeleteMany(ctx,
		bson.M{"published_at": bson.M{"$lt": cutoff}},
	)
	return err
}
