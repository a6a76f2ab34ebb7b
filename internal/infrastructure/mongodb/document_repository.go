// Package mongodb implements the storage ports over MongoDB collections.
// One repository implementation serves every resource kind, parameterized by
// collection and document factory; the uniform persisted shape is what makes
// that possible.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

// DocumentRepository persists one resource kind's documents. It satisfies
// domain.StorageAdapter.
type DocumentRepository struct {
	collection *mongodb.InstrumentedCollection
	newDoc     func() domain.StorageDocument
}

// NewDocumentRepository creates a repository over a collection. newDoc
// returns an empty document of the kind's concrete shape for decoding.
func NewDocumentRepository(collection *mongodb.InstrumentedCollection, newDoc func() domain.StorageDocument) *DocumentRepository {
	return &DocumentRepository{collection: collection, newDoc: newDoc}
}

// Insert persists a new document. A lost uniqueness race on _id surfaces as
// domain.ErrDuplicateKey for the generic service's Conflict outcome.
func (r *DocumentRepository) Insert(ctx context.Context, doc domain.StorageDocument) error {
	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return fmt.Errorf("%s %q: %w", r.collection.Name(), doc.DocID(), domain.ErrDuplicateKey)
		}
		return err
	}
	return nil
}

// FindByID fetches a document by id, returning (nil, nil) when absent
func (r *DocumentRepository) FindByID(ctx context.Context, id string) (domain.StorageDocument, error) {
	doc := r.newDoc()
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Replace overwrites the stored document in full, reporting whether a
// document was matched
func (r *DocumentRepository) Replace(ctx context.Context, doc domain.StorageDocument) (bool, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.DocID()}, doc)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// DeleteByID removes a document, reporting whether one existed
func (r *DocumentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
