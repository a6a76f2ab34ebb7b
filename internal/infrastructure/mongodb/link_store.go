package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

// LinkStore mutates the named links on a stored parent aggregate. Each link
// write touches a single field on a single document, so concurrent creation
// of distinct children under the same parent is safe: distinct links write
// distinct keys.
type LinkStore struct {
	collection *mongodb.InstrumentedCollection
	docID      func(parentID string) string
}

// NewLinkStore creates a LinkStore over the parent kind's collection. The
// parent id passed by callers is the parent document's _id.
func NewLinkStore(collection *mongodb.InstrumentedCollection) *LinkStore {
	return &LinkStore{
		collection: collection,
		docID:      func(parentID string) string { return parentID },
	}
}

// NewDerivedLinkStore creates a LinkStore whose parent document _id is
// derived from the caller's parent id and the parent kind's path segment.
// Period and note resources address their parent by company account id, but
// the links live on the small-full document.
func NewDerivedLinkStore(collection *mongodb.InstrumentedCollection, parentSegment string) *LinkStore {
	return &LinkStore{
		collection: collection,
		docID: func(parentID string) string {
			return mongodb.GenerateDeterministicID(parentID, parentSegment)
		},
	}
}

// SetLink sets the named link on the parent document. Setting an
// already-set link to the same location is a no-op, which is what makes
// link repair after a partial failure idempotent.
func (s *LinkStore) SetLink(ctx context.Context, parentID, linkName, location string) error {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": s.docID(parentID)},
		mongodb.BuildSetField("data.links."+linkName, location),
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set link %q: %w", linkName, domain.ErrNoParentDocument)
	}
	return nil
}

// UnsetLink removes the named link from the parent document. Unsetting an
// absent link is a no-op.
func (s *LinkStore) UnsetLink(ctx context.Context, parentID, linkName string) error {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": s.docID(parentID)},
		mongodb.BuildUnsetField("data.links."+linkName),
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("unset link %q: %w", linkName, domain.ErrNoParentDocument)
	}
	return nil
}
