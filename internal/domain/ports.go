package domain

import (
	"context"
	"errors"
)

// ErrDuplicateKey is returned by a storage adapter when an insert loses a
// uniqueness race. The generic service reports it as a Conflict outcome, not
// a failure.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNoParentDocument is returned by a parent link store when the aggregate
// a link write targets does not exist. Links and child documents move in
// lock-step; a link write that matches nothing must never report success.
var ErrNoParentDocument = errors.New("parent document not found")

// StorageAdapter persists one resource kind's documents. FindByID returns
// (nil, nil) for an absent document.
type StorageAdapter interface {
	Insert(ctx context.Context, doc StorageDocument) error
	FindByID(ctx context.Context, id string) (StorageDocument, error)
	Replace(ctx context.Context, doc StorageDocument) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Transformer converts between a kind's REST and storage shapes. The round
// trip must be lossless for every field defined on the REST shape.
type Transformer interface {
	ToStorage(rest RestObject) (StorageDocument, error)
	ToRest(doc StorageDocument) (RestObject, error)
	// NewRest returns an empty REST object of the kind, used for request
	// binding.
	NewRest() RestObject
}

// ParentLinkStore mutates the named links on a parent aggregate. For most
// kinds the parent is another stored document; for the company account the
// parent is the externally owned transaction.
type ParentLinkStore interface {
	SetLink(ctx context.Context, parentID, linkName, location string) error
	UnsetLink(ctx context.Context, parentID, linkName string) error
}
