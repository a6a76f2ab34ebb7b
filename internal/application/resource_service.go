package application

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/events"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/metrics"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

// Outcome is the caller-visible result of a generic resource operation
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
	OutcomeFound
	OutcomeDeleted
	OutcomeNotFound
	OutcomeConflict
)

// String returns the outcome label used in logs and metrics
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeFound:
		return "found"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// FilingContext carries the route identifiers every operation runs under
type FilingContext struct {
	TransactionID    string
	CompanyAccountID string
}

// EventRecorder stages a filing lifecycle event for delivery. Staging
// failures must not fail the operation that produced the event.
type EventRecorder interface {
	ResourceChanged(ctx context.Context, eventType, selfLink string, data events.ResourceEventData) error
}

// ResourceService implements create/update/find/delete once, parameterized by
// the kind's storage adapter, transformer and parent link store. Every
// concrete resource kind reuses this one implementation.
type ResourceService struct {
	kind      domain.ResourceKind
	adapter   domain.StorageAdapter
	transform domain.Transformer
	parents   domain.ParentLinkStore
	recorder  EventRecorder
	logger    *logging.Logger
	metrics   *metrics.Metrics
}

// NewResourceService creates a ResourceService for one kind. recorder and m
// may be nil.
func NewResourceService(
	kind domain.ResourceKind,
	adapter domain.StorageAdapter,
	transform domain.Transformer,
	parents domain.ParentLinkStore,
	recorder EventRecorder,
	logger *logging.Logger,
	m *metrics.Metrics,
) *ResourceService {
	return &ResourceService{
		kind:      kind,
		adapter:   adapter,
		transform: transform,
		parents:   parents,
		recorder:  recorder,
		logger:    logger,
		metrics:   m,
	}
}

// Kind returns the resource kind the service is bound to
func (s *ResourceService) Kind() domain.ResourceKind { return s.kind }

// NewRest returns an empty REST object of the service's kind for request
// binding
func (s *ResourceService) NewRest() domain.RestObject { return s.transform.NewRest() }

// ResourceID computes the document id for this kind under a parent. The id
// is deterministic, so concurrent duplicate creates collide on the store's
// unique _id instead of producing two documents.
func (s *ResourceService) ResourceID(parentID string) string {
	return mongodb.GenerateDeterministicID(parentID, s.kind.PathSegment())
}

func (s *ResourceService) observe(ctx context.Context, operation string, outcome Outcome, start time.Time) {
	if s.logger != nil {
		s.logger.ResourceOperation(ctx, string(s.kind), operation, outcome.String(), time.Since(start))
	}
	if s.metrics != nil {
		s.metrics.RecordResourceOperation(string(s.kind), operation, outcome.String())
	}
}

// Create persists a new resource and links it on its parent. A duplicate key
// from the store is reported as OutcomeConflict, not an error; link repair is
// attempted on that path too so a retried create converges.
func (s *ResourceService) Create(ctx context.Context, fc FilingContext, parentID string, rest domain.RestObject) (domain.RestObject, Outcome, error) {
	start := time.Now()

	id := s.ResourceID(parentID)
	caID := fc.CompanyAccountID
	if s.kind == domain.KindCompanyAccount {
		caID = id
	}
	self := s.kind.SelfLink(fc.TransactionID, caID)

	meta := rest.Meta()
	meta.Etag = uuid.NewString()
	meta.Kind = string(s.kind)
	meta.Links = domain.Links{domain.LinkSelf: self}

	doc, err := s.transform.ToStorage(rest)
	if err != nil {
		return nil, OutcomeNotFound, err
	}
	doc.SetDocID(id)

	if err := s.adapter.Insert(ctx, doc); err != nil {
		if stderrors.Is(err, domain.ErrDuplicateKey) {
			// The child already exists from an earlier attempt; repair the
			// parent link so both sides converge, then report the race.
			if linkErr := s.parents.SetLink(ctx, parentID, s.kind.LinkName(), self); linkErr != nil {
				s.logger.WithError(linkErr).Warn("link repair after conflict failed",
					"kind", string(s.kind), "parentId", parentID)
			}
			s.observe(ctx, "create", OutcomeConflict, start)
			return nil, OutcomeConflict, nil
		}
		return nil, OutcomeNotFound, errors.ErrDataException("insert "+string(s.kind), err)
	}

	if err := s.parents.SetLink(ctx, parentID, s.kind.LinkName(), self); err != nil {
		// The child is not rolled back; a retried create repairs the link.
		return nil, OutcomeCreated, errors.ErrDataException("link "+string(s.kind), err)
	}

	s.record(ctx, events.ResourceCreated, self, id, meta.Etag, fc)
	s.observe(ctx, "create", OutcomeCreated, start)
	return rest, OutcomeCreated, nil
}

// Update replaces the stored resource in full. The resource must already
// exist; OutcomeNotFound is distinct from a validation failure.
func (s *ResourceService) Update(ctx context.Context, fc FilingContext, parentID string, rest domain.RestObject) (domain.RestObject, Outcome, error) {
	start := time.Now()

	id := s.ResourceID(parentID)
	existing, err := s.adapter.FindByID(ctx, id)
	if err != nil {
		return nil, OutcomeNotFound, errors.ErrDataException("find "+string(s.kind), err)
	}
	if existing == nil {
		s.observe(ctx, "update", OutcomeNotFound, start)
		return nil, OutcomeNotFound, nil
	}

	meta := rest.Meta()
	meta.Etag = uuid.NewString()
	meta.Kind = string(s.kind)
	meta.Links = existing.DataMeta().Links

	doc, err := s.transform.ToStorage(rest)
	if err != nil {
		return nil, OutcomeNotFound, err
	}
	doc.SetDocID(id)

	if _, err := s.adapter.Replace(ctx, doc); err != nil {
		return nil, OutcomeNotFound, errors.ErrDataException("replace "+string(s.kind), err)
	}

	s.record(ctx, events.ResourceUpdated, meta.SelfLink(), id, meta.Etag, fc)
	s.observe(ctx, "update", OutcomeUpdated, start)
	return rest, OutcomeUpdated, nil
}

// Find fetches the resource under a parent and transforms it to REST shape
func (s *ResourceService) Find(ctx context.Context, parentID string) (domain.RestObject, Outcome, error) {
	start := time.Now()

	doc, err := s.adapter.FindByID(ctx, s.ResourceID(parentID))
	if err != nil {
		return nil, OutcomeNotFound, errors.ErrDataException("find "+string(s.kind), err)
	}
	if doc == nil {
		s.observe(ctx, "find", OutcomeNotFound, start)
		return nil, OutcomeNotFound, nil
	}

	rest, err := s.transform.ToRest(doc)
	if err != nil {
		return nil, OutcomeNotFound, err
	}

	s.observe(ctx, "find", OutcomeFound, start)
	return rest, OutcomeFound, nil
}

// Delete removes the stored resource and clears the parent's named link.
// Idempotent: deleting an absent resource is OutcomeNotFound, not a storage
// fault, and the link is unset regardless so both sides converge after a
// partial prior failure.
func (s *ResourceService) Delete(ctx context.Context, fc FilingContext, parentID string) (Outcome, error) {
	start := time.Now()

	id := s.ResourceID(parentID)
	deleted, err := s.adapter.DeleteByID(ctx, id)
	if err != nil {
		return OutcomeNotFound, errors.ErrDataException("delete "+string(s.kind), err)
	}

	if err := s.parents.UnsetLink(ctx, parentID, s.kind.LinkName()); err != nil {
		return OutcomeDeleted, errors.ErrDataException("unlink "+string(s.kind), err)
	}

	if !deleted {
		s.observe(ctx, "delete", OutcomeNotFound, start)
		return OutcomeNotFound, nil
	}

	caID := fc.CompanyAccountID
	if s.kind == domain.KindCompanyAccount {
		caID = id
	}
	s.record(ctx, events.ResourceDeleted, s.kind.SelfLink(fc.TransactionID, caID), id, "", fc)
	s.observe(ctx, "delete", OutcomeDeleted, start)
	return OutcomeDeleted, nil
}

func (s *ResourceService) record(ctx context.Context, eventType, selfLink, id, etag string, fc FilingContext) {
	if s.recorder == nil {
		return
	}
	data := events.ResourceEventData{
		TransactionID:    fc.TransactionID,
		CompanyAccountID: fc.CompanyAccountID,
		Kind:             string(s.kind),
		ResourceID:       id,
		Etag:             etag,
	}
	if err := s.recorder.ResourceChanged(ctx, eventType, selfLink, data); err != nil {
		s.logger.WithError(err).Warn("failed to stage filing event",
			"kind", string(s.kind), "eventType", eventType)
	}
}
