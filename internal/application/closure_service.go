package application

import (
	"context"
	"time"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/internal/registry"
	"github.com/filings-platform/accounts-service/internal/validation"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/logging"
	"github.com/filings-platform/accounts-service/pkg/metrics"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

// TransactionGetter reads the externally owned filing transaction
type TransactionGetter interface {
	Get(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// ClosureRecorder stages a closure-checked event for delivery. Staging
// failures must not fail the check that produced the event.
type ClosureRecorder interface {
	ClosureChecked(ctx context.Context, transactionID, companyAccountID string, isValid bool, errorCount int) error
}

// ClosureService decides whether a filing is complete enough for its
// transaction to close. The check is a stateless graph traversal: rule units
// run in a fixed order, each may add zero or more errors, and the traversal
// never short-circuits. Two consecutive runs with no intervening writes
// yield identical accumulators.
type ClosureService struct {
	registry     *registry.Registry
	transactions TransactionGetter
	recorder     ClosureRecorder
	logger       *logging.Logger
	metrics      *metrics.Metrics
}

// NewClosureService creates a ClosureService. recorder and m may be nil.
func NewClosureService(
	reg *registry.Registry,
	transactions TransactionGetter,
	recorder ClosureRecorder,
	logger *logging.Logger,
	m *metrics.Metrics,
) *ClosureService {
	return &ClosureService{
		registry:     reg,
		transactions: transactions,
		recorder:     recorder,
		logger:       logger,
		metrics:      m,
	}
}

// fetch loads one resource by kind under a parent and transforms it to REST
// shape. Absent resources return (nil, nil); storage faults are fatal to the
// whole closure check and are never converted into validation errors.
func (s *ClosureService) fetch(ctx context.Context, kind domain.ResourceKind, parentID string) (domain.RestObject, error) {
	adapter, appErr := s.registry.Adapter(kind)
	if appErr != nil {
		return nil, appErr
	}
	transformer, appErr := s.registry.Transformer(kind)
	if appErr != nil {
		return nil, appErr
	}

	id := mongodb.GenerateDeterministicID(parentID, kind.PathSegment())
	doc, err := adapter.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrDataException("find "+string(kind), err)
	}
	if doc == nil {
		return nil, nil
	}
	return transformer.ToRest(doc)
}

// Validate runs the closure check for one filing. The two externally visible
// states are Valid (empty accumulator) and Invalid (non-empty); there is no
// partial state.
func (s *ClosureService) Validate(ctx context.Context, transactionID, companyAccountID string) (*validation.Errors, error) {
	start := time.Now()
	errs := validation.NewErrors()

	companyAccount, err := s.fetch(ctx, domain.KindCompanyAccount, transactionID)
	if err != nil {
		return nil, err
	}
	if companyAccount == nil {
		return nil, errors.ErrNotFoundWithID("company-account", companyAccountID)
	}

	// No small-full aggregate means there is nothing for this engine to
	// validate; a different accounts-type branch may apply.
	if !companyAccount.Meta().HasLink(domain.KindSmallFull.LinkName()) {
		s.observe(ctx, transactionID, companyAccountID, errs, start)
		return errs, nil
	}

	smallFull, err := s.fetch(ctx, domain.KindSmallFull, companyAccountID)
	if err != nil {
		return nil, err
	}
	if smallFull == nil {
		s.logger.Warn("small-full link present but document absent",
			"transactionId", transactionID, "companyAccountId", companyAccountID)
		s.observe(ctx, transactionID, companyAccountID, errs, start)
		return errs, nil
	}

	currentBS, err := s.checkPeriod(ctx, smallFull, domain.KindCurrentPeriod, companyAccountID,
		"$.small_full.current_period", errs, true)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactions.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	multiYear := tx.FilerType.IsMultiYear()

	var previousBS *domain.BalanceSheet
	if multiYear {
		previousBS, err = s.checkPeriod(ctx, smallFull, domain.KindPreviousPeriod, companyAccountID,
			"$.small_full.previous_period", errs, true)
		if err != nil {
			return nil, err
		}
	}

	// Union of the note kinds required by either period's balance sheet;
	// each required note is checked and validated once, the accumulator
	// dedupes any overlap.
	required := requiredNoteKinds(currentBS, previousBS)
	for _, kind := range required {
		if !smallFull.Meta().HasLink(kind.LinkName()) {
			errs.AddAt(validation.KeyMandatoryElementMissing, validation.NotePath(kind))
			continue
		}

		note, err := s.fetch(ctx, kind, companyAccountID)
		if err != nil {
			return nil, err
		}
		if note == nil {
			errs.AddAt(validation.KeyMandatoryElementMissing, validation.NotePath(kind))
			continue
		}

		if validator, ok := validation.ForKind(kind); ok {
			validator.Validate(note, errs)
		}
	}

	s.observe(ctx, transactionID, companyAccountID, errs, start)
	return errs, nil
}

// checkPeriod applies the period presence rules: a missing link is an error
// when mandatory, a present link requires the period's balance sheet to be
// non-null. Returns the balance sheet when one is present.
func (s *ClosureService) checkPeriod(
	ctx context.Context,
	smallFull domain.RestObject,
	kind domain.ResourceKind,
	companyAccountID string,
	path string,
	errs *validation.Errors,
	mandatory bool,
) (*domain.BalanceSheet, error) {
	if !smallFull.Meta().HasLink(kind.LinkName()) {
		if mandatory {
			errs.AddAt(validation.KeyMandatoryElementMissing, path)
		}
		return nil, nil
	}

	period, err := s.fetch(ctx, kind, companyAccountID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		if mandatory {
			errs.AddAt(validation.KeyMandatoryElementMissing, path)
		}
		return nil, nil
	}

	bs := balanceSheetOf(period)
	if bs == nil {
		errs.AddAt(validation.KeyMandatoryElementMissing, path+".balance_sheet")
	}
	return bs, nil
}

func balanceSheetOf(period domain.RestObject) *domain.BalanceSheet {
	switch p := period.(type) {
	case *domain.CurrentPeriod:
		return p.BalanceSheet
	case *domain.PreviousPeriod:
		return p.BalanceSheet
	default:
		return nil
	}
}

// requiredNoteKinds returns, in rule order, the note kinds made mandatory by
// a non-null field on either balance sheet
func requiredNoteKinds(current, previous *domain.BalanceSheet) []domain.ResourceKind {
	var kinds []domain.ResourceKind
	for _, cond := range noteConditions {
		requiredBy := func(bs *domain.BalanceSheet) bool {
			return bs != nil && cond.field(bs) != nil
		}
		if requiredBy(current) || requiredBy(previous) {
			kinds = append(kinds, cond.kind)
		}
	}
	return kinds
}

func (s *ClosureService) observe(ctx context.Context, transactionID, companyAccountID string, errs *validation.Errors, start time.Time) {
	duration := time.Since(start)
	if s.logger != nil {
		s.logger.ClosureCheck(ctx, transactionID, companyAccountID, errs.IsEmpty(), errs.Count(), duration)
	}
	if s.metrics != nil {
		s.metrics.RecordClosureCheck(errs.IsEmpty(), duration)
		for _, e := range errs.List() {
			s.metrics.RecordValidationError(e.MessageKey)
		}
	}
	if s.recorder != nil {
		if err := s.recorder.ClosureChecked(ctx, transactionID, companyAccountID, errs.IsEmpty(), errs.Count()); err != nil {
			s.logger.WithError(err).Warn("failed to stage closure-checked event",
				"transactionId", transactionID, "companyAccountId", companyAccountID)
		}
	}
}
