package application

import (
	"context"
	"testing"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/internal/registry"
	"github.com/filings-platform/accounts-service/internal/validation"
	"github.com/filings-platform/accounts-service/pkg/errors"
	"github.com/filings-platform/accounts-service/pkg/mongodb"
)

type fakeTransactions struct {
	tx  *domain.Transaction
	err error
}

func (f *fakeTransactions) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

type closureCall struct {
	transactionID    string
	companyAccountID string
	isValid          bool
	errorCount       int
}

type fakeClosureRecorder struct {
	calls []closureCall
}

func (r *fakeClosureRecorder) ClosureChecked(ctx context.Context, transactionID, companyAccountID string, isValid bool, errorCount int) error {
	r.calls = append(r.calls, closureCall{transactionID, companyAccountID, isValid, errorCount})
	return nil
}

// closureHarness wires a fully registered in-memory registry so scenarios
// only differ in the documents they seed.
type closureHarness struct {
	t        *testing.T
	adapters map[domain.ResourceKind]*fakeAdapter
	tx       *fakeTransactions
	recorder *fakeClosureRecorder
	svc      *ClosureService

	transactionID    string
	companyAccountID string
}

func newClosureHarness(t *testing.T, filerType domain.FilerType) *closureHarness {
	t.Helper()

	adapters := make(map[domain.ResourceKind]*fakeAdapter)
	reg := registry.New()
	for _, kind := range domain.AllKinds() {
		adapter := newFakeAdapter()
		adapters[kind] = adapter
		transformer, ok := TransformerFor(kind)
		if !ok {
			t.Fatalf("no transformer for %s", kind)
		}
		reg.RegisterAdapter(kind, adapter)
		reg.RegisterTransformer(kind, transformer)
	}
	reg.Seal()

	transactionID := "tx-1"
	tx := &fakeTransactions{tx: &domain.Transaction{
		ID:        transactionID,
		Status:    domain.TransactionStatusOpen,
		FilerType: filerType,
	}}
	recorder := &fakeClosureRecorder{}

	return &closureHarness{
		t:                t,
		adapters:         adapters,
		tx:               tx,
		recorder:         recorder,
		svc:              NewClosureService(reg, tx, recorder, testLogger(), nil),
		transactionID:    transactionID,
		companyAccountID: mongodb.GenerateDeterministicID(transactionID, domain.KindCompanyAccount.PathSegment()),
	}
}

func (h *closureHarness) seed(kind domain.ResourceKind, parentID string, rest domain.RestObject) {
	h.t.Helper()

	transformer, _ := TransformerFor(kind)
	doc, err := transformer.ToStorage(rest)
	if err != nil {
		h.t.Fatalf("seed %s: %v", kind, err)
	}
	doc.SetDocID(mongodb.GenerateDeterministicID(parentID, kind.PathSegment()))
	h.adapters[kind].docs[doc.DocID()] = doc
}

// seedFiling stores a company account linked to a small-full aggregate whose
// own links cover the named child kinds.
func (h *closureHarness) seedFiling(childKinds ...domain.ResourceKind) {
	h.t.Helper()

	h.seed(domain.KindCompanyAccount, h.transactionID, &domain.CompanyAccount{
		ResourceMeta: domain.ResourceMeta{Links: domain.Links{
			domain.KindSmallFull.LinkName(): "linked",
		}},
	})

	links := domain.Links{}
	for _, kind := range childKinds {
		links[kind.LinkName()] = "linked"
	}
	h.seed(domain.KindSmallFull, h.companyAccountID, &domain.SmallFull{
		ResourceMeta: domain.ResourceMeta{Links: links},
	})
}

func (h *closureHarness) validate() (*validation.Errors, error) {
	return h.svc.Validate(context.Background(), h.transactionID, h.companyAccountID)
}

func TestClosureCompanyAccountAbsent(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)

	_, err := h.validate()
	if err == nil {
		t.Fatal("expected an error for an absent company account")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
}

func TestClosureWithoutSmallFullIsValid(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seed(domain.KindCompanyAccount, h.transactionID, &domain.CompanyAccount{})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.IsEmpty() {
		t.Fatalf("expected an empty accumulator, got %v", errs.List())
	}
	if len(h.recorder.calls) != 1 || !h.recorder.calls[0].isValid {
		t.Fatalf("expected one valid closure event, got %+v", h.recorder.calls)
	}
}

func TestClosureSingleYearValid(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling(domain.KindCurrentPeriod)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{
			CapitalAndReserves: &domain.CapitalAndReserves{
				CalledUpShareCapital:   int64p(100),
				TotalShareholdersFunds: int64p(100),
			},
		},
	})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.IsEmpty() {
		t.Fatalf("expected a valid filing, got %v", errs.List())
	}
}

func TestClosureMissingCurrentPeriod(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling()

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs.Count() != 1 {
		t.Fatalf("expected a single error, got %v", errs.List())
	}
	if !errs.Contains(validation.KeyMandatoryElementMissing, "$.small_full.current_period") {
		t.Fatalf("expected mandatoryElementMissing at current_period, got %v", errs.List())
	}
	if len(h.recorder.calls) != 1 || h.recorder.calls[0].isValid || h.recorder.calls[0].errorCount != 1 {
		t.Fatalf("expected one invalid closure event, got %+v", h.recorder.calls)
	}
}

func TestClosureMultiYearRequiresPreviousPeriod(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeMultiYear)
	h.seedFiling(domain.KindCurrentPeriod, domain.KindPreviousPeriod)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{},
	})
	// previous period exists but carries no balance sheet
	h.seed(domain.KindPreviousPeriod, h.companyAccountID, &domain.PreviousPeriod{})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.Contains(validation.KeyMandatoryElementMissing, "$.small_full.previous_period.balance_sheet") {
		t.Fatalf("expected mandatoryElementMissing at previous_period.balance_sheet, got %v", errs.List())
	}
}

func TestClosureSingleYearIgnoresPreviousPeriod(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling(domain.KindCurrentPeriod)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{},
	})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.IsEmpty() {
		t.Fatalf("expected no previous-period demands for a single-year filer, got %v", errs.List())
	}
}

func TestClosureBalanceSheetFieldRequiresNote(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling(domain.KindCurrentPeriod)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{
			CurrentAssets: &domain.CurrentAssets{
				Stocks: int64p(50),
				Total:  int64p(50),
			},
		},
	})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.Contains(validation.KeyMandatoryElementMissing, validation.NotePath(domain.KindStocks)) {
		t.Fatalf("expected a missing stocks note, got %v", errs.List())
	}
	if errs.Count() != 1 {
		t.Fatalf("expected only the stocks note error, got %v", errs.List())
	}
}

func TestClosureValidatesLinkedNote(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling(domain.KindCurrentPeriod, domain.KindStocks)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{
			CurrentAssets: &domain.CurrentAssets{
				Stocks: int64p(50),
				Total:  int64p(50),
			},
		},
	})
	// total disagrees with the breakdown
	h.seed(domain.KindStocks, h.companyAccountID, &domain.StocksNote{
		CurrentPeriod: &domain.StocksAmounts{
			Stocks: int64p(50),
			Total:  int64p(60),
		},
	})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.Contains(validation.KeyIncorrectTotal, validation.NotePath(domain.KindStocks)+".current_period.total") {
		t.Fatalf("expected the stocks validator to run, got %v", errs.List())
	}
}

func TestClosureLinkedNoteDocumentAbsent(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling(domain.KindCurrentPeriod, domain.KindDebtors)
	h.seed(domain.KindCurrentPeriod, h.companyAccountID, &domain.CurrentPeriod{
		BalanceSheet: &domain.BalanceSheet{
			CurrentAssets: &domain.CurrentAssets{
				Debtors: int64p(25),
				Total:   int64p(25),
			},
		},
	})

	errs, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errs.Contains(validation.KeyMandatoryElementMissing, validation.NotePath(domain.KindDebtors)) {
		t.Fatalf("expected a missing debtors note, got %v", errs.List())
	}
}

func TestClosureCheckIsRepeatable(t *testing.T) {
	h := newClosureHarness(t, domain.FilerTypeSingleYear)
	h.seedFiling()

	first, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstList, secondList := first.List(), second.List()
	if len(firstList) != len(secondList) {
		t.Fatalf("expected identical runs, got %d and %d errors", len(firstList), len(secondList))
	}
	for i := range firstList {
		if firstList[i].MessageKey != secondList[i].MessageKey || firstList[i].Location != secondList[i].Location {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, firstList[i], secondList[i])
		}
	}
}
