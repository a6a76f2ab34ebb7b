package validation

import (
	"testing"

	"github.com/filings-platform/accounts-service/internal/domain"
)

func TestValidateBalanceSheetSectionTotals(t *testing.T) {
	base := "$.small_full.current_period.balance_sheet"

	t.Run("consistent sheet passes", func(t *testing.T) {
		bs := &domain.BalanceSheet{
			CalledUpShareCapitalNotPaid: int64p(5),
			FixedAssets: &domain.FixedAssets{
				IntangibleAssets: int64p(100),
				TangibleAssets:   int64p(400),
				Total:            int64p(500),
			},
			CurrentAssets: &domain.CurrentAssets{
				Stocks:              int64p(50),
				Debtors:             int64p(30),
				CashAtBankAndInHand: int64p(20),
				Total:               int64p(100),
			},
			CapitalAndReserves: &domain.CapitalAndReserves{
				CalledUpShareCapital:   int64p(10),
				ProfitAndLoss:          int64p(590),
				TotalShareholdersFunds: int64p(600),
			},
		}

		errs := NewErrors()
		ValidateBalanceSheet(errs, base, bs)
		if !errs.IsEmpty() {
			t.Fatalf("expected no errors, got %v", errs.List())
		}
	})

	t.Run("fixed assets total mismatch", func(t *testing.T) {
		bs := &domain.BalanceSheet{
			FixedAssets: &domain.FixedAssets{
				TangibleAssets: int64p(400),
				Total:          int64p(500),
			},
		}

		errs := NewErrors()
		ValidateBalanceSheet(errs, base, bs)
		if !errs.Contains(KeyIncorrectTotal, base+".fixed_assets.total") {
			t.Fatalf("expected incorrectTotal at fixed_assets.total, got %v", errs.List())
		}
	})

	t.Run("current assets total mismatch", func(t *testing.T) {
		bs := &domain.BalanceSheet{
			CurrentAssets: &domain.CurrentAssets{
				Stocks:  int64p(50),
				Debtors: int64p(30),
				Total:   int64p(100),
			},
		}

		errs := NewErrors()
		ValidateBalanceSheet(errs, base, bs)
		if !errs.Contains(KeyIncorrectTotal, base+".current_assets.total") {
			t.Fatalf("expected incorrectTotal at current_assets.total, got %v", errs.List())
		}
	})

	t.Run("shareholders funds mismatch", func(t *testing.T) {
		bs := &domain.BalanceSheet{
			CapitalAndReserves: &domain.CapitalAndReserves{
				CalledUpShareCapital:   int64p(10),
				SharePremiumAccount:    int64p(5),
				TotalShareholdersFunds: int64p(100),
			},
		}

		errs := NewErrors()
		ValidateBalanceSheet(errs, base, bs)
		if !errs.Contains(KeyIncorrectTotal, base+".capital_and_reserves.total_shareholders_funds") {
			t.Fatalf("expected incorrectTotal at total_shareholders_funds, got %v", errs.List())
		}
	})

	t.Run("field outside signed range", func(t *testing.T) {
		bs := &domain.BalanceSheet{
			OtherLiabilitiesOrAssets: &domain.OtherLiabilitiesOrAssets{
				TotalNetAssets: int64p(100000000),
			},
		}

		errs := NewErrors()
		ValidateBalanceSheet(errs, base, bs)
		if !errs.Contains(KeyValueOutsideRange, base+".other_liabilities_or_assets.total_net_assets") {
			t.Fatalf("expected valueOutsideRange, got %v", errs.List())
		}
	})

	t.Run("nil sheet is a no-op", func(t *testing.T) {
		errs := NewErrors()
		ValidateBalanceSheet(errs, base, nil)
		if !errs.IsEmpty() {
			t.Fatalf("expected no errors for nil sheet, got %v", errs.List())
		}
	})
}

func TestValidateCurrentPeriod(t *testing.T) {
	t.Run("missing balance sheet is mandatory", func(t *testing.T) {
		errs := NewErrors()
		ValidateCurrentPeriod(&domain.CurrentPeriod{}, errs)
		if !errs.Contains(KeyMandatoryElementMissing, "$.small_full.current_period.balance_sheet") {
			t.Fatalf("expected mandatoryElementMissing, got %v", errs.List())
		}
		if errs.Count() != 1 {
			t.Fatalf("expected a single error, got %d", errs.Count())
		}
	})

	t.Run("sheet errors carry the current period path", func(t *testing.T) {
		period := &domain.CurrentPeriod{
			BalanceSheet: &domain.BalanceSheet{
				FixedAssets: &domain.FixedAssets{
					TangibleAssets: int64p(10),
					Total:          int64p(99),
				},
			},
		}

		errs := NewErrors()
		ValidateCurrentPeriod(period, errs)
		if !errs.Contains(KeyIncorrectTotal, "$.small_full.current_period.balance_sheet.fixed_assets.total") {
			t.Fatalf("expected incorrectTotal under current_period, got %v", errs.List())
		}
	})

	t.Run("wrong rest type is ignored", func(t *testing.T) {
		errs := NewErrors()
		ValidateCurrentPeriod(&domain.PreviousPeriod{}, errs)
		if !errs.IsEmpty() {
			t.Fatalf("expected no errors, got %v", errs.List())
		}
	})
}

func TestValidatePreviousPeriod(t *testing.T) {
	t.Run("missing balance sheet is mandatory", func(t *testing.T) {
		errs := NewErrors()
		ValidatePreviousPeriod(&domain.PreviousPeriod{}, errs)
		if !errs.Contains(KeyMandatoryElementMissing, "$.small_full.previous_period.balance_sheet") {
			t.Fatalf("expected mandatoryElementMissing, got %v", errs.List())
		}
	})

	t.Run("sheet errors carry the previous period path", func(t *testing.T) {
		period := &domain.PreviousPeriod{
			BalanceSheet: &domain.BalanceSheet{
				CurrentAssets: &domain.CurrentAssets{
					Debtors: int64p(10),
					Total:   int64p(11),
				},
			},
		}

		errs := NewErrors()
		ValidatePreviousPeriod(period, errs)
		if !errs.Contains(KeyIncorrectTotal, "$.small_full.previous_period.balance_sheet.current_assets.total") {
			t.Fatalf("expected incorrectTotal under previous_period, got %v", errs.List())
		}
	})
}

func TestSubmissionValidatorFor(t *testing.T) {
	withRules := append([]domain.ResourceKind{
		domain.KindCurrentPeriod,
		domain.KindPreviousPeriod,
	}, domain.NoteKinds()...)

	for _, kind := range withRules {
		if _, ok := SubmissionValidatorFor(kind); !ok {
			t.Errorf("expected a submission validator for %s", kind)
		}
	}

	for _, kind := range []domain.ResourceKind{domain.KindCompanyAccount, domain.KindSmallFull} {
		if _, ok := SubmissionValidatorFor(kind); ok {
			t.Errorf("expected no submission validator for %s", kind)
		}
	}
}

func TestSubmissionValidatorForPeriodDispatch(t *testing.T) {
	validator, ok := SubmissionValidatorFor(domain.KindCurrentPeriod)
	if !ok {
		t.Fatal("expected a validator for the current period kind")
	}

	errs := NewErrors()
	validator.Validate(&domain.CurrentPeriod{}, errs)
	if !errs.Contains(KeyMandatoryElementMissing, "$.small_full.current_period.balance_sheet") {
		t.Fatalf("expected the current period rules to run, got %v", errs.List())
	}
}
