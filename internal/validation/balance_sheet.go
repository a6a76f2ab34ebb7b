package validation

import (
	"github.com/filings-platform/accounts-service/internal/domain"
)

// ValidateBalanceSheet runs the submission-level checks on a period's balance
// sheet: signed monetary ranges on every field and breakdown-vs-total
// arithmetic per section. basePath addresses the owning period, e.g.
// "$.small_full.current_period.balance_sheet".
func ValidateBalanceSheet(errs *Errors, basePath string, bs *domain.BalanceSheet) {
	if bs == nil {
		return
	}

	CheckRange(errs, basePath+".called_up_share_capital_not_paid", bs.CalledUpShareCapitalNotPaid)

	if fa := bs.FixedAssets; fa != nil {
		base := basePath + ".fixed_assets"
		CheckRange(errs, base+".intangible_assets", fa.IntangibleAssets)
		CheckRange(errs, base+".tangible_assets", fa.TangibleAssets)
		CheckRange(errs, base+".investments", fa.Investments)
		CheckRange(errs, base+".total", fa.Total)
		CheckTotal(errs, base+".total", fa.Total, fa.IntangibleAssets, fa.TangibleAssets, fa.Investments)
	}

	if ca := bs.CurrentAssets; ca != nil {
		base := basePath + ".current_assets"
		CheckRange(errs, base+".stocks", ca.Stocks)
		CheckRange(errs, base+".debtors", ca.Debtors)
		CheckRange(errs, base+".cash_at_bank_and_in_hand", ca.CashAtBankAndInHand)
		CheckRange(errs, base+".investments", ca.Investments)
		CheckRange(errs, base+".total", ca.Total)
		CheckTotal(errs, base+".total", ca.Total, ca.Stocks, ca.Debtors, ca.CashAtBankAndInHand, ca.Investments)
	}

	if ol := bs.OtherLiabilitiesOrAssets; ol != nil {
		base := basePath + ".other_liabilities_or_assets"
		CheckRange(errs, base+".prepayments_and_accrued_income", ol.PrepaymentsAndAccruedIncome)
		CheckRange(errs, base+".creditors_due_within_one_year", ol.CreditorsDueWithinOneYear)
		CheckRange(errs, base+".creditors_after_one_year", ol.CreditorsAfterOneYear)
		CheckRange(errs, base+".net_current_assets", ol.NetCurrentAssets)
		CheckRange(errs, base+".total_assets_less_current_liabilities", ol.TotalAssetsLessCurrentLiabilities)
		CheckRange(errs, base+".provision_for_liabilities", ol.ProvisionForLiabilities)
		CheckRange(errs, base+".accruals_and_deferred_income", ol.AccrualsAndDeferredIncome)
		CheckRange(errs, base+".total_net_assets", ol.TotalNetAssets)
	}

	if cr := bs.CapitalAndReserves; cr != nil {
		base := basePath + ".capital_and_reserves"
		CheckRange(errs, base+".called_up_share_capital", cr.CalledUpShareCapital)
		CheckRange(errs, base+".share_premium_account", cr.SharePremiumAccount)
		CheckRange(errs, base+".other_reserves", cr.OtherReserves)
		CheckRange(errs, base+".profit_and_loss", cr.ProfitAndLoss)
		CheckRange(errs, base+".total_shareholders_funds", cr.TotalShareholdersFunds)
		CheckTotal(errs, base+".total_shareholders_funds", cr.TotalShareholdersFunds,
			cr.CalledUpShareCapital, cr.SharePremiumAccount, cr.OtherReserves, cr.ProfitAndLoss)
	}
}

// ValidateCurrentPeriod runs the submission checks for a current period
func ValidateCurrentPeriod(rest domain.RestObject, errs *Errors) {
	period, ok := rest.(*domain.CurrentPeriod)
	if !ok {
		return
	}
	if period.BalanceSheet == nil {
		errs.AddAt(KeyMandatoryElementMissing, "$.small_full.current_period.balance_sheet")
		return
	}
	ValidateBalanceSheet(errs, "$.small_full.current_period.balance_sheet", period.BalanceSheet)
}

// ValidatePreviousPeriod runs the submission checks for a previous period
func ValidatePreviousPeriod(rest domain.RestObject, errs *Errors) {
	period, ok := rest.(*domain.PreviousPeriod)
	if !ok {
		return
	}
	if period.BalanceSheet == nil {
		errs.AddAt(KeyMandatoryElementMissing, "$.small_full.previous_period.balance_sheet")
		return
	}
	ValidateBalanceSheet(errs, "$.small_full.previous_period.balance_sheet", period.BalanceSheet)
}

// SubmissionValidatorFor returns the create/update-time validator for a kind,
// covering both the note kinds and the period kinds. Kinds with no
// submission rules (the pure link-holders) return false.
func SubmissionValidatorFor(kind domain.ResourceKind) (NoteValidator, bool) {
	switch kind {
	case domain.KindCurrentPeriod:
		return noteValidatorFunc(ValidateCurrentPeriod), true
	case domain.KindPreviousPeriod:
		return noteValidatorFunc(ValidatePreviousPeriod), true
	default:
		return ForKind(kind)
	}
}
