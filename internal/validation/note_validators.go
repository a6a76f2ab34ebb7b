package validation

import (
	"github.com/filings-platform/accounts-service/internal/domain"
)

// NoteValidator checks one note kind's submission-level rules. Validators
// accumulate rather than fail fast so the caller gets the complete rule set
// in one pass.
type NoteValidator interface {
	Validate(rest domain.RestObject, errs *Errors)
}

// NotePath returns the conventional json-path location for a note kind
func NotePath(kind domain.ResourceKind) string {
	return "$.small_full.notes." + kind.LinkName()
}

type noteValidatorFunc func(rest domain.RestObject, errs *Errors)

func (f noteValidatorFunc) Validate(rest domain.RestObject, errs *Errors) { f(rest, errs) }

var noteValidators = map[domain.ResourceKind]NoteValidator{
	domain.KindStocks:                      noteValidatorFunc(validateStocks),
	domain.KindDebtors:                     noteValidatorFunc(validateDebtors),
	domain.KindCreditorsWithinOneYear:      noteValidatorFunc(validateCreditorsWithin),
	domain.KindCreditorsAfterOneYear:       noteValidatorFunc(validateCreditorsAfter),
	domain.KindEmployees:                   noteValidatorFunc(validateEmployees),
	domain.KindIntangibleAssets:            noteValidatorFunc(validateIntangibleAssets),
	domain.KindTangibleAssets:              noteValidatorFunc(validateTangibleAssets),
	domain.KindFixedAssetsInvestments:      detailsValidator(domain.KindFixedAssetsInvestments),
	domain.KindCurrentAssetsInvestments:    detailsValidator(domain.KindCurrentAssetsInvestments),
	domain.KindFinancialCommitments:        detailsValidator(domain.KindFinancialCommitments),
	domain.KindOffBalanceSheetArrangements: detailsValidator(domain.KindOffBalanceSheetArrangements),
	domain.KindAccountingPolicies:          noteValidatorFunc(validateAccountingPolicies),
}

// ForKind returns the submission validator for a note kind, or false when the
// kind carries no submission rules
func ForKind(kind domain.ResourceKind) (NoteValidator, bool) {
	v, ok := noteValidators[kind]
	return v, ok
}

func validateStocks(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.StocksNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindStocks)
	checkStocksAmounts(errs, base+".current_period", note.CurrentPeriod)
	checkStocksAmounts(errs, base+".previous_period", note.PreviousPeriod)
	if note.CurrentPeriod == nil {
		errs.AddAt(KeyMandatoryElementMissing, base+".current_period")
	}
}

func checkStocksAmounts(errs *Errors, base string, amounts *domain.StocksAmounts) {
	if amounts == nil {
		return
	}
	CheckRange(errs, base+".payments_on_account", amounts.PaymentsOnAccount)
	CheckRange(errs, base+".stocks", amounts.Stocks)
	CheckRange(errs, base+".total", amounts.Total)
	CheckTotal(errs, base+".total", amounts.Total, amounts.PaymentsOnAccount, amounts.Stocks)
}

func validateDebtors(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.DebtorsNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindDebtors)
	checkDebtorsAmounts(errs, base+".current_period", note.CurrentPeriod)
	checkDebtorsAmounts(errs, base+".previous_period", note.PreviousPeriod)
	if note.CurrentPeriod == nil {
		errs.AddAt(KeyMandatoryElementMissing, base+".current_period")
	}
}

func checkDebtorsAmounts(errs *Errors, base string, amounts *domain.DebtorsAmounts) {
	if amounts == nil {
		return
	}
	CheckRange(errs, base+".trade_debtors", amounts.TradeDebtors)
	CheckRange(errs, base+".prepayments_and_accrued_income", amounts.PrepaymentsAndAccruedIncome)
	CheckRange(errs, base+".other_debtors", amounts.OtherDebtors)
	CheckRange(errs, base+".greater_than_one_year", amounts.GreaterThanOneYear)
	CheckRange(errs, base+".total", amounts.Total)
	CheckTotal(errs, base+".total", amounts.Total,
		amounts.TradeDebtors, amounts.PrepaymentsAndAccruedIncome, amounts.OtherDebtors)
}

func validateCreditorsWithin(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.CreditorsWithinOneYearNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindCreditorsWithinOneYear)
	checkCreditorsWithinAmounts(errs, base+".current_period", note.CurrentPeriod)
	checkCreditorsWithinAmounts(errs, base+".previous_period", note.PreviousPeriod)
	if note.CurrentPeriod == nil {
		errs.AddAt(KeyMandatoryElementMissing, base+".current_period")
	}
}

func checkCreditorsWithinAmounts(errs *Errors, base string, amounts *domain.CreditorsWithinAmounts) {
	if amounts == nil {
		return
	}
	CheckRange(errs, base+".bank_loans_and_overdrafts", amounts.BankLoansAndOverdrafts)
	CheckRange(errs, base+".trade_creditors", amounts.TradeCreditors)
	CheckRange(errs, base+".taxation_and_social_security", amounts.Taxation)
	CheckRange(errs, base+".accruals_and_deferred_income", amounts.AccrualsAndDeferredIncome)
	CheckRange(errs, base+".other_creditors", amounts.OtherCreditors)
	CheckRange(errs, base+".total", amounts.Total)
	CheckTotal(errs, base+".total", amounts.Total,
		amounts.BankLoansAndOverdrafts, amounts.TradeCreditors, amounts.Taxation,
		amounts.AccrualsAndDeferredIncome, amounts.OtherCreditors)
}

func validateCreditorsAfter(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.CreditorsAfterOneYearNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindCreditorsAfterOneYear)
	checkCreditorsAfterAmounts(errs, base+".current_period", note.CurrentPeriod)
	checkCreditorsAfterAmounts(errs, base+".previous_period", note.PreviousPeriod)
	if note.CurrentPeriod == nil {
		errs.AddAt(KeyMandatoryElementMissing, base+".current_period")
	}
}

func checkCreditorsAfterAmounts(errs *Errors, base string, amounts *domain.CreditorsAfterAmounts) {
	if amounts == nil {
		return
	}
	CheckRange(errs, base+".bank_loans_and_overdrafts", amounts.BankLoansAndOverdrafts)
	CheckRange(errs, base+".finance_leases_and_hire_purchase_contracts", amounts.FinanceLeases)
	CheckRange(errs, base+".other_creditors", amounts.OtherCreditors)
	CheckRange(errs, base+".total", amounts.Total)
	CheckTotal(errs, base+".total", amounts.Total,
		amounts.BankLoansAndOverdrafts, amounts.FinanceLeases, amounts.OtherCreditors)
}

func validateEmployees(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.EmployeesNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindEmployees)
	if note.CurrentPeriod == nil || note.CurrentPeriod.AverageNumberOfEmployees == nil {
		errs.AddAt(KeyMandatoryElementMissing, base+".current_period.average_number_of_employees")
	} else {
		CheckNonNegative(errs, base+".current_period.average_number_of_employees",
			note.CurrentPeriod.AverageNumberOfEmployees)
	}
	if note.PreviousPeriod != nil {
		CheckNonNegative(errs, base+".previous_period.average_number_of_employees",
			note.PreviousPeriod.AverageNumberOfEmployees)
	}
}

func validateIntangibleAssets(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.IntangibleAssetsNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindIntangibleAssets)
	checkAssetsCost(errs, base+".cost", note.Cost)
	checkAssetsDepreciation(errs, base+".amortisation", note.Amortisation)
	CheckRange(errs, base+".net_book_value_at_end_of_current_period", note.NetBookValueAtEndOfCurrentPeriod)
	CheckRange(errs, base+".net_book_value_at_end_of_previous_period", note.NetBookValueAtEndOfPreviousPeriod)
}

func validateTangibleAssets(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.TangibleAssetsNote)
	if !ok {
		return
	}
	base := NotePath(domain.KindTangibleAssets)
	checkAssetsCost(errs, base+".cost", note.Cost)
	checkAssetsDepreciation(errs, base+".depreciation", note.Depreciation)
	CheckRange(errs, base+".net_book_value_at_end_of_current_period", note.NetBookValueAtEndOfCurrentPeriod)
	CheckRange(errs, base+".net_book_value_at_end_of_previous_period", note.NetBookValueAtEndOfPreviousPeriod)
}

// checkAssetsCost validates the cost movement grid: the closing figure must
// equal opening plus additions, revaluations and transfers less disposals.
func checkAssetsCost(errs *Errors, base string, cost *domain.AssetsCost) {
	if cost == nil {
		return
	}
	CheckRange(errs, base+".at_period_start", cost.AtPeriodStart)
	CheckRange(errs, base+".additions", cost.Additions)
	CheckRange(errs, base+".disposals", cost.Disposals)
	CheckRange(errs, base+".revaluations", cost.Revaluations)
	CheckRange(errs, base+".transfers", cost.Transfers)
	CheckRange(errs, base+".at_period_end", cost.AtPeriodEnd)

	var negDisposals *int64
	if cost.Disposals != nil {
		v := -*cost.Disposals
		negDisposals = &v
	}
	CheckTotal(errs, base+".at_period_end", cost.AtPeriodEnd,
		cost.AtPeriodStart, cost.Additions, negDisposals, cost.Revaluations, cost.Transfers)
}

func checkAssetsDepreciation(errs *Errors, base string, dep *domain.AssetsDepreciation) {
	if dep == nil {
		return
	}
	CheckRange(errs, base+".at_period_start", dep.AtPeriodStart)
	CheckRange(errs, base+".charge_for_year", dep.ChargeForYear)
	CheckRange(errs, base+".on_disposals", dep.OnDisposals)
	CheckRange(errs, base+".other_adjustments", dep.OtherAdjustments)
	CheckRange(errs, base+".at_period_end", dep.AtPeriodEnd)

	var negOnDisposals *int64
	if dep.OnDisposals != nil {
		v := -*dep.OnDisposals
		negOnDisposals = &v
	}
	CheckTotal(errs, base+".at_period_end", dep.AtPeriodEnd,
		dep.AtPeriodStart, dep.ChargeForYear, negOnDisposals, dep.OtherAdjustments)
}

// detailsValidator builds the validator for narrative-only notes: the
// details text is the note's whole content, so it is mandatory.
func detailsValidator(kind domain.ResourceKind) NoteValidator {
	return noteValidatorFunc(func(rest domain.RestObject, errs *Errors) {
		note, ok := rest.(*domain.DetailsNote)
		if !ok {
			return
		}
		if note.Details == "" {
			errs.AddAt(KeyMandatoryElementMissing, NotePath(kind)+".details")
		}
	})
}

func validateAccountingPolicies(rest domain.RestObject, errs *Errors) {
	note, ok := rest.(*domain.AccountingPoliciesNote)
	if !ok {
		return
	}
	if note.BasisOfMeasurementAndPreparation == "" {
		errs.AddAt(KeyMandatoryElementMissing,
			NotePath(domain.KindAccountingPolicies)+".basis_of_measurement_and_preparation")
	}
}
