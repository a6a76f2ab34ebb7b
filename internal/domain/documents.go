package domain

// DocumentFactoryFor returns a factory producing empty storage documents of
// the kind, used by repositories to decode finds.
func DocumentFactoryFor(kind ResourceKind) (func() StorageDocument, bool) {
	switch kind {
	case KindCompanyAccount:
		return func() StorageDocument { return &CompanyAccountDocument{} }, true
	case KindSmallFull:
		return func() StorageDocument { return &SmallFullDocument{} }, true
	case KindCurrentPeriod:
		return func() StorageDocument { return &CurrentPeriodDocument{} }, true
	case KindPreviousPeriod:
		return func() StorageDocument { return &PreviousPeriodDocument{} }, true
	case KindStocks:
		return func() StorageDocument { return &StocksDocument{} }, true
	case KindDebtors:
		return func() StorageDocument { return &DebtorsDocument{} }, true
	case KindCreditorsWithinOneYear:
		return func() StorageDocument { return &CreditorsWithinOneYearDocument{} }, true
	case KindCreditorsAfterOneYear:
		return func() StorageDocument { return &CreditorsAfterOneYearDocument{} }, true
	case KindEmployees:
		return func() StorageDocument { return &EmployeesDocument{} }, true
	case KindIntangibleAssets:
		return func() StorageDocument { return &IntangibleAssetsDocument{} }, true
	case KindTangibleAssets:
		return func() StorageDocument { return &TangibleAssetsDocument{} }, true
	case KindFixedAssetsInvestments:
		return func() StorageDocument { return &FixedAssetsInvestmentsDocument{} }, true
	case KindCurrentAssetsInvestments:
		return func() StorageDocument { return &CurrentAssetsInvestmentsDocument{} }, true
	case KindFinancialCommitments:
		return func() StorageDocument { return &FinancialCommitmentsDocument{} }, true
	case KindOffBalanceSheetArrangements:
		return func() StorageDocument { return &OffBalanceSheetArrangementsDocument{} }, true
	case KindAccountingPolicies:
		return func() StorageDocument { return &AccountingPoliciesDocument{} }, true
	default:
		return nil, false
	}
}
