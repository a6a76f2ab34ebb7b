package domain

// ResourceKind is the closed identifier for one resource or note kind. Every
// kind must resolve to exactly one storage adapter and one transformer in the
// registries, or the deployment is inconsistent.
type ResourceKind string

const (
	KindCompanyAccount ResourceKind = "company-account"
	KindSmallFull      ResourceKind = "small-full"
	KindCurrentPeriod  ResourceKind = "small-full#current-period"
	KindPreviousPeriod ResourceKind = "small-full#previous-period"

	KindStocks                      ResourceKind = "small-full#stocks"
	KindDebtors                     ResourceKind = "small-full#debtors"
	KindCreditorsWithinOneYear      ResourceKind = "small-full#creditors-within-one-year"
	KindCreditorsAfterOneYear       ResourceKind = "small-full#creditors-after-one-year"
	KindEmployees                   ResourceKind = "small-full#employees"
	KindIntangibleAssets            ResourceKind = "small-full#intangible-assets"
	KindTangibleAssets              ResourceKind = "small-full#tangible-assets"
	KindFixedAssetsInvestments      ResourceKind = "small-full#fixed-assets-investments"
	KindCurrentAssetsInvestments    ResourceKind = "small-full#current-assets-investments"
	KindFinancialCommitments        ResourceKind = "small-full#financial-commitments"
	KindOffBalanceSheetArrangements ResourceKind = "small-full#off-balance-sheet-arrangements"
	KindAccountingPolicies          ResourceKind = "small-full#accounting-policies"
)

type kindInfo struct {
	segment  string
	linkName string
}

var kindDetails = map[ResourceKind]kindInfo{
	KindCompanyAccount: {segment: "company-account", linkName: "company_account"},
	KindSmallFull:      {segment: "small-full", linkName: "small_full"},
	KindCurrentPeriod:  {segment: "current-period", linkName: "current_period"},
	KindPreviousPeriod: {segment: "previous-period", linkName: "previous_period"},

	KindStocks:                      {segment: "stocks", linkName: "stocks"},
	KindDebtors:                     {segment: "debtors", linkName: "debtors"},
	KindCreditorsWithinOneYear:      {segment: "creditors-within-one-year", linkName: "creditors_within_one_year"},
	KindCreditorsAfterOneYear:       {segment: "creditors-after-one-year", linkName: "creditors_after_one_year"},
	KindEmployees:                   {segment: "employees", linkName: "employees"},
	KindIntangibleAssets:            {segment: "intangible-assets", linkName: "intangible_assets"},
	KindTangibleAssets:              {segment: "tangible-assets", linkName: "tangible_assets"},
	KindFixedAssetsInvestments:      {segment: "fixed-assets-investments", linkName: "fixed_assets_investments"},
	KindCurrentAssetsInvestments:    {segment: "current-assets-investments", linkName: "current_assets_investments"},
	KindFinancialCommitments:        {segment: "financial-commitments", linkName: "financial_commitments"},
	KindOffBalanceSheetArrangements: {segment: "off-balance-sheet-arrangements", linkName: "off_balance_sheet_arrangements"},
	KindAccountingPolicies:          {segment: "accounting-policies", linkName: "accounting_policies"},
}

// AllKinds returns every known resource kind
func AllKinds() []ResourceKind {
	return []ResourceKind{
		KindCompanyAccount,
		KindSmallFull,
		KindCurrentPeriod,
		KindPreviousPeriod,
		KindStocks,
		KindDebtors,
		KindCreditorsWithinOneYear,
		KindCreditorsAfterOneYear,
		KindEmployees,
		KindIntangibleAssets,
		KindTangibleAssets,
		KindFixedAssetsInvestments,
		KindCurrentAssetsInvestments,
		KindFinancialCommitments,
		KindOffBalanceSheetArrangements,
		KindAccountingPolicies,
	}
}

// NoteKinds returns the kinds served under the notes route
func NoteKinds() []ResourceKind {
	return []ResourceKind{
		KindStocks,
		KindDebtors,
		KindCreditorsWithinOneYear,
		KindCreditorsAfterOneYear,
		KindEmployees,
		KindIntangibleAssets,
		KindTangibleAssets,
		KindFixedAssetsInvestments,
		KindCurrentAssetsInvestments,
		KindFinancialCommitments,
		KindOffBalanceSheetArrangements,
		KindAccountingPolicies,
	}
}

// IsValid checks if the kind is a member of the closed set
func (k ResourceKind) IsValid() bool {
	_, ok := kindDetails[k]
	return ok
}

// IsNote reports whether the kind is served under the notes route
func (k ResourceKind) IsNote() bool {
	for _, n := range NoteKinds() {
		if n == k {
			return true
		}
	}
	return false
}

// PathSegment returns the URL path segment for the kind
func (k ResourceKind) PathSegment() string {
	return kindDetails[k].segment
}

// LinkName returns the key under which the parent aggregate links this kind
func (k ResourceKind) LinkName() string {
	return kindDetails[k].linkName
}

// NoteKindForSegment resolves a {noteType} route parameter to its kind.
// Unknown segments return false; the routing layer turns that into a 404.
func NoteKindForSegment(segment string) (ResourceKind, bool) {
	for _, k := range NoteKinds() {
		if kindDetails[k].segment == segment {
			return k, true
		}
	}
	return "", false
}
