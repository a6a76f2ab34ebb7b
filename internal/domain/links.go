package domain

import "fmt"

// Self links are computed deterministically from parent identifiers and the
// kind's path segment, so the link is known without a round trip to storage.

// CompanyAccountLink returns the self link for a company account
func CompanyAccountLink(transactionID, companyAccountID string) string {
	return fmt.Sprintf("/transactions/%s/company-accounts/%s", transactionID, companyAccountID)
}

// SmallFullLink returns the self link for a small-full aggregate
func SmallFullLink(transactionID, companyAccountID string) string {
	return CompanyAccountLink(transactionID, companyAccountID) + "/small-full"
}

// SelfLink returns the canonical self link for a resource of this kind under
// the given transaction and company account. For KindCompanyAccount the
// companyAccountID is the resource's own id.
func (k ResourceKind) SelfLink(transactionID, companyAccountID string) string {
	switch k {
	case KindCompanyAccount:
		return CompanyAccountLink(transactionID, companyAccountID)
	case KindSmallFull:
		return SmallFullLink(transactionID, companyAccountID)
	case KindCurrentPeriod, KindPreviousPeriod:
		return SmallFullLink(transactionID, companyAccountID) + "/" + k.PathSegment()
	default:
		return SmallFullLink(transactionID, companyAccountID) + "/notes/" + k.PathSegment()
	}
}
