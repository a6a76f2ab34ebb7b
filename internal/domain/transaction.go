package domain

// TransactionStatus is the lifecycle status of the externally owned filing
// transaction
type TransactionStatus string

const (
	TransactionStatusOpen    TransactionStatus = "open"
	TransactionStatusClosed  TransactionStatus = "closed"
	TransactionStatusDeleted TransactionStatus = "deleted"
)

// FilerType governs whether previous-period data is mandatory
type FilerType string

const (
	FilerTypeSingleYear FilerType = "single-year"
	FilerTypeMultiYear  FilerType = "multi-year"
)

// IsMultiYear reports whether previous-period data is required for the filer
func (f FilerType) IsMultiYear() bool {
	return f == FilerTypeMultiYear
}

// TransactionResource is one named resource registered on a transaction
type TransactionResource struct {
	Kind      string `json:"kind"`
	Links     Links  `json:"links"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Transaction is the filing envelope owned by the external transaction
// service. The core only reads it.
type Transaction struct {
	ID            string                         `json:"id"`
	Status        TransactionStatus              `json:"status"`
	CompanyNumber string                         `json:"company_number"`
	FilerType     FilerType                      `json:"filer_type"`
	Resources     map[string]TransactionResource `json:"resources,omitempty"`
}
