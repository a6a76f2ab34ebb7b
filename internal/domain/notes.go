package domain

// Note shapes. Monetary breakdowns are pointer-typed int64 with both json and
// bson tags so the REST shape and the persisted data sub-object share the
// nested section types; only the top-level meta differs between the two.

// StocksAmounts is one period's stocks breakdown
type StocksAmounts struct {
	PaymentsOnAccount *int64 `json:"payments_on_account,omitempty" bson:"payments_on_account,omitempty"`
	Stocks            *int64 `json:"stocks,omitempty" bson:"stocks,omitempty"`
	Total             *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// StocksNote breaks down the balance sheet's current_assets.stocks figure
type StocksNote struct {
	ResourceMeta
	CurrentPeriod  *StocksAmounts `json:"current_period,omitempty"`
	PreviousPeriod *StocksAmounts `json:"previous_period,omitempty"`
}

// StocksData is the persisted data sub-object
type StocksData struct {
	DataMeta       `bson:",inline"`
	CurrentPeriod  *StocksAmounts `bson:"current_period,omitempty"`
	PreviousPeriod *StocksAmounts `bson:"previous_period,omitempty"`
}

// StocksDocument is the persisted document shape
type StocksDocument struct {
	ID   string     `bson:"_id"`
	Data StocksData `bson:"data"`
}

func (d *StocksDocument) DocID() string       { return d.ID }
func (d *StocksDocument) SetDocID(id string)  { d.ID = id }
func (d *StocksDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// DebtorsAmounts is one period's debtors breakdown
type DebtorsAmounts struct {
	TradeDebtors                *int64 `json:"trade_debtors,omitempty" bson:"trade_debtors,omitempty"`
	PrepaymentsAndAccruedIncome *int64 `json:"prepayments_and_accrued_income,omitempty" bson:"prepayments_and_accrued_income,omitempty"`
	OtherDebtors                *int64 `json:"other_debtors,omitempty" bson:"other_debtors,omitempty"`
	GreaterThanOneYear          *int64 `json:"greater_than_one_year,omitempty" bson:"greater_than_one_year,omitempty"`
	Total                       *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// DebtorsNote breaks down the balance sheet's current_assets.debtors figure
type DebtorsNote struct {
	ResourceMeta
	Details        string          `json:"details,omitempty"`
	CurrentPeriod  *DebtorsAmounts `json:"current_period,omitempty"`
	PreviousPeriod *DebtorsAmounts `json:"previous_period,omitempty"`
}

// DebtorsData is the persisted data sub-object
type DebtorsData struct {
	DataMeta       `bson:",inline"`
	Details        string          `bson:"details,omitempty"`
	CurrentPeriod  *DebtorsAmounts `bson:"current_period,omitempty"`
	PreviousPeriod *DebtorsAmounts `bson:"previous_period,omitempty"`
}

// DebtorsDocument is the persisted document shape
type DebtorsDocument struct {
	ID   string      `bson:"_id"`
	Data DebtorsData `bson:"data"`
}

func (d *DebtorsDocument) DocID() string       { return d.ID }
func (d *DebtorsDocument) SetDocID(id string)  { d.ID = id }
func (d *DebtorsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// CreditorsWithinAmounts is one period's creditors-due-within-one-year breakdown
type CreditorsWithinAmounts struct {
	BankLoansAndOverdrafts    *int64 `json:"bank_loans_and_overdrafts,omitempty" bson:"bank_loans_and_overdrafts,omitempty"`
	TradeCreditors            *int64 `json:"trade_creditors,omitempty" bson:"trade_creditors,omitempty"`
	Taxation                  *int64 `json:"taxation_and_social_security,omitempty" bson:"taxation_and_social_security,omitempty"`
	AccrualsAndDeferredIncome *int64 `json:"accruals_and_deferred_income,omitempty" bson:"accruals_and_deferred_income,omitempty"`
	OtherCreditors            *int64 `json:"other_creditors,omitempty" bson:"other_creditors,omitempty"`
	Total                     *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// CreditorsWithinOneYearNote breaks down creditors due within one year
type CreditorsWithinOneYearNote struct {
	ResourceMeta
	Details        string                  `json:"details,omitempty"`
	CurrentPeriod  *CreditorsWithinAmounts `json:"current_period,omitempty"`
	PreviousPeriod *CreditorsWithinAmounts `json:"previous_period,omitempty"`
}

// CreditorsWithinOneYearData is the persisted data sub-object
type CreditorsWithinOneYearData struct {
	DataMeta       `bson:",inline"`
	Details        string                  `bson:"details,omitempty"`
	CurrentPeriod  *CreditorsWithinAmounts `bson:"current_period,omitempty"`
	PreviousPeriod *CreditorsWithinAmounts `bson:"previous_period,omitempty"`
}

// CreditorsWithinOneYearDocument is the persisted document shape
type CreditorsWithinOneYearDocument struct {
	ID   string                     `bson:"_id"`
	Data CreditorsWithinOneYearData `bson:"data"`
}

func (d *CreditorsWithinOneYearDocument) DocID() string       { return d.ID }
func (d *CreditorsWithinOneYearDocument) SetDocID(id string)  { d.ID = id }
func (d *CreditorsWithinOneYearDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// CreditorsAfterAmounts is one period's creditors-after-one-year breakdown
type CreditorsAfterAmounts struct {
	BankLoansAndOverdrafts *int64 `json:"bank_loans_and_overdrafts,omitempty" bson:"bank_loans_and_overdrafts,omitempty"`
	FinanceLeases          *int64 `json:"finance_leases_and_hire_purchase_contracts,omitempty" bson:"finance_leases_and_hire_purchase_contracts,omitempty"`
	OtherCreditors         *int64 `json:"other_creditors,omitempty" bson:"other_creditors,omitempty"`
	Total                  *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// CreditorsAfterOneYearNote breaks down creditors falling due after one year
type CreditorsAfterOneYearNote struct {
	ResourceMeta
	Details        string                 `json:"details,omitempty"`
	CurrentPeriod  *CreditorsAfterAmounts `json:"current_period,omitempty"`
	PreviousPeriod *CreditorsAfterAmounts `json:"previous_period,omitempty"`
}

// CreditorsAfterOneYearData is the persisted data sub-object
type CreditorsAfterOneYearData struct {
	DataMeta       `bson:",inline"`
	Details        string                 `bson:"details,omitempty"`
	CurrentPeriod  *CreditorsAfterAmounts `bson:"current_period,omitempty"`
	PreviousPeriod *CreditorsAfterAmounts `bson:"previous_period,omitempty"`
}

// CreditorsAfterOneYearDocument is the persisted document shape
type CreditorsAfterOneYearDocument struct {
	ID   string                    `bson:"_id"`
	Data CreditorsAfterOneYearData `bson:"data"`
}

func (d *CreditorsAfterOneYearDocument) DocID() string       { return d.ID }
func (d *CreditorsAfterOneYearDocument) SetDocID(id string)  { d.ID = id }
func (d *CreditorsAfterOneYearDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// EmployeesAmounts is one period's employee figures
type EmployeesAmounts struct {
	AverageNumberOfEmployees *int64 `json:"average_number_of_employees,omitempty" bson:"average_number_of_employees,omitempty"`
}

// EmployeesNote states the average number of employees
type EmployeesNote struct {
	ResourceMeta
	Details        string            `json:"details,omitempty"`
	CurrentPeriod  *EmployeesAmounts `json:"current_period,omitempty"`
	PreviousPeriod *EmployeesAmounts `json:"previous_period,omitempty"`
}

// EmployeesData is the persisted data sub-object
type EmployeesData struct {
	DataMeta       `bson:",inline"`
	Details        string            `bson:"details,omitempty"`
	CurrentPeriod  *EmployeesAmounts `bson:"current_period,omitempty"`
	PreviousPeriod *EmployeesAmounts `bson:"previous_period,omitempty"`
}

// EmployeesDocument is the persisted document shape
type EmployeesDocument struct {
	ID   string        `bson:"_id"`
	Data EmployeesData `bson:"data"`
}

func (d *EmployeesDocument) DocID() string       { return d.ID }
func (d *EmployeesDocument) SetDocID(id string)  { d.ID = id }
func (d *EmployeesDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// AssetsCost is the cost movement grid shared by the fixed-asset notes
type AssetsCost struct {
	AtPeriodStart *int64 `json:"at_period_start,omitempty" bson:"at_period_start,omitempty"`
	Additions     *int64 `json:"additions,omitempty" bson:"additions,omitempty"`
	Disposals     *int64 `json:"disposals,omitempty" bson:"disposals,omitempty"`
	Revaluations  *int64 `json:"revaluations,omitempty" bson:"revaluations,omitempty"`
	Transfers     *int64 `json:"transfers,omitempty" bson:"transfers,omitempty"`
	AtPeriodEnd   *int64 `json:"at_period_end,omitempty" bson:"at_period_end,omitempty"`
}

// AssetsDepreciation is the depreciation/amortisation movement grid
type AssetsDepreciation struct {
	AtPeriodStart    *int64 `json:"at_period_start,omitempty" bson:"at_period_start,omitempty"`
	ChargeForYear    *int64 `json:"charge_for_year,omitempty" bson:"charge_for_year,omitempty"`
	OnDisposals      *int64 `json:"on_disposals,omitempty" bson:"on_disposals,omitempty"`
	OtherAdjustments *int64 `json:"other_adjustments,omitempty" bson:"other_adjustments,omitempty"`
	AtPeriodEnd      *int64 `json:"at_period_end,omitempty" bson:"at_period_end,omitempty"`
}

// IntangibleAssetsNote breaks down the balance sheet's intangible assets figure
type IntangibleAssetsNote struct {
	ResourceMeta
	Details                           string              `json:"details,omitempty"`
	Cost                              *AssetsCost         `json:"cost,omitempty"`
	Amortisation                      *AssetsDepreciation `json:"amortisation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64              `json:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64              `json:"net_book_value_at_end_of_previous_period,omitempty"`
}

// IntangibleAssetsData is the persisted data sub-object
type IntangibleAssetsData struct {
	DataMeta                          `bson:",inline"`
	Details                           string              `bson:"details,omitempty"`
	Cost                              *AssetsCost         `bson:"cost,omitempty"`
	Amortisation                      *AssetsDepreciation `bson:"amortisation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64              `bson:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64              `bson:"net_book_value_at_end_of_previous_period,omitempty"`
}

// IntangibleAssetsDocument is the persisted document shape
type IntangibleAssetsDocument struct {
	ID   string               `bson:"_id"`
	Data IntangibleAssetsData `bson:"data"`
}

func (d *IntangibleAssetsDocument) DocID() string       { return d.ID }
func (d *IntangibleAssetsDocument) SetDocID(id string)  { d.ID = id }
func (d *IntangibleAssetsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// TangibleAssetsNote breaks down the balance sheet's tangible assets figure
type TangibleAssetsNote struct {
	ResourceMeta
	Details                           string              `json:"details,omitempty"`
	Cost                              *AssetsCost         `json:"cost,omitempty"`
	Depreciation                      *AssetsDepreciation `json:"depreciation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64              `json:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64              `json:"net_book_value_at_end_of_previous_period,omitempty"`
}

// TangibleAssetsData is the persisted data sub-object
type TangibleAssetsData struct {
	DataMeta                          `bson:",inline"`
	Details                           string              `bson:"details,omitempty"`
	Cost                              *AssetsCost         `bson:"cost,omitempty"`
	Depreciation                      *AssetsDepreciation `bson:"depreciation,omitempty"`
	NetBookValueAtEndOfCurrentPeriod  *int64              `bson:"net_book_value_at_end_of_current_period,omitempty"`
	NetBookValueAtEndOfPreviousPeriod *int64              `bson:"net_book_value_at_end_of_previous_period,omitempty"`
}

// TangibleAssetsDocument is the persisted document shape
type TangibleAssetsDocument struct {
	ID   string             `bson:"_id"`
	Data TangibleAssetsData `bson:"data"`
}

func (d *TangibleAssetsDocument) DocID() string       { return d.ID }
func (d *TangibleAssetsDocument) SetDocID(id string)  { d.ID = id }
func (d *TangibleAssetsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// DetailsNote is the REST shape shared by the narrative-only notes
// (fixed-assets investments, current-assets investments, financial
// commitments, off-balance-sheet arrangements).
type DetailsNote struct {
	ResourceMeta
	Details string `json:"details"`
}

// DetailsData is the persisted data sub-object for narrative-only notes
type DetailsData struct {
	DataMeta `bson:",inline"`
	Details  string `bson:"details,omitempty"`
}

// FixedAssetsInvestmentsDocument is the persisted document shape
type FixedAssetsInvestmentsDocument struct {
	ID   string      `bson:"_id"`
	Data DetailsData `bson:"data"`
}

func (d *FixedAssetsInvestmentsDocument) DocID() string       { return d.ID }
func (d *FixedAssetsInvestmentsDocument) SetDocID(id string)  { d.ID = id }
func (d *FixedAssetsInvestmentsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// CurrentAssetsInvestmentsDocument is the persisted document shape
type CurrentAssetsInvestmentsDocument struct {
	ID   string      `bson:"_id"`
	Data DetailsData `bson:"data"`
}

func (d *CurrentAssetsInvestmentsDocument) DocID() string       { return d.ID }
func (d *CurrentAssetsInvestmentsDocument) SetDocID(id string)  { d.ID = id }
func (d *CurrentAssetsInvestmentsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// FinancialCommitmentsDocument is the persisted document shape
type FinancialCommitmentsDocument struct {
	ID   string      `bson:"_id"`
	Data DetailsData `bson:"data"`
}

func (d *FinancialCommitmentsDocument) DocID() string       { return d.ID }
func (d *FinancialCommitmentsDocument) SetDocID(id string)  { d.ID = id }
func (d *FinancialCommitmentsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// OffBalanceSheetArrangementsDocument is the persisted document shape
type OffBalanceSheetArrangementsDocument struct {
	ID   string      `bson:"_id"`
	Data DetailsData `bson:"data"`
}

func (d *OffBalanceSheetArrangementsDocument) DocID() string       { return d.ID }
func (d *OffBalanceSheetArrangementsDocument) SetDocID(id string)  { d.ID = id }
func (d *OffBalanceSheetArrangementsDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// AccountingPoliciesNote states the policies under which the figures were
// prepared
type AccountingPoliciesNote struct {
	ResourceMeta
	BasisOfMeasurementAndPreparation string `json:"basis_of_measurement_and_preparation"`
	TurnoverPolicy                   string `json:"turnover_policy,omitempty"`
	TangibleDepreciationPolicy       string `json:"tangible_fixed_assets_depreciation_policy,omitempty"`
	IntangibleAmortisationPolicy     string `json:"intangible_fixed_assets_amortisation_policy,omitempty"`
	ValuationInformationAndPolicy    string `json:"valuation_information_and_policy,omitempty"`
	OtherAccountingPolicy            string `json:"other_accounting_policy,omitempty"`
}

// AccountingPoliciesData is the persisted data sub-object
type AccountingPoliciesData struct {
	DataMeta                         `bson:",inline"`
	BasisOfMeasurementAndPreparation string `bson:"basis_of_measurement_and_preparation,omitempty"`
	TurnoverPolicy                   string `bson:"turnover_policy,omitempty"`
	TangibleDepreciationPolicy       string `bson:"tangible_fixed_assets_depreciation_policy,omitempty"`
	IntangibleAmortisationPolicy     string `bson:"intangible_fixed_assets_amortisation_policy,omitempty"`
	ValuationInformationAndPolicy    string `bson:"valuation_information_and_policy,omitempty"`
	OtherAccountingPolicy            string `bson:"other_accounting_policy,omitempty"`
}

// AccountingPoliciesDocument is the persisted document shape
type AccountingPoliciesDocument struct {
	ID   string                 `bson:"_id"`
	Data AccountingPoliciesData `bson:"data"`
}

func (d *AccountingPoliciesDocument) DocID() string       { return d.ID }
func (d *AccountingPoliciesDocument) SetDocID(id string)  { d.ID = id }
func (d *AccountingPoliciesDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }
