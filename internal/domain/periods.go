package domain

// Monetary values are whole pounds, pointer-typed so an absent field is
// distinguishable from zero. Absence of a balance-sheet field is what makes
// the corresponding note optional.

// FixedAssets is the fixed assets section of a balance sheet
type FixedAssets struct {
	IntangibleAssets *int64 `json:"intangible_assets,omitempty" bson:"intangible_assets,omitempty"`
	TangibleAssets   *int64 `json:"tangible_assets,omitempty" bson:"tangible_assets,omitempty"`
	Investments      *int64 `json:"investments,omitempty" bson:"investments,omitempty"`
	Total            *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// CurrentAssets is the current assets section of a balance sheet
type CurrentAssets struct {
	Stocks              *int64 `json:"stocks,omitempty" bson:"stocks,omitempty"`
	Debtors             *int64 `json:"debtors,omitempty" bson:"debtors,omitempty"`
	CashAtBankAndInHand *int64 `json:"cash_at_bank_and_in_hand,omitempty" bson:"cash_at_bank_and_in_hand,omitempty"`
	Investments         *int64 `json:"investments,omitempty" bson:"investments,omitempty"`
	Total               *int64 `json:"total,omitempty" bson:"total,omitempty"`
}

// OtherLiabilitiesOrAssets is the liabilities section of a balance sheet
type OtherLiabilitiesOrAssets struct {
	PrepaymentsAndAccruedIncome       *int64 `json:"prepayments_and_accrued_income,omitempty" bson:"prepayments_and_accrued_income,omitempty"`
	CreditorsDueWithinOneYear         *int64 `json:"creditors_due_within_one_year,omitempty" bson:"creditors_due_within_one_year,omitempty"`
	CreditorsAfterOneYear             *int64 `json:"creditors_after_one_year,omitempty" bson:"creditors_after_one_year,omitempty"`
	NetCurrentAssets                  *int64 `json:"net_current_assets,omitempty" bson:"net_current_assets,omitempty"`
	TotalAssetsLessCurrentLiabilities *int64 `json:"total_assets_less_current_liabilities,omitempty" bson:"total_assets_less_current_liabilities,omitempty"`
	ProvisionForLiabilities           *int64 `json:"provision_for_liabilities,omitempty" bson:"provision_for_liabilities,omitempty"`
	AccrualsAndDeferredIncome         *int64 `json:"accruals_and_deferred_income,omitempty" bson:"accruals_and_deferred_income,omitempty"`
	TotalNetAssets                    *int64 `json:"total_net_assets,omitempty" bson:"total_net_assets,omitempty"`
}

// CapitalAndReserves is the capital section of a balance sheet
type CapitalAndReserves struct {
	CalledUpShareCapital   *int64 `json:"called_up_share_capital,omitempty" bson:"called_up_share_capital,omitempty"`
	SharePremiumAccount    *int64 `json:"share_premium_account,omitempty" bson:"share_premium_account,omitempty"`
	OtherReserves          *int64 `json:"other_reserves,omitempty" bson:"other_reserves,omitempty"`
	ProfitAndLoss          *int64 `json:"profit_and_loss,omitempty" bson:"profit_and_loss,omitempty"`
	TotalShareholdersFunds *int64 `json:"total_shareholders_funds,omitempty" bson:"total_shareholders_funds,omitempty"`
}

// BalanceSheet is the nested numeric statement carried by a filing period
type BalanceSheet struct {
	CalledUpShareCapitalNotPaid *int64                    `json:"called_up_share_capital_not_paid,omitempty" bson:"called_up_share_capital_not_paid,omitempty"`
	FixedAssets                 *FixedAssets              `json:"fixed_assets,omitempty" bson:"fixed_assets,omitempty"`
	CurrentAssets               *CurrentAssets            `json:"current_assets,omitempty" bson:"current_assets,omitempty"`
	OtherLiabilitiesOrAssets    *OtherLiabilitiesOrAssets `json:"other_liabilities_or_assets,omitempty" bson:"other_liabilities_or_assets,omitempty"`
	CapitalAndReserves          *CapitalAndReserves       `json:"capital_and_reserves,omitempty" bson:"capital_and_reserves,omitempty"`
}

// CurrentPeriod holds the balance sheet for the filing's current period
type CurrentPeriod struct {
	ResourceMeta
	BalanceSheet *BalanceSheet `json:"balance_sheet,omitempty"`
}

// PreviousPeriod holds the balance sheet for the preceding period. It exists
// only for multi-year filers.
type PreviousPeriod struct {
	ResourceMeta
	BalanceSheet *BalanceSheet `json:"balance_sheet,omitempty"`
}

// PeriodData is the persisted data sub-object shared by both period kinds
type PeriodData struct {
	DataMeta     `bson:",inline"`
	BalanceSheet *BalanceSheet `bson:"balance_sheet,omitempty"`
}

// CurrentPeriodDocument is the persisted document shape
type CurrentPeriodDocument struct {
	ID   string     `bson:"_id"`
	Data PeriodData `bson:"data"`
}

func (d *CurrentPeriodDocument) DocID() string       { return d.ID }
func (d *CurrentPeriodDocument) SetDocID(id string)  { d.ID = id }
func (d *CurrentPeriodDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }

// PreviousPeriodDocument is the persisted document shape
type PreviousPeriodDocument struct {
	ID   string     `bson:"_id"`
	Data PeriodData `bson:"data"`
}

func (d *PreviousPeriodDocument) DocID() string       { return d.ID }
func (d *PreviousPeriodDocument) SetDocID(id string)  { d.ID = id }
func (d *PreviousPeriodDocument) DataMeta() *DataMeta { return &d.Data.DataMeta }
