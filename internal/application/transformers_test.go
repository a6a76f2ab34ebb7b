package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filings-platform/accounts-service/internal/domain"
)

func int64p(v int64) *int64 { return &v }

func meta(kind domain.ResourceKind) domain.ResourceMeta {
	return domain.ResourceMeta{
		Etag: "etag-1",
		Kind: string(kind),
		Links: domain.Links{
			domain.LinkSelf: "/some/location",
		},
	}
}

func TestTransformerForCoversEveryKind(t *testing.T) {
	for _, kind := range domain.AllKinds() {
		transformer, ok := TransformerFor(kind)
		require.True(t, ok, "missing transformer for %s", kind)
		require.NotNil(t, transformer.NewRest(), "NewRest for %s", kind)
	}

	_, ok := TransformerFor(domain.ResourceKind("no-such-kind"))
	assert.False(t, ok)
}

func TestCompanyAccountRoundTrip(t *testing.T) {
	transformer := CompanyAccountTransformer{}
	rest := &domain.CompanyAccount{ResourceMeta: meta(domain.KindCompanyAccount)}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestCurrentPeriodRoundTrip(t *testing.T) {
	transformer := CurrentPeriodTransformer{}
	rest := &domain.CurrentPeriod{
		ResourceMeta: meta(domain.KindCurrentPeriod),
		BalanceSheet: &domain.BalanceSheet{
			CalledUpShareCapitalNotPaid: int64p(5),
			FixedAssets: &domain.FixedAssets{
				TangibleAssets: int64p(400),
				Total:          int64p(400),
			},
			CapitalAndReserves: &domain.CapitalAndReserves{
				CalledUpShareCapital:   int64p(10),
				ProfitAndLoss:          int64p(395),
				TotalShareholdersFunds: int64p(405),
			},
		},
	}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestStocksRoundTrip(t *testing.T) {
	transformer := StocksTransformer{}
	rest := &domain.StocksNote{
		ResourceMeta: meta(domain.KindStocks),
		CurrentPeriod: &domain.StocksAmounts{
			PaymentsOnAccount: int64p(10),
			Stocks:            int64p(40),
			Total:             int64p(50),
		},
		PreviousPeriod: &domain.StocksAmounts{
			Stocks: int64p(30),
			Total:  int64p(30),
		},
	}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestDebtorsRoundTrip(t *testing.T) {
	transformer := DebtorsTransformer{}
	rest := &domain.DebtorsNote{
		ResourceMeta: meta(domain.KindDebtors),
		Details:      "trade balances",
		CurrentPeriod: &domain.DebtorsAmounts{
			TradeDebtors:       int64p(100),
			OtherDebtors:       int64p(25),
			GreaterThanOneYear: int64p(40),
			Total:              int64p(125),
		},
	}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestTangibleAssetsRoundTrip(t *testing.T) {
	transformer := TangibleAssetsTransformer{}
	rest := &domain.TangibleAssetsNote{
		ResourceMeta: meta(domain.KindTangibleAssets),
		Details:      "plant and machinery",
		Cost: &domain.AssetsCost{
			AtPeriodStart: int64p(1000),
			Additions:     int64p(500),
			Disposals:     int64p(200),
			AtPeriodEnd:   int64p(1300),
		},
		Depreciation: &domain.AssetsDepreciation{
			AtPeriodStart: int64p(100),
			ChargeForYear: int64p(40),
			AtPeriodEnd:   int64p(140),
		},
		NetBookValueAtEndOfCurrentPeriod:  int64p(1160),
		NetBookValueAtEndOfPreviousPeriod: int64p(900),
	}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestDetailsNoteRoundTrips(t *testing.T) {
	kinds := []domain.ResourceKind{
		domain.KindFixedAssetsInvestments,
		domain.KindCurrentAssetsInvestments,
		domain.KindFinancialCommitments,
		domain.KindOffBalanceSheetArrangements,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			transformer, ok := TransformerFor(kind)
			require.True(t, ok)

			rest := &domain.DetailsNote{
				ResourceMeta: meta(kind),
				Details:      "narrative for " + string(kind),
			}

			doc, err := transformer.ToStorage(rest)
			require.NoError(t, err)

			back, err := transformer.ToRest(doc)
			require.NoError(t, err)
			assert.Equal(t, rest, back)
		})
	}
}

func TestAccountingPoliciesRoundTrip(t *testing.T) {
	transformer := AccountingPoliciesTransformer{}
	rest := &domain.AccountingPoliciesNote{
		ResourceMeta:                     meta(domain.KindAccountingPolicies),
		BasisOfMeasurementAndPreparation: "historical cost convention",
		TurnoverPolicy:                   "recognised on delivery",
		TangibleDepreciationPolicy:       "straight line over 5 years",
	}

	doc, err := transformer.ToStorage(rest)
	require.NoError(t, err)

	back, err := transformer.ToRest(doc)
	require.NoError(t, err)
	assert.Equal(t, rest, back)
}

func TestTransformerRejectsWrongRestType(t *testing.T) {
	transformer := StocksTransformer{}

	_, err := transformer.ToStorage(&domain.DebtorsNote{})
	assert.Error(t, err)

	_, err = transformer.ToRest(&domain.DebtorsDocument{})
	assert.Error(t, err)
}
