package application

import (
	"github.com/filings-platform/accounts-service/internal/domain"
)

// noteCondition ties a note kind to the balance-sheet field that makes it
// mandatory: a non-null field requires the note to exist and be linked.
type noteCondition struct {
	kind  domain.ResourceKind
	field func(bs *domain.BalanceSheet) *int64
}

// noteConditions run in this fixed order; the traversal never short-circuits
// so the caller gets the complete error set in one round trip.
var noteConditions = []noteCondition{
	{domain.KindStocks, func(bs *domain.BalanceSheet) *int64 {
		if bs.CurrentAssets == nil {
			return nil
		}
		return bs.CurrentAssets.Stocks
	}},
	{domain.KindDebtors, func(bs *domain.BalanceSheet) *int64 {
		if bs.CurrentAssets == nil {
			return nil
		}
		return bs.CurrentAssets.Debtors
	}},
	{domain.KindCurrentAssetsInvestments, func(bs *domain.BalanceSheet) *int64 {
		if bs.CurrentAssets == nil {
			return nil
		}
		return bs.CurrentAssets.Investments
	}},
	{domain.KindCreditorsWithinOneYear, func(bs *domain.BalanceSheet) *int64 {
		if bs.OtherLiabilitiesOrAssets == nil {
			return nil
		}
		return bs.OtherLiabilitiesOrAssets.CreditorsDueWithinOneYear
	}},
	{domain.KindCreditorsAfterOneYear, func(bs *domain.BalanceSheet) *int64 {
		if bs.OtherLiabilitiesOrAssets == nil {
			return nil
		}
		return bs.OtherLiabilitiesOrAssets.CreditorsAfterOneYear
	}},
	{domain.KindIntangibleAssets, func(bs *domain.BalanceSheet) *int64 {
		if bs.FixedAssets == nil {
			return nil
		}
		return bs.FixedAssets.IntangibleAssets
	}},
	{domain.KindTangibleAssets, func(bs *domain.BalanceSheet) *int64 {
		if bs.FixedAssets == nil {
			return nil
		}
		return bs.FixedAssets.TangibleAssets
	}},
	{domain.KindFixedAssetsInvestments, func(bs *domain.BalanceSheet) *int64 {
		if bs.FixedAssets == nil {
			return nil
		}
		return bs.FixedAssets.Investments
	}},
}
