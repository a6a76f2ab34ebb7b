package application

import (
	"fmt"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
)

// Transformers convert between each kind's REST and storage shapes. Nested
// section types carry both json and bson tags, so the transformers map only
// the top level: metadata in or out of the data sub-object plus the kind's
// own fields. Each round trip is lossless for every REST field.

func wrongType(kind domain.ResourceKind, got interface{}) *errors.AppError {
	return errors.ErrInternal(fmt.Sprintf("transformer for %s received %T", kind, got))
}

func restMeta(doc domain.StorageDocument) domain.ResourceMeta {
	meta := doc.DataMeta()
	return domain.ResourceMeta{Etag: meta.Etag, Kind: meta.Kind, Links: meta.Links}
}

func storageMeta(rest domain.RestObject) domain.DataMeta {
	meta := rest.Meta()
	return domain.DataMeta{Etag: meta.Etag, Kind: meta.Kind, Links: meta.Links}
}

// CompanyAccountTransformer maps the company account aggregate
type CompanyAccountTransformer struct{}

func (CompanyAccountTransformer) NewRest() domain.RestObject { return &domain.CompanyAccount{} }

func (CompanyAccountTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.CompanyAccount)
	if !ok {
		return nil, wrongType(domain.KindCompanyAccount, rest)
	}
	return &domain.CompanyAccountDocument{
		Data: domain.CompanyAccountData{DataMeta: storageMeta(r)},
	}, nil
}

func (CompanyAccountTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.CompanyAccountDocument)
	if !ok {
		return nil, wrongType(domain.KindCompanyAccount, doc)
	}
	return &domain.CompanyAccount{ResourceMeta: restMeta(d)}, nil
}

// SmallFullTransformer maps the small-full aggregate
type SmallFullTransformer struct{}

func (SmallFullTransformer) NewRest() domain.RestObject { return &domain.SmallFull{} }

func (SmallFullTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.SmallFull)
	if !ok {
		return nil, wrongType(domain.KindSmallFull, rest)
	}
	return &domain.SmallFullDocument{
		Data: domain.SmallFullData{DataMeta: storageMeta(r)},
	}, nil
}

func (SmallFullTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.SmallFullDocument)
	if !ok {
		return nil, wrongType(domain.KindSmallFull, doc)
	}
	return &domain.SmallFull{ResourceMeta: restMeta(d)}, nil
}

// CurrentPeriodTransformer maps the current filing period
type CurrentPeriodTransformer struct{}

func (CurrentPeriodTransformer) NewRest() domain.RestObject { return &domain.CurrentPeriod{} }

func (CurrentPeriodTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.CurrentPeriod)
	if !ok {
		return nil, wrongType(domain.KindCurrentPeriod, rest)
	}
	return &domain.CurrentPeriodDocument{
		Data: domain.PeriodData{DataMeta: storageMeta(r), BalanceSheet: r.BalanceSheet},
	}, nil
}

func (CurrentPeriodTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.CurrentPeriodDocument)
	if !ok {
		return nil, wrongType(domain.KindCurrentPeriod, doc)
	}
	return &domain.CurrentPeriod{ResourceMeta: restMeta(d), BalanceSheet: d.Data.BalanceSheet}, nil
}

// PreviousPeriodTransformer maps the previous filing period
type PreviousPeriodTransformer struct{}

func (PreviousPeriodTransformer) NewRest() domain.RestObject { return &domain.PreviousPeriod{} }

func (PreviousPeriodTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.PreviousPeriod)
	if !ok {
		return nil, wrongType(domain.KindPreviousPeriod, rest)
	}
	return &domain.PreviousPeriodDocument{
		Data: domain.PeriodData{DataMeta: storageMeta(r), BalanceSheet: r.BalanceSheet},
	}, nil
}

func (PreviousPeriodTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.PreviousPeriodDocument)
	if !ok {
		return nil, wrongType(domain.KindPreviousPeriod, doc)
	}
	return &domain.PreviousPeriod{ResourceMeta: restMeta(d), BalanceSheet: d.Data.BalanceSheet}, nil
}

// StocksTransformer maps the stocks note
type StocksTransformer struct{}

func (StocksTransformer) NewRest() domain.RestObject { return &domain.StocksNote{} }

func (StocksTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.StocksNote)
	if !ok {
		return nil, wrongType(domain.KindStocks, rest)
	}
	return &domain.StocksDocument{
		Data: domain.StocksData{
			DataMeta:       storageMeta(r),
			CurrentPeriod:  r.CurrentPeriod,
			PreviousPeriod: r.PreviousPeriod,
		},
	}, nil
}

func (StocksTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.StocksDocument)
	if !ok {
		return nil, wrongType(domain.KindStocks, doc)
	}
	return &domain.StocksNote{
		ResourceMeta:   restMeta(d),
		CurrentPeriod:  d.Data.CurrentPeriod,
		PreviousPeriod: d.Data.PreviousPeriod,
	}, nil
}

// DebtorsTransformer maps the debtors note
type DebtorsTransformer struct{}

func (DebtorsTransformer) NewRest() domain.RestObject { return &domain.DebtorsNote{} }

func (DebtorsTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.DebtorsNote)
	if !ok {
		return nil, wrongType(domain.KindDebtors, rest)
	}
	return &domain.DebtorsDocument{
		Data: domain.DebtorsData{
			DataMeta:       storageMeta(r),
			Details:        r.Details,
			CurrentPeriod:  r.CurrentPeriod,
			PreviousPeriod: r.PreviousPeriod,
		},
	}, nil
}

func (DebtorsTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.DebtorsDocument)
	if !ok {
		return nil, wrongType(domain.KindDebtors, doc)
	}
	return &domain.DebtorsNote{
		ResourceMeta:   restMeta(d),
		Details:        d.Data.Details,
		CurrentPeriod:  d.Data.CurrentPeriod,
		PreviousPeriod: d.Data.PreviousPeriod,
	}, nil
}

// CreditorsWithinOneYearTransformer maps the creditors-within-one-year note
type CreditorsWithinOneYearTransformer struct{}

func (CreditorsWithinOneYearTransformer) NewRest() domain.RestObject {
	return &domain.CreditorsWithinOneYearNote{}
}

func (CreditorsWithinOneYearTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.CreditorsWithinOneYearNote)
	if !ok {
		return nil, wrongType(domain.KindCreditorsWithinOneYear, rest)
	}
	return &domain.CreditorsWithinOneYearDocument{
		Data: domain.CreditorsWithinOneYearData{
			DataMeta:       storageMeta(r),
			Details:        r.Details,
			CurrentPeriod:  r.CurrentPeriod,
			PreviousPeriod: r.PreviousPeriod,
		},
	}, nil
}

func (CreditorsWithinOneYearTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.CreditorsWithinOneYearDocument)
	if !ok {
		return nil, wrongType(domain.KindCreditorsWithinOneYear, doc)
	}
	return &domain.CreditorsWithinOneYearNote{
		ResourceMeta:   restMeta(d),
		Details:        d.Data.Details,
		CurrentPeriod:  d.Data.CurrentPeriod,
		PreviousPeriod: d.Data.PreviousPeriod,
	}, nil
}

// CreditorsAfterOneYearTransformer maps the creditors-after-one-year note
type CreditorsAfterOneYearTransformer struct{}

func (CreditorsAfterOneYearTransformer) NewRest() domain.RestObject {
	return &domain.CreditorsAfterOneYearNote{}
}

func (CreditorsAfterOneYearTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.CreditorsAfterOneYearNote)
	if !ok {
		return nil, wrongType(domain.KindCreditorsAfterOneYear, rest)
	}
	return &domain.CreditorsAfterOneYearDocument{
		Data: domain.CreditorsAfterOneYearData{
			DataMeta:       storageMeta(r),
			Details:        r.Details,
			CurrentPeriod:  r.CurrentPeriod,
			PreviousPeriod: r.PreviousPeriod,
		},
	}, nil
}

func (CreditorsAfterOneYearTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.CreditorsAfterOneYearDocument)
	if !ok {
		return nil, wrongType(domain.KindCreditorsAfterOneYear, doc)
	}
	return &domain.CreditorsAfterOneYearNote{
		ResourceMeta:   restMeta(d),
		Details:        d.Data.Details,
		CurrentPeriod:  d.Data.CurrentPeriod,
		PreviousPeriod: d.Data.PreviousPeriod,
	}, nil
}

// EmployeesTransformer maps the employees note
type EmployeesTransformer struct{}

func (EmployeesTransformer) NewRest() domain.RestObject { return &domain.EmployeesNote{} }

func (EmployeesTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.EmployeesNote)
	if !ok {
		return nil, wrongType(domain.KindEmployees, rest)
	}
	return &domain.EmployeesDocument{
		Data: domain.EmployeesData{
			DataMeta:       storageMeta(r),
			Details:        r.Details,
			CurrentPeriod:  r.CurrentPeriod,
			PreviousPeriod: r.PreviousPeriod,
		},
	}, nil
}

func (EmployeesTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.EmployeesDocument)
	if !ok {
		return nil, wrongType(domain.KindEmployees, doc)
	}
	return &domain.EmployeesNote{
		ResourceMeta:   restMeta(d),
		Details:        d.Data.Details,
		CurrentPeriod:  d.Data.CurrentPeriod,
		PreviousPeriod: d.Data.PreviousPeriod,
	}, nil
}

// IntangibleAssetsTransformer maps the intangible assets note
type IntangibleAssetsTransformer struct{}

func (IntangibleAssetsTransformer) NewRest() domain.RestObject { return &domain.IntangibleAssetsNote{} }

func (IntangibleAssetsTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.IntangibleAssetsNote)
	if !ok {
		return nil, wrongType(domain.KindIntangibleAssets, rest)
	}
	return &domain.IntangibleAssetsDocument{
		Data: domain.IntangibleAssetsData{
			DataMeta:                          storageMeta(r),
			Details:                           r.Details,
			Cost:                              r.Cost,
			Amortisation:                      r.Amortisation,
			NetBookValueAtEndOfCurrentPeriod:  r.NetBookValueAtEndOfCurrentPeriod,
			NetBookValueAtEndOfPreviousPeriod: r.NetBookValueAtEndOfPreviousPeriod,
		},
	}, nil
}

func (IntangibleAssetsTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.IntangibleAssetsDocument)
	if !ok {
		return nil, wrongType(domain.KindIntangibleAssets, doc)
	}
	return &domain.IntangibleAssetsNote{
		ResourceMeta:                      restMeta(d),
		Details:                           d.Data.Details,
		Cost:                              d.Data.Cost,
		Amortisation:                      d.Data.Amortisation,
		NetBookValueAtEndOfCurrentPeriod:  d.Data.NetBookValueAtEndOfCurrentPeriod,
		NetBookValueAtEndOfPreviousPeriod: d.Data.NetBookValueAtEndOfPreviousPeriod,
	}, nil
}

// TangibleAssetsTransformer maps the tangible assets note
type TangibleAssetsTransformer struct{}

func (TangibleAssetsTransformer) NewRest() domain.RestObject { return &domain.TangibleAssetsNote{} }

func (TangibleAssetsTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.TangibleAssetsNote)
	if !ok {
		return nil, wrongType(domain.KindTangibleAssets, rest)
	}
	return &domain.TangibleAssetsDocument{
		Data: domain.TangibleAssetsData{
			DataMeta:                          storageMeta(r),
			Details:                           r.Details,
			Cost:                              r.Cost,
			Depreciation:                      r.Depreciation,
			NetBookValueAtEndOfCurrentPeriod:  r.NetBookValueAtEndOfCurrentPeriod,
			NetBookValueAtEndOfPreviousPeriod: r.NetBookValueAtEndOfPreviousPeriod,
		},
	}, nil
}

func (TangibleAssetsTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.TangibleAssetsDocument)
	if !ok {
		return nil, wrongType(domain.KindTangibleAssets, doc)
	}
	return &domain.TangibleAssetsNote{
		ResourceMeta:                      restMeta(d),
		Details:                           d.Data.Details,
		Cost:                              d.Data.Cost,
		Depreciation:                      d.Data.Depreciation,
		NetBookValueAtEndOfCurrentPeriod:  d.Data.NetBookValueAtEndOfCurrentPeriod,
		NetBookValueAtEndOfPreviousPeriod: d.Data.NetBookValueAtEndOfPreviousPeriod,
	}, nil
}

// DetailsNoteTransformer maps the narrative-only notes; the kind and a
// document factory distinguish the four collections sharing the shape.
type DetailsNoteTransformer struct {
	Kind   domain.ResourceKind
	NewDoc func() domain.StorageDocument
}

func (t DetailsNoteTransformer) NewRest() domain.RestObject { return &domain.DetailsNote{} }

func (t DetailsNoteTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.DetailsNote)
	if !ok {
		return nil, wrongType(t.Kind, rest)
	}
	doc := t.NewDoc()
	data := domain.DetailsData{DataMeta: storageMeta(r), Details: r.Details}
	switch d := doc.(type) {
	case *domain.FixedAssetsInvestmentsDocument:
		d.Data = data
	case *domain.CurrentAssetsInvestmentsDocument:
		d.Data = data
	case *domain.FinancialCommitmentsDocument:
		d.Data = data
	case *domain.OffBalanceSheetArrangementsDocument:
		d.Data = data
	default:
		return nil, wrongType(t.Kind, doc)
	}
	return doc, nil
}

func (t DetailsNoteTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	var data domain.DetailsData
	switch d := doc.(type) {
	case *domain.FixedAssetsInvestmentsDocument:
		data = d.Data
	case *domain.CurrentAssetsInvestmentsDocument:
		data = d.Data
	case *domain.FinancialCommitmentsDocument:
		data = d.Data
	case *domain.OffBalanceSheetArrangementsDocument:
		data = d.Data
	default:
		return nil, wrongType(t.Kind, doc)
	}
	return &domain.DetailsNote{
		ResourceMeta: domain.ResourceMeta{Etag: data.Etag, Kind: data.Kind, Links: data.Links},
		Details:      data.Details,
	}, nil
}

// AccountingPoliciesTransformer maps the accounting policies note
type AccountingPoliciesTransformer struct{}

func (AccountingPoliciesTransformer) NewRest() domain.RestObject {
	return &domain.AccountingPoliciesNote{}
}

func (AccountingPoliciesTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	r, ok := rest.(*domain.AccountingPoliciesNote)
	if !ok {
		return nil, wrongType(domain.KindAccountingPolicies, rest)
	}
	return &domain.AccountingPoliciesDocument{
		Data: domain.AccountingPoliciesData{
			DataMeta:                         storageMeta(r),
			BasisOfMeasurementAndPreparation: r.BasisOfMeasurementAndPreparation,
			TurnoverPolicy:                   r.TurnoverPolicy,
			TangibleDepreciationPolicy:       r.TangibleDepreciationPolicy,
			IntangibleAmortisationPolicy:     r.IntangibleAmortisationPolicy,
			ValuationInformationAndPolicy:    r.ValuationInformationAndPolicy,
			OtherAccountingPolicy:            r.OtherAccountingPolicy,
		},
	}, nil
}

func (AccountingPoliciesTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	d, ok := doc.(*domain.AccountingPoliciesDocument)
	if !ok {
		return nil, wrongType(domain.KindAccountingPolicies, doc)
	}
	return &domain.AccountingPoliciesNote{
		ResourceMeta:                     restMeta(d),
		BasisOfMeasurementAndPreparation: d.Data.BasisOfMeasurementAndPreparation,
		TurnoverPolicy:                   d.Data.TurnoverPolicy,
		TangibleDepreciationPolicy:       d.Data.TangibleDepreciationPolicy,
		IntangibleAmortisationPolicy:     d.Data.IntangibleAmortisationPolicy,
		ValuationInformationAndPolicy:    d.Data.ValuationInformationAndPolicy,
		OtherAccountingPolicy:            d.Data.OtherAccountingPolicy,
	}, nil
}

// TransformerFor returns the canonical transformer for a kind. There is
// exactly one implementation per kind.
func TransformerFor(kind domain.ResourceKind) (domain.Transformer, bool) {
	switch kind {
	case domain.KindCompanyAccount:
		return CompanyAccountTransformer{}, true
	case domain.KindSmallFull:
		return SmallFullTransformer{}, true
	case domain.KindCurrentPeriod:
		return CurrentPeriodTransformer{}, true
	case domain.KindPreviousPeriod:
		return PreviousPeriodTransformer{}, true
	case domain.KindStocks:
		return StocksTransformer{}, true
	case domain.KindDebtors:
		return DebtorsTransformer{}, true
	case domain.KindCreditorsWithinOneYear:
		return CreditorsWithinOneYearTransformer{}, true
	case domain.KindCreditorsAfterOneYear:
		return CreditorsAfterOneYearTransformer{}, true
	case domain.KindEmployees:
		return EmployeesTransformer{}, true
	case domain.KindIntangibleAssets:
		return IntangibleAssetsTransformer{}, true
	case domain.KindTangibleAssets:
		return TangibleAssetsTransformer{}, true
	case domain.KindFixedAssetsInvestments:
		return DetailsNoteTransformer{
			Kind:   domain.KindFixedAssetsInvestments,
			NewDoc: func() domain.StorageDocument { return &domain.FixedAssetsInvestmentsDocument{} },
		}, true
	case domain.KindCurrentAssetsInvestments:
		return DetailsNoteTransformer{
			Kind:   domain.KindCurrentAssetsInvestments,
			NewDoc: func() domain.StorageDocument { return &domain.CurrentAssetsInvestmentsDocument{} },
		}, true
	case domain.KindFinancialCommitments:
		return DetailsNoteTransformer{
			Kind:   domain.KindFinancialCommitments,
			NewDoc: func() domain.StorageDocument { return &domain.FinancialCommitmentsDocument{} },
		}, true
	case domain.KindOffBalanceSheetArrangements:
		return DetailsNoteTransformer{
			Kind:   domain.KindOffBalanceSheetArrangements,
			NewDoc: func() domain.StorageDocument { return &domain.OffBalanceSheetArrangementsDocument{} },
		}, true
	case domain.KindAccountingPolicies:
		return AccountingPoliciesTransformer{}, true
	default:
		return nil, false
	}
}
