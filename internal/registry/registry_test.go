package registry

import (
	"context"
	"testing"

	"github.com/filings-platform/accounts-service/internal/domain"
	"github.com/filings-platform/accounts-service/pkg/errors"
)

type stubAdapter struct{}

func (stubAdapter) Insert(ctx context.Context, doc domain.StorageDocument) error { return nil }
func (stubAdapter) FindByID(ctx context.Context, id string) (domain.StorageDocument, error) {
	return nil, nil
}
func (stubAdapter) Replace(ctx context.Context, doc domain.StorageDocument) (bool, error) {
	return false, nil
}
func (stubAdapter) DeleteByID(ctx context.Context, id string) (bool, error) { return false, nil }

type stubTransformer struct{}

func (stubTransformer) ToStorage(rest domain.RestObject) (domain.StorageDocument, error) {
	return nil, nil
}
func (stubTransformer) ToRest(doc domain.StorageDocument) (domain.RestObject, error) {
	return nil, nil
}
func (stubTransformer) NewRest() domain.RestObject { return nil }

func register(r *Registry, kind domain.ResourceKind) {
	r.RegisterAdapter(kind, stubAdapter{})
	r.RegisterTransformer(kind, stubTransformer{})
}

func TestResolveRegisteredKind(t *testing.T) {
	r := New()
	register(r, domain.KindStocks)
	r.Seal()

	adapter, appErr := r.Adapter(domain.KindStocks)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if adapter == nil {
		t.Fatal("expected a non-nil adapter")
	}

	transformer, appErr := r.Transformer(domain.KindStocks)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if transformer == nil {
		t.Fatal("expected a non-nil transformer")
	}
}

func TestResolveUnregisteredKind(t *testing.T) {
	r := New()
	r.Seal()

	if _, appErr := r.Adapter(domain.KindEmployees); appErr == nil {
		t.Fatal("expected an error for an unregistered adapter")
	} else if appErr.Code != errors.CodeMissingInfrastructure {
		t.Fatalf("expected CodeMissingInfrastructure, got %s", appErr.Code)
	}

	if _, appErr := r.Transformer(domain.KindEmployees); appErr == nil {
		t.Fatal("expected an error for an unregistered transformer")
	} else if appErr.Code != errors.CodeMissingInfrastructure {
		t.Fatalf("expected CodeMissingInfrastructure, got %s", appErr.Code)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	r := New()
	r.RegisterAdapter(domain.KindStocks, stubAdapter{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate adapter registration")
		}
	}()
	r.RegisterAdapter(domain.KindStocks, stubAdapter{})
}

func TestRegistrationAfterSealPanics(t *testing.T) {
	r := New()
	r.Seal()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on registration after Seal")
		}
	}()
	r.RegisterTransformer(domain.KindStocks, stubTransformer{})
}

func TestKindsReturnsSortedIntersection(t *testing.T) {
	r := New()
	register(r, domain.KindStocks)
	register(r, domain.KindDebtors)
	// adapter only, no transformer: excluded from Kinds
	r.RegisterAdapter(domain.KindEmployees, stubAdapter{})
	r.Seal()

	kinds := r.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %v", kinds)
	}
	if kinds[0] != domain.KindDebtors || kinds[1] != domain.KindStocks {
		t.Fatalf("expected sorted [debtors stocks], got %v", kinds)
	}
}

func TestAssertTotal(t *testing.T) {
	r := New()
	for _, kind := range domain.AllKinds() {
		register(r, kind)
	}
	r.Seal()

	if appErr := r.AssertTotal(domain.AllKinds()); appErr != nil {
		t.Fatalf("expected a fully wired registry, got %v", appErr)
	}

	partial := New()
	register(partial, domain.KindSmallFull)
	partial.Seal()

	if appErr := partial.AssertTotal(domain.AllKinds()); appErr == nil {
		t.Fatal("expected AssertTotal to fail for a partial registry")
	}
}
