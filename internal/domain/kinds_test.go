package domain

import "testing"

func TestAllKindsAreValid(t *testing.T) {
	for _, kind := range AllKinds() {
		if !kind.IsValid() {
			t.Fatalf("kind %s not valid", kind)
		}
		if kind.PathSegment() == "" {
			t.Fatalf("kind %s has no path segment", kind)
		}
		if kind.LinkName() == "" {
			t.Fatalf("kind %s has no link name", kind)
		}
	}
}

func TestPathSegmentsAreUnique(t *testing.T) {
	seen := make(map[string]ResourceKind)
	for _, kind := range AllKinds() {
		segment := kind.PathSegment()
		if prev, ok := seen[segment]; ok {
			t.Fatalf("segment %q shared by %s and %s", segment, prev, kind)
		}
		seen[segment] = kind
	}
}

func TestNoteKindForSegment(t *testing.T) {
	t.Run("resolves every note kind", func(t *testing.T) {
		for _, kind := range NoteKinds() {
			got, ok := NoteKindForSegment(kind.PathSegment())
			if !ok || got != kind {
				t.Fatalf("NoteKindForSegment(%q) = %s, %v", kind.PathSegment(), got, ok)
			}
		}
	})

	t.Run("rejects unknown segments", func(t *testing.T) {
		for _, segment := range []string{"", "directors-report", "small-full", "company-account"} {
			if _, ok := NoteKindForSegment(segment); ok {
				t.Fatalf("NoteKindForSegment(%q) unexpectedly resolved", segment)
			}
		}
	})
}

func TestIsNote(t *testing.T) {
	if KindCompanyAccount.IsNote() || KindSmallFull.IsNote() || KindCurrentPeriod.IsNote() {
		t.Fatal("structural kinds must not be notes")
	}
	for _, kind := range NoteKinds() {
		if !kind.IsNote() {
			t.Fatalf("kind %s should be a note", kind)
		}
	}
}

func TestSelfLink(t *testing.T) {
	cases := []struct {
		kind ResourceKind
		want string
	}{
		{KindCompanyAccount, "/transactions/tx-1/company-accounts/ca-1"},
		{KindSmallFull, "/transactions/tx-1/company-accounts/ca-1/small-full"},
		{KindCurrentPeriod, "/transactions/tx-1/company-accounts/ca-1/small-full/current-period"},
		{KindPreviousPeriod, "/transactions/tx-1/company-accounts/ca-1/small-full/previous-period"},
		{KindStocks, "/transactions/tx-1/company-accounts/ca-1/small-full/notes/stocks"},
		{KindOffBalanceSheetArrangements, "/transactions/tx-1/company-accounts/ca-1/small-full/notes/off-balance-sheet-arrangements"},
	}
	for _, tc := range cases {
		if got := tc.kind.SelfLink("tx-1", "ca-1"); got != tc.want {
			t.Fatalf("SelfLink(%s) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
