package validation

import "testing"

func TestErrorsDedupe(t *testing.T) {
	errs := NewErrors()
	errs.AddAt(KeyMandatoryElementMissing, "$.small_full.current_period")
	errs.AddAt(KeyMandatoryElementMissing, "$.small_full.current_period")
	errs.AddAt(KeyIncorrectTotal, "$.small_full.current_period")

	if errs.Count() != 2 {
		t.Fatalf("Count = %d, want 2", errs.Count())
	}
	if !errs.Contains(KeyMandatoryElementMissing, "$.small_full.current_period") {
		t.Fatal("missing expected error")
	}
}

func TestErrorsPreserveInsertionOrder(t *testing.T) {
	errs := NewErrors()
	errs.AddAt(KeyValueOutsideRange, "$.a")
	errs.AddAt(KeyIncorrectTotal, "$.b")
	errs.AddAt(KeyValueRequired, "$.c")

	list := errs.List()
	if len(list) != 3 {
		t.Fatalf("List length = %d", len(list))
	}
	if list[0].MessageKey != KeyValueOutsideRange || list[2].MessageKey != KeyValueRequired {
		t.Fatalf("order not preserved: %v", list)
	}
}

func TestErrorShape(t *testing.T) {
	err := NewError(KeyIncorrectTotal, "$.small_full.notes.stocks.current_period.total").
		WithValue("expected", "10").
		WithValue("actual", "11")

	if err.LocationType != LocationTypeJSONPath {
		t.Fatalf("LocationType = %q", err.LocationType)
	}
	if err.Type != TypeValidation {
		t.Fatalf("Type = %q", err.Type)
	}
	if err.ErrorValues["expected"] != "10" || err.ErrorValues["actual"] != "11" {
		t.Fatalf("ErrorValues = %v", err.ErrorValues)
	}
}

func TestWithValueDoesNotMutateReceiver(t *testing.T) {
	base := NewError(KeyValueOutsideRange, "$.x").WithValue("value", "1")
	derived := base.WithValue("max", "99999999")

	if _, ok := base.ErrorValues["max"]; ok {
		t.Fatal("WithValue mutated the receiver")
	}
	if len(derived.ErrorValues) != 2 {
		t.Fatalf("derived ErrorValues = %v", derived.ErrorValues)
	}
}

func TestMerge(t *testing.T) {
	a := NewErrors()
	a.AddAt(KeyValueRequired, "$.a")

	b := NewErrors()
	b.AddAt(KeyValueRequired, "$.a")
	b.AddAt(KeyValueRequired, "$.b")

	a.Merge(b)
	a.Merge(nil)

	if a.Count() != 2 {
		t.Fatalf("Count after merge = %d", a.Count())
	}
}

func TestListReturnsCopy(t *testing.T) {
	errs := NewErrors()
	errs.AddAt(KeyValueRequired, "$.a")

	list := errs.List()
	list[0].MessageKey = "mutated"

	if errs.List()[0].MessageKey != KeyValueRequired {
		t.Fatal("List exposed internal storage")
	}
}
