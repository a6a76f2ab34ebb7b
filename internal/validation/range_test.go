package validation

import "testing"

func int64p(v int64) *int64 { return &v }

func TestCheckRange(t *testing.T) {
	t.Run("skips nil", func(t *testing.T) {
		errs := NewErrors()
		CheckRange(errs, "$.x", nil)
		if !errs.IsEmpty() {
			t.Fatalf("errors = %v", errs.List())
		}
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		errs := NewErrors()
		CheckRange(errs, "$.x", int64p(MaxMonetaryValue))
		CheckRange(errs, "$.y", int64p(MinMonetaryValue))
		if !errs.IsEmpty() {
			t.Fatalf("errors = %v", errs.List())
		}
	})

	t.Run("rejects values outside the bounds", func(t *testing.T) {
		errs := NewErrors()
		CheckRange(errs, "$.x", int64p(MaxMonetaryValue+1))
		CheckRange(errs, "$.y", int64p(MinMonetaryValue-1))
		if errs.Count() != 2 {
			t.Fatalf("Count = %d", errs.Count())
		}
		if !errs.Contains(KeyValueOutsideRange, "$.x") || !errs.Contains(KeyValueOutsideRange, "$.y") {
			t.Fatalf("errors = %v", errs.List())
		}
	})
}

func TestCheckNonNegative(t *testing.T) {
	errs := NewErrors()
	CheckNonNegative(errs, "$.count", int64p(-1))
	if !errs.Contains(KeyValueOutsideRange, "$.count") {
		t.Fatalf("errors = %v", errs.List())
	}

	errs = NewErrors()
	CheckNonNegative(errs, "$.count", int64p(0))
	CheckNonNegative(errs, "$.count2", nil)
	if !errs.IsEmpty() {
		t.Fatalf("errors = %v", errs.List())
	}
}

func TestCheckTotal(t *testing.T) {
	t.Run("matching total", func(t *testing.T) {
		errs := NewErrors()
		CheckTotal(errs, "$.total", int64p(30), int64p(10), int64p(20))
		if !errs.IsEmpty() {
			t.Fatalf("errors = %v", errs.List())
		}
	})

	t.Run("nil parts count as zero", func(t *testing.T) {
		errs := NewErrors()
		CheckTotal(errs, "$.total", int64p(10), int64p(10), nil, nil)
		if !errs.IsEmpty() {
			t.Fatalf("errors = %v", errs.List())
		}
	})

	t.Run("mismatch reports expected and actual", func(t *testing.T) {
		errs := NewErrors()
		CheckTotal(errs, "$.total", int64p(31), int64p(10), int64p(20))
		list := errs.List()
		if len(list) != 1 || list[0].MessageKey != KeyIncorrectTotal {
			t.Fatalf("errors = %v", list)
		}
		if list[0].ErrorValues["expected"] != "30" || list[0].ErrorValues["actual"] != "31" {
			t.Fatalf("ErrorValues = %v", list[0].ErrorValues)
		}
	})

	t.Run("nil total with breakdown is required", func(t *testing.T) {
		errs := NewErrors()
		CheckTotal(errs, "$.total", nil, int64p(10))
		if !errs.Contains(KeyValueRequired, "$.total") {
			t.Fatalf("errors = %v", errs.List())
		}
	})

	t.Run("nil total with empty breakdown is fine", func(t *testing.T) {
		errs := NewErrors()
		CheckTotal(errs, "$.total", nil, nil, nil)
		if !errs.IsEmpty() {
			t.Fatalf("errors = %v", errs.List())
		}
	})
}
