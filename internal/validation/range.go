package validation

import "strconv"

// Monetary fields are bounded to a fixed signed range.
const (
	MaxMonetaryValue int64 = 99999999
	MinMonetaryValue int64 = -99999999
)

// CheckRange adds a valueOutsideRange error when the field is present and
// outside the signed monetary bounds. Nil fields are skipped; absence is a
// presence rule's concern, not a range rule's.
func CheckRange(errs *Errors, location string, value *int64) {
	if value == nil {
		return
	}
	if *value < MinMonetaryValue || *value > MaxMonetaryValue {
		errs.Add(NewError(KeyValueOutsideRange, location).
			WithValue("value", strconv.FormatInt(*value, 10)).
			WithValue("min", strconv.FormatInt(MinMonetaryValue, 10)).
			WithValue("max", strconv.FormatInt(MaxMonetaryValue, 10)))
	}
}

// CheckNonNegative adds a valueOutsideRange error when the field is present
// and negative. Used for counts that cannot go below zero.
func CheckNonNegative(errs *Errors, location string, value *int64) {
	if value == nil {
		return
	}
	if *value < 0 || *value > MaxMonetaryValue {
		errs.Add(NewError(KeyValueOutsideRange, location).
			WithValue("value", strconv.FormatInt(*value, 10)).
			WithValue("min", "0").
			WithValue("max", strconv.FormatInt(MaxMonetaryValue, 10)))
	}
}

// CheckTotal adds an incorrectTotal error when a stated total is present and
// differs from the sum of its breakdown fields. Nil breakdown fields count
// as zero; a nil total with a non-zero breakdown is reported as required.
func CheckTotal(errs *Errors, location string, total *int64, parts ...*int64) {
	var sum int64
	var anyPart bool
	for _, p := range parts {
		if p != nil {
			sum += *p
			anyPart = true
		}
	}

	if total == nil {
		if anyPart {
			errs.AddAt(KeyValueRequired, location)
		}
		return
	}

	if *total != sum {
		errs.Add(NewError(KeyIncorrectTotal, location).
			WithValue("expected", strconv.FormatInt(sum, 10)).
			WithValue("actual", strconv.FormatInt(*total, 10)))
	}
}
