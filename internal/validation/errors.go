// Package validation holds the path-addressed error accumulator shared by
// the submission validators and the closure engine, plus the per-kind
// submission rules themselves.
package validation

import "fmt"

// Message keys shared across validators
const (
	KeyMandatoryElementMissing = "mandatoryElementMissing"
	KeyIncorrectTotal          = "incorrectTotal"
	KeyValueOutsideRange       = "valueOutsideRange"
	KeyValueRequired           = "valueRequired"
)

// Location and error type tags
const (
	LocationTypeJSONPath = "json-path"
	TypeValidation       = "validation"
)

// Error is one business-rule violation addressed by a json-path location
type Error struct {
	MessageKey   string            `json:"error"`
	Location     string            `json:"location"`
	LocationType string            `json:"location_type"`
	Type         string            `json:"type"`
	ErrorValues  map[string]string `json:"error_values,omitempty"`
}

// NewError creates a validation Error at the given json-path location
func NewError(messageKey, location string) Error {
	return Error{
		MessageKey:   messageKey,
		Location:     location,
		LocationType: LocationTypeJSONPath,
		Type:         TypeValidation,
	}
}

// WithValue attaches a key/value detail pair
func (e Error) WithValue(key, value string) Error {
	values := make(map[string]string, len(e.ErrorValues)+1)
	for k, v := range e.ErrorValues {
		values[k] = v
	}
	values[key] = value
	e.ErrorValues = values
	return e
}

func (e Error) dedupeKey() string {
	return e.MessageKey + "|" + e.Location
}

// Errors is an ordered, de-duplicating collection of validation Errors.
// Adding the same message key at the same location twice is a no-op, so rule
// units can overlap without double-reporting.
type Errors struct {
	list []Error
	seen map[string]bool
}

// NewErrors creates an empty accumulator
func NewErrors() *Errors {
	return &Errors{seen: make(map[string]bool)}
}

// Add appends an Error unless an equal one is already present
func (e *Errors) Add(err Error) {
	if e.seen == nil {
		e.seen = make(map[string]bool)
	}
	key := err.dedupeKey()
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	e.list = append(e.list, err)
}

// AddAt is shorthand for Add(NewError(messageKey, location))
func (e *Errors) AddAt(messageKey, location string) {
	e.Add(NewError(messageKey, location))
}

// Merge adds every Error from another accumulator
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for _, err := range other.list {
		e.Add(err)
	}
}

// Count returns the number of accumulated Errors
func (e *Errors) Count() int {
	return len(e.list)
}

// IsEmpty reports whether no Errors have accumulated
func (e *Errors) IsEmpty() bool {
	return len(e.list) == 0
}

// Contains reports whether an Error with the message key and location is present
func (e *Errors) Contains(messageKey, location string) bool {
	return e.seen[messageKey+"|"+location]
}

// List returns the accumulated Errors in insertion order
func (e *Errors) List() []Error {
	out := make([]Error, len(e.list))
	copy(out, e.list)
	return out
}

// String summarizes the accumulator for logs
func (e *Errors) String() string {
	return fmt.Sprintf("%d validation error(s)", len(e.list))
}
