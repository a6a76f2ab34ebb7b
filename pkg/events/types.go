package events

import (
	"time"
)

// EventType constants for filing domain events
const (
	// Resource lifecycle events
	ResourceCreated = "filings.accounts.resource-created"
	ResourceUpdated = "filings.accounts.resource-updated"
	ResourceDeleted = "filings.accounts.resource-deleted"

	// Closure events
	ClosureChecked = "filings.accounts.closure-checked"
)

// Source constants for event sources
const (
	SourceAccountsService = "/filings/accounts-service"
)

// FilingEvent represents a CloudEvents v1.0 compliant event for the filing platform
type FilingEvent struct {
	SpecVersion     string      `json:"specversion"`
	Type            string      `json:"type"`
	Source          string      `json:"source"`
	Subject         string      `json:"subject,omitempty"`
	ID              string      `json:"id"`
	Time            time.Time   `json:"time"`
	DataContentType string      `json:"datacontenttype"`
	Data            interface{} `json:"data"`

	// Filing-specific extensions
	TransactionID    string `json:"filingtransactionid,omitempty"`
	CompanyAccountID string `json:"filingcompanyaccountid,omitempty"`
	CorrelationID    string `json:"filingcorrelationid,omitempty"`

	// W3C Trace Context propagation
	TraceParent string `json:"traceparent,omitempty"`
	TraceState  string `json:"tracestate,omitempty"`
}

// ResourceEventData represents the data payload for resource lifecycle events
type ResourceEventData struct {
	TransactionID    string `json:"transactionId"`
	CompanyAccountID string `json:"companyAccountId,omitempty"`
	Kind             string `json:"kind"`
	ResourceID       string `json:"resourceId"`
	Etag             string `json:"etag,omitempty"`
}

// ClosureCheckedData represents the data payload for a ClosureChecked event
type ClosureCheckedData struct {
	TransactionID    string `json:"transactionId"`
	CompanyAccountID string `json:"companyAccountId"`
	IsValid          bool   `json:"isValid"`
	ErrorCount       int    `json:"errorCount"`
}
