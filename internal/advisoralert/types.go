package advisoralert

import (
	"time"

	"advisor-alert-srv/pkg/paginator"
)

// Type tags the rule that produced an alert.
type Type string

const (
	TypeInvoice     Type = "invoice"
	TypeProspect    Type = "prospect"
	TypeClient      Type = "client"
	TypeOpportunity Type = "opportunity"
	TypeStage       Type = "stage"
)

// Severity orders alerts; see Weight.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Weight ranks severities for sorting: critical=3, warning=2, info=1.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// MetaItem is one label/value line shown under an alert.
type MetaItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Alert is derived from an advisor's book of business on every evaluation
// and never stored. ID is "<type>-<source record id>".
type Alert struct {
	ID           string     `json:"id"`
	Type         Type       `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Severity     Severity   `json:"severity"`
	Meta         []MetaItem `json:"meta"`
	ShouldEmail  bool       `json:"should_email"`
	EmailSummary string     `json:"email_summary"`
	EntityHref   string     `json:"entity_href,omitempty"`
}

// PendingEmail keeps the alerts whose ShouldEmail flag is set, preserving order.
func PendingEmail(alerts []Alert) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.ShouldEmail {
			out = append(out, a)
		}
	}
	return out
}

// EscalationStatus is the outcome of one escalation attempt.
type EscalationStatus string

const (
	EscalationNothingPending EscalationStatus = "nothing_pending"
	EscalationAlreadySent    EscalationStatus = "already_sent"
	EscalationNeedsAuth      EscalationStatus = "needs_auth"
	EscalationSent           EscalationStatus = "sent"
)

// Filter narrows a listing. Empty fields match everything.
type Filter struct {
	Type     Type
	Severity Severity
}

// ListInput is the input of UseCase.List.
type ListInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
	// Today overrides the evaluation date. Zero means now.
	Today time.Time
	// Escalate runs a silent escalation over the same evaluation. Ignored
	// when Today is set.
	Escalate bool
}

// ListOutput is the output of UseCase.List.
type ListOutput struct {
	Alerts             []Alert
	Paginator          paginator.Paginator
	NeedsAuthorization bool
	// Escalation is set when ListInput.Escalate was requested and the
	// escalation returned without error; EscalationErr carries the error
	// otherwise. A failed escalation never fails the listing.
	Escalation    *EscalateOutput
	EscalationErr error
}

// PreviewInput evaluates the alerts of any advisor, for operators.
type PreviewInput struct {
	AdvisorID string
	Today     time.Time
}

// Grant is a send token handed over by the user after an interactive sign-in.
type Grant struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// EscalateInput is the input of UseCase.Escalate. A nil Grant means silent mode:
// only previously stored tokens are used and a missing token is reported as
// EscalationNeedsAuth instead of an error.
type EscalateInput struct {
	Grant *Grant
}

// Interactive reports whether the user explicitly asked for the send.
func (in EscalateInput) Interactive() bool {
	return in.Grant != nil
}

// EscalateOutput is the output of UseCase.Escalate.
type EscalateOutput struct {
	Status  EscalationStatus
	Pending int
	SentAt  time.Time
}
