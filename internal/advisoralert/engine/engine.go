// Package engine derives an advisor's alerts from a snapshot of the CRM.
//
// Build is pure: it reads its input, never mutates it, performs no I/O and
// returns the same alerts in the same order for the same input. It is safe to
// call concurrently.
package engine

import (
	"sort"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"
)

// StageThresholds maps a stage to the number of days an opportunity may stay
// in it before alerting. Stages without an entry never alert.
type StageThresholds map[model.Stage]int

// DefaultStageThresholds returns a fresh copy of the built-in thresholds.
func DefaultStageThresholds() StageThresholds {
	return StageThresholds{
		model.StageNew:             7,
		model.StageProposal:        3,
		model.StageNegotiation:     7,
		model.StagePendingApproval: 1,
	}
}

// Input is everything one evaluation needs.
type Input struct {
	Advisor       model.User
	Clients       []model.Client
	Opportunities []model.Opportunity
	Invoices      []model.Invoice
	Prospects     []model.Prospect
	// Today is the reference instant; its location defines calendar days.
	// Zero means time.Now().
	Today time.Time
	// StageThresholds overrides DefaultStageThresholds when non-nil.
	StageThresholds StageThresholds
}

type rule func(b *book) []advisoralert.Alert

// rules run in this order; ties in severity keep it.
var rules = []rule{
	unpaidInvoices,
	stalledProspects,
	clientsWithoutOpportunities,
	opportunitiesNearingEnd,
	stageAging,
}

// Build evaluates every rule over the advisor's book of business and returns
// the alerts sorted by severity, most severe first.
func Build(in Input) []advisoralert.Alert {
	alerts := make([]advisoralert.Alert, 0)
	if in.Advisor.ID == "" {
		return alerts
	}

	b := newBook(in)
	if len(b.clients) == 0 {
		return alerts
	}

	for _, r := range rules {
		alerts = append(alerts, r(b)...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Weight() > alerts[j].Severity.Weight()
	})
	return alerts
}

// book is the advisor-scoped view of the snapshot.
type book struct {
	today      time.Time
	thresholds StageThresholds

	clients       []model.Client
	opportunities []model.Opportunity
	invoices      []model.Invoice
	prospects     []model.Prospect

	clientByID       map[string]model.Client
	opportunityByID  map[string]model.Opportunity
	opportunityCount map[string]int
}

func newBook(in Input) *book {
	b := &book{
		today:            in.Today,
		thresholds:       in.StageThresholds,
		clientByID:       make(map[string]model.Client),
		opportunityByID:  make(map[string]model.Opportunity),
		opportunityCount: make(map[string]int),
	}
	if b.today.IsZero() {
		b.today = time.Now()
	}
	if b.thresholds == nil {
		b.thresholds = DefaultStageThresholds()
	}

	advisorID := in.Advisor.ID
	for _, c := range in.Clients {
		if c.OwnerID != advisorID || c.ID == "" {
			continue
		}
		if _, dup := b.clientByID[c.ID]; dup {
			continue
		}
		b.clients = append(b.clients, c)
		b.clientByID[c.ID] = c
	}
	if len(b.clients) == 0 {
		return b
	}

	for _, o := range in.Opportunities {
		if _, owned := b.clientByID[o.ClientID]; !owned || o.ID == "" {
			continue
		}
		if _, dup := b.opportunityByID[o.ID]; dup {
			continue
		}
		b.opportunities = append(b.opportunities, o)
		b.opportunityByID[o.ID] = o
		b.opportunityCount[o.ClientID]++
	}

	for _, i := range in.Invoices {
		if _, owned := b.opportunityByID[i.OpportunityID]; owned && i.ID != "" {
			b.invoices = append(b.invoices, i)
		}
	}

	for _, p := range in.Prospects {
		if p.OwnerID == advisorID && p.ID != "" {
			b.prospects = append(b.prospects, p)
		}
	}
	return b
}

func (b *book) clientName(clientID string) string {
	if c, ok := b.clientByID[clientID]; ok && c.Denominacion != "" {
		return c.Denominacion
	}
	return clientID
}

func alertID(t advisoralert.Type, sourceID string) string {
	return string(t) + "-" + sourceID
}
