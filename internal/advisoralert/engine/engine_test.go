package engine

import (
	"strings"
	"testing"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := today.AddDate(0, 0, -n)
	return &t
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

var advisor = model.User{ID: "adv-1", Email: "ana@example.com", Name: "Ana", Role: model.RoleAdvisor}

// quietInput returns a book with one client and one closed-out won opportunity,
// which on its own produces no alerts.
func quietInput() Input {
	return Input{
		Advisor: advisor,
		Clients: []model.Client{{ID: "cli-1", OwnerID: advisor.ID, Denominacion: "Acme SA"}},
		Opportunities: []model.Opportunity{{
			ID:               "opp-1",
			ClientID:         "cli-1",
			Stage:            model.StageWon,
			Title:            "Pauta anual",
			CreatedAt:        daysAgo(90),
			FinalizationDate: daysAgo(1),
		}},
		Today: today,
	}
}

func byType(alerts []advisoralert.Alert, typ advisoralert.Type) []advisoralert.Alert {
	var out []advisoralert.Alert
	for _, a := range alerts {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

func TestBuild_QuietBookHasNoAlerts(t *testing.T) {
	assert.Empty(t, Build(quietInput()))
}

func TestBuild_EmptyAdvisor(t *testing.T) {
	in := quietInput()
	in.Advisor = model.User{}
	in.Invoices = []model.Invoice{{ID: "inv-1", OpportunityID: "opp-1", Date: daysAgo(30)}}

	got := Build(in)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuild_ShortCircuitsWithoutClients(t *testing.T) {
	in := Input{
		Advisor: advisor,
		Clients: []model.Client{{ID: "cli-x", OwnerID: "someone-else"}},
		Opportunities: []model.Opportunity{{
			ID: "opp-x", ClientID: "cli-x", Stage: model.StageProposal, StageChangedAt: daysAgo(30),
		}},
		Invoices:  []model.Invoice{{ID: "inv-x", OpportunityID: "opp-x", Date: daysAgo(30)}},
		Prospects: []model.Prospect{{ID: "pro-1", OwnerID: advisor.ID, StatusChangedAt: daysAgo(10)}},
		Today:     today,
	}

	assert.Empty(t, Build(in))
}

func TestUnpaidInvoice_FifteenDaysOld(t *testing.T) {
	in := quietInput()
	in.Invoices = []model.Invoice{{
		ID:            "inv-1",
		OpportunityID: "opp-1",
		InvoiceNumber: "A-0001",
		Status:        model.InvoiceStatusSent,
		Date:          daysAgo(15),
	}}

	got := Build(in)
	require.Len(t, got, 1)
	a := got[0]
	assert.Equal(t, "invoice-inv-1", a.ID)
	assert.Equal(t, advisoralert.TypeInvoice, a.Type)
	assert.Equal(t, advisoralert.SeverityCritical, a.Severity)
	// (15-7) % 3 == 2
	assert.False(t, a.ShouldEmail)
	assert.Contains(t, a.EmailSummary, "A-0001")
	assert.Contains(t, a.EmailSummary, "15 días")
	assert.Equal(t, "/facturas/inv-1", a.EntityHref)
}

func TestUnpaidInvoice_Cadence(t *testing.T) {
	tests := []struct {
		days     int
		wantHit  bool
		severity advisoralert.Severity
		email    bool
	}{
		{days: 6, wantHit: false},
		{days: 7, wantHit: true, severity: advisoralert.SeverityWarning, email: true},
		{days: 8, wantHit: true, severity: advisoralert.SeverityWarning, email: false},
		{days: 9, wantHit: true, severity: advisoralert.SeverityWarning, email: false},
		{days: 10, wantHit: true, severity: advisoralert.SeverityWarning, email: true},
		{days: 13, wantHit: true, severity: advisoralert.SeverityWarning, email: true},
		{days: 14, wantHit: true, severity: advisoralert.SeverityCritical, email: false},
		{days: 16, wantHit: true, severity: advisoralert.SeverityCritical, email: true},
	}

	for _, tt := range tests {
		in := quietInput()
		in.Invoices = []model.Invoice{{ID: "inv-1", OpportunityID: "opp-1", Status: model.InvoiceStatusPending, Date: daysAgo(tt.days)}}

		got := byType(Build(in), advisoralert.TypeInvoice)
		if !tt.wantHit {
			assert.Empty(t, got, "day %d", tt.days)
			continue
		}
		require.Len(t, got, 1, "day %d", tt.days)
		assert.Equal(t, tt.severity, got[0].Severity, "day %d", tt.days)
		assert.Equal(t, tt.email, got[0].ShouldEmail, "day %d", tt.days)
	}
}

func TestUnpaidInvoice_ReferenceDate(t *testing.T) {
	in := quietInput()
	in.Invoices = []model.Invoice{
		// manual date wins over generation
		{ID: "inv-manual", OpportunityID: "opp-1", Date: daysAgo(3), DateGenerated: daysAgo(30)},
		{ID: "inv-generated", OpportunityID: "opp-1", DateGenerated: daysAgo(8)},
		{ID: "inv-undated", OpportunityID: "opp-1"},
		{ID: "inv-paid", OpportunityID: "opp-1", Status: model.InvoiceStatusPaid, Date: daysAgo(40)},
		{ID: "inv-foreign", OpportunityID: "opp-other", Date: daysAgo(40)},
	}

	got := byType(Build(in), advisoralert.TypeInvoice)
	require.Len(t, got, 1)
	assert.Equal(t, "invoice-inv-generated", got[0].ID)
}

func TestStalledProspect_ExactlyThreeDays(t *testing.T) {
	in := quietInput()
	in.Prospects = []model.Prospect{{
		ID:              "pro-1",
		OwnerID:         advisor.ID,
		CompanyName:     "Globex",
		Status:          model.ProspectStatusContacted,
		StatusChangedAt: daysAgo(3),
		CreatedAt:       daysAgo(40),
	}}

	got := Build(in)
	require.Len(t, got, 1)
	assert.Equal(t, "prospect-pro-1", got[0].ID)
	assert.Equal(t, advisoralert.SeverityInfo, got[0].Severity)
	assert.True(t, got[0].ShouldEmail)
}

func TestStalledProspect_Thresholds(t *testing.T) {
	tests := []struct {
		days     int
		wantHit  bool
		severity advisoralert.Severity
		email    bool
	}{
		{days: 2, wantHit: false},
		{days: 4, wantHit: true, severity: advisoralert.SeverityInfo, email: false},
		{days: 6, wantHit: true, severity: advisoralert.SeverityWarning, email: true},
		{days: 7, wantHit: true, severity: advisoralert.SeverityWarning, email: false},
	}

	for _, tt := range tests {
		in := quietInput()
		// no status change recorded: creation date is the anchor
		in.Prospects = []model.Prospect{{ID: "pro-1", OwnerID: advisor.ID, CreatedAt: daysAgo(tt.days)}}

		got := byType(Build(in), advisoralert.TypeProspect)
		if !tt.wantHit {
			assert.Empty(t, got, "day %d", tt.days)
			continue
		}
		require.Len(t, got, 1, "day %d", tt.days)
		assert.Equal(t, tt.severity, got[0].Severity, "day %d", tt.days)
		assert.Equal(t, tt.email, got[0].ShouldEmail, "day %d", tt.days)
	}
}

func TestClientWithoutOpportunities(t *testing.T) {
	in := quietInput()
	in.Clients = append(in.Clients, model.Client{ID: "cli-2", OwnerID: advisor.ID, Denominacion: "Initech", CreatedAt: date(2024, 1, 10)})

	got := Build(in)
	require.Len(t, got, 1)
	assert.Equal(t, "client-cli-2", got[0].ID)
	assert.Equal(t, advisoralert.SeverityInfo, got[0].Severity)
	assert.False(t, got[0].ShouldEmail, "the 15th is outside the monthly reminder window")

	for _, day := range []int{1, 2, 3} {
		in.Today = time.Date(2024, 6, day, 9, 0, 0, 0, time.UTC)
		got := byType(Build(in), advisoralert.TypeClient)
		require.Len(t, got, 1)
		assert.True(t, got[0].ShouldEmail, "day %d", day)
	}

	in.Today = time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC)
	assert.False(t, byType(Build(in), advisoralert.TypeClient)[0].ShouldEmail)
}

func TestStageAging_ProposalThreeDays(t *testing.T) {
	in := quietInput()
	in.Opportunities = append(in.Opportunities, model.Opportunity{
		ID:               "opp-2",
		ClientID:         "cli-1",
		Stage:            model.StageProposal,
		Title:            "Campaña invierno",
		StageChangedAt:   daysAgo(3),
		UpdatedAt:        daysAgo(1),
		FinalizationDate: daysAgo(1),
	})

	got := Build(in)
	require.Len(t, got, 1)
	assert.Equal(t, "stage-opp-2", got[0].ID)
	assert.Equal(t, advisoralert.SeverityWarning, got[0].Severity)
	assert.True(t, got[0].ShouldEmail)
}

func TestStageAging_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		stage    model.Stage
		days     int
		wantHit  bool
		severity advisoralert.Severity
	}{
		{name: "new below threshold", stage: model.StageNew, days: 6, wantHit: false},
		{name: "new at threshold", stage: model.StageNew, days: 7, wantHit: true, severity: advisoralert.SeverityWarning},
		{name: "new critical", stage: model.StageNew, days: 10, wantHit: true, severity: advisoralert.SeverityCritical},
		{name: "proposal critical", stage: model.StageProposal, days: 6, wantHit: true, severity: advisoralert.SeverityCritical},
		{name: "negotiation warning", stage: model.StageNegotiation, days: 9, wantHit: true, severity: advisoralert.SeverityWarning},
		{name: "pending approval one day", stage: model.StagePendingApproval, days: 1, wantHit: true, severity: advisoralert.SeverityWarning},
		{name: "pending approval critical", stage: model.StagePendingApproval, days: 4, wantHit: true, severity: advisoralert.SeverityCritical},
		{name: "won is exempt", stage: model.StageWon, days: 100, wantHit: false},
		{name: "unknown stage is exempt", stage: model.Stage("Archivada"), days: 100, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := quietInput()
			in.Opportunities = append(in.Opportunities, model.Opportunity{
				ID: "opp-2", ClientID: "cli-1", Stage: tt.stage, StageChangedAt: daysAgo(tt.days), FinalizationDate: daysAgo(1),
			})

			got := byType(Build(in), advisoralert.TypeStage)
			if !tt.wantHit {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.severity, got[0].Severity)
			assert.True(t, got[0].ShouldEmail)
		})
	}
}

func TestStageAging_AnchorFallback(t *testing.T) {
	in := quietInput()
	in.Opportunities = append(in.Opportunities,
		model.Opportunity{ID: "opp-updated", ClientID: "cli-1", Stage: model.StageProposal, UpdatedAt: daysAgo(4), CreatedAt: daysAgo(1), FinalizationDate: daysAgo(1)},
		model.Opportunity{ID: "opp-created", ClientID: "cli-1", Stage: model.StageProposal, CreatedAt: daysAgo(5), FinalizationDate: daysAgo(1)},
		model.Opportunity{ID: "opp-undated", ClientID: "cli-1", Stage: model.StageProposal, FinalizationDate: daysAgo(1)},
	)

	got := byType(Build(in), advisoralert.TypeStage)
	require.Len(t, got, 2)
	assert.Equal(t, "stage-opp-updated", got[0].ID)
	assert.Equal(t, "stage-opp-created", got[1].ID)
}

func TestStageAging_CustomThresholds(t *testing.T) {
	in := quietInput()
	in.Opportunities[0].StageChangedAt = daysAgo(31)
	in.Opportunities = append(in.Opportunities, model.Opportunity{
		ID: "opp-2", ClientID: "cli-1", Stage: model.StageProposal, StageChangedAt: daysAgo(20), FinalizationDate: daysAgo(1),
	})
	in.StageThresholds = StageThresholds{model.StageWon: 30}

	got := byType(Build(in), advisoralert.TypeStage)
	require.Len(t, got, 1, "stages missing from the override are exempt")
	assert.Equal(t, "stage-opp-1", got[0].ID)
	assert.Equal(t, advisoralert.SeverityWarning, got[0].Severity)
	assert.Contains(t, got[0].Meta, advisoralert.MetaItem{Label: "Umbral", Value: "30"})
}

func TestOpportunityNearingEnd(t *testing.T) {
	tests := []struct {
		name     string
		opp      model.Opportunity
		wantHit  bool
		severity advisoralert.Severity
		email    bool
		days     string
	}{
		{
			name:     "monthly from manual update, exactly 20 days left",
			opp:      model.Opportunity{ManualUpdateDate: date(2024, 5, 4), Periodicidad: []model.Periodicity{model.PeriodicityMonthly}},
			wantHit:  true,
			severity: advisoralert.SeverityWarning,
			email:    true,
			days:     "20",
		},
		{
			name:    "21 days left is outside the window",
			opp:     model.Opportunity{ManualUpdateDate: date(2024, 5, 5), Periodicidad: []model.Periodicity{model.PeriodicityMonthly}},
			wantHit: false,
		},
		{
			name:     "ten days left is critical",
			opp:      model.Opportunity{ManualUpdateDate: date(2024, 4, 25)},
			wantHit:  true,
			severity: advisoralert.SeverityCritical,
			email:    false,
			days:     "10",
		},
		{
			name: "quarterly from earliest order start",
			opp: model.Opportunity{
				Periodicidad:   []model.Periodicity{model.PeriodicityQuarterly, model.PeriodicityMonthly},
				OrdenesPautado: []model.ScheduledRun{{FechaInicio: date(2024, 3, 1)}, {}, {FechaInicio: date(2024, 2, 20)}},
				CloseDate:      date(2024, 1, 1),
			},
			wantHit:  true,
			severity: advisoralert.SeverityCritical,
			email:    false,
			days:     "5",
		},
		{
			name:     "close date when nothing else, ends today",
			opp:      model.Opportunity{CloseDate: date(2023, 11, 15), Periodicidad: []model.Periodicity{model.PeriodicitySemiannual}},
			wantHit:  true,
			severity: advisoralert.SeverityCritical,
			days:     "0",
		},
		{
			name:     "creation date, annual",
			opp:      model.Opportunity{CreatedAt: date(2023, 5, 30), Periodicidad: []model.Periodicity{model.PeriodicityAnnual}},
			wantHit:  true,
			severity: advisoralert.SeverityWarning,
			days:     "15",
		},
		{
			name:    "already past",
			opp:     model.Opportunity{ManualUpdateDate: date(2024, 4, 1)},
			wantHit: false,
		},
		{
			name:    "finalization date closes it out",
			opp:     model.Opportunity{ManualUpdateDate: date(2024, 4, 25), FinalizationDate: date(2024, 6, 1)},
			wantHit: false,
		},
		{
			name:    "no reference date",
			opp:     model.Opportunity{Periodicidad: []model.Periodicity{model.PeriodicityMonthly}},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := quietInput()
			opp := tt.opp
			opp.ID = "opp-2"
			opp.ClientID = "cli-1"
			opp.Stage = model.StageWon
			opp.Title = "Pauta radio"
			in.Opportunities = append(in.Opportunities, opp)

			got := byType(Build(in), advisoralert.TypeOpportunity)
			if !tt.wantHit {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, "opportunity-opp-2", got[0].ID)
			assert.Equal(t, tt.severity, got[0].Severity)
			assert.Equal(t, tt.email, got[0].ShouldEmail)
			assert.Contains(t, got[0].Meta, advisoralert.MetaItem{Label: "Días restantes", Value: tt.days})
		})
	}
}

// twoAdvisors builds a snapshot where a second advisor owns the same kinds of records.
func twoAdvisors() Input {
	other := "adv-2"
	return Input{
		Advisor: advisor,
		Clients: []model.Client{
			{ID: "cli-a1", OwnerID: advisor.ID, Denominacion: "A1"},
			{ID: "cli-a2", OwnerID: advisor.ID, Denominacion: "A2"},
			{ID: "cli-b1", OwnerID: other, Denominacion: "B1"},
			{ID: "cli-b2", OwnerID: other, Denominacion: "B2"},
		},
		Opportunities: []model.Opportunity{
			{ID: "opp-a1", ClientID: "cli-a1", Stage: model.StageNegotiation, StageChangedAt: daysAgo(12), ManualUpdateDate: daysAgo(20)},
			{ID: "opp-b1", ClientID: "cli-b1", Stage: model.StageNegotiation, StageChangedAt: daysAgo(12), ManualUpdateDate: daysAgo(20)},
		},
		Invoices: []model.Invoice{
			{ID: "inv-a1", OpportunityID: "opp-a1", Date: daysAgo(9)},
			{ID: "inv-b1", OpportunityID: "opp-b1", Date: daysAgo(9)},
		},
		Prospects: []model.Prospect{
			{ID: "pro-a1", OwnerID: advisor.ID, CreatedAt: daysAgo(7)},
			{ID: "pro-b1", OwnerID: other, CreatedAt: daysAgo(7)},
		},
		Today: today,
	}
}

func TestBuild_OwnershipScoping(t *testing.T) {
	got := Build(twoAdvisors())
	require.NotEmpty(t, got)

	owned := map[string]bool{"cli-a1": true, "cli-a2": true, "opp-a1": true, "inv-a1": true, "pro-a1": true}
	for _, a := range got {
		source := strings.TrimPrefix(a.ID, string(a.Type)+"-")
		assert.True(t, owned[source], "alert %s references a record outside the advisor's book", a.ID)
	}
	assert.Len(t, got, 5, "invoice, prospect, client a2, opportunity end, stage")
}

func TestBuild_SortedBySeverityAndStable(t *testing.T) {
	got := Build(twoAdvisors())

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Severity.Weight(), got[i].Severity.Weight(), "position %d", i)
	}

	// critical: opportunity end (rule 4) then stage (rule 5); warning: invoice (rule 1),
	// prospect (rule 2); info: client (rule 3).
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"opportunity-opp-a1", "stage-opp-a1", "invoice-inv-a1", "prospect-pro-a1", "client-cli-a2"}, ids)
}

func TestBuild_Deterministic(t *testing.T) {
	in := twoAdvisors()
	first := Build(in)
	second := Build(in)
	assert.Equal(t, first, second)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	in := twoAdvisors()
	clients := append([]model.Client(nil), in.Clients...)
	opps := append([]model.Opportunity(nil), in.Opportunities...)
	invoices := append([]model.Invoice(nil), in.Invoices...)

	Build(in)

	assert.Equal(t, clients, in.Clients)
	assert.Equal(t, opps, in.Opportunities)
	assert.Equal(t, invoices, in.Invoices)
}

func TestBuild_IDsStableAcrossDays(t *testing.T) {
	in := twoAdvisors()
	in.Opportunities[0].ManualUpdateDate = nil
	in.Opportunities[0].FinalizationDate = daysAgo(1)
	base := Build(in)

	in.Today = today.AddDate(0, 0, 1)
	next := Build(in)

	ids := func(as []advisoralert.Alert) map[string]bool {
		m := make(map[string]bool)
		for _, a := range as {
			m[a.ID] = true
		}
		return m
	}
	assert.Equal(t, ids(base), ids(next))
}

func TestBuild_CalendarDaysInTodayLocation(t *testing.T) {
	loc := time.FixedZone("ART", -3*3600)
	in := quietInput()
	in.Today = time.Date(2024, 5, 15, 8, 0, 0, 0, loc)
	// 02:00Z on the 8th is still the 7th in ART: 8 days, not 7.
	issued := time.Date(2024, 5, 8, 2, 0, 0, 0, time.UTC)
	in.Invoices = []model.Invoice{{ID: "inv-1", OpportunityID: "opp-1", Date: &issued}}

	got := byType(Build(in), advisoralert.TypeInvoice)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Meta, advisoralert.MetaItem{Label: "Días impaga", Value: "8"})
	assert.False(t, got[0].ShouldEmail)
}
