package model

import (
	"strings"
	"time"
)

// Stage is the pipeline position of an opportunity.
type Stage string

const (
	StageNew             Stage = "Nueva"
	StageProposal        Stage = "Propuesta"
	StageNegotiation     Stage = "Negociación"
	StagePendingApproval Stage = "Pendiente de aprobación"
	StageWon             Stage = "Ganada"
	StageLost            Stage = "Perdida"
)

// Stages lists the known stages in pipeline order.
var Stages = []Stage{StageNew, StageProposal, StageNegotiation, StagePendingApproval, StageWon, StageLost}

// ParseStage matches s against the known stages, ignoring case and surrounding
// spaces. Unknown values are kept verbatim so they stay visible but exempt from
// stage thresholds.
func ParseStage(s string) Stage {
	s = strings.TrimSpace(s)
	for _, st := range Stages {
		if strings.EqualFold(string(st), s) {
			return st
		}
	}
	return Stage(s)
}

// Periodicity is the billing period tag of a recurring opportunity.
type Periodicity int

const (
	PeriodicityUnknown Periodicity = iota
	PeriodicityMonthly
	PeriodicityQuarterly
	PeriodicitySemiannual
	PeriodicityAnnual
)

// ParsePeriodicity maps the stored label to a Periodicity.
func ParsePeriodicity(s string) Periodicity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mensual":
		return PeriodicityMonthly
	case "trimestral":
		return PeriodicityQuarterly
	case "semestral":
		return PeriodicitySemiannual
	case "anual":
		return PeriodicityAnnual
	default:
		return PeriodicityUnknown
	}
}

// Months is the length of one commitment period. Unknown periods count as one month.
func (p Periodicity) Months() int {
	switch p {
	case PeriodicityMonthly:
		return 1
	case PeriodicityQuarterly:
		return 3
	case PeriodicitySemiannual:
		return 6
	case PeriodicityAnnual:
		return 12
	case PeriodicityUnknown:
		return 1
	}
	return 1
}

func (p Periodicity) String() string {
	switch p {
	case PeriodicityMonthly:
		return "Mensual"
	case PeriodicityQuarterly:
		return "Trimestral"
	case PeriodicitySemiannual:
		return "Semestral"
	case PeriodicityAnnual:
		return "Anual"
	}
	return ""
}

// ScheduledRun is one entry of an opportunity's ordenesPautado list.
type ScheduledRun struct {
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
}

// Opportunity references exactly one client through ClientID.
type Opportunity struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"client_id"`
	Stage            Stage          `json:"stage"`
	Title            string         `json:"title"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
	StageChangedAt   *time.Time     `json:"stage_changed_at,omitempty"`
	ManualUpdateDate *time.Time     `json:"manual_update_date,omitempty"`
	CloseDate        *time.Time     `json:"close_date,omitempty"`
	FinalizationDate *time.Time     `json:"finalization_date,omitempty"`
	Periodicidad     []Periodicity  `json:"periodicidad,omitempty"`
	OrdenesPautado   []ScheduledRun `json:"ordenes_pautado,omitempty"`
}

// PrimaryPeriodicity is the first billing period tag, PeriodicityUnknown when none.
func (o Opportunity) PrimaryPeriodicity() Periodicity {
	if len(o.Periodicidad) == 0 {
		return PeriodicityUnknown
	}
	return o.Periodicidad[0]
}

// EarliestOrderStart returns the earliest FechaInicio among the scheduled runs.
func (o Opportunity) EarliestOrderStart() *time.Time {
	var min *time.Time
	for i := range o.OrdenesPautado {
		t := o.OrdenesPautado[i].FechaInicio
		if t == nil || t.IsZero() {
			continue
		}
		if min == nil || t.Before(*min) {
			min = t
		}
	}
	return min
}
