package advisoralert

import (
	"context"

	"advisor-alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List evaluates the caller's alerts.
	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
	// Preview evaluates the alerts of ip.AdvisorID without touching escalation state.
	Preview(ctx context.Context, ip PreviewInput) ([]Alert, error)
	// Escalate sends today's digest for the caller if one is due.
	Escalate(ctx context.Context, sc model.Scope, ip EscalateInput) (EscalateOutput, error)
}
