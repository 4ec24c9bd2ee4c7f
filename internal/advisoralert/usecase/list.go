package usecase

import (
	"context"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"
	pkgLog "advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/paginator"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, ip advisoralert.ListInput) (advisoralert.ListOutput, error) {
	if err := validateFilter(ip.Filter); err != nil {
		return advisoralert.ListOutput{}, err
	}

	advisor, err := uc.resolveAdvisor(ctx, sc.UserID)
	if err != nil {
		return advisoralert.ListOutput{}, err
	}

	now := uc.today(ip.Today)
	alerts, err := uc.evaluate(ctx, advisor, now)
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.List.evaluate: %v", err)
		return advisoralert.ListOutput{}, err
	}

	var out advisoralert.ListOutput
	if ip.Escalate && ip.Today.IsZero() {
		ectx := pkgLog.WithFields(ctx, uc.l, "advisor_id", advisor.ID, "interactive", false)
		escOut, escErr := uc.escalate(ectx, advisor, now, alerts, advisoralert.EscalateInput{})
		if escErr != nil {
			out.EscalationErr = escErr
		} else {
			out.Escalation = &escOut
		}
	}
	alerts = applyFilter(alerts, ip.Filter)

	needsAuth, err := uc.deps.Escalation.NeedsAuth(ctx, advisor.ID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.advisoralert.usecase.List.NeedsAuth: %v", err)
		needsAuth = false
	}

	out.Alerts, out.Paginator = paginator.Page(alerts, ip.PaginateQuery)
	out.NeedsAuthorization = needsAuth
	return out, nil
}

func (uc *implUseCase) Preview(ctx context.Context, ip advisoralert.PreviewInput) ([]advisoralert.Alert, error) {
	advisor, err := uc.resolveAdvisor(ctx, ip.AdvisorID)
	if err != nil {
		return nil, err
	}

	alerts, err := uc.evaluate(ctx, advisor, uc.today(ip.Today))
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Preview.evaluate: %v", err)
		return nil, err
	}
	return alerts, nil
}

func validateFilter(f advisoralert.Filter) error {
	switch f.Type {
	case "", advisoralert.TypeInvoice, advisoralert.TypeProspect, advisoralert.TypeClient,
		advisoralert.TypeOpportunity, advisoralert.TypeStage:
	default:
		return advisoralert.ErrInvalidFilter
	}
	if f.Severity != "" && f.Severity.Weight() == 0 {
		return advisoralert.ErrInvalidFilter
	}
	return nil
}

func applyFilter(alerts []advisoralert.Alert, f advisoralert.Filter) []advisoralert.Alert {
	if f.Type == "" && f.Severity == "" {
		return alerts
	}
	out := make([]advisoralert.Alert, 0, len(alerts))
	for _, a := range alerts {
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.Severity != "" && a.Severity != f.Severity {
			continue
		}
		out = append(out, a)
	}
	return out
}
