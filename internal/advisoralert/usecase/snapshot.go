package usecase

import (
	"context"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/advisoralert/engine"
	crmRepo "advisor-alert-srv/internal/crm/repository"
	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/calendar"

	"golang.org/x/sync/errgroup"
)

// today resolves the evaluation instant in the configured location.
func (uc *implUseCase) today(t time.Time) time.Time {
	if t.IsZero() {
		t = uc.now()
	}
	return t.In(uc.opts.Location)
}

func (uc *implUseCase) resolveAdvisor(ctx context.Context, id string) (model.User, error) {
	u, err := uc.deps.CRM.GetUser(ctx, id)
	if err != nil {
		if err == crmRepo.ErrNotFound {
			return model.User{}, advisoralert.ErrAdvisorNotFound
		}
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.resolveAdvisor.GetUser: %v", err)
		return model.User{}, err
	}
	if !u.IsAdvisor() {
		return model.User{}, advisoralert.ErrNotAdvisor
	}
	return u, nil
}

// evaluate loads the advisor's book of business and runs the rules over it.
func (uc *implUseCase) evaluate(ctx context.Context, advisor model.User, today time.Time) ([]advisoralert.Alert, error) {
	st := uc.deps.Settings.Get(ctx)

	snap, err := uc.loadSnapshot(ctx, advisor.ID, today, st)
	if err != nil {
		return nil, err
	}

	return engine.Build(engine.Input{
		Advisor:         advisor,
		Clients:         snap.Clients,
		Opportunities:   snap.Opportunities,
		Invoices:        snap.Invoices,
		Prospects:       snap.Prospects,
		Today:           today,
		StageThresholds: st.StageThresholds,
	}), nil
}

// loadSnapshot reads the records reachable from advisorID. The engine scopes
// ownership again, so pushing filters down here only trims the read.
func (uc *implUseCase) loadSnapshot(ctx context.Context, advisorID string, today time.Time, st settings.Settings) (model.Snapshot, error) {
	var snap model.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		clients, err := uc.deps.CRM.ListClients(gctx, crmRepo.ListOptions{Filter: crmRepo.Filter{OwnerID: advisorID}})
		if err != nil {
			return err
		}
		snap.Clients = clients
		return nil
	})
	g.Go(func() error {
		prospects, err := uc.deps.CRM.ListProspects(gctx, crmRepo.ListOptions{Filter: crmRepo.Filter{OwnerID: advisorID}})
		if err != nil {
			return err
		}
		snap.Prospects = visibleProspects(prospects, today, st.ProspectVisibilityDays)
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.loadSnapshot.owned: %v", err)
		return model.Snapshot{}, err
	}
	if len(snap.Clients) == 0 {
		return snap, nil
	}

	clientIDs := make([]string, 0, len(snap.Clients))
	for _, c := range snap.Clients {
		clientIDs = append(clientIDs, c.ID)
	}
	opps, err := uc.deps.CRM.ListOpportunities(ctx, crmRepo.ListOptions{Filter: crmRepo.Filter{ClientIDs: clientIDs}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.loadSnapshot.ListOpportunities: %v", err)
		return model.Snapshot{}, err
	}
	snap.Opportunities = opps
	if len(opps) == 0 {
		return snap, nil
	}

	oppIDs := make([]string, 0, len(opps))
	for _, o := range opps {
		oppIDs = append(oppIDs, o.ID)
	}
	invoices, err := uc.deps.CRM.ListInvoices(ctx, crmRepo.ListOptions{Filter: crmRepo.Filter{OpportunityIDs: oppIDs}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.loadSnapshot.ListInvoices: %v", err)
		return model.Snapshot{}, err
	}
	snap.Invoices = invoices
	return snap, nil
}

// visibleProspects drops prospects created more than days calendar days before
// today. Prospects without a creation date stay visible.
func visibleProspects(prospects []model.Prospect, today time.Time, days int) []model.Prospect {
	if days <= 0 {
		return prospects
	}
	out := make([]model.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if p.CreatedAt != nil && calendar.DaysBetween(*p.CreatedAt, today) > days {
			continue
		}
		out = append(out, p)
	}
	return out
}
