package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"advisor-alert-srv/internal/advisoralert/repository"
	crmRepo "advisor-alert-srv/internal/crm/repository"
	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/calendar"
	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/mail"
)

type fakeCRM struct {
	users         map[string]model.User
	clients       []model.Client
	opportunities []model.Opportunity
	invoices      []model.Invoice
	prospects     []model.Prospect
	err           error
	clientReads   atomic.Int32
}

func contains(ids []string, id string) bool {
	if ids == nil {
		return true
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (f *fakeCRM) GetUser(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, crmRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeCRM) ListClients(_ context.Context, opts crmRepo.ListOptions) ([]model.Client, error) {
	f.clientReads.Add(1)
	var out []model.Client
	for _, c := range f.clients {
		if opts.Filter.OwnerID != "" && c.OwnerID != opts.Filter.OwnerID {
			continue
		}
		out = append(out, c)
	}
	return out, f.err
}

func (f *fakeCRM) ListOpportunities(_ context.Context, opts crmRepo.ListOptions) ([]model.Opportunity, error) {
	var out []model.Opportunity
	for _, o := range f.opportunities {
		if contains(opts.Filter.ClientIDs, o.ClientID) {
			out = append(out, o)
		}
	}
	return out, f.err
}

func (f *fakeCRM) ListInvoices(_ context.Context, opts crmRepo.ListOptions) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, i := range f.invoices {
		if contains(opts.Filter.OpportunityIDs, i.OpportunityID) {
			out = append(out, i)
		}
	}
	return out, f.err
}

func (f *fakeCRM) ListProspects(_ context.Context, opts crmRepo.ListOptions) ([]model.Prospect, error) {
	var out []model.Prospect
	for _, p := range f.prospects {
		if opts.Filter.OwnerID != "" && p.OwnerID != opts.Filter.OwnerID {
			continue
		}
		out = append(out, p)
	}
	return out, f.err
}

type fakeSettings struct {
	s settings.Settings
}

func (f *fakeSettings) Initialize(context.Context)            {}
func (f *fakeSettings) Get(context.Context) settings.Settings { return f.s }
func (f *fakeSettings) Invalidate(context.Context)            {}

type fakeEscalation struct {
	mu        sync.Mutex
	lastSent  map[string]time.Time
	claims    map[string]string
	needsAuth map[string]bool
	seq       int
}

func newFakeEscalation() *fakeEscalation {
	return &fakeEscalation{
		lastSent:  map[string]time.Time{},
		claims:    map[string]string{},
		needsAuth: map[string]bool{},
	}
}

func claimKey(id string, day time.Time) string { return id + ":" + calendar.DayKey(day) }

func (f *fakeEscalation) LastSent(_ context.Context, id string) (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.lastSent[id]
	return t, ok, nil
}

func (f *fakeEscalation) SetLastSent(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSent[id] = at
	return nil
}

func (f *fakeEscalation) ClaimDay(_ context.Context, id string, day time.Time) (repository.Claim, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := claimKey(id, day)
	if _, held := f.claims[key]; held {
		return repository.Claim{}, false, nil
	}
	f.seq++
	c := repository.Claim{AdvisorID: id, Day: day, Token: fmt.Sprintf("claim-%d", f.seq)}
	f.claims[key] = c.Token
	return c, true, nil
}

func (f *fakeEscalation) ReleaseDay(_ context.Context, c repository.Claim) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := claimKey(c.AdvisorID, c.Day)
	if f.claims[key] == c.Token {
		delete(f.claims, key)
	}
	return nil
}

func (f *fakeEscalation) NeedsAuth(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.needsAuth[id], nil
}

func (f *fakeEscalation) SetNeedsAuth(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.needsAuth[id] = true
	return nil
}

func (f *fakeEscalation) ClearNeedsAuth(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.needsAuth, id)
	return nil
}

type fakeArchive struct {
	puts []string
}

func (f *fakeArchive) Put(_ context.Context, id string, day time.Time, _ []byte) error {
	f.puts = append(f.puts, id+"/"+calendar.DayKey(day))
	return nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
	// hang makes Send wait for its context to end.
	hang bool
}

func (f *fakeSender) Send(ctx context.Context, _ mail.Token, msg mail.Message) error {
	if f.hang {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeTokens struct {
	stored    map[string]mail.Token
	forgotten []string
}

func (f *fakeTokens) Silent(_ context.Context, id string) (mail.Token, error) {
	t, ok := f.stored[id]
	if !ok {
		return mail.Token{}, mail.ErrInteractionRequired
	}
	return t, nil
}

func (f *fakeTokens) Interactive(_ context.Context, id string, g mail.Grant) (mail.Token, error) {
	if g.AccessToken == "" {
		return mail.Token{}, mail.ErrInvalidGrant
	}
	t := mail.Token{AccessToken: g.AccessToken, ExpiresAt: time.Now().Add(g.ExpiresIn)}
	f.stored[id] = t
	return t, nil
}

func (f *fakeTokens) Forget(_ context.Context, id string) error {
	delete(f.stored, id)
	f.forgotten = append(f.forgotten, id)
	return nil
}

type fakeDiscord struct {
	embeds chan discord.MessageOptions
}

func (f *fakeDiscord) SendEmbed(_ context.Context, o discord.MessageOptions) error {
	f.embeds <- o
	return nil
}
func (f *fakeDiscord) ReportBug(context.Context, string) error { return nil }
func (f *fakeDiscord) Close() error                            { return nil }
