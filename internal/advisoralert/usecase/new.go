package usecase

import (
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/advisoralert/repository"
	crmRepo "advisor-alert-srv/internal/crm/repository"
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/discord"
	pkgLog "advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/mail"
)

// Options tunes the use case.
type Options struct {
	// BaseURL is the web app root; digests link to BaseURL + "/objetivos".
	BaseURL string
	// Location defines calendar days. Defaults to UTC.
	Location *time.Location
	// SendTimeout bounds one mail send. Defaults to mail.DefaultSendTimeout.
	SendTimeout time.Duration
}

// Dependencies are the collaborators of the use case. Archive and Discord are optional.
type Dependencies struct {
	CRM        crmRepo.Repository
	Settings   settings.UseCase
	Escalation repository.EscalationRepository
	Archive    repository.DigestArchive
	Sender     mail.Sender
	Tokens     mail.TokenSource
	Discord    discord.IDiscord
}

type implUseCase struct {
	l    pkgLog.Logger
	deps Dependencies
	opts Options
	now  func() time.Time
}

var _ advisoralert.UseCase = &implUseCase{}

func New(l pkgLog.Logger, deps Dependencies, opts Options) advisoralert.UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = mail.DefaultSendTimeout
	}
	return &implUseCase{
		l:    l,
		deps: deps,
		opts: opts,
		now:  time.Now,
	}
}
