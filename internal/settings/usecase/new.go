package usecase

import (
	"sync"

	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/internal/settings/repository"
	pkgLog "advisor-alert-srv/pkg/log"

	"golang.org/x/sync/singleflight"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	group singleflight.Group
	mu    sync.RWMutex
	// cached is nil until a load succeeds.
	cached *settings.Settings
	// gen increments on Invalidate so a load started before it is not cached.
	gen uint64
}

var _ settings.UseCase = &implUseCase{}

func New(l pkgLog.Logger, repo repository.Repository) settings.UseCase {
	return &implUseCase{l: l, repo: repo}
}
