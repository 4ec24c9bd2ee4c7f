package repository

import (
	"context"

	"advisor-alert-srv/internal/settings"
)

//go:generate mockery --name Repository
type Repository interface {
	// Load reads the stored override. settings.ErrNotFound when no record exists.
	Load(ctx context.Context) (settings.Override, error)
}
