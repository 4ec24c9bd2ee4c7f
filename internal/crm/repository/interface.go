package repository

import (
	"context"

	"advisor-alert-srv/internal/model"
)

// Repository reads the CRM collections the alert engine consumes.
//
//go:generate mockery --name Repository
type Repository interface {
	GetUser(ctx context.Context, id string) (model.User, error)
	ListClients(ctx context.Context, opts ListOptions) ([]model.Client, error)
	ListOpportunities(ctx context.Context, opts ListOptions) ([]model.Opportunity, error)
	ListInvoices(ctx context.Context, opts ListOptions) ([]model.Invoice, error)
	ListProspects(ctx context.Context, opts ListOptions) ([]model.Prospect, error)
}
