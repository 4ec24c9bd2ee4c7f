package postgres

import (
	"context"
	"database/sql"

	"advisor-alert-srv/internal/crm/repository"
	"advisor-alert-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	pkgErrors "github.com/friendsofgo/errors"
)

const selectUserQuery = `SELECT id, data FROM users WHERE id = $1`

// documentRow is one (id, data jsonb) record of any CRM table.
type documentRow struct {
	ID   string    `boil:"id"`
	Data null.JSON `boil:"data"`
}

func (r *implRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	if id == "" {
		return model.User{}, repository.ErrNotFound
	}

	var row documentRow
	if err := queries.Raw(selectUserQuery, id).Bind(ctx, r.db, &row); err != nil {
		if pkgErrors.Cause(err) == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.crm.repository.postgres.GetUser.Bind: %v", err)
		return model.User{}, pkgErrors.Wrap(err, "crm: get user")
	}

	var doc userDoc
	if !row.Data.Valid {
		return model.User{}, repository.ErrNotFound
	}
	if err := r.decodeDoc(row.Data.JSON, &doc); err != nil {
		r.l.Warnf(ctx, "internal.crm.repository.postgres.GetUser.decodeDoc: user %s: %v", id, err)
		return model.User{}, repository.ErrNotFound
	}
	return r.toUser(row.ID, doc), nil
}

func (r *implRepository) ListClients(ctx context.Context, opts repository.ListOptions) ([]model.Client, error) {
	rows, err := r.list(ctx, tableClients, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.repository.postgres.ListClients.list: %v", err)
		return nil, err
	}

	res := make([]model.Client, 0, len(rows))
	for _, row := range rows {
		var doc clientDoc
		if !r.decodeRow(ctx, tableClients, row, &doc) {
			continue
		}
		res = append(res, r.toClient(row.ID, doc))
	}
	return res, nil
}

func (r *implRepository) ListOpportunities(ctx context.Context, opts repository.ListOptions) ([]model.Opportunity, error) {
	rows, err := r.list(ctx, tableOpportunities, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.repository.postgres.ListOpportunities.list: %v", err)
		return nil, err
	}

	res := make([]model.Opportunity, 0, len(rows))
	for _, row := range rows {
		var doc opportunityDoc
		if !r.decodeRow(ctx, tableOpportunities, row, &doc) {
			continue
		}
		res = append(res, r.toOpportunity(row.ID, doc))
	}
	return res, nil
}

func (r *implRepository) ListInvoices(ctx context.Context, opts repository.ListOptions) ([]model.Invoice, error) {
	rows, err := r.list(ctx, tableInvoices, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.repository.postgres.ListInvoices.list: %v", err)
		return nil, err
	}

	res := make([]model.Invoice, 0, len(rows))
	for _, row := range rows {
		var doc invoiceDoc
		if !r.decodeRow(ctx, tableInvoices, row, &doc) {
			continue
		}
		res = append(res, r.toInvoice(row.ID, doc))
	}
	return res, nil
}

func (r *implRepository) ListProspects(ctx context.Context, opts repository.ListOptions) ([]model.Prospect, error) {
	rows, err := r.list(ctx, tableProspects, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.repository.postgres.ListProspects.list: %v", err)
		return nil, err
	}

	res := make([]model.Prospect, 0, len(rows))
	for _, row := range rows {
		var doc prospectDoc
		if !r.decodeRow(ctx, tableProspects, row, &doc) {
			continue
		}
		res = append(res, r.toProspect(row.ID, doc))
	}
	return res, nil
}

func (r *implRepository) list(ctx context.Context, table string, opts repository.ListOptions) ([]documentRow, error) {
	query, args, ok, err := buildListQuery(table, opts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var rows []documentRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		return nil, pkgErrors.Wrapf(err, "crm: list %s", table)
	}
	return rows, nil
}

// decodeRow reports false for records that cannot be used; they are skipped, not fatal.
func (r *implRepository) decodeRow(ctx context.Context, table string, row documentRow, dst interface{}) bool {
	if row.ID == "" || !row.Data.Valid {
		r.l.Warnf(ctx, "internal.crm.repository.postgres.decodeRow: %s %q has no data", table, row.ID)
		return false
	}
	if err := r.decodeDoc(row.Data.JSON, dst); err != nil {
		r.l.Warnf(ctx, "internal.crm.repository.postgres.decodeRow: %s %s skipped: %v", table, row.ID, err)
		return false
	}
	return true
}
