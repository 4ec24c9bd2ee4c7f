package postgres

import (
	"fmt"
	"strings"

	"advisor-alert-srv/internal/crm/repository"
	postgresPkg "advisor-alert-srv/pkg/postgre"
)

const (
	tableUsers         = "users"
	tableClients       = "clients"
	tableOpportunities = "opportunities"
	tableInvoices      = "invoices"
	tableProspects     = "prospects"
)

// buildListQuery returns the SQL and arguments listing table under opts. ok is false
// when a filter can match nothing, in which case no query should run.
func buildListQuery(table string, opts repository.ListOptions) (query string, args []interface{}, ok bool, err error) {
	f := opts.Filter
	var conds []string

	in := func(column string, ids []string) bool {
		if ids == nil {
			return true
		}
		if len(ids) == 0 {
			return false
		}
		clause, a := postgresPkg.InClause(column, ids, len(args)+1)
		conds = append(conds, clause)
		args = append(args, a...)
		return true
	}

	for _, ids := range [][]string{f.IDs, f.ClientIDs, f.OpportunityIDs} {
		if err := postgresPkg.ValidateIDs(ids); err != nil {
			return "", nil, false, err
		}
	}

	if !in("id", f.IDs) || !in("data->>'clientId'", f.ClientIDs) || !in("data->>'opportunityId'", f.OpportunityIDs) {
		return "", nil, false, nil
	}
	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		conds = append(conds, fmt.Sprintf("data->>'ownerId' = $%d", len(args)))
	}

	query = fmt.Sprintf("SELECT id, data FROM %s", table)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"
	return query, args, true, nil
}
