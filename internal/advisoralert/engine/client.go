package engine

import (
	"fmt"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/calendar"
)

// clientsWithoutOpportunities reminds monthly, on the first days of the month.
func clientsWithoutOpportunities(b *book) []advisoralert.Alert {
	remind := b.today.Day() <= clientEmailLastDay

	var out []advisoralert.Alert
	for _, c := range b.clients {
		if b.opportunityCount[c.ID] > 0 {
			continue
		}
		name := b.clientName(c.ID)

		meta := []advisoralert.MetaItem{{Label: "Cliente", Value: name}}
		if c.CreatedAt != nil && !c.CreatedAt.IsZero() {
			meta = append(meta, advisoralert.MetaItem{
				Label: "Alta",
				Value: calendar.FormatDisplay(c.CreatedAt.In(b.today.Location())),
			})
		}

		out = append(out, advisoralert.Alert{
			ID:           alertID(advisoralert.TypeClient, c.ID),
			Type:         advisoralert.TypeClient,
			Title:        fmt.Sprintf("Cliente sin oportunidades: %s", name),
			Description:  fmt.Sprintf("%s no tiene oportunidades registradas.", name),
			Severity:     advisoralert.SeverityInfo,
			Meta:         meta,
			ShouldEmail:  remind,
			EmailSummary: fmt.Sprintf("Cliente %s sin oportunidades", name),
			EntityHref:   "/clientes/" + c.ID,
		})
	}
	return out
}
