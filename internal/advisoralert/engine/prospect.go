package engine

import (
	"fmt"
	"strconv"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/calendar"
)

func stalledProspects(b *book) []advisoralert.Alert {
	var out []advisoralert.Alert
	for _, p := range b.prospects {
		ref := calendar.First(p.StatusChangedAt, p.CreatedAt)
		if ref == nil {
			continue
		}
		days := calendar.DaysBetween(*ref, b.today)
		if days < prospectMinDays {
			continue
		}

		severity := advisoralert.SeverityInfo
		if days >= prospectWarningDays {
			severity = advisoralert.SeverityWarning
		}

		name := p.CompanyName
		if name == "" {
			name = p.ID
		}
		status := string(p.Status)
		if status == "" {
			status = "sin estado"
		}

		meta := []advisoralert.MetaItem{
			{Label: "Empresa", Value: name},
			{Label: "Estado", Value: status},
			{Label: "Días sin cambios", Value: strconv.Itoa(days)},
		}
		if p.ContactName != "" {
			meta = append(meta, advisoralert.MetaItem{Label: "Contacto", Value: p.ContactName})
		}

		out = append(out, advisoralert.Alert{
			ID:           alertID(advisoralert.TypeProspect, p.ID),
			Type:         advisoralert.TypeProspect,
			Title:        fmt.Sprintf("Prospecto sin avance: %s", name),
			Description:  fmt.Sprintf("%s lleva %d días en estado %s.", name, days, status),
			Severity:     severity,
			Meta:         meta,
			ShouldEmail:  shouldEscalate(days, prospectMinDays, prospectEmailEvery),
			EmailSummary: fmt.Sprintf("Prospecto %s sin avance hace %d días", name, days),
			EntityHref:   "/prospectos/" + p.ID,
		})
	}
	return out
}
