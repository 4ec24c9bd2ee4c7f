package engine

import (
	"fmt"
	"strconv"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/pkg/calendar"
)

// projectedEnd estimates when the current commitment period of o lapses.
// Opportunities with an explicit finalization date are closed out and have none.
func projectedEnd(o model.Opportunity, loc *time.Location) (time.Time, bool) {
	if o.FinalizationDate != nil && !o.FinalizationDate.IsZero() {
		return time.Time{}, false
	}
	ref := calendar.First(o.ManualUpdateDate, o.EarliestOrderStart(), o.CloseDate, o.CreatedAt)
	if ref == nil {
		return time.Time{}, false
	}
	return calendar.AddMonths(ref.In(loc), o.PrimaryPeriodicity().Months()), true
}

func opportunitiesNearingEnd(b *book) []advisoralert.Alert {
	var out []advisoralert.Alert
	for _, o := range b.opportunities {
		end, ok := projectedEnd(o, b.today.Location())
		if !ok {
			continue
		}
		days := calendar.DaysBetween(b.today, end)
		if days < 0 || days > endWindowDays {
			continue
		}

		severity := advisoralert.SeverityWarning
		if days <= endCriticalDays {
			severity = advisoralert.SeverityCritical
		}

		title := opportunityTitle(o)
		client := b.clientName(o.ClientID)
		when := fmt.Sprintf("en %d días", days)
		if days == 0 {
			when = "hoy"
		}
		period := o.PrimaryPeriodicity().String()
		if period == "" {
			period = "Sin periodicidad"
		}

		out = append(out, advisoralert.Alert{
			ID:          alertID(advisoralert.TypeOpportunity, o.ID),
			Type:        advisoralert.TypeOpportunity,
			Title:       fmt.Sprintf("Oportunidad por finalizar: %s", title),
			Description: fmt.Sprintf("%s (%s) finaliza el %s, %s.", title, client, calendar.FormatDisplay(end), when),
			Severity:    severity,
			Meta: []advisoralert.MetaItem{
				{Label: "Cliente", Value: client},
				{Label: "Periodicidad", Value: period},
				{Label: "Fin proyectado", Value: calendar.FormatDisplay(end)},
				{Label: "Días restantes", Value: strconv.Itoa(days)},
			},
			ShouldEmail:  days == endEmailDaysBefore,
			EmailSummary: fmt.Sprintf("Oportunidad %s (%s) finaliza %s", title, client, when),
			EntityHref:   "/oportunidades/" + o.ID,
		})
	}
	return out
}

func opportunityTitle(o model.Opportunity) string {
	if o.Title != "" {
		return o.Title
	}
	return o.ID
}
