package engine

import (
	"fmt"
	"strconv"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/calendar"
)

// stageAging always asks for an email when it fires; the invoice cadence does
// not apply to stage alerts.
func stageAging(b *book) []advisoralert.Alert {
	var out []advisoralert.Alert
	for _, o := range b.opportunities {
		threshold, ok := b.thresholds[o.Stage]
		if !ok {
			continue
		}
		ref := calendar.First(o.StageChangedAt, o.UpdatedAt, o.CreatedAt)
		if ref == nil {
			continue
		}
		days := calendar.DaysBetween(*ref, b.today)
		if days < threshold {
			continue
		}

		severity := advisoralert.SeverityWarning
		if days >= threshold+stageCriticalExtraDays {
			severity = advisoralert.SeverityCritical
		}

		title := opportunityTitle(o)
		client := b.clientName(o.ClientID)

		out = append(out, advisoralert.Alert{
			ID:          alertID(advisoralert.TypeStage, o.ID),
			Type:        advisoralert.TypeStage,
			Title:       fmt.Sprintf("Oportunidad detenida en %s: %s", o.Stage, title),
			Description: fmt.Sprintf("%s (%s) lleva %d días en la etapa %s.", title, client, days, o.Stage),
			Severity:    severity,
			Meta: []advisoralert.MetaItem{
				{Label: "Cliente", Value: client},
				{Label: "Etapa", Value: string(o.Stage)},
				{Label: "Días en etapa", Value: strconv.Itoa(days)},
				{Label: "Umbral", Value: strconv.Itoa(threshold)},
			},
			ShouldEmail:  true,
			EmailSummary: fmt.Sprintf("%s (%s): %d días en %s", title, client, days, o.Stage),
			EntityHref:   "/oportunidades/" + o.ID,
		})
	}
	return out
}
