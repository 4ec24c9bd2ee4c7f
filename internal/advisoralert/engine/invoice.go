package engine

import (
	"fmt"
	"strconv"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/calendar"
)

func unpaidInvoices(b *book) []advisoralert.Alert {
	var out []advisoralert.Alert
	for _, inv := range b.invoices {
		if inv.IsPaid() {
			continue
		}
		ref := calendar.First(inv.Date, inv.DateGenerated)
		if ref == nil {
			continue
		}
		days := calendar.DaysBetween(*ref, b.today)
		if days < invoiceMinDays {
			continue
		}

		severity := advisoralert.SeverityWarning
		if days >= invoiceCriticalDays {
			severity = advisoralert.SeverityCritical
		}

		opp := b.opportunityByID[inv.OpportunityID]
		client := b.clientName(opp.ClientID)
		number := inv.InvoiceNumber
		if number == "" {
			number = inv.ID
		}

		out = append(out, advisoralert.Alert{
			ID:          alertID(advisoralert.TypeInvoice, inv.ID),
			Type:        advisoralert.TypeInvoice,
			Title:       fmt.Sprintf("Factura %s impaga", number),
			Description: fmt.Sprintf("La factura %s de %s lleva %d días sin cobrarse.", number, client, days),
			Severity:    severity,
			Meta: []advisoralert.MetaItem{
				{Label: "Cliente", Value: client},
				{Label: "Oportunidad", Value: opportunityTitle(opp)},
				{Label: "Emitida", Value: calendar.FormatDisplay(ref.In(b.today.Location()))},
				{Label: "Días impaga", Value: strconv.Itoa(days)},
			},
			ShouldEmail:  shouldEscalate(days, invoiceMinDays, invoiceEmailEvery),
			EmailSummary: fmt.Sprintf("Factura %s (%s): %d días impaga", number, client, days),
			EntityHref:   "/facturas/" + inv.ID,
		})
	}
	return out
}
