package model

import "time"

// InvoiceStatus is the billing state of an invoice. Pagada is terminal.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pendiente"
	InvoiceStatusSent    InvoiceStatus = "Enviada"
	InvoiceStatusOverdue InvoiceStatus = "Vencida"
	InvoiceStatusPaid    InvoiceStatus = "Pagada"
)

// Invoice references exactly one opportunity through OpportunityID.
type Invoice struct {
	ID            string        `json:"id"`
	OpportunityID string        `json:"opportunity_id"`
	InvoiceNumber string        `json:"invoice_number"`
	Status        InvoiceStatus `json:"status"`
	Date          *time.Time    `json:"date,omitempty"`
	DateGenerated *time.Time    `json:"date_generated,omitempty"`
}

// IsPaid reports whether the invoice reached the terminal paid state.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
