package model

import "time"

type ProspectStatus string

const (
	ProspectStatusNew       ProspectStatus = "Nuevo"
	ProspectStatusContacted ProspectStatus = "Contactado"
	ProspectStatusQualified ProspectStatus = "Calificado"
	ProspectStatusConverted ProspectStatus = "Convertido"
	ProspectStatusDiscarded ProspectStatus = "Descartado"
)

// Prospect is owned directly by an advisor.
type Prospect struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"owner_id"`
	CompanyName     string         `json:"company_name"`
	Status          ProspectStatus `json:"status"`
	StatusChangedAt *time.Time     `json:"status_changed_at,omitempty"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
	ContactName     string         `json:"contact_name"`
}
