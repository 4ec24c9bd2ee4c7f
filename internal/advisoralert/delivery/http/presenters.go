package http

import (
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/paginator"
)

// --- Request DTOs ---

type listReq struct {
	Type     string `form:"type"`
	Severity string `form:"severity"`
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
}

func (r listReq) toInput() advisoralert.ListInput {
	return advisoralert.ListInput{
		Filter: advisoralert.Filter{
			Type:     advisoralert.Type(r.Type),
			Severity: advisoralert.Severity(r.Severity),
		},
		PaginateQuery: paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
		Escalate:      true,
	}
}

type escalateReq struct {
	AccessToken string `json:"access_token" binding:"required"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in" binding:"required,gt=0"`
}

func (r escalateReq) toInput() advisoralert.EscalateInput {
	return advisoralert.EscalateInput{
		Grant: &advisoralert.Grant{
			AccessToken: r.AccessToken,
			ExpiresIn:   time.Duration(r.ExpiresIn) * time.Second,
		},
	}
}

// --- Response DTOs ---

type metaResp struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type alertResp struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Severity     string     `json:"severity"`
	Meta         []metaResp `json:"meta"`
	ShouldEmail  bool       `json:"should_email"`
	EmailSummary string     `json:"email_summary"`
	EntityHref   string     `json:"entity_href,omitempty"`
}

type escalationResp struct {
	Status  string `json:"status"`
	Pending int    `json:"pending"`
	SentAt  string `json:"sent_at,omitempty"`
	Error   string `json:"error,omitempty"`
}

type listResp struct {
	Alerts             []alertResp                 `json:"alerts"`
	Paginator          paginator.PaginatorResponse `json:"paginator"`
	NeedsAuthorization bool                        `json:"needs_authorization"`
	Escalation         *escalationResp             `json:"escalation,omitempty"`
}

const escalationFailed = "failed"

func newAlertResp(a advisoralert.Alert) alertResp {
	meta := make([]metaResp, 0, len(a.Meta))
	for _, m := range a.Meta {
		meta = append(meta, metaResp{Label: m.Label, Value: m.Value})
	}
	return alertResp{
		ID:           a.ID,
		Type:         string(a.Type),
		Title:        a.Title,
		Description:  a.Description,
		Severity:     string(a.Severity),
		Meta:         meta,
		ShouldEmail:  a.ShouldEmail,
		EmailSummary: a.EmailSummary,
		EntityHref:   a.EntityHref,
	}
}

func newEscalationResp(o advisoralert.EscalateOutput) *escalationResp {
	r := &escalationResp{Status: string(o.Status), Pending: o.Pending}
	if !o.SentAt.IsZero() {
		r.SentAt = o.SentAt.Format(time.RFC3339)
	}
	return r
}

func (h *Handler) newListResp(o advisoralert.ListOutput, esc *escalationResp) listResp {
	alerts := make([]alertResp, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		alerts = append(alerts, newAlertResp(a))
	}
	return listResp{
		Alerts:             alerts,
		Paginator:          o.Paginator.ToResponse(),
		NeedsAuthorization: o.NeedsAuthorization,
		Escalation:         esc,
	}
}
