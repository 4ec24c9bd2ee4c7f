package http

import (
	"errors"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// List returns the caller's alerts and sends today's digest when one is due.
// @Summary List alerts
// @Description Evaluates the advisor's alerts. A silent escalation runs on the same call; its outcome is in "escalation".
// @Tags Alerts
// @Security Bearer
// @Param type query string false "Alert type" Enums(invoice, prospect, client, opportunity, stage)
// @Param severity query string false "Severity" Enums(critical, warning, info)
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/alerts [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.advisoralert.delivery.http.List.List: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	var esc *escalationResp
	switch {
	case out.Escalation != nil:
		esc = newEscalationResp(*out.Escalation)
		switch out.Escalation.Status {
		case advisoralert.EscalationNeedsAuth:
			out.NeedsAuthorization = true
		case advisoralert.EscalationSent:
			out.NeedsAuthorization = false
		}
	case errors.Is(out.EscalationErr, advisoralert.ErrSendFailed):
		esc = &escalationResp{Status: escalationFailed, Error: errSendFailed.Message}
	case out.EscalationErr != nil:
		h.l.Errorf(ctx, "internal.advisoralert.delivery.http.List.Escalate: %v", out.EscalationErr)
	}

	response.OK(c, h.newListResp(out, esc))
}

// Escalate sends today's digest with a token the user just granted.
// @Summary Escalate alerts
// @Description Interactive escalation after the user signed in to the mail provider.
// @Tags Alerts
// @Security Bearer
// @Param body body escalateReq true "Granted mail token"
// @Success 200 {object} escalationResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/alerts/escalate [POST]
func (h *Handler) Escalate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processEscalateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Escalate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.advisoralert.delivery.http.Escalate.Escalate: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newEscalationResp(out))
}
