package http

import (
	"advisor-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get returns the settings in effect.
// @Summary Current alert settings
// @Tags Settings
// @Param X-Internal-Key header string true "Internal key"
// @Success 200 {object} settingsResp
// @Failure 403 {object} response.Resp
// @Router /internal/api/v1/settings [GET]
func (h *Handler) Get(c *gin.Context) {
	response.OK(c, newSettingsResp(h.uc.Get(c.Request.Context())))
}

// Reload drops the cached settings and loads them again.
// @Summary Reload alert settings
// @Description Called by the CRM after the alert settings record changes.
// @Tags Settings
// @Param X-Internal-Key header string true "Internal key"
// @Success 200 {object} settingsResp
// @Failure 403 {object} response.Resp
// @Router /internal/api/v1/settings/reload [POST]
func (h *Handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.Invalidate(ctx)
	s := h.uc.Get(ctx)
	h.l.Infof(ctx, "internal.settings.delivery.http.Reload: %d stage thresholds", len(s.StageThresholds))
	response.OK(c, newSettingsResp(s))
}
