package http

import (
	"errors"
	"reflect"
	"strings"

	"advisor-alert-srv/internal/model"
	pkgErrors "advisor-alert-srv/pkg/errors"
	"advisor-alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *Handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return listReq{}, model.Scope{}, errNoScope
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.advisoralert.delivery.http.processListRequest.ShouldBindQuery: %v", err)
		return listReq{}, model.Scope{}, errWrongQuery
	}
	return req, sc, nil
}

func (h *Handler) processEscalateRequest(c *gin.Context) (escalateReq, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return escalateReq{}, model.Scope{}, errNoScope
	}

	var req escalateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.advisoralert.delivery.http.processEscalateRequest.ShouldBindJSON: %v", err)
		return escalateReq{}, model.Scope{}, bindError(err, req, errWrongBody)
	}
	return req, sc, nil
}

// bindError names the first field that failed validation. Decoding errors get fallback.
func bindError(err error, req any, fallback *pkgErrors.HTTPError) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fallback
	}
	fe := verrs[0]
	return pkgErrors.NewValidationError(fallback.Code, jsonName(req, fe.StructField()), "failed on "+fe.Tag())
}

func jsonName(req any, field string) string {
	if f, ok := reflect.TypeOf(req).FieldByName(field); ok {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" {
			return name
		}
	}
	return field
}
