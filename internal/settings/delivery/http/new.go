package http

import (
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc settings.UseCase
}

func New(l log.Logger, uc settings.UseCase) *Handler {
	return &Handler{l: l, uc: uc}
}
