package http

import (
	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      advisoralert.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc advisoralert.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
