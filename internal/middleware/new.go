package middleware

import (
	"advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	internalKey string
}

func New(l log.Logger, jwtManager scope.Manager, internalKey string) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		internalKey: internalKey,
	}
}
