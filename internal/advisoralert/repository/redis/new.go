package redis

import (
	"advisor-alert-srv/internal/advisoralert/repository"
	pkgLog "advisor-alert-srv/pkg/log"
	pkgRedis "advisor-alert-srv/pkg/redis"
)

type implRepository struct {
	l   pkgLog.Logger
	rdb pkgRedis.IRedis
}

var _ repository.EscalationRepository = &implRepository{}

func New(l pkgLog.Logger, rdb pkgRedis.IRedis) repository.EscalationRepository {
	return &implRepository{
		l:   l,
		rdb: rdb,
	}
}
