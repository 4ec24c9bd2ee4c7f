package postgres

import (
	"database/sql"
	"time"

	"advisor-alert-srv/internal/crm/repository"
	pkgLog "advisor-alert-srv/pkg/log"

	"github.com/go-playground/validator/v10"
)

type implRepository struct {
	l        pkgLog.Logger
	db       *sql.DB
	loc      *time.Location
	validate *validator.Validate
}

var _ repository.Repository = &implRepository{}

// New reads dates without an explicit zone in loc.
func New(l pkgLog.Logger, db *sql.DB, loc *time.Location) repository.Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{
		l:        l,
		db:       db,
		loc:      loc,
		validate: validator.New(),
	}
}
