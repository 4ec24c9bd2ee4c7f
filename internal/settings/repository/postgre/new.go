package postgres

import (
	"database/sql"

	"advisor-alert-srv/internal/settings/repository"
	pkgLog "advisor-alert-srv/pkg/log"

	"github.com/go-playground/validator/v10"
)

type implRepository struct {
	l        pkgLog.Logger
	db       *sql.DB
	validate *validator.Validate
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:        l,
		db:       db,
		validate: validator.New(),
	}
}
