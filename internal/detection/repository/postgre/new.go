package postgre

import (
	"database/sql"

	"citron-srv/internal/detection/repository"
	"citron-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}

type scanner interface {
	Scan(dest ...any) error
}
