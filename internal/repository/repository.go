package repository

import (
	"context"
	"database/sql"
	"time"

	"agrotrack/internal/models"
)

// FarmRepo persists the aggregate as one opaque document: load on start,
// save after every mutation. The boolean reports whether a document existed.
type FarmRepo interface {
	Load(ctx context.Context) (models.Farm, bool, error)
	Save(ctx context.Context, farm models.Farm) error
}

// AuditRepo is the append-only operation trail.
type AuditRepo interface {
	Append(ctx context.Context, e models.AuditEntry) error
	List(ctx context.Context, from, to time.Time, op string) ([]models.AuditEntry, error)
}

type Repository struct {
	Farm  FarmRepo
	Audit AuditRepo
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Farm:  NewFarmSQLite(conn),
		Audit: NewAuditSQLite(conn),
	}
}
