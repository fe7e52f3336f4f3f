package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"agrotrack/internal/models"

	"github.com/google/uuid"
)

type AuditSQLite struct {
	db *sql.DB
}

func NewAuditSQLite(db *sql.DB) *AuditSQLite { return &AuditSQLite{db: db} }

// Append inserts a new audit entry. Empty ID or zero OccurredAt are filled in.
func (r *AuditSQLite) Append(ctx context.Context, e models.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (id, occurred_at, op, detail, meta)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.ID,
		e.OccurredAt.Format("2006-01-02 15:04:05"),
		strings.ToUpper(strings.TrimSpace(e.Op)),
		e.Detail,
		metaPtr,
	)

	return err
}

// List returns entries filtered by [from, to] (inclusive) and/or op, ordered ASC.
func (r *AuditSQLite) List(ctx context.Context, from, to time.Time, op string) ([]models.AuditEntry, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if op = strings.ToUpper(strings.TrimSpace(op)); op != "" {
		conds = append(conds, "op = ?")
		args = append(args, op)
	}

	q := `SELECT id, occurred_at, op, detail, meta FROM audit_log`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.AuditEntry, 0, 64)
	for rows.Next() {
		var e models.AuditEntry
		var metaStr sql.NullString
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Op, &e.Detail, &metaStr); err != nil {
			return nil, err
		}
		e.OccurredAt = e.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				e.Metadata = v
			} else {
				e.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
