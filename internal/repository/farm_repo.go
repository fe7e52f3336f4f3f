package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agrotrack/internal/models"
)

type FarmSQLite struct {
	db *sql.DB
}

func NewFarmSQLite(db *sql.DB) *FarmSQLite {
	return &FarmSQLite{db: db}
}

const (
	farmDocumentRowID = 1

	upsertFarmSQL = `
		INSERT INTO farm_document (id, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document=excluded.document,
			updated_at=excluded.updated_at
	`

	selectFarmSQL = `
		SELECT document FROM farm_document WHERE id=?
	`
)

// Save serializes the aggregate and upserts the single document row (id=1).
func (r *FarmSQLite) Save(ctx context.Context, farm models.Farm) error {
	doc, err := json.Marshal(farm)
	if err != nil {
		return fmt.Errorf("marshal farm document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertFarmSQL,
		farmDocumentRowID,
		string(doc),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save farm document: %w", err)
	}
	return nil
}

// Load fetches and decodes the document row. The boolean is false when no
// document has been saved yet; that is not an error.
func (r *FarmSQLite) Load(ctx context.Context) (models.Farm, bool, error) {
	row := r.db.QueryRowContext(ctx, selectFarmSQL, farmDocumentRowID)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Farm{}, false, nil
		}
		return models.Farm{}, false, fmt.Errorf("load farm document: %w", err)
	}

	var farm models.Farm
	if err := json.Unmarshal([]byte(doc), &farm); err != nil {
		return models.Farm{}, false, fmt.Errorf("decode farm document: %w", err)
	}
	return farm, true, nil
}
