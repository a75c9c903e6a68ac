package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteHouseholdRepo implements HouseholdRepo over SQLite.
type SQLiteHouseholdRepo struct {
	conn db.DBTX
}

// NewSQLiteHouseholdRepo creates a new SQLiteHouseholdRepo.
func NewSQLiteHouseholdRepo(conn db.DBTX) *SQLiteHouseholdRepo {
	return &SQLiteHouseholdRepo{conn: conn}
}

func (r *SQLiteHouseholdRepo) Create(ctx context.Context, h *domain.Household) error {
	query := `INSERT INTO households (id, name, preferred_translation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.PreferredTranslation,
		h.CreatedAt.Format(timeLayout),
		h.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting household: %w", err)
	}
	return nil
}

func (r *SQLiteHouseholdRepo) GetByID(ctx context.Context, id string) (*domain.Household, error) {
	query := `SELECT id, name, preferred_translation, created_at, updated_at
		FROM households WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	var h domain.Household
	var createdAt, updatedAt string
	err := row.Scan(&h.ID, &h.Name, &h.PreferredTranslation, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("household %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning household: %w", err)
	}
	if h.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if h.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &h, nil
}
