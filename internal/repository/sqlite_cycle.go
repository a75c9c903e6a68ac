package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteCycleRepo implements CycleRepo over SQLite.
type SQLiteCycleRepo struct {
	conn db.DBTX
}

// NewSQLiteCycleRepo creates a new SQLiteCycleRepo.
func NewSQLiteCycleRepo(conn db.DBTX) *SQLiteCycleRepo {
	return &SQLiteCycleRepo{conn: conn}
}

const cycleColumns = `id, name, primary_translation, active, created_at, updated_at`

func (r *SQLiteCycleRepo) Create(ctx context.Context, c *domain.Cycle) error {
	query := `INSERT INTO cycles (` + cycleColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.PrimaryTranslation,
		boolToInt(c.Active),
		c.CreatedAt.Format(timeLayout),
		c.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting cycle: %w", err)
	}
	return nil
}

func (r *SQLiteCycleRepo) GetByID(ctx context.Context, id string) (*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = ?`
	return r.scanOne(r.conn.QueryRowContext(ctx, query, id), id)
}

func (r *SQLiteCycleRepo) GetActive(ctx context.Context) (*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE active = 1 LIMIT 1`
	return r.scanOne(r.conn.QueryRowContext(ctx, query), "active")
}

func (r *SQLiteCycleRepo) List(ctx context.Context) ([]*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles ORDER BY name`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*domain.Cycle
	for rows.Next() {
		var c domain.Cycle
		var active int
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.PrimaryTranslation, &active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning cycle row: %w", err)
		}
		if err := populateCycle(&c, active, createdAt, updatedAt); err != nil {
			return nil, err
		}
		cycles = append(cycles, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycles: %w", err)
	}
	return cycles, nil
}

func (r *SQLiteCycleRepo) scanOne(row *sql.Row, key string) (*domain.Cycle, error) {
	var c domain.Cycle
	var active int
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.PrimaryTranslation, &active, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cycle %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning cycle: %w", err)
	}
	if err := populateCycle(&c, active, createdAt, updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func populateCycle(c *domain.Cycle, active int, createdAt, updatedAt string) error {
	c.Active = active != 0
	var err error
	if c.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
