package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteChildRepo implements ChildRepo over SQLite.
type SQLiteChildRepo struct {
	conn db.DBTX
}

// NewSQLiteChildRepo creates a new SQLiteChildRepo.
func NewSQLiteChildRepo(conn db.DBTX) *SQLiteChildRepo {
	return &SQLiteChildRepo{conn: conn}
}

const childColumns = `id, household_id, first_name, last_name, grade, created_at, updated_at`

func (r *SQLiteChildRepo) Create(ctx context.Context, c *domain.Child) error {
	query := `INSERT INTO children (` + childColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		c.ID,
		c.HouseholdID,
		c.FirstName,
		c.LastName,
		c.Grade,
		c.CreatedAt.Format(timeLayout),
		c.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting child: %w", err)
	}
	return nil
}

func (r *SQLiteChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	c, err := scanChild(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("child %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteChildRepo) ListByHousehold(ctx context.Context, householdID string) ([]*domain.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE household_id = ? ORDER BY last_name, first_name`
	rows, err := r.conn.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing children by household: %w", err)
	}
	defer rows.Close()

	var children []*domain.Child
	for rows.Next() {
		c, err := scanChild(rows.Scan)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating children: %w", err)
	}
	return children, nil
}

func scanChild(scan func(...any) error) (*domain.Child, error) {
	var c domain.Child
	var createdAt, updatedAt string
	err := scan(&c.ID, &c.HouseholdID, &c.FirstName, &c.LastName, &c.Grade, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning child: %w", err)
	}
	if c.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
