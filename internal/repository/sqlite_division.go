package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteDivisionRepo implements DivisionRepo over SQLite.
type SQLiteDivisionRepo struct {
	conn db.DBTX
}

// NewSQLiteDivisionRepo creates a new SQLiteDivisionRepo.
func NewSQLiteDivisionRepo(conn db.DBTX) *SQLiteDivisionRepo {
	return &SQLiteDivisionRepo{conn: conn}
}

const divisionColumns = `id, cycle_id, name, min_grade, max_grade, required_count, essay_prompt_id, created_at, updated_at`

func (r *SQLiteDivisionRepo) Create(ctx context.Context, d *domain.Division) error {
	query := `INSERT INTO divisions (` + divisionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		d.ID,
		d.CycleID,
		d.Name,
		d.MinGrade,
		d.MaxGrade,
		nullableIntValue(d.RequiredCount),
		nullableStringValue(d.EssayPromptID),
		d.CreatedAt.Format(timeLayout),
		d.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting division: %w", err)
	}
	return nil
}

func (r *SQLiteDivisionRepo) GetByID(ctx context.Context, id string) (*domain.Division, error) {
	query := `SELECT ` + divisionColumns + ` FROM divisions WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	d, err := scanDivision(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("division %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDivisionRepo) ListByCycle(ctx context.Context, cycleID string) ([]*domain.Division, error) {
	query := `SELECT ` + divisionColumns + ` FROM divisions WHERE cycle_id = ? ORDER BY min_grade`
	rows, err := r.conn.QueryContext(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing divisions by cycle: %w", err)
	}
	defer rows.Close()

	var divisions []*domain.Division
	for rows.Next() {
		d, err := scanDivision(rows.Scan)
		if err != nil {
			return nil, err
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating divisions: %w", err)
	}
	return divisions, nil
}

func scanDivision(scan func(...any) error) (*domain.Division, error) {
	var d domain.Division
	var requiredCount sql.NullInt64
	var promptID sql.NullString
	var createdAt, updatedAt string
	err := scan(&d.ID, &d.CycleID, &d.Name, &d.MinGrade, &d.MaxGrade, &requiredCount, &promptID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning division: %w", err)
	}
	d.RequiredCount = intPtrFromNull(requiredCount)
	d.EssayPromptID = stringPtrFromNull(promptID)
	if d.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
