package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteEssayAssignmentRepo implements EssayAssignmentRepo over SQLite.
type SQLiteEssayAssignmentRepo struct {
	conn db.DBTX
}

// NewSQLiteEssayAssignmentRepo creates a new SQLiteEssayAssignmentRepo.
func NewSQLiteEssayAssignmentRepo(conn db.DBTX) *SQLiteEssayAssignmentRepo {
	return &SQLiteEssayAssignmentRepo{conn: conn}
}

const essayAssignmentColumns = `id, child_id, essay_prompt_id, cycle_id, status, submitted_at, created_at, updated_at`

// CreateIfAbsent inserts the assignment under the (child_id, essay_prompt_id)
// unique index with ON CONFLICT DO NOTHING.
func (r *SQLiteEssayAssignmentRepo) CreateIfAbsent(ctx context.Context, a *domain.EssayAssignment) (bool, error) {
	query := `INSERT INTO essay_assignments (` + essayAssignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(child_id, essay_prompt_id) DO NOTHING`
	res, err := r.conn.ExecContext(ctx, query,
		a.ID,
		a.ChildID,
		a.EssayPromptID,
		a.CycleID,
		string(a.Status),
		nullableTimeValue(a.SubmittedAt),
		a.CreatedAt.Format(timeLayout),
		a.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return false, fmt.Errorf("inserting essay assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking essay assignment insert: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteEssayAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.EssayAssignment, error) {
	query := `SELECT ` + essayAssignmentColumns + ` FROM essay_assignments WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	a, err := scanEssayAssignment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("essay assignment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteEssayAssignmentRepo) GetByChildAndCycle(ctx context.Context, childID, cycleID string) (*domain.EssayAssignment, error) {
	query := `SELECT ` + essayAssignmentColumns + ` FROM essay_assignments WHERE child_id = ? AND cycle_id = ?`
	row := r.conn.QueryRowContext(ctx, query, childID, cycleID)
	a, err := scanEssayAssignment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("essay assignment for child %s in cycle %s: %w", childID, cycleID, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteEssayAssignmentRepo) Update(ctx context.Context, a *domain.EssayAssignment) error {
	query := `UPDATE essay_assignments
		SET status = ?, submitted_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		string(a.Status),
		nullableTimeValue(a.SubmittedAt),
		a.UpdatedAt.Format(timeLayout),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating essay assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking essay assignment update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("essay assignment %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func scanEssayAssignment(scan func(...any) error) (*domain.EssayAssignment, error) {
	var a domain.EssayAssignment
	var status string
	var submittedAt sql.NullString
	var createdAt, updatedAt string
	err := scan(&a.ID, &a.ChildID, &a.EssayPromptID, &a.CycleID, &status, &submittedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning essay assignment: %w", err)
	}
	a.Status = domain.EssayStatus(status)
	a.SubmittedAt = parseNullableTime(submittedAt)
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}
