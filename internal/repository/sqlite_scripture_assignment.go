package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteScriptureAssignmentRepo implements ScriptureAssignmentRepo over SQLite.
type SQLiteScriptureAssignmentRepo struct {
	conn db.DBTX
}

// NewSQLiteScriptureAssignmentRepo creates a new SQLiteScriptureAssignmentRepo.
func NewSQLiteScriptureAssignmentRepo(conn db.DBTX) *SQLiteScriptureAssignmentRepo {
	return &SQLiteScriptureAssignmentRepo{conn: conn}
}

const scriptureAssignmentColumns = `id, child_id, scripture_id, cycle_id, completed, completed_at, created_at, updated_at`

// CreateIfAbsent inserts the assignment under the (child_id, scripture_id)
// unique index with ON CONFLICT DO NOTHING, so two racing materializations
// cannot create duplicate rows.
func (r *SQLiteScriptureAssignmentRepo) CreateIfAbsent(ctx context.Context, a *domain.ScriptureAssignment) (bool, error) {
	query := `INSERT INTO scripture_assignments (` + scriptureAssignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(child_id, scripture_id) DO NOTHING`
	res, err := r.conn.ExecContext(ctx, query,
		a.ID,
		a.ChildID,
		a.ScriptureID,
		a.CycleID,
		boolToInt(a.Completed),
		nullableTimeValue(a.CompletedAt),
		a.CreatedAt.Format(timeLayout),
		a.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return false, fmt.Errorf("inserting scripture assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking scripture assignment insert: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteScriptureAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.ScriptureAssignment, error) {
	query := `SELECT ` + scriptureAssignmentColumns + ` FROM scripture_assignments WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	a, err := scanScriptureAssignment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scripture assignment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteScriptureAssignmentRepo) ListByChildAndCycle(ctx context.Context, childID, cycleID string) ([]*domain.ScriptureAssignment, error) {
	query := `SELECT a.id, a.child_id, a.scripture_id, a.cycle_id, a.completed, a.completed_at, a.created_at, a.updated_at
		FROM scripture_assignments a
		JOIN scriptures s ON a.scripture_id = s.id
		WHERE a.child_id = ? AND a.cycle_id = ?
		ORDER BY s.sort_order, s.reference`
	rows, err := r.conn.QueryContext(ctx, query, childID, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing scripture assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.ScriptureAssignment
	for rows.Next() {
		a, err := scanScriptureAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scripture assignments: %w", err)
	}
	return assignments, nil
}

func (r *SQLiteScriptureAssignmentRepo) Update(ctx context.Context, a *domain.ScriptureAssignment) error {
	query := `UPDATE scripture_assignments
		SET completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		boolToInt(a.Completed),
		nullableTimeValue(a.CompletedAt),
		a.UpdatedAt.Format(timeLayout),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scripture assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking scripture assignment update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scripture assignment %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func scanScriptureAssignment(scan func(...any) error) (*domain.ScriptureAssignment, error) {
	var a domain.ScriptureAssignment
	var completed int
	var completedAt sql.NullString
	var createdAt, updatedAt string
	err := scan(&a.ID, &a.ChildID, &a.ScriptureID, &a.CycleID, &completed, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning scripture assignment: %w", err)
	}
	a.Completed = completed != 0
	a.CompletedAt = parseNullableTime(completedAt)
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}
