package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteEnrollmentRepo implements EnrollmentRepo over SQLite.
type SQLiteEnrollmentRepo struct {
	conn db.DBTX
}

// NewSQLiteEnrollmentRepo creates a new SQLiteEnrollmentRepo.
func NewSQLiteEnrollmentRepo(conn db.DBTX) *SQLiteEnrollmentRepo {
	return &SQLiteEnrollmentRepo{conn: conn}
}

const enrollmentColumns = `id, child_id, cycle_id, division_id, created_at, updated_at`

func (r *SQLiteEnrollmentRepo) Create(ctx context.Context, e *domain.Enrollment) error {
	query := `INSERT INTO enrollments (` + enrollmentColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		e.ID,
		e.ChildID,
		e.CycleID,
		nullableStringValue(e.DivisionID),
		e.CreatedAt.Format(timeLayout),
		e.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting enrollment: %w", err)
	}
	return nil
}

func (r *SQLiteEnrollmentRepo) GetByChildAndCycle(ctx context.Context, childID, cycleID string) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE child_id = ? AND cycle_id = ?`
	row := r.conn.QueryRowContext(ctx, query, childID, cycleID)
	e, err := scanEnrollment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("enrollment for child %s in cycle %s: %w", childID, cycleID, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEnrollmentRepo) ListByChild(ctx context.Context, childID string) ([]*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE child_id = ? ORDER BY created_at`
	rows, err := r.conn.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments by child: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

// ListCandidatesByCycle returns every enrolled child joined with household
// context, ordered by child name. This is the roster's single list query;
// per-child division and assignment data are resolved afterwards.
func (r *SQLiteEnrollmentRepo) ListCandidatesByCycle(ctx context.Context, cycleID string) ([]RosterCandidate, error) {
	query := `SELECT c.id, c.household_id, c.first_name, c.last_name, c.grade, c.created_at, c.updated_at,
			h.name, h.preferred_translation, e.division_id
		FROM enrollments e
		JOIN children c ON e.child_id = c.id
		JOIN households h ON c.household_id = h.id
		WHERE e.cycle_id = ?
		ORDER BY c.last_name, c.first_name`
	rows, err := r.conn.QueryContext(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing roster candidates: %w", err)
	}
	defer rows.Close()

	var candidates []RosterCandidate
	for rows.Next() {
		var cand RosterCandidate
		var divisionID sql.NullString
		var createdAt, updatedAt string
		err := rows.Scan(
			&cand.Child.ID, &cand.Child.HouseholdID, &cand.Child.FirstName, &cand.Child.LastName,
			&cand.Child.Grade, &createdAt, &updatedAt,
			&cand.HouseholdName, &cand.PreferredTranslation, &divisionID,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning roster candidate: %w", err)
		}
		cand.DivisionID = stringPtrFromNull(divisionID)
		if cand.Child.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if cand.Child.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roster candidates: %w", err)
	}
	return candidates, nil
}

func (r *SQLiteEnrollmentRepo) SetDivision(ctx context.Context, enrollmentID string, divisionID *string) error {
	query := `UPDATE enrollments SET division_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, query,
		nullableStringValue(divisionID),
		time.Now().UTC().Format(timeLayout),
		enrollmentID,
	)
	if err != nil {
		return fmt.Errorf("updating enrollment division: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking enrollment update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("enrollment %s: %w", enrollmentID, ErrNotFound)
	}
	return nil
}

func scanEnrollment(scan func(...any) error) (*domain.Enrollment, error) {
	var e domain.Enrollment
	var divisionID sql.NullString
	var createdAt, updatedAt string
	err := scan(&e.ID, &e.ChildID, &e.CycleID, &divisionID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning enrollment: %w", err)
	}
	e.DivisionID = stringPtrFromNull(divisionID)
	if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}

func collectEnrollments(rows *sql.Rows) ([]*domain.Enrollment, error) {
	var enrollments []*domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows.Scan)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enrollments: %w", err)
	}
	return enrollments, nil
}
