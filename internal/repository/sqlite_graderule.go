package repository

import (
	"context"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteGradeRuleRepo implements GradeRuleRepo over SQLite.
type SQLiteGradeRuleRepo struct {
	conn db.DBTX
}

// NewSQLiteGradeRuleRepo creates a new SQLiteGradeRuleRepo.
func NewSQLiteGradeRuleRepo(conn db.DBTX) *SQLiteGradeRuleRepo {
	return &SQLiteGradeRuleRepo{conn: conn}
}

func (r *SQLiteGradeRuleRepo) Create(ctx context.Context, g *domain.GradeRule) error {
	query := `INSERT INTO grade_rules (id, cycle_id, min_grade, max_grade, target_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		g.ID,
		g.CycleID,
		g.MinGrade,
		g.MaxGrade,
		g.TargetCount,
		g.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting grade rule: %w", err)
	}
	return nil
}

func (r *SQLiteGradeRuleRepo) ListByCycle(ctx context.Context, cycleID string) ([]*domain.GradeRule, error) {
	query := `SELECT id, cycle_id, min_grade, max_grade, target_count, created_at
		FROM grade_rules WHERE cycle_id = ? ORDER BY min_grade`
	rows, err := r.conn.QueryContext(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing grade rules by cycle: %w", err)
	}
	defer rows.Close()

	var rules []*domain.GradeRule
	for rows.Next() {
		var g domain.GradeRule
		var createdAt string
		if err := rows.Scan(&g.ID, &g.CycleID, &g.MinGrade, &g.MaxGrade, &g.TargetCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning grade rule row: %w", err)
		}
		if g.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		rules = append(rules, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grade rules: %w", err)
	}
	return rules, nil
}
