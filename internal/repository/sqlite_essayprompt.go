package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteEssayPromptRepo implements EssayPromptRepo over SQLite.
type SQLiteEssayPromptRepo struct {
	conn db.DBTX
}

// NewSQLiteEssayPromptRepo creates a new SQLiteEssayPromptRepo.
func NewSQLiteEssayPromptRepo(conn db.DBTX) *SQLiteEssayPromptRepo {
	return &SQLiteEssayPromptRepo{conn: conn}
}

const essayPromptColumns = `id, cycle_id, title, prompt, due_date, created_at, updated_at`

func (r *SQLiteEssayPromptRepo) Create(ctx context.Context, p *domain.EssayPrompt) error {
	query := `INSERT INTO essay_prompts (` + essayPromptColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		p.ID,
		p.CycleID,
		p.Title,
		p.Prompt,
		nullableTimeValue(p.DueDate),
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting essay prompt: %w", err)
	}
	return nil
}

func (r *SQLiteEssayPromptRepo) GetByID(ctx context.Context, id string) (*domain.EssayPrompt, error) {
	query := `SELECT ` + essayPromptColumns + ` FROM essay_prompts WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	p, err := scanEssayPrompt(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("essay prompt %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteEssayPromptRepo) ListByCycle(ctx context.Context, cycleID string) ([]*domain.EssayPrompt, error) {
	query := `SELECT ` + essayPromptColumns + ` FROM essay_prompts WHERE cycle_id = ? ORDER BY title`
	rows, err := r.conn.QueryContext(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing essay prompts by cycle: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.EssayPrompt
	for rows.Next() {
		p, err := scanEssayPrompt(rows.Scan)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating essay prompts: %w", err)
	}
	return prompts, nil
}

func scanEssayPrompt(scan func(...any) error) (*domain.EssayPrompt, error) {
	var p domain.EssayPrompt
	var dueDate sql.NullString
	var createdAt, updatedAt string
	err := scan(&p.ID, &p.CycleID, &p.Title, &p.Prompt, &dueDate, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning essay prompt: %w", err)
	}
	p.DueDate = parseNullableTime(dueDate)
	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
