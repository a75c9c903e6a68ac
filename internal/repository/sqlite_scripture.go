package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"biblebee/internal/db"
	"biblebee/internal/domain"
)

// SQLiteScriptureRepo implements ScriptureRepo over SQLite. The per-translation
// text map is stored as a JSON object in the texts column.
type SQLiteScriptureRepo struct {
	conn db.DBTX
}

// NewSQLiteScriptureRepo creates a new SQLiteScriptureRepo.
func NewSQLiteScriptureRepo(conn db.DBTX) *SQLiteScriptureRepo {
	return &SQLiteScriptureRepo{conn: conn}
}

const scriptureColumns = `id, cycle_id, reference, sort_order, counts_for, texts, created_at, updated_at`

func (r *SQLiteScriptureRepo) Create(ctx context.Context, s *domain.Scripture) error {
	texts := s.Texts
	if texts == nil {
		texts = map[string]string{}
	}
	encoded, err := json.Marshal(texts)
	if err != nil {
		return fmt.Errorf("encoding scripture texts: %w", err)
	}

	countsFor := s.CountsFor
	if countsFor < 1 {
		countsFor = 1
	}

	query := `INSERT INTO scriptures (` + scriptureColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.conn.ExecContext(ctx, query,
		s.ID,
		s.CycleID,
		s.Reference,
		s.SortOrder,
		countsFor,
		string(encoded),
		s.CreatedAt.Format(timeLayout),
		s.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting scripture: %w", err)
	}
	return nil
}

func (r *SQLiteScriptureRepo) GetByID(ctx context.Context, id string) (*domain.Scripture, error) {
	query := `SELECT ` + scriptureColumns + ` FROM scriptures WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	s, err := scanScripture(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scripture %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteScriptureRepo) ListByCycle(ctx context.Context, cycleID string) ([]*domain.Scripture, error) {
	query := `SELECT ` + scriptureColumns + ` FROM scriptures WHERE cycle_id = ? ORDER BY sort_order, reference`
	rows, err := r.conn.QueryContext(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("listing scriptures by cycle: %w", err)
	}
	defer rows.Close()

	var scriptures []*domain.Scripture
	for rows.Next() {
		s, err := scanScripture(rows.Scan)
		if err != nil {
			return nil, err
		}
		scriptures = append(scriptures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scriptures: %w", err)
	}
	return scriptures, nil
}

func (r *SQLiteScriptureRepo) CountByCycle(ctx context.Context, cycleID string) (int, error) {
	var n int
	err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM scriptures WHERE cycle_id = ?`, cycleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting scriptures: %w", err)
	}
	return n, nil
}

func scanScripture(scan func(...any) error) (*domain.Scripture, error) {
	var s domain.Scripture
	var texts string
	var createdAt, updatedAt string
	err := scan(&s.ID, &s.CycleID, &s.Reference, &s.SortOrder, &s.CountsFor, &texts, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning scripture: %w", err)
	}
	if err := json.Unmarshal([]byte(texts), &s.Texts); err != nil {
		return nil, fmt.Errorf("decoding scripture texts: %w", err)
	}
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
