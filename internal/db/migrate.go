package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies all schema statements. Statements are idempotent
// (CREATE ... IF NOT EXISTS) so a fresh or current database both migrate
// cleanly.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS households (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		preferred_translation TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS children (
		id           TEXT PRIMARY KEY,
		household_id TEXT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
		first_name   TEXT NOT NULL,
		last_name    TEXT NOT NULL DEFAULT '',
		grade        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_children_household ON children(household_id)`,

	`CREATE TABLE IF NOT EXISTS cycles (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		primary_translation TEXT NOT NULL DEFAULT 'NIV',
		active              INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS essay_prompts (
		id         TEXT PRIMARY KEY,
		cycle_id   TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		prompt     TEXT NOT NULL DEFAULT '',
		due_date   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_essay_prompts_cycle ON essay_prompts(cycle_id)`,

	`CREATE TABLE IF NOT EXISTS divisions (
		id              TEXT PRIMARY KEY,
		cycle_id        TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		min_grade       INTEGER NOT NULL,
		max_grade       INTEGER NOT NULL,
		required_count  INTEGER,
		essay_prompt_id TEXT REFERENCES essay_prompts(id) ON DELETE SET NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		CHECK(min_grade <= max_grade)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_divisions_cycle ON divisions(cycle_id)`,

	`CREATE TABLE IF NOT EXISTS grade_rules (
		id           TEXT PRIMARY KEY,
		cycle_id     TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		min_grade    INTEGER NOT NULL,
		max_grade    INTEGER NOT NULL,
		target_count INTEGER NOT NULL,
		created_at   TEXT NOT NULL,
		CHECK(min_grade <= max_grade)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_grade_rules_cycle ON grade_rules(cycle_id)`,

	`CREATE TABLE IF NOT EXISTS scriptures (
		id         TEXT PRIMARY KEY,
		cycle_id   TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		reference  TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		counts_for INTEGER NOT NULL DEFAULT 1 CHECK(counts_for >= 1),
		texts      TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scriptures_cycle ON scriptures(cycle_id, sort_order)`,

	`CREATE TABLE IF NOT EXISTS enrollments (
		id          TEXT PRIMARY KEY,
		child_id    TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		cycle_id    TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		division_id TEXT REFERENCES divisions(id) ON DELETE SET NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_child_cycle ON enrollments(child_id, cycle_id)`,

	`CREATE TABLE IF NOT EXISTS scripture_assignments (
		id           TEXT PRIMARY KEY,
		child_id     TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		scripture_id TEXT NOT NULL REFERENCES scriptures(id) ON DELETE CASCADE,
		cycle_id     TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	// The at-most-one-assignment-per-key invariant lives here, not in
	// application-level check-then-create.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_scripture_assignments_key ON scripture_assignments(child_id, scripture_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scripture_assignments_child_cycle ON scripture_assignments(child_id, cycle_id)`,

	`CREATE TABLE IF NOT EXISTS essay_assignments (
		id              TEXT PRIMARY KEY,
		child_id        TEXT NOT NULL REFERENCES children(id) ON DELETE CASCADE,
		essay_prompt_id TEXT NOT NULL REFERENCES essay_prompts(id) ON DELETE CASCADE,
		cycle_id        TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		status          TEXT NOT NULL DEFAULT 'assigned'
		                CHECK(status IN ('assigned','submitted')),
		submitted_at    TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_essay_assignments_key ON essay_assignments(child_id, essay_prompt_id)`,
	`CREATE INDEX IF NOT EXISTS idx_essay_assignments_child_cycle ON essay_assignments(child_id, cycle_id)`,
}
