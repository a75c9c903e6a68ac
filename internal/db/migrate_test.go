package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemoryMigrates(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"households", "children", "cycles", "divisions", "grade_rules",
		"scriptures", "essay_prompts", "enrollments",
		"scripture_assignments", "essay_assignments",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
}

func TestSchema_AssignmentUniqueness(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	mustExec := func(q string, args ...any) {
		t.Helper()
		_, err := database.Exec(q, args...)
		require.NoError(t, err)
	}

	mustExec(`INSERT INTO households (id, name, created_at, updated_at) VALUES ('h1', 'H', '', '')`)
	mustExec(`INSERT INTO children (id, household_id, first_name, created_at, updated_at) VALUES ('c1', 'h1', 'A', '', '')`)
	mustExec(`INSERT INTO cycles (id, name, created_at, updated_at) VALUES ('y1', '2025-2026', '', '')`)
	mustExec(`INSERT INTO scriptures (id, cycle_id, reference, created_at, updated_at) VALUES ('s1', 'y1', 'John 3:16', '', '')`)
	mustExec(`INSERT INTO scripture_assignments (id, child_id, scripture_id, cycle_id, created_at, updated_at)
		VALUES ('a1', 'c1', 's1', 'y1', '', '')`)

	_, err = database.Exec(`INSERT INTO scripture_assignments (id, child_id, scripture_id, cycle_id, created_at, updated_at)
		VALUES ('a2', 'c1', 's1', 'y1', '', '')`)
	assert.Error(t, err, "duplicate (child, scripture) must be rejected")

	// ON CONFLICT DO NOTHING path used by the materializer.
	res, err := database.Exec(`INSERT INTO scripture_assignments (id, child_id, scripture_id, cycle_id, created_at, updated_at)
		VALUES ('a3', 'c1', 's1', 'y1', '', '')
		ON CONFLICT(child_id, scripture_id) DO NOTHING`)
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
