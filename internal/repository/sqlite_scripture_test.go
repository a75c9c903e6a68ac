package repository

import (
	"context"
	"testing"

	"biblebee/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptureTestSetup(t *testing.T) (*SQLiteScriptureRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	cycleRepo := NewSQLiteCycleRepo(database)
	scriptureRepo := NewSQLiteScriptureRepo(database)

	cycle := testutil.NewTestCycle("2025-2026")
	require.NoError(t, cycleRepo.Create(ctx, cycle))

	return scriptureRepo, cycle.ID
}

func TestScriptureRepo_CreateAndGetByID(t *testing.T) {
	repo, cycleID := scriptureTestSetup(t)
	ctx := context.Background()

	s := testutil.NewTestScripture(cycleID, "John 3:16",
		testutil.WithCountsFor(2),
		testutil.WithTexts(map[string]string{"NIV": "For God so loved...", "KJV": "For God so loved the world..."}),
	)
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "John 3:16", fetched.Reference)
	assert.Equal(t, 2, fetched.CountsFor)
	assert.Equal(t, "For God so loved...", fetched.Texts["NIV"])
	assert.Equal(t, "For God so loved the world...", fetched.Texts["KJV"])
}

func TestScriptureRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := scriptureTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScriptureRepo_ListByCycle_SortOrder(t *testing.T) {
	repo, cycleID := scriptureTestSetup(t)
	ctx := context.Background()

	s2 := testutil.NewTestScripture(cycleID, "Psalm 23:1", testutil.WithSortOrder(2))
	s1 := testutil.NewTestScripture(cycleID, "John 3:16", testutil.WithSortOrder(1))
	require.NoError(t, repo.Create(ctx, s2))
	require.NoError(t, repo.Create(ctx, s1))

	list, err := repo.ListByCycle(ctx, cycleID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "John 3:16", list[0].Reference)
	assert.Equal(t, "Psalm 23:1", list[1].Reference)
}

func TestScriptureRepo_CountByCycle(t *testing.T) {
	repo, cycleID := scriptureTestSetup(t)
	ctx := context.Background()

	n, err := repo.CountByCycle(ctx, cycleID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Create(ctx, testutil.NewTestScripture(cycleID, "John 3:16")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestScripture(cycleID, "Psalm 23:1")))

	n, err = repo.CountByCycle(ctx, cycleID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestScriptureRepo_ZeroCountsForStoredAsOne(t *testing.T) {
	repo, cycleID := scriptureTestSetup(t)
	ctx := context.Background()

	s := testutil.NewTestScripture(cycleID, "John 3:16", testutil.WithCountsFor(0))
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.CountsFor)
}
