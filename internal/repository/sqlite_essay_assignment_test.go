package repository

import (
	"context"
	"testing"
	"time"

	"biblebee/internal/domain"
	"biblebee/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func essayAssignmentTestSetup(t *testing.T) (*SQLiteEssayAssignmentRepo, string, string, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	households := NewSQLiteHouseholdRepo(database)
	children := NewSQLiteChildRepo(database)
	cycles := NewSQLiteCycleRepo(database)
	prompts := NewSQLiteEssayPromptRepo(database)
	repo := NewSQLiteEssayAssignmentRepo(database)

	h := testutil.NewTestHousehold("Okafor")
	require.NoError(t, households.Create(ctx, h))
	c := testutil.NewTestChild(h.ID, "Daniel", testutil.WithGrade("10"))
	require.NoError(t, children.Create(ctx, c))
	cy := testutil.NewTestCycle("2025-2026")
	require.NoError(t, cycles.Create(ctx, cy))
	p := testutil.NewTestEssayPrompt(cy.ID, "Faithfulness")
	require.NoError(t, prompts.Create(ctx, p))

	return repo, c.ID, cy.ID, p.ID
}

func newEssayAssignment(childID, cycleID, promptID string) *domain.EssayAssignment {
	now := time.Now().UTC()
	return &domain.EssayAssignment{
		ID:            uuid.New().String(),
		ChildID:       childID,
		EssayPromptID: promptID,
		CycleID:       cycleID,
		Status:        domain.EssayAssigned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestEssayAssignmentRepo_CreateIfAbsent(t *testing.T) {
	repo, childID, cycleID, promptID := essayAssignmentTestSetup(t)
	ctx := context.Background()

	a := newEssayAssignment(childID, cycleID, promptID)
	created, err := repo.CreateIfAbsent(ctx, a)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, newEssayAssignment(childID, cycleID, promptID))
	require.NoError(t, err)
	assert.False(t, created)

	fetched, err := repo.GetByChildAndCycle(ctx, childID, cycleID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, fetched.ID)
	assert.Equal(t, domain.EssayAssigned, fetched.Status)
}

func TestEssayAssignmentRepo_SubmitRoundTrip(t *testing.T) {
	repo, childID, cycleID, promptID := essayAssignmentTestSetup(t)
	ctx := context.Background()

	a := newEssayAssignment(childID, cycleID, promptID)
	_, err := repo.CreateIfAbsent(ctx, a)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, a.Submit(now))
	require.NoError(t, repo.Update(ctx, a))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EssaySubmitted, fetched.Status)
	require.NotNil(t, fetched.SubmittedAt)
	assert.True(t, fetched.SubmittedAt.Equal(now))
}

func TestEssayAssignmentRepo_GetByChildAndCycle_NotFound(t *testing.T) {
	repo, childID, cycleID, _ := essayAssignmentTestSetup(t)

	_, err := repo.GetByChildAndCycle(context.Background(), childID, cycleID)
	assert.ErrorIs(t, err, ErrNotFound)
}
