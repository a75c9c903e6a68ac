package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblebee/internal/app"
	"biblebee/internal/domain"
)

func cachedSummary(childID string) app.ProgressSummary {
	return app.ProgressSummary{
		ChildID:             childID,
		ChildName:           "Abby Tester",
		RequiredScriptures:  4,
		CompletedScriptures: 1,
		TotalScriptures:     6,
		Percent:             25,
		Bucket:              domain.BucketInProgress,
	}
}

func TestSummaryCache_ApplyCommit(t *testing.T) {
	cache := NewSummaryCache()
	cache.Prime([]app.ProgressSummary{cachedSummary("child-1")})

	m := cache.Apply("child-1", "set_scripture_completion", func(s *app.ProgressSummary) {
		s.CompletedScriptures += 2
	})
	require.NotNil(t, m)
	assert.Equal(t, MutationPending, m.State)

	// The optimistic edit is visible immediately, derived fields included.
	s, ok := cache.Get("child-1")
	require.True(t, ok)
	assert.Equal(t, 3, s.CompletedScriptures)
	assert.InDelta(t, 75.0, s.Percent, 0.001)
	assert.Equal(t, domain.BucketInProgress, s.Bucket)

	require.NoError(t, cache.Commit(m))
	assert.Equal(t, MutationCommitted, m.State)
	assert.False(t, m.ResolvedAt.IsZero())

	s, _ = cache.Get("child-1")
	assert.Equal(t, 3, s.CompletedScriptures)
}

func TestSummaryCache_RollbackRestoresSnapshot(t *testing.T) {
	cache := NewSummaryCache()
	cache.Prime([]app.ProgressSummary{cachedSummary("child-1")})

	m := cache.Apply("child-1", "set_scripture_completion", func(s *app.ProgressSummary) {
		s.CompletedScriptures += 3
	})
	require.NotNil(t, m)

	require.NoError(t, cache.Rollback(m))
	assert.Equal(t, MutationRolledBack, m.State)

	s, ok := cache.Get("child-1")
	require.True(t, ok)
	assert.Equal(t, 1, s.CompletedScriptures)
	assert.InDelta(t, 25.0, s.Percent, 0.001)
}

func TestSummaryCache_ResolveTwiceFails(t *testing.T) {
	cache := NewSummaryCache()
	cache.Prime([]app.ProgressSummary{cachedSummary("child-1")})

	m := cache.Apply("child-1", "x", func(s *app.ProgressSummary) {})
	require.NoError(t, cache.Commit(m))
	assert.Error(t, cache.Rollback(m))
	assert.Error(t, cache.Commit(m))
}

func TestSummaryCache_UnknownChild(t *testing.T) {
	cache := NewSummaryCache()
	m := cache.Apply("missing", "x", func(s *app.ProgressSummary) {})
	assert.Nil(t, m)
	// Resolving a nil mutation is a harmless no-op.
	assert.NoError(t, cache.Commit(m))
	assert.NoError(t, cache.Rollback(m))
}

func TestSummaryCache_JournalRecordsTransitions(t *testing.T) {
	cache := NewSummaryCache()
	cache.Prime([]app.ProgressSummary{cachedSummary("child-1")})

	first := cache.Apply("child-1", "first", func(s *app.ProgressSummary) { s.CompletedScriptures++ })
	require.NoError(t, cache.Commit(first))
	second := cache.Apply("child-1", "second", func(s *app.ProgressSummary) { s.CompletedScriptures++ })
	require.NoError(t, cache.Rollback(second))

	journal := cache.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, "first", journal[0].Label)
	assert.Equal(t, MutationCommitted, journal[0].State)
	assert.Equal(t, "second", journal[1].Label)
	assert.Equal(t, MutationRolledBack, journal[1].State)
}

// failingCompletion fails every write, for exercising the rollback path.
type failingCompletion struct{}

func (failingCompletion) SetScriptureCompletion(context.Context, string, bool) error {
	return errors.New("store unavailable")
}

func (failingCompletion) SubmitEssay(context.Context, string, string) error {
	return errors.New("store unavailable")
}

// recordingCompletion succeeds and records the calls it sees.
type recordingCompletion struct {
	completions []string
	essays      []string
}

func (r *recordingCompletion) SetScriptureCompletion(_ context.Context, assignmentID string, _ bool) error {
	r.completions = append(r.completions, assignmentID)
	return nil
}

func (r *recordingCompletion) SubmitEssay(_ context.Context, childID, _ string) error {
	r.essays = append(r.essays, childID)
	return nil
}

func TestOptimisticCompletion_SuccessCommits(t *testing.T) {
	inner := &recordingCompletion{}
	opt := NewOptimisticCompletion(inner, NewSummaryCache())
	opt.Cache().Prime([]app.ProgressSummary{cachedSummary("child-1")})

	require.NoError(t, opt.SetScriptureCompletion(context.Background(), "child-1", "assignment-1", true, 2))
	require.Equal(t, []string{"assignment-1"}, inner.completions)

	s, _ := opt.Cache().Get("child-1")
	assert.Equal(t, 3, s.CompletedScriptures)

	journal := opt.Cache().Journal()
	require.Len(t, journal, 1)
	assert.Equal(t, MutationCommitted, journal[0].State)
}

func TestOptimisticCompletion_FailureRollsBack(t *testing.T) {
	opt := NewOptimisticCompletion(failingCompletion{}, NewSummaryCache())
	opt.Cache().Prime([]app.ProgressSummary{cachedSummary("child-1")})

	err := opt.SetScriptureCompletion(context.Background(), "child-1", "assignment-1", true, 1)
	require.Error(t, err)

	// The view is back to the pre-mutation snapshot.
	s, _ := opt.Cache().Get("child-1")
	assert.Equal(t, 1, s.CompletedScriptures)
	assert.InDelta(t, 25.0, s.Percent, 0.001)

	journal := opt.Cache().Journal()
	require.Len(t, journal, 1)
	assert.Equal(t, MutationRolledBack, journal[0].State)
}

func TestOptimisticCompletion_EssaySubmission(t *testing.T) {
	inner := &recordingCompletion{}
	opt := NewOptimisticCompletion(inner, NewSummaryCache())

	summary := cachedSummary("child-1")
	summary.RequiredScriptures = 0
	summary.CompletedScriptures = 0
	assigned := domain.EssayAssigned
	summary.EssayStatus = &assigned
	opt.Cache().Prime([]app.ProgressSummary{summary})

	require.NoError(t, opt.SubmitEssay(context.Background(), "child-1", "cycle-1"))
	require.Equal(t, []string{"child-1"}, inner.essays)

	s, _ := opt.Cache().Get("child-1")
	require.NotNil(t, s.EssayStatus)
	assert.Equal(t, domain.EssaySubmitted, *s.EssayStatus)
	assert.Equal(t, domain.BucketComplete, s.Bucket)
}
