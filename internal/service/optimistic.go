package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"biblebee/internal/app"
	"biblebee/internal/domain"
	"biblebee/internal/rules"
)

// MutationState tracks where an optimistic mutation sits in its lifecycle.
// Every mutation starts pending and resolves to exactly one terminal state.
type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationCommitted  MutationState = "committed"
	MutationRolledBack MutationState = "rolled-back"
)

// Mutation is one journal entry in the optimistic summary cache. It carries
// the pre-mutation snapshot so a failed write can restore the exact prior
// view instead of guessing at an inverse edit.
type Mutation struct {
	ID        string
	ChildID   string
	Label     string
	State     MutationState
	StartedAt time.Time
	// ResolvedAt is zero while the mutation is pending.
	ResolvedAt time.Time

	snapshot app.ProgressSummary
}

// SummaryCache holds the last known ProgressSummary per child and applies
// optimistic edits ahead of the backing write. Two sessions mutating the
// same assignment still race last-write-wins at the store; the cache only
// keeps one session's view consistent with its own in-flight writes.
type SummaryCache struct {
	mu        sync.Mutex
	summaries map[string]app.ProgressSummary
	journal   []*Mutation
	now       func() time.Time
}

// NewSummaryCache creates an empty cache. Prime it from an aggregator
// response before applying mutations.
func NewSummaryCache() *SummaryCache {
	return &SummaryCache{
		summaries: make(map[string]app.ProgressSummary),
		now:       time.Now,
	}
}

// Prime replaces the cached summaries with a fresh aggregation result.
func (c *SummaryCache) Prime(summaries []app.ProgressSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range summaries {
		c.summaries[s.ChildID] = s
	}
}

// Get returns the cached summary for a child, if one is present.
func (c *SummaryCache) Get(childID string) (app.ProgressSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.summaries[childID]
	return s, ok
}

// Apply records a pending mutation and applies edit to the cached summary.
// The derived fields (percent, bonus, bucket) are recomputed after the edit
// so callers only adjust the raw counts. Returns nil when the child has no
// cached summary; the caller then skips commit/rollback and relies on the
// next aggregation to pick up the write.
func (c *SummaryCache) Apply(childID, label string, edit func(*app.ProgressSummary)) *Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.summaries[childID]
	if !ok {
		return nil
	}
	m := &Mutation{
		ID:        uuid.NewString(),
		ChildID:   childID,
		Label:     label,
		State:     MutationPending,
		StartedAt: c.now(),
		snapshot:  current,
	}
	edit(&current)
	rederive(&current)
	c.summaries[childID] = current
	c.journal = append(c.journal, m)
	return m
}

// Commit resolves a pending mutation, keeping the optimistic view.
func (c *SummaryCache) Commit(m *Mutation) error {
	return c.resolve(m, MutationCommitted, false)
}

// Rollback resolves a pending mutation and restores the pre-mutation
// snapshot.
func (c *SummaryCache) Rollback(m *Mutation) error {
	return c.resolve(m, MutationRolledBack, true)
}

func (c *SummaryCache) resolve(m *Mutation, state MutationState, restore bool) error {
	if m == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.State != MutationPending {
		return fmt.Errorf("mutation %s already %s", m.ID, m.State)
	}
	m.State = state
	m.ResolvedAt = c.now()
	if restore {
		c.summaries[m.ChildID] = m.snapshot
	}
	return nil
}

// Journal returns a copy of the mutation history, oldest first.
func (c *SummaryCache) Journal() []Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Mutation, len(c.journal))
	for i, m := range c.journal {
		out[i] = *m
	}
	return out
}

func rederive(s *app.ProgressSummary) {
	if s.CompletedScriptures < 0 {
		s.CompletedScriptures = 0
	}
	s.Percent = rules.Percent(s.CompletedScriptures, s.RequiredScriptures)
	s.Bonus = rules.Bonus(s.CompletedScriptures, s.RequiredScriptures)
	s.Bucket = rules.Bucket(s.CompletedScriptures, s.RequiredScriptures, s.EssayStatus)
}

// OptimisticCompletion wraps a CompletionService with the summary cache:
// the cached view moves first, the store write follows, and a failed write
// rolls the view back to its snapshot.
type OptimisticCompletion struct {
	inner CompletionService
	cache *SummaryCache
}

func NewOptimisticCompletion(inner CompletionService, cache *SummaryCache) *OptimisticCompletion {
	return &OptimisticCompletion{inner: inner, cache: cache}
}

// Cache exposes the underlying summary cache for priming and reads.
func (o *OptimisticCompletion) Cache() *SummaryCache {
	return o.cache
}

// SetScriptureCompletion applies the completion optimistically for the given
// child, then performs the write. countsFor is the weight of the scripture
// being toggled.
func (o *OptimisticCompletion) SetScriptureCompletion(ctx context.Context, childID, assignmentID string, complete bool, countsFor int) error {
	if countsFor <= 0 {
		countsFor = 1
	}
	delta := countsFor
	if !complete {
		delta = -countsFor
	}
	m := o.cache.Apply(childID, "set_scripture_completion", func(s *app.ProgressSummary) {
		s.CompletedScriptures += delta
	})

	if err := o.inner.SetScriptureCompletion(ctx, assignmentID, complete); err != nil {
		if rbErr := o.cache.Rollback(m); rbErr != nil {
			return fmt.Errorf("set completion: %w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return o.cache.Commit(m)
}

// SubmitEssay applies the submission optimistically, then performs the write.
func (o *OptimisticCompletion) SubmitEssay(ctx context.Context, childID, cycleID string) error {
	m := o.cache.Apply(childID, "submit_essay", func(s *app.ProgressSummary) {
		submitted := domain.EssaySubmitted
		s.EssayStatus = &submitted
	})

	if err := o.inner.SubmitEssay(ctx, childID, cycleID); err != nil {
		if rbErr := o.cache.Rollback(m); rbErr != nil {
			return fmt.Errorf("submit essay: %w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return o.cache.Commit(m)
}
