package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"biblebee/internal/db"
	"biblebee/internal/domain"
	"biblebee/internal/repository"
	"biblebee/internal/testutil"
)

// serviceEnv wires real repositories over an in-memory database so service
// tests exercise the full stack down to SQL.
type serviceEnv struct {
	ctx context.Context

	households           repository.HouseholdRepo
	children             repository.ChildRepo
	cycles               repository.CycleRepo
	divisions            repository.DivisionRepo
	gradeRules           repository.GradeRuleRepo
	scriptures           repository.ScriptureRepo
	prompts              repository.EssayPromptRepo
	enrollments          repository.EnrollmentRepo
	scriptureAssignments repository.ScriptureAssignmentRepo
	essayAssignments     repository.EssayAssignmentRepo
	uow                  db.UnitOfWork

	materializer MaterializerService
	progress     ProgressService
	completion   CompletionService
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &serviceEnv{
		ctx:                  context.Background(),
		households:           repository.NewSQLiteHouseholdRepo(database),
		children:             repository.NewSQLiteChildRepo(database),
		cycles:               repository.NewSQLiteCycleRepo(database),
		divisions:            repository.NewSQLiteDivisionRepo(database),
		gradeRules:           repository.NewSQLiteGradeRuleRepo(database),
		scriptures:           repository.NewSQLiteScriptureRepo(database),
		prompts:              repository.NewSQLiteEssayPromptRepo(database),
		enrollments:          repository.NewSQLiteEnrollmentRepo(database),
		scriptureAssignments: repository.NewSQLiteScriptureAssignmentRepo(database),
		essayAssignments:     repository.NewSQLiteEssayAssignmentRepo(database),
		uow:                  db.NewUnitOfWork(database),
	}

	env.materializer = NewMaterializerService(
		env.enrollments, env.children, env.households, env.cycles,
		env.divisions, env.scriptures, env.prompts,
		env.scriptureAssignments, env.essayAssignments, env.uow,
	)
	env.progress = NewProgressService(
		env.materializer, env.enrollments, env.children, env.cycles,
		env.divisions, env.gradeRules, env.scriptures,
	)
	env.completion = NewCompletionService(env.uow)
	return env
}

// seedChild creates a household, a child in the given grade, and an
// enrollment in the cycle.
func (env *serviceEnv) seedChild(t *testing.T, cycleID, firstName, grade string, householdOpts ...testutil.HouseholdOption) *domain.Child {
	t.Helper()
	household := testutil.NewTestHousehold(firstName+" Family", householdOpts...)
	require.NoError(t, env.households.Create(env.ctx, household))

	child := testutil.NewTestChild(household.ID, firstName, testutil.WithGrade(grade))
	require.NoError(t, env.children.Create(env.ctx, child))

	require.NoError(t, env.enrollments.Create(env.ctx, testutil.NewTestEnrollment(child.ID, cycleID)))
	return child
}

// seedCatalog creates n scriptures in the cycle with sequential sort order.
func (env *serviceEnv) seedCatalog(t *testing.T, cycleID string, n int) []*domain.Scripture {
	t.Helper()
	out := make([]*domain.Scripture, 0, n)
	for i := 0; i < n; i++ {
		s := testutil.NewTestScripture(cycleID, scriptureRef(i), testutil.WithSortOrder(i+1))
		require.NoError(t, env.scriptures.Create(env.ctx, s))
		out = append(out, s)
	}
	return out
}

func scriptureRef(i int) string {
	refs := []string{
		"John 3:16", "Psalm 23:1", "Romans 8:28", "Genesis 1:1",
		"Philippians 4:13", "Proverbs 3:5", "Isaiah 40:31", "Matthew 5:16",
		"Joshua 1:9", "Jeremiah 29:11", "Psalm 119:105", "Galatians 5:22",
	}
	if i < len(refs) {
		return refs[i]
	}
	return refs[i%len(refs)] + "b"
}
