package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblebee/internal/db"
	"biblebee/internal/repository"
	"biblebee/internal/service"
	"biblebee/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	households := repository.NewSQLiteHouseholdRepo(database)
	children := repository.NewSQLiteChildRepo(database)
	cycles := repository.NewSQLiteCycleRepo(database)
	divisions := repository.NewSQLiteDivisionRepo(database)
	gradeRules := repository.NewSQLiteGradeRuleRepo(database)
	scriptures := repository.NewSQLiteScriptureRepo(database)
	prompts := repository.NewSQLiteEssayPromptRepo(database)
	enrollments := repository.NewSQLiteEnrollmentRepo(database)
	scriptureAssignments := repository.NewSQLiteScriptureAssignmentRepo(database)
	essayAssignments := repository.NewSQLiteEssayAssignmentRepo(database)
	uow := db.NewUnitOfWork(database)

	materializer := service.NewMaterializerService(
		enrollments, children, households, cycles, divisions, scriptures,
		prompts, scriptureAssignments, essayAssignments, uow,
	)
	return &App{
		Catalog:      service.NewCatalogService(cycles, divisions, scriptures, enrollments),
		Progress:     service.NewProgressService(materializer, enrollments, children, cycles, divisions, gradeRules, scriptures),
		Materializer: materializer,
		Completion:   service.NewCompletionService(uow),
		Registration: service.NewRegistrationService(households, children, cycles, divisions, gradeRules, scriptures, prompts, enrollments),
		// IsInteractive left nil: picker flows are not driven from tests.
	}
}

// execute runs the CLI with args and returns combined output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedSeason stands up a cycle with a division, catalog, and one enrolled
// child through the registration surface.
func seedSeason(t *testing.T, app *App) (cycleID, childID string) {
	t.Helper()
	ctx := context.Background()

	cycleID, err := app.Registration.CreateCycle(ctx, "2025-2026", "NIV", true)
	require.NoError(t, err)

	required := 2
	_, err = app.Registration.AddDivision(ctx, cycleID, "Junior", 3, 5, &required, nil)
	require.NoError(t, err)
	_, err = app.Registration.AddScripture(ctx, cycleID, "John 3:16", 1, 1,
		map[string]string{"NIV": "For God so loved the world"})
	require.NoError(t, err)
	_, err = app.Registration.AddScripture(ctx, cycleID, "Psalm 23:1", 2, 1,
		map[string]string{"NIV": "The Lord is my shepherd"})
	require.NoError(t, err)

	householdID, err := app.Registration.RegisterHousehold(ctx, "Smith", "")
	require.NoError(t, err)
	childID, err = app.Registration.RegisterChild(ctx, householdID, "Abby", "Smith", "4")
	require.NoError(t, err)
	_, err = app.Registration.Enroll(ctx, childID, cycleID)
	require.NoError(t, err)
	return cycleID, childID
}

func TestCycleListCmd(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "cycle", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No cycles yet")

	seedSeason(t, app)
	out, err = execute(t, app, "cycle", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-2026")
	assert.Contains(t, out, "active")
}

func TestCycleShowCmd(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	out, err := execute(t, app, "cycle", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-2026")
	assert.Contains(t, out, "Junior")
	assert.Contains(t, out, "3-5")
}

func TestRosterCmd(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	out, err := execute(t, app, "roster")
	require.NoError(t, err)
	assert.Contains(t, out, "Abby Smith")
	assert.Contains(t, out, "0/2")
	assert.Contains(t, out, "NOT STARTED")
}

func TestRosterCmd_CSV(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	out, err := execute(t, app, "roster", "--csv", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "child_name")
	assert.Contains(t, lines[1], "Abby Smith")
}

func TestRosterCmd_BadStatus(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	_, err := execute(t, app, "roster", "--status", "finished")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestChildCmd(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	out, err := execute(t, app, "child", "Abby Smith")
	require.NoError(t, err)
	assert.Contains(t, out, "John 3:16")
	assert.Contains(t, out, "Psalm 23:1")
	assert.Contains(t, out, "[ ]")
}

func TestCompleteCmd_DirectAssignment(t *testing.T) {
	app := testApp(t)
	cycleID, childID := seedSeason(t, app)
	ctx := context.Background()

	_, err := app.Materializer.EnsureMaterialized(ctx, childID, cycleID)
	require.NoError(t, err)
	set, err := app.Materializer.ReadAssignments(ctx, childID, cycleID)
	require.NoError(t, err)
	assignmentID := set.Scriptures[0].Assignment.ID

	out, err := execute(t, app, "complete", assignmentID)
	require.NoError(t, err)
	assert.Contains(t, out, "Marked complete")

	detail, err := app.Progress.GetProgressForChild(ctx, childID, cycleID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Summary.CompletedScriptures)

	out, err = execute(t, app, "complete", "--undo", assignmentID)
	require.NoError(t, err)
	assert.Contains(t, out, "Completion cleared")
}

func TestCompleteCmd_NoArgsNoChild(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	_, err := execute(t, app, "complete")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--child")
}

func TestEssaySubmitCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	cycleID, err := app.Registration.CreateCycle(ctx, "2025-2026", "NIV", true)
	require.NoError(t, err)
	promptID, err := app.Registration.AddEssayPrompt(ctx, cycleID, "Grace", "")
	require.NoError(t, err)
	_, err = app.Registration.AddDivision(ctx, cycleID, "Senior Essay", 9, 12, nil, &promptID)
	require.NoError(t, err)

	householdID, err := app.Registration.RegisterHousehold(ctx, "Jones", "")
	require.NoError(t, err)
	childID, err := app.Registration.RegisterChild(ctx, householdID, "Ben", "Jones", "10")
	require.NoError(t, err)
	_, err = app.Registration.Enroll(ctx, childID, cycleID)
	require.NoError(t, err)

	out, err := execute(t, app, "essay", "submit", "Ben Jones")
	require.NoError(t, err)
	assert.Contains(t, out, "submitted")

	// A second submission is rejected.
	_, err = execute(t, app, "essay", "submit", "Ben Jones")
	require.Error(t, err)
}

func TestMaterializeCmd(t *testing.T) {
	app := testApp(t)
	seedSeason(t, app)

	out, err := execute(t, app, "materialize", "Abby Smith")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 2 scripture")

	out, err = execute(t, app, "materialize", "Abby Smith")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 0 scripture")
}

func TestRegisterCmds(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "cycle", "create", "--name", "2026-2027", "--active")
	require.NoError(t, err)
	assert.Contains(t, out, "Created cycle 2026-2027")

	out, err = execute(t, app, "register", "household", "--name", "Lee", "--translation", "ESV")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered household Lee")

	// The printed ID is truncated for display, so look up the full one.
	householdID, err := app.Registration.RegisterHousehold(context.Background(), "Park", "")
	require.NoError(t, err)

	out, err = execute(t, app, "register", "child",
		"--household", householdID, "--first", "Mia", "--last", "Park", "--grade", "K")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered Mia Park")

	childID, err := app.Registration.RegisterChild(context.Background(), householdID, "Theo", "Park", "2")
	require.NoError(t, err)
	out, err = execute(t, app, "register", "enroll", "--child", childID)
	require.NoError(t, err)
	assert.Contains(t, out, "Enrolled")
}
