package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblebee/internal/testutil"
)

func newRegistration(env *serviceEnv) RegistrationService {
	return NewRegistrationService(
		env.households, env.children, env.cycles, env.divisions,
		env.gradeRules, env.scriptures, env.prompts, env.enrollments,
	)
}

func TestRegistration_FullSeasonSetup(t *testing.T) {
	env := newServiceEnv(t)
	reg := newRegistration(env)

	cycleID, err := reg.CreateCycle(env.ctx, "2025-2026", "NIV", true)
	require.NoError(t, err)

	promptID, err := reg.AddEssayPrompt(env.ctx, cycleID, "Faith", "Write about faith in daily life.")
	require.NoError(t, err)

	required := 12
	_, err = reg.AddDivision(env.ctx, cycleID, "Junior", 3, 5, &required, nil)
	require.NoError(t, err)
	_, err = reg.AddDivision(env.ctx, cycleID, "Senior Essay", 9, 12, nil, &promptID)
	require.NoError(t, err)

	_, err = reg.AddGradeRule(env.ctx, cycleID, 6, 8, 10)
	require.NoError(t, err)

	_, err = reg.AddScripture(env.ctx, cycleID, "John 3:16", 1, 1,
		map[string]string{"NIV": "For God so loved the world"})
	require.NoError(t, err)

	householdID, err := reg.RegisterHousehold(env.ctx, "Smith", "ESV")
	require.NoError(t, err)
	childID, err := reg.RegisterChild(env.ctx, householdID, "Abby", "Smith", "4")
	require.NoError(t, err)
	enrollmentID, err := reg.Enroll(env.ctx, childID, cycleID)
	require.NoError(t, err)
	assert.NotEmpty(t, enrollmentID)

	cycle, err := env.cycles.GetActive(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, cycleID, cycle.ID)

	divisions, err := env.divisions.ListByCycle(env.ctx, cycleID)
	require.NoError(t, err)
	assert.Len(t, divisions, 2)
}

func TestRegistration_EnrollTwiceReturnsSameEnrollment(t *testing.T) {
	env := newServiceEnv(t)
	reg := newRegistration(env)

	cycleID, err := reg.CreateCycle(env.ctx, "2025-2026", "NIV", false)
	require.NoError(t, err)
	householdID, err := reg.RegisterHousehold(env.ctx, "Jones", "")
	require.NoError(t, err)
	childID, err := reg.RegisterChild(env.ctx, householdID, "Ben", "Jones", "K")
	require.NoError(t, err)

	first, err := reg.Enroll(env.ctx, childID, cycleID)
	require.NoError(t, err)
	second, err := reg.Enroll(env.ctx, childID, cycleID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistration_Validation(t *testing.T) {
	env := newServiceEnv(t)
	reg := newRegistration(env)

	_, err := reg.CreateCycle(env.ctx, "", "NIV", false)
	assert.Error(t, err)

	cycleID, err := reg.CreateCycle(env.ctx, "2025-2026", "NIV", false)
	require.NoError(t, err)

	_, err = reg.AddDivision(env.ctx, cycleID, "Backwards", 5, 3, nil, nil)
	assert.Error(t, err)

	householdID, err := reg.RegisterHousehold(env.ctx, "Smith", "")
	require.NoError(t, err)

	_, err = reg.RegisterChild(env.ctx, householdID, "Abby", "Smith", "13th")
	assert.Error(t, err)
	_, err = reg.RegisterChild(env.ctx, householdID, "", "", "4")
	assert.Error(t, err)
	_, err = reg.RegisterChild(env.ctx, "no-such-household", "Abby", "Smith", "4")
	assert.Error(t, err)

	// Child fixture for enrollment checks.
	child := testutil.NewTestChild(householdID, "Cara")
	require.NoError(t, env.children.Create(env.ctx, child))
	_, err = reg.Enroll(env.ctx, child.ID, "no-such-cycle")
	assert.Error(t, err)
}
