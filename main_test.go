package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymate/studymate/internal/config"
)

func runPlan(t *testing.T, planYaml string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(planYaml), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(append([]string{"plan", "--config", filepath.Join(dir, "missing.yaml"), "--file", planPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := runPlan(t, `
preferences:
  dailyhours: 4
  sessionminutes: 60
  breakminutes: 10
subjects:
  - name: Math
    hours: 5
`, "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{
		"Monday",
		"9:00 AM - 10:00 AM | Math",
		"10:00 AM - 10:10 AM | Break",
		"10:10 AM - 11:10 AM | Math",
		"11:10 AM - 11:20 AM | Break",
		"11:20 AM - 12:20 PM | Math",
		"12:20 PM - 12:30 PM | Break",
		"Tuesday",
		"9:00 AM - 10:00 AM | Math",
		"10:00 AM - 10:10 AM | Break",
		"10:10 AM - 11:10 AM | Math",
		"11:10 AM - 11:20 AM | Break",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	}, lines)
}

func TestPlanCommand_SameSeedSameOutput(t *testing.T) {
	planYaml := `
subjects:
  - name: Math
    hours: 3
  - name: Physics
    hours: 3
  - name: History
    hours: 2
`
	first, err := runPlan(t, planYaml, "--seed", "11")
	require.NoError(t, err)
	second, err := runPlan(t, planYaml, "--seed", "11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanCommand_RejectsInvalidInput(t *testing.T) {
	_, err := runPlan(t, "preferences:\n  sessionminutes: 30\n")
	assert.Error(t, err)

	_, err = runPlan(t, "subjects:\n  - name: Math\n    hours: 40\n")
	assert.Error(t, err)

	_, err = runPlan(t, "subjects: []\n", "--clock", "sundial")
	assert.Error(t, err)
}

func TestFromPlanFile_DefaultsDifficulty(t *testing.T) {
	subjects, prefs, err := fromPlanFile(config.PlanFile{
		Preferences: config.Defaults{DailyHours: 2, SessionMinutes: 25, BreakMinutes: 5},
		Subjects:    []config.PlanSubject{{Name: "Math", Hours: 2}},
	})
	require.NoError(t, err)

	require.Len(t, subjects, 1)
	assert.Equal(t, "medium", string(subjects[0].Difficulty))
	assert.Equal(t, 4, prefs.SessionsPerDay())
}
