package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaults(), cfg)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "literal", cfg.Clock.Style)
	assert.Equal(t, Defaults{DailyHours: 4, SessionMinutes: 45, BreakMinutes: 10}, cfg.Defaults)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "application.yaml", `
server:
  port: 9000
clock:
  style: conventional
schedule:
  seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "conventional", cfg.Clock.Style)
	assert.Equal(t, uint64(42), cfg.Schedule.Seed)
	assert.Equal(t, 45, cfg.Defaults.SessionMinutes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "application.yaml", "server:\n  port: 9000\n")
	t.Setenv("STUDYMATE_SERVER_PORT", "9191")
	t.Setenv("STUDYMATE_DEFAULTS_DAILYHOURS", "6")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Defaults.DailyHours)
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := writeFile(t, "application.yaml", "server: [port\n")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadPlanFile(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
preferences:
  sessionminutes: 60
subjects:
  - name: Math
    hours: 5
    difficulty: easy
  - name: Physics
    hours: 4
`)

	plan, err := LoadPlanFile(path, Defaults{DailyHours: 4, SessionMinutes: 45, BreakMinutes: 10})
	require.NoError(t, err)

	assert.Equal(t, Defaults{DailyHours: 4, SessionMinutes: 60, BreakMinutes: 10}, plan.Preferences)
	assert.Equal(t, []PlanSubject{
		{Name: "Math", Hours: 5, Difficulty: "easy"},
		{Name: "Physics", Hours: 4},
	}, plan.Subjects)
}

func TestLoadPlanFile_Missing(t *testing.T) {
	_, err := LoadPlanFile(filepath.Join(t.TempDir(), "nope.yaml"), Defaults{})

	assert.Error(t, err)
}
