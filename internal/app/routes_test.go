package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymate/studymate/internal/config"
	"github.com/studymate/studymate/internal/utils"
	"github.com/studymate/studymate/pkg/session"
	"github.com/studymate/studymate/pkg/stats"
	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
	"github.com/studymate/studymate/pkg/user"
)

type client struct {
	t         *testing.T
	router    *mux.Router
	sessionId string
}

func newClient(t *testing.T, cfg config.Application) *client {
	t.Helper()
	deps, err := BuildDependencies(cfg, &utils.FixedClock{At: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return &client{t: t, router: NewRouter(deps)}
}

func testConfig() config.Application {
	return config.Application{
		Clock:    config.Clock{Style: "literal"},
		Schedule: config.Schedule{Seed: 1},
		Defaults: config.Defaults{DailyHours: 4, SessionMinutes: 60, BreakMinutes: 10},
	}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.sessionId != "" {
		req.Header.Set(SessionHeader, c.sessionId)
	}
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	return rr
}

func (c *client) startSession() {
	rr := c.do("POST", "/api/session", "")
	require.Equal(c.t, http.StatusCreated, rr.Code)
	var dto session.SessionDTO
	require.NoError(c.t, json.NewDecoder(rr.Body).Decode(&dto))
	require.NotEmpty(c.t, dto.Id)
	c.sessionId = dto.Id
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func TestRoutes_RequireSession(t *testing.T) {
	c := newClient(t, testConfig())

	assert.Equal(t, http.StatusForbidden, c.do("POST", "/api/auth/login", "{}").Code)

	c.sessionId = "unknown"
	assert.Equal(t, http.StatusForbidden, c.do("GET", "/api/user/current", "").Code)
}

func TestRoutes_RequireLogin(t *testing.T) {
	c := newClient(t, testConfig())
	c.startSession()

	assert.Equal(t, http.StatusUnauthorized, c.do("GET", "/api/user/current", "").Code)
	assert.Equal(t, http.StatusUnauthorized, c.do("GET", "/api/subjects", "").Code)
	assert.Equal(t, http.StatusUnauthorized, c.do("POST", "/api/timetable/generate", "").Code)
}

func TestRoutes_StudyWeek(t *testing.T) {
	c := newClient(t, testConfig())
	c.startSession()

	rr := c.do("POST", "/api/auth/login", `{"email": "ada@example.com", "password": "x"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, user.UserDTO{Email: "ada@example.com", Name: "Student"}, decode[user.UserDTO](t, rr))

	rr = c.do("POST", "/api/subjects", `{"name": "Math", "hours": 5, "difficulty": "hard"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, http.StatusNotFound, c.do("GET", "/api/timetable", "").Code)

	rr = c.do("POST", "/api/timetable/generate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	plan := decode[timetable.PlanDTO](t, rr)
	require.Len(t, plan.Days["0"], 6)
	assert.Len(t, plan.Days["1"], 4)
	assert.Equal(t, "9:00 AM", plan.Days["0"][0].Start)
	assert.Equal(t, "12:30 PM", plan.Days["0"][5].End)
	assert.False(t, plan.Stale)

	rr = c.do("PUT", "/api/timetable/day/0/slot/0", `{"completed": true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = c.do("GET", "/api/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	summary := decode[stats.SummaryDTO](t, rr)
	assert.Equal(t, 5, summary.TotalSessions)
	assert.Equal(t, 1, summary.CompletedSessions)
	assert.Equal(t, 300, summary.StudyMinutes)

	rr = c.do("POST", "/api/subjects", `{"name": "Physics", "hours": 2}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = c.do("GET", "/api/timetable", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[timetable.PlanDTO](t, rr).Stale)

	rr = c.do("GET", "/api/timetable/text", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Monday\n9:00 AM - 10:00 AM | Math\n"))

	rr = c.do("GET", "/api/export/csv", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Monday,9:00 AM - 10:00 AM,Math,60,study,Yes")

	rr = c.do("GET", "/api/export/json", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"exportedAt":"2026-03-02T08:00:00Z"`)
}

func TestRoutes_SeededRegenerationIsStable(t *testing.T) {
	c := newClient(t, testConfig())
	c.startSession()
	require.Equal(t, http.StatusOK, c.do("POST", "/api/auth/login", "{}").Code)
	for _, name := range []string{"Math", "Physics", "History"} {
		require.Equal(t, http.StatusCreated, c.do("POST", "/api/subjects", `{"name": "`+name+`", "hours": 3}`).Code)
	}

	rr := c.do("POST", "/api/timetable/generate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	first := decode[timetable.PlanDTO](t, rr)

	other := &client{t: t, router: c.router}
	other.startSession()
	require.Equal(t, http.StatusOK, other.do("POST", "/api/auth/login", "{}").Code)
	require.Equal(t, http.StatusCreated, other.do("POST", "/api/subjects", `{"name": "Art", "hours": 4}`).Code)
	require.Equal(t, http.StatusOK, other.do("POST", "/api/timetable/generate", "").Code)

	rr = c.do("POST", "/api/timetable/generate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	second := decode[timetable.PlanDTO](t, rr)

	assert.Equal(t, first.Days, second.Days)
}

func TestRoutes_SessionsAreIsolated(t *testing.T) {
	first := newClient(t, testConfig())
	first.startSession()
	require.Equal(t, http.StatusOK, first.do("POST", "/api/auth/login", "{}").Code)
	require.Equal(t, http.StatusCreated, first.do("POST", "/api/subjects", `{"name": "Math", "hours": 5}`).Code)

	second := &client{t: t, router: first.router}
	second.startSession()
	require.Equal(t, http.StatusOK, second.do("POST", "/api/auth/login", "{}").Code)

	rr := second.do("GET", "/api/subjects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]subject.SubjectDTO](t, rr))
}

func TestRoutes_LogoutResetsSession(t *testing.T) {
	c := newClient(t, testConfig())
	c.startSession()
	require.Equal(t, http.StatusCreated, c.do("POST", "/api/auth/register", `{"name": "Ada", "email": "ada@example.com"}`).Code)
	require.Equal(t, http.StatusCreated, c.do("POST", "/api/subjects", `{"name": "Math", "hours": 5}`).Code)
	require.Equal(t, http.StatusOK, c.do("POST", "/api/timetable/generate", "").Code)

	assert.Equal(t, http.StatusNoContent, c.do("POST", "/api/auth/logout", "").Code)

	assert.Equal(t, http.StatusUnauthorized, c.do("GET", "/api/user/current", "").Code)
	require.Equal(t, http.StatusOK, c.do("POST", "/api/auth/login", "{}").Code)
	rr := c.do("GET", "/api/subjects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	assert.Equal(t, http.StatusNotFound, c.do("GET", "/api/timetable", "").Code)
}

func TestRoutes_DeleteSession(t *testing.T) {
	c := newClient(t, testConfig())
	c.startSession()

	assert.Equal(t, http.StatusNoContent, c.do("DELETE", "/api/session", "").Code)
	assert.Equal(t, http.StatusForbidden, c.do("POST", "/api/auth/login", "{}").Code)
}

func TestRoutes_ConventionalClock(t *testing.T) {
	cfg := testConfig()
	cfg.Clock.Style = "conventional"
	c := newClient(t, cfg)
	c.startSession()
	require.Equal(t, http.StatusOK, c.do("POST", "/api/auth/login", "{}").Code)
	require.Equal(t, http.StatusCreated, c.do("POST", "/api/subjects", `{"name": "Math", "hours": 5}`).Code)

	rr := c.do("POST", "/api/timetable/generate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "12:30 PM", decode[timetable.PlanDTO](t, rr).Days["0"][5].End)
}

func TestBuildDependencies_InvalidClockStyle(t *testing.T) {
	cfg := testConfig()
	cfg.Clock.Style = "sundial"

	_, err := BuildDependencies(cfg, utils.SystemClock{})

	assert.Error(t, err)
}
