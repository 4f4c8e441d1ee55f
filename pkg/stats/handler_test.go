package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymate/studymate/pkg/timetable"
)

func TestHandler_GetStats(t *testing.T) {
	handler := NewHandler(NewService(&planReaderStub{plan: samplePlan()}), NewCsvRenderer())

	rr := httptest.NewRecorder()
	handler.GetStats(rr, httptest.NewRequest("GET", "/api/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var dto SummaryDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
	assert.Equal(t, 3, dto.TotalSessions)
	assert.Equal(t, 2, dto.DroppedSessions)
	assert.Equal(t, 135, dto.StudyMinutes)
	assert.Equal(t, 45, dto.BreakMinutes)
	assert.Equal(t, SubjectStatsDTO{Subject: "Math", Sessions: 2, StudyMinutes: 90, Completed: 1}, dto.Subjects[0])
	assert.Len(t, dto.Days, timetable.DaysPerWeek)
}

func TestHandler_GetStatsCsv(t *testing.T) {
	handler := NewHandler(NewService(&planReaderStub{plan: samplePlan()}), NewCsvRenderer())

	rr := httptest.NewRecorder()
	handler.GetStatsCsv(rr, httptest.NewRequest("GET", "/api/stats/csv", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Total,3,02:15:00,1")
}

func TestHandler_NoTimetable(t *testing.T) {
	handler := NewHandler(NewService(&planReaderStub{err: timetable.ErrNoTimetable}), NewCsvRenderer())

	rr := httptest.NewRecorder()
	handler.GetStats(rr, httptest.NewRequest("GET", "/api/stats", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	handler.GetStatsCsv(rr, httptest.NewRequest("GET", "/api/stats/csv", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
