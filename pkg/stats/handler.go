package stats

import (
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
	"github.com/studymate/studymate/pkg/timetable"
)

type SubjectStatsDTO struct {
	Subject      string `json:"subject"`
	Sessions     int    `json:"sessions"`
	StudyMinutes int    `json:"studyMinutes"`
	Completed    int    `json:"completed"`
}

type DailyStatsDTO struct {
	Day          string `json:"day"`
	Sessions     int    `json:"sessions"`
	StudyMinutes int    `json:"studyMinutes"`
	BreakMinutes int    `json:"breakMinutes"`
}

type SummaryDTO struct {
	Subjects          []SubjectStatsDTO `json:"subjects"`
	Days              []DailyStatsDTO   `json:"days"`
	TotalSessions     int               `json:"totalSessions"`
	CompletedSessions int               `json:"completedSessions"`
	DroppedSessions   int               `json:"droppedSessions"`
	StudyMinutes      int               `json:"studyMinutes"`
	BreakMinutes      int               `json:"breakMinutes"`
}

type Handler struct {
	service  Service
	renderer *CsvRendererImpl
}

func NewHandler(service Service, renderer *CsvRendererImpl) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// GetStats godoc
// @Summary Weekly study summary
// @Tags Stats
// @Produce json
// @Success 200 {object} SummaryDTO
// @Failure 404 {object} rest.ErrorResponse "No timetable generated"
// @Router /api/stats [get]
// @Security XSessionId
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.summary(w, r)
	if !ok {
		return
	}
	rest.WriteJSON(w, http.StatusOK, SummaryToDTO(summary))
}

// GetStatsCsv godoc
// @Summary Weekly study summary as CSV
// @Tags Stats
// @Produce text/csv
// @Success 200 {string} string
// @Failure 404 {object} rest.ErrorResponse "No timetable generated"
// @Router /api/stats/csv [get]
// @Security XSessionId
func (h *Handler) GetStatsCsv(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.summary(w, r)
	if !ok {
		return
	}
	body, err := h.renderer.RenderSummary(summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	if _, err := io.WriteString(w, body); err != nil {
		log.Errorf("failed to write stats csv: %v", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) (Summary, bool) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		if errors.Is(err, timetable.ErrNoTimetable) {
			rest.WriteError(w, http.StatusNotFound, "No timetable generated", "")
			return Summary{}, false
		}
		log.Errorf("failed to get stats: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return Summary{}, false
	}
	return summary, true
}

func SummaryToDTO(summary Summary) SummaryDTO {
	subjects := make([]SubjectStatsDTO, 0, len(summary.Subjects))
	for _, s := range summary.Subjects {
		subjects = append(subjects, SubjectStatsDTO{
			Subject:      s.Subject,
			Sessions:     s.Sessions,
			StudyMinutes: int(s.StudyTime.Minutes()),
			Completed:    s.Completed,
		})
	}
	days := make([]DailyStatsDTO, 0, len(summary.Days))
	for _, d := range summary.Days {
		days = append(days, DailyStatsDTO{
			Day:          d.Day,
			Sessions:     d.Sessions,
			StudyMinutes: int(d.StudyTime.Minutes()),
			BreakMinutes: int(d.BreakTime.Minutes()),
		})
	}
	return SummaryDTO{
		Subjects:          subjects,
		Days:              days,
		TotalSessions:     summary.TotalSessions,
		CompletedSessions: summary.CompletedSessions,
		DroppedSessions:   summary.DroppedSessions,
		StudyMinutes:      int(summary.StudyTime.Minutes()),
		BreakMinutes:      int(summary.BreakTime.Minutes()),
	}
}
