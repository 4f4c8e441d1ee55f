package export

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
	"github.com/studymate/studymate/internal/utils"
	"github.com/studymate/studymate/pkg/stats"
	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
	"github.com/studymate/studymate/pkg/user"
)

type UserProvider interface {
	Current(ctx context.Context) (user.User, error)
}

type SubjectLister interface {
	List(ctx context.Context) ([]subject.Subject, error)
}

type PlanReader interface {
	Current(ctx context.Context) (timetable.Plan, error)
}

// ExportDTO is the JSON export document. Timetable and Stats are null when no
// timetable was generated yet.
type ExportDTO struct {
	User       user.UserDTO         `json:"user"`
	Subjects   []subject.SubjectDTO `json:"subjects"`
	Timetable  *timetable.PlanDTO   `json:"timetable"`
	Stats      *stats.SummaryDTO    `json:"stats"`
	ExportedAt string               `json:"exportedAt"`
}

type Handler struct {
	users    UserProvider
	subjects SubjectLister
	plans    PlanReader
	csv      *timetable.CsvRenderer
	clock    timetable.ClockStyle
	now      utils.Clock
}

func NewHandler(users UserProvider, subjects SubjectLister, plans PlanReader, clock timetable.ClockStyle, now utils.Clock) *Handler {
	return &Handler{
		users:    users,
		subjects: subjects,
		plans:    plans,
		csv:      timetable.NewCsvRenderer(clock),
		clock:    clock,
		now:      now,
	}
}

// ExportCsv godoc
// @Summary Export the timetable as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {string} string
// @Failure 404 {object} rest.ErrorResponse "No timetable generated"
// @Router /api/export/csv [get]
// @Security XSessionId
func (h *Handler) ExportCsv(w http.ResponseWriter, r *http.Request) {
	plan, err := h.plans.Current(r.Context())
	if err != nil {
		if errors.Is(err, timetable.ErrNoTimetable) {
			rest.WriteError(w, http.StatusNotFound, "No timetable generated", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body, err := h.csv.Render(plan)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=timetable.csv")
	if _, err := io.WriteString(w, body); err != nil {
		log.Errorf("failed to write csv export: %v", err)
	}
}

// ExportJson godoc
// @Summary Export user, subjects, timetable and stats as JSON
// @Tags Export
// @Produce json
// @Success 200 {object} ExportDTO
// @Router /api/export/json [get]
// @Security XSessionId
func (h *Handler) ExportJson(w http.ResponseWriter, r *http.Request) {
	doc, err := h.buildExport(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNotLoggedIn) {
			rest.WriteError(w, http.StatusUnauthorized, "Not logged in", "")
			return
		}
		log.Errorf("failed to build export: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=studymate.json")
	rest.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) buildExport(ctx context.Context) (ExportDTO, error) {
	u, err := h.users.Current(ctx)
	if err != nil {
		return ExportDTO{}, err
	}
	subjects, err := h.subjects.List(ctx)
	if err != nil {
		return ExportDTO{}, err
	}
	doc := ExportDTO{
		User:       user.ToDTO(u),
		Subjects:   make([]subject.SubjectDTO, 0, len(subjects)),
		ExportedAt: h.now.Now().UTC().Format(time.RFC3339),
	}
	for _, s := range subjects {
		doc.Subjects = append(doc.Subjects, subject.ToDTO(s))
	}

	plan, err := h.plans.Current(ctx)
	switch {
	case err == nil:
		planDTO := timetable.PlanToDTO(plan, h.clock)
		summaryDTO := stats.SummaryToDTO(stats.Summarize(plan))
		doc.Timetable = &planDTO
		doc.Stats = &summaryDTO
	case errors.Is(err, timetable.ErrNoTimetable):
	default:
		return ExportDTO{}, err
	}
	return doc, nil
}
