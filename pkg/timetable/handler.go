package timetable

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
)

type PreferencesDTO struct {
	DailyHours     int `json:"dailyHours"`
	SessionMinutes int `json:"sessionDuration"`
	BreakMinutes   int `json:"breakDuration"`
}

type SlotDTO struct {
	Subject         string   `json:"subject"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	Kind            SlotKind `json:"kind"`
	DurationMinutes int      `json:"durationMinutes"`
	Completed       bool     `json:"completed"`
}

type PlanDTO struct {
	Days        map[string][]SlotDTO `json:"days"`
	Preferences PreferencesDTO       `json:"preferences"`
	GeneratedAt string               `json:"generatedAt"`
	Stale       bool                 `json:"stale"`
}

type Handler struct {
	service  Service
	clock    ClockStyle
	defaults Preferences
}

func NewHandler(service Service, clock ClockStyle, defaults Preferences) *Handler {
	return &Handler{service: service, clock: clock, defaults: defaults}
}

// Generate godoc
// @Summary Generate the weekly timetable
// @Description Builds a new timetable from the session's subjects. Omitted preferences fall back to the configured defaults.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param preferences body PreferencesDTO false "Preferences"
// @Success 200 {object} PlanDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid preferences"
// @Router /api/timetable/generate [post]
// @Security XSessionId
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var dto PreferencesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	prefs := h.withDefaults(dto)
	log.Tracef("generating timetable with %+v", prefs)

	plan, err := h.service.Generate(r.Context(), prefs)
	if err != nil {
		if errors.Is(err, ErrInvalidPreferences) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid preferences", err.Error())
			return
		}
		log.Errorf("failed to generate timetable: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, PlanToDTO(plan, h.clock))
}

// GetTimetable godoc
// @Summary Get the current timetable
// @Tags Timetable
// @Produce json
// @Success 200 {object} PlanDTO
// @Failure 404 {object} rest.ErrorResponse "No timetable generated"
// @Router /api/timetable [get]
// @Security XSessionId
func (h *Handler) GetTimetable(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.currentPlan(w, r)
	if !ok {
		return
	}
	rest.WriteJSON(w, http.StatusOK, PlanToDTO(plan, h.clock))
}

// GetTimetableText godoc
// @Summary Get the current timetable as text
// @Tags Timetable
// @Produce plain
// @Success 200 {string} string
// @Failure 404 {object} rest.ErrorResponse "No timetable generated"
// @Router /api/timetable/text [get]
// @Security XSessionId
func (h *Handler) GetTimetableText(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.currentPlan(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, NewTextRenderer(h.clock).Render(plan.Timetable)); err != nil {
		log.Errorf("failed to write timetable text: %v", err)
	}
}

// SetCompleted godoc
// @Summary Mark a study slot as completed
// @Tags Timetable
// @Accept json
// @Produce json
// @Param day path int true "Day index, 0 is Monday"
// @Param index path int true "Slot index within the day"
// @Param body body object{completed=bool} true "Completion"
// @Success 200 {object} PlanDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 404 {object} rest.ErrorResponse "Slot not found"
// @Router /api/timetable/day/{day}/slot/{index} [put]
// @Security XSessionId
func (h *Handler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid day format", "Parameter day must be a number")
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid index format", "Parameter index must be a number")
		return
	}
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	plan, err := h.service.SetCompleted(r.Context(), SlotRef{Day: day, Index: index}, body.Completed)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoTimetable):
			rest.WriteError(w, http.StatusNotFound, "No timetable generated", "")
		case errors.Is(err, ErrSlotNotFound):
			rest.WriteError(w, http.StatusNotFound, "Slot not found", "")
		case errors.Is(err, ErrNotStudySlot):
			rest.WriteError(w, http.StatusBadRequest, "Only study slots can be completed", "")
		default:
			log.Errorf("failed to update slot: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rest.WriteJSON(w, http.StatusOK, PlanToDTO(plan, h.clock))
}

func (h *Handler) currentPlan(w http.ResponseWriter, r *http.Request) (Plan, bool) {
	plan, err := h.service.Current(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoTimetable) {
			rest.WriteError(w, http.StatusNotFound, "No timetable generated", "")
			return Plan{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return Plan{}, false
	}
	return plan, true
}

func (h *Handler) withDefaults(dto PreferencesDTO) Preferences {
	prefs := Preferences{
		DailyHours:     dto.DailyHours,
		SessionMinutes: dto.SessionMinutes,
		BreakMinutes:   dto.BreakMinutes,
	}
	if prefs.DailyHours == 0 {
		prefs.DailyHours = h.defaults.DailyHours
	}
	if prefs.SessionMinutes == 0 {
		prefs.SessionMinutes = h.defaults.SessionMinutes
	}
	if prefs.BreakMinutes == 0 {
		prefs.BreakMinutes = h.defaults.BreakMinutes
	}
	return prefs
}

func PlanToDTO(plan Plan, clock ClockStyle) PlanDTO {
	days := make(map[string][]SlotDTO, DaysPerWeek)
	for day, slots := range plan.Timetable {
		dtos := make([]SlotDTO, 0, len(slots))
		for idx, slot := range slots {
			dtos = append(dtos, SlotDTO{
				Subject:         slot.Subject,
				Start:           clock.Format(slot.Start),
				End:             clock.Format(slot.End),
				Kind:            slot.Kind,
				DurationMinutes: int(slot.Duration().Minutes()),
				Completed:       plan.IsCompleted(SlotRef{Day: day, Index: idx}),
			})
		}
		days[strconv.Itoa(day)] = dtos
	}
	return PlanDTO{
		Days: days,
		Preferences: PreferencesDTO{
			DailyHours:     plan.Preferences.DailyHours,
			SessionMinutes: plan.Preferences.SessionMinutes,
			BreakMinutes:   plan.Preferences.BreakMinutes,
		},
		GeneratedAt: plan.GeneratedAt.Format(time.RFC3339),
		Stale:       plan.Stale,
	}
}
