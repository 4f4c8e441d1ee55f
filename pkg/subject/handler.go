package subject

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
)

type SubjectDTO struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	WeeklyHours int        `json:"hours"`
	Difficulty  Difficulty `json:"difficulty"`
	Color       string     `json:"color,omitempty"`
	ExamDate    string     `json:"examDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListSubjects godoc
// @Summary List subjects
// @Description Subjects of the current session in insertion order
// @Tags Subject
// @Produce json
// @Success 200 {array} SubjectDTO
// @Router /api/subjects [get]
// @Security XSessionId
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		dtos = append(dtos, ToDTO(s))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// AddSubject godoc
// @Summary Add a subject
// @Tags Subject
// @Accept json
// @Produce json
// @Param subject body SubjectDTO true "Subject"
// @Success 201 {object} SubjectDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid subject"
// @Router /api/subjects [post]
// @Security XSessionId
func (h *Handler) AddSubject(w http.ResponseWriter, r *http.Request) {
	var dto SubjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	log.Tracef("adding subject: %+v", dto)

	added, err := h.service.Add(r.Context(), FromDTO(dto))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, ToDTO(added))
}

// UpdateSubject godoc
// @Summary Update a subject
// @Description Only the fields present in the body change
// @Tags Subject
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param subject body SubjectDTO true "Subject"
// @Success 200 {object} SubjectDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid subject"
// @Failure 404 {object} rest.ErrorResponse "Subject not found"
// @Router /api/subjects/{id} [put]
// @Security XSessionId
func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	var dto SubjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dto.Id = mux.Vars(r)["id"]

	updated, err := h.service.Update(r.Context(), FromDTO(dto))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags Subject
// @Param id path string true "Subject ID"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse "Subject not found"
// @Router /api/subjects/{id} [delete]
// @Security XSessionId
func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidSubject):
		rest.WriteError(w, http.StatusBadRequest, "Invalid subject", err.Error())
	case errors.Is(err, ErrSubjectNotFound):
		rest.WriteError(w, http.StatusNotFound, "Subject not found", "")
	default:
		log.Errorf("subject request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ToDTO(s Subject) SubjectDTO {
	return SubjectDTO{
		Id:          s.Id,
		Name:        s.Name,
		WeeklyHours: s.WeeklyHours,
		Difficulty:  s.Difficulty,
		Color:       s.Color,
		ExamDate:    s.ExamDate,
		Notes:       s.Notes,
	}
}

func FromDTO(dto SubjectDTO) Subject {
	return Subject{
		Id:          dto.Id,
		Name:        dto.Name,
		WeeklyHours: dto.WeeklyHours,
		Difficulty:  dto.Difficulty,
		Color:       dto.Color,
		ExamDate:    dto.ExamDate,
		Notes:       dto.Notes,
	}
}
