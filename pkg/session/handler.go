package session

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
)

type SessionDTO struct {
	Id string `json:"sessionId"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// CreateSession godoc
// @Summary Start a session
// @Description Returns the id to send as X-Session-Id with every other request
// @Tags Session
// @Produce json
// @Success 201 {object} SessionDTO
// @Router /api/session [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.store.Create()
	log.Debugf("session created: %s (%d live)", id, h.store.Len())
	rest.WriteJSON(w, http.StatusCreated, SessionDTO{Id: id})
}

// DeleteSession godoc
// @Summary End the current session
// @Tags Session
// @Success 204
// @Router /api/session [delete]
// @Security XSessionId
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := CurrentId(r.Context())
	if err != nil {
		rest.WriteError(w, http.StatusForbidden, "Session required", "")
		return
	}
	h.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}
