package user

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
)

type UserDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type credentialsDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary Log in
// @Description Any credentials are accepted
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body object{email=string,password=string} true "Credentials"
// @Success 200 {object} UserDTO
// @Router /api/auth/login [post]
// @Security XSessionId
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	u, err := h.service.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		log.Errorf("login failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(u))
}

// Register godoc
// @Summary Register
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body object{name=string,email=string,password=string} true "Registration"
// @Success 201 {object} UserDTO
// @Router /api/auth/register [post]
// @Security XSessionId
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	u, err := h.service.Register(r.Context(), creds.Name, creds.Email, creds.Password)
	if err != nil {
		log.Errorf("registration failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, ToDTO(u))
}

// Logout godoc
// @Summary Log out and clear the session
// @Tags User
// @Success 204
// @Router /api/auth/logout [post]
// @Security XSessionId
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser godoc
// @Summary Get the logged in user
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 401 {object} rest.ErrorResponse "Not logged in"
// @Router /api/user/current [get]
// @Security XSessionId
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Current(r.Context())
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			rest.WriteError(w, http.StatusUnauthorized, "Not logged in", "")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(u))
}

func ToDTO(u User) UserDTO {
	return UserDTO{Email: u.Email, Name: u.Name}
}
