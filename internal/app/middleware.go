package app

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/rest"
	"github.com/studymate/studymate/pkg/session"
	"github.com/studymate/studymate/pkg/user"
)

const SessionHeader = "X-Session-Id"

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {
	r.Use(requestLogger)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Debugf("%s %s", req.Method, req.URL.Path)
		next.ServeHTTP(w, req)
	})
}

// requireSession propagates the X-Session-Id header into the request context and
// rejects requests of unknown sessions.
func requireSession(store *session.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := req.Header.Get(SessionHeader)
			if id == "" {
				rest.WriteError(w, http.StatusForbidden, "Session required", "Create one with POST /api/session and send it as "+SessionHeader)
				return
			}
			if _, err := store.Get(id); err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					log.Debugf("session not found: %s", id)
					rest.WriteError(w, http.StatusForbidden, "Session not found", "")
					return
				}
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req.WithContext(session.WithId(req.Context(), id)))
		})
	}
}

// requireLogin rejects requests of sessions that are not logged in.
func requireLogin(users user.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if _, err := users.Current(req.Context()); err != nil {
				if errors.Is(err, user.ErrNotLoggedIn) {
					rest.WriteError(w, http.StatusUnauthorized, "Not logged in", "")
					return
				}
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
