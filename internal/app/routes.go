package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {
	r.HandleFunc("/api/session", deps.SessionHandler.CreateSession).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(requireSession(deps.Sessions))

	// Session
	api.HandleFunc("/session", deps.SessionHandler.DeleteSession).Methods("DELETE")

	// Auth
	api.HandleFunc("/auth/login", deps.UserHandler.Login).Methods("POST")
	api.HandleFunc("/auth/register", deps.UserHandler.Register).Methods("POST")
	api.HandleFunc("/auth/logout", deps.UserHandler.Logout).Methods("POST")
	api.HandleFunc("/user/current", deps.UserHandler.CurrentUser).Methods("GET")

	protected := api.NewRoute().Subrouter()
	protected.Use(requireLogin(deps.UserService))

	// Subjects
	protected.HandleFunc("/subjects", deps.SubjectHandler.ListSubjects).Methods("GET")
	protected.HandleFunc("/subjects", deps.SubjectHandler.AddSubject).Methods("POST")
	protected.HandleFunc("/subjects/{id}", deps.SubjectHandler.UpdateSubject).Methods("PUT")
	protected.HandleFunc("/subjects/{id}", deps.SubjectHandler.DeleteSubject).Methods("DELETE")

	// Timetable
	protected.HandleFunc("/timetable/generate", deps.TimetableHandler.Generate).Methods("POST")
	protected.HandleFunc("/timetable", deps.TimetableHandler.GetTimetable).Methods("GET")
	protected.HandleFunc("/timetable/text", deps.TimetableHandler.GetTimetableText).Methods("GET")
	protected.HandleFunc("/timetable/day/{day:[0-9]+}/slot/{index:[0-9]+}", deps.TimetableHandler.SetCompleted).Methods("PUT")

	// Stats
	protected.HandleFunc("/stats", deps.StatsHandler.GetStats).Methods("GET")
	protected.HandleFunc("/stats/csv", deps.StatsHandler.GetStatsCsv).Methods("GET")

	// Export
	protected.HandleFunc("/export/csv", deps.ExportHandler.ExportCsv).Methods("GET")
	protected.HandleFunc("/export/json", deps.ExportHandler.ExportJson).Methods("GET")
}
