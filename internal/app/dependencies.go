package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/config"
	"github.com/studymate/studymate/internal/event_bus"
	"github.com/studymate/studymate/internal/utils"
	"github.com/studymate/studymate/pkg/export"
	"github.com/studymate/studymate/pkg/session"
	"github.com/studymate/studymate/pkg/stats"
	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
	"github.com/studymate/studymate/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	Sessions       *session.Store
	SessionHandler *session.Handler

	UserService user.Service
	UserHandler *user.Handler

	SubjectService subject.Service
	SubjectHandler *subject.Handler

	Generator        *timetable.Generator
	TimetableService timetable.Service
	TimetableHandler *timetable.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler

	ExportHandler *export.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application, clock utils.Clock) (*Dependencies, error) {
	clockStyle, err := timetable.ParseClockStyle(cfg.Clock.Style)
	if err != nil {
		return nil, err
	}
	defaults := timetable.Preferences{
		DailyHours:     cfg.Defaults.DailyHours,
		SessionMinutes: cfg.Defaults.SessionMinutes,
		BreakMinutes:   cfg.Defaults.BreakMinutes,
	}

	deps := &Dependencies{}
	deps.Clock = clock
	deps.EventBus = event_bus.NewEventBus()

	deps.Sessions = session.NewStore()
	deps.SessionHandler = session.NewHandler(deps.Sessions)

	deps.UserService = user.NewService(session.NewUserRepository(deps.Sessions))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SubjectService = subject.NewService(session.NewSubjectRepository(deps.Sessions), deps.EventBus)
	deps.SubjectHandler = subject.NewHandler(deps.SubjectService)

	if cfg.Schedule.Seed != 0 {
		log.Infof("Using seeded timetable generator (seed %d)", cfg.Schedule.Seed)
		deps.Generator = timetable.NewSeededGenerator(cfg.Schedule.Seed)
	} else {
		deps.Generator = timetable.NewGenerator()
	}
	deps.TimetableService = timetable.NewService(
		session.NewTimetableRepository(deps.Sessions),
		deps.SubjectService,
		deps.Generator,
		deps.Clock,
		deps.EventBus,
	)
	deps.TimetableHandler = timetable.NewHandler(deps.TimetableService, clockStyle, defaults)

	deps.StatsService = stats.NewService(deps.TimetableService)
	deps.StatsHandler = stats.NewHandler(deps.StatsService, stats.NewCsvRenderer())

	deps.ExportHandler = export.NewHandler(deps.UserService, deps.SubjectService, deps.TimetableService, clockStyle, deps.Clock)

	return deps, nil
}
