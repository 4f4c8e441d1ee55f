package timetable

import (
	"context"
	"errors"

	"github.com/studymate/studymate/pkg/subject"
)

var ErrNoTimetable = errors.New("no timetable generated")

// Repository keeps the plan of the current session.
type Repository interface {
	// GetPlan returns ErrNoTimetable when nothing was generated yet.
	GetPlan(ctx context.Context) (Plan, error)
	StorePlan(ctx context.Context, plan Plan) error
	// UpdatePlan applies fn to the stored plan and stores the result unless fn fails.
	UpdatePlan(ctx context.Context, fn func(plan *Plan) error) (Plan, error)
}

type SubjectReader interface {
	List(ctx context.Context) ([]subject.Subject, error)
}
