package session

import (
	"slices"

	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
	"github.com/studymate/studymate/pkg/user"
)

// State is everything one interactive session remembers between requests.
type State struct {
	LoggedIn bool
	User     user.User
	Subjects []subject.Subject
	// Plan is nil until a timetable was generated.
	Plan *timetable.Plan
}

// NewState returns the state of a fresh session: logged out, no user, no
// subjects and no timetable.
func NewState() State {
	return State{
		LoggedIn: false,
		User:     user.User{},
		Subjects: []subject.Subject{},
		Plan:     nil,
	}
}

func (s State) clone() State {
	s.Subjects = slices.Clone(s.Subjects)
	if s.Subjects == nil {
		s.Subjects = []subject.Subject{}
	}
	if s.Plan != nil {
		plan := copyPlan(*s.Plan)
		s.Plan = &plan
	}
	return s
}
