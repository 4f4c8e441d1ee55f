package subject

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinWeeklyHours = 1
	MaxWeeklyHours = 20
	DefaultColor   = "#667eea"
)

var ErrInvalidSubject = errors.New("invalid subject")

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Subject is a single entry of the subject list. Subjects are identified by their
// position in the list; Id is only used to address updates and removals, so two
// subjects with the same name are distinct.
type Subject struct {
	Id          string
	Name        string
	WeeklyHours int
	// Difficulty, ExamDate and Notes are recorded but do not affect how sessions
	// are allocated.
	Difficulty Difficulty
	Color      string
	// ExamDate is empty or a date in YYYY-MM-DD form.
	ExamDate string
	Notes    string
}

// Validate checks the ranges the subject entry form enforces.
func (s Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSubject)
	}
	if s.WeeklyHours < MinWeeklyHours || s.WeeklyHours > MaxWeeklyHours {
		return fmt.Errorf("%w: weekly hours must be between %d and %d", ErrInvalidSubject, MinWeeklyHours, MaxWeeklyHours)
	}
	if !s.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSubject, s.Difficulty)
	}
	if s.ExamDate != "" {
		if _, err := time.Parse(time.DateOnly, s.ExamDate); err != nil {
			return fmt.Errorf("%w: exam date must be YYYY-MM-DD", ErrInvalidSubject)
		}
	}
	return nil
}
