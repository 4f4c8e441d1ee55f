package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject_Validate(t *testing.T) {
	tests := []struct {
		name    string
		subject Subject
		valid   bool
	}{
		{"valid", Subject{Name: "Math", WeeklyHours: 5, Difficulty: Medium}, true},
		{"lowest hours", Subject{Name: "Math", WeeklyHours: 1, Difficulty: Easy}, true},
		{"highest hours", Subject{Name: "Math", WeeklyHours: 20, Difficulty: Hard}, true},
		{"blank name", Subject{Name: "   ", WeeklyHours: 5, Difficulty: Medium}, false},
		{"zero hours", Subject{Name: "Math", WeeklyHours: 0, Difficulty: Medium}, false},
		{"too many hours", Subject{Name: "Math", WeeklyHours: 21, Difficulty: Medium}, false},
		{"unknown difficulty", Subject{Name: "Math", WeeklyHours: 5, Difficulty: "brutal"}, false},
		{"exam date", Subject{Name: "Math", WeeklyHours: 5, Difficulty: Medium, ExamDate: "2026-06-15"}, true},
		{"malformed exam date", Subject{Name: "Math", WeeklyHours: 5, Difficulty: Medium, ExamDate: "15/06/2026"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.subject.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSubject)
			}
		})
	}
}
