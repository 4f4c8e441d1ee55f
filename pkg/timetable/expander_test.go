package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studymate/studymate/pkg/subject"
)

func TestExpandSessions(t *testing.T) {
	t.Run("one token per full session, in subject order", func(t *testing.T) {
		subjects := []subject.Subject{
			{Name: "Math", WeeklyHours: 2, Difficulty: subject.Easy},
			{Name: "Physics", WeeklyHours: 1, Difficulty: subject.Hard},
		}

		tokens := ExpandSessions(subjects, 45)

		// 120/45 = 2, 60/45 = 1
		assert.Equal(t, []string{"Math", "Math", "Physics"}, tokens)
	})

	t.Run("subject shorter than a session contributes nothing", func(t *testing.T) {
		subjects := []subject.Subject{{Name: "Art", WeeklyHours: 1}}

		tokens := ExpandSessions(subjects, 60)
		assert.Equal(t, []string{"Art"}, tokens)

		tokens = ExpandSessions([]subject.Subject{{Name: "Art", WeeklyHours: 0}}, 25)
		assert.Empty(t, tokens)
	})

	t.Run("duplicate names are separate entries", func(t *testing.T) {
		subjects := []subject.Subject{
			{Name: "Math", WeeklyHours: 1},
			{Name: "Math", WeeklyHours: 1},
		}

		tokens := ExpandSessions(subjects, 25)

		// 60/25 = 2 each
		assert.Len(t, tokens, 4)
	})

	t.Run("difficulty does not change the count", func(t *testing.T) {
		easy := ExpandSessions([]subject.Subject{{Name: "A", WeeklyHours: 3, Difficulty: subject.Easy}}, 25)
		hard := ExpandSessions([]subject.Subject{{Name: "A", WeeklyHours: 3, Difficulty: subject.Hard}}, 25)
		assert.Equal(t, easy, hard)
		assert.Len(t, easy, 7)
	})

	t.Run("no subjects", func(t *testing.T) {
		assert.Empty(t, ExpandSessions(nil, 45))
	})
}
