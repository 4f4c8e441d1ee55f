package timetable

import (
	"github.com/samber/lo"
	"github.com/studymate/studymate/pkg/subject"
)

// ExpandSessions turns every subject's weekly hours into one token per full
// session, floor(hours*60/sessionMinutes) of them. Tokens keep the subject
// order and each subject's tokens are contiguous.
func ExpandSessions(subjects []subject.Subject, sessionMinutes int) []string {
	if sessionMinutes <= 0 {
		return []string{}
	}
	tokens := make([]string, 0)
	for _, s := range subjects {
		count := s.WeeklyHours * 60 / sessionMinutes
		if count <= 0 {
			continue
		}
		tokens = append(tokens, lo.Times(count, func(int) string { return s.Name })...)
	}
	return tokens
}
