package stats

import "time"

type SubjectStats struct {
	Subject   string
	Sessions  int
	StudyTime time.Duration
	Completed int
}

type DailyStats struct {
	Day       string
	Sessions  int
	StudyTime time.Duration
	BreakTime time.Duration
}

// Summary describes one generated week.
type Summary struct {
	// Subjects is grouped by name and sorted by it. Timetable slots only carry
	// the subject name, so two subjects sharing a name share one entry.
	Subjects          []SubjectStats
	Days              []DailyStats
	TotalSessions     int
	CompletedSessions int
	// DroppedSessions counts requested sessions the week had no room for.
	DroppedSessions int
	StudyTime       time.Duration
	BreakTime       time.Duration
}
