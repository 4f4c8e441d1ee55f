package timetable

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	DaysPerWeek = 7
	// AnchorTime is the start of every day's first slot, 9:00 AM.
	AnchorTime ClockTime = 9 * 60
	BreakLabel           = "Break"

	MinDailyHours = 1
	MaxDailyHours = 12
)

var (
	SessionMinuteOptions = []int{25, 45, 60}
	BreakMinuteOptions   = []int{5, 10, 15}
	WeekdayNames         = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

var ErrInvalidPreferences = errors.New("invalid preferences")

type SlotKind string

const (
	Study SlotKind = "study"
	Break SlotKind = "break"
)

// Slot is one study or break block of a day. Slots are never modified after the
// packer created them.
type Slot struct {
	Subject string
	Start   ClockTime
	End     ClockTime
	Kind    SlotKind
}

func (s Slot) Duration() time.Duration {
	return time.Duration(s.End-s.Start) * time.Minute
}

// Timetable holds the slots of each day, Monday first. Days without sessions are
// empty, never missing.
type Timetable [DaysPerWeek][]Slot

// EmptyTimetable returns a timetable whose seven days have no slots.
func EmptyTimetable() Timetable {
	var t Timetable
	for day := range t {
		t[day] = []Slot{}
	}
	return t
}

// Slots returns all slots of the week in day order.
func (t Timetable) Slots() []Slot {
	var all []Slot
	for _, day := range t {
		all = append(all, day...)
	}
	return all
}

type Preferences struct {
	DailyHours     int
	SessionMinutes int
	BreakMinutes   int
}

// SessionsPerDay is the number of study/break pairs that fit into one day.
func (p Preferences) SessionsPerDay() int {
	pair := p.SessionMinutes + p.BreakMinutes
	if pair <= 0 {
		return 0
	}
	return p.DailyHours * 60 / pair
}

// Validate checks the ranges the preferences form offers. The generator itself
// does not call it.
func (p Preferences) Validate() error {
	if p.DailyHours < MinDailyHours || p.DailyHours > MaxDailyHours {
		return fmt.Errorf("%w: daily hours must be between %d and %d", ErrInvalidPreferences, MinDailyHours, MaxDailyHours)
	}
	if !slices.Contains(SessionMinuteOptions, p.SessionMinutes) {
		return fmt.Errorf("%w: session length must be one of %v minutes", ErrInvalidPreferences, SessionMinuteOptions)
	}
	if !slices.Contains(BreakMinuteOptions, p.BreakMinutes) {
		return fmt.Errorf("%w: break length must be one of %v minutes", ErrInvalidPreferences, BreakMinuteOptions)
	}
	return nil
}

// SlotRef addresses a slot by its day and position within the day.
type SlotRef struct {
	Day   int
	Index int
}

// Plan is a generated timetable together with what it was generated from.
type Plan struct {
	Timetable   Timetable
	Preferences Preferences
	GeneratedAt time.Time
	// SessionTokens is the number of sessions the subjects asked for before packing.
	SessionTokens int
	// Stale is set once the subject list changes after generation.
	Stale     bool
	Completed map[SlotRef]bool
}

func (p Plan) IsCompleted(ref SlotRef) bool {
	return p.Completed[ref]
}

// Placed is the number of study sessions that made it into the timetable.
func (p Plan) Placed() int {
	count := 0
	for _, s := range p.Timetable.Slots() {
		if s.Kind == Study {
			count++
		}
	}
	return count
}

// Dropped is the number of requested sessions the week had no room for.
func (p Plan) Dropped() int {
	return p.SessionTokens - p.Placed()
}
