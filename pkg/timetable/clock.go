package timetable

import (
	"fmt"
	"strings"
)

// ClockTime is a point of the day in minutes since midnight.
type ClockTime int

func (c ClockTime) String() string {
	return LiteralClock.Format(c)
}

type ClockStyle int

const (
	// LiteralClock keeps hour 0 as "0" and lets hours past midnight keep growing,
	// so 0 is "0:00 AM" and 1500 is "13:00 PM".
	LiteralClock ClockStyle = iota
	// ConventionalClock wraps at midnight and shows hour 0 as 12.
	ConventionalClock
)

// ParseClockStyle accepts "literal" and "conventional". An empty name is literal.
func ParseClockStyle(name string) (ClockStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "literal":
		return LiteralClock, nil
	case "conventional":
		return ConventionalClock, nil
	}
	return LiteralClock, fmt.Errorf("unknown clock style %q", name)
}

func (s ClockStyle) String() string {
	if s == ConventionalClock {
		return "conventional"
	}
	return "literal"
}

// Format renders minutes since midnight as "H:MM AM" or "H:MM PM".
func (s ClockStyle) Format(c ClockTime) string {
	minutes := int(c)
	if s == ConventionalClock {
		minutes = ((minutes % 1440) + 1440) % 1440
	}
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if s == ConventionalClock && hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}
