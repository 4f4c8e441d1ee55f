package timetable

import (
	"fmt"
	"strings"
)

// TextRenderer prints a plan as weekday headers followed by one
// "{start} - {end} | {subject}" line per slot. Empty days keep their header.
type TextRenderer struct {
	clock ClockStyle
}

func NewTextRenderer(clock ClockStyle) *TextRenderer {
	return &TextRenderer{clock: clock}
}

func (r *TextRenderer) Render(timetable Timetable) string {
	var b strings.Builder
	for day, slots := range timetable {
		b.WriteString(WeekdayNames[day])
		b.WriteByte('\n')
		for _, slot := range slots {
			fmt.Fprintf(&b, "%s - %s | %s\n", r.clock.Format(slot.Start), r.clock.Format(slot.End), slot.Subject)
		}
	}
	return b.String()
}
