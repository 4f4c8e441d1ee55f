package timetable

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var csvHeader = []string{"Day", "Time", "Subject", "Duration (mins)", "Type", "Completed"}

type CsvRenderer struct {
	clock ClockStyle
}

func NewCsvRenderer(clock ClockStyle) *CsvRenderer {
	return &CsvRenderer{clock: clock}
}

// Render writes one row per slot, days in order, under a header row.
func (r *CsvRenderer) Render(plan Plan) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.Write(csvHeader); err != nil {
		return "", err
	}
	for day, slots := range plan.Timetable {
		for idx, slot := range slots {
			completed := "No"
			if plan.IsCompleted(SlotRef{Day: day, Index: idx}) {
				completed = "Yes"
			}
			row := []string{
				WeekdayNames[day],
				r.clock.Format(slot.Start) + " - " + r.clock.Format(slot.End),
				slot.Subject,
				strconv.Itoa(int(slot.Duration().Minutes())),
				string(slot.Kind),
				completed,
			}
			if err := writer.Write(row); err != nil {
				log.Errorf("error writing timetable csv: %v", err)
				return "", err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("error writing timetable csv: %v", err)
		return "", err
	}
	return b.String(), nil
}
