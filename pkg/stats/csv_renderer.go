package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderSummary writes one row per subject followed by a total row.
func (r *CsvRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := make([][]string, 0, len(summary.Subjects)+2)
	data = append(data, []string{"Subject", "Sessions", "Study time", "Completed"})
	for _, s := range summary.Subjects {
		data = append(data, []string{s.Subject, strconv.Itoa(s.Sessions), durationToString(s.StudyTime), strconv.Itoa(s.Completed)})
	}
	data = append(data, []string{"Total", strconv.Itoa(summary.TotalSessions), durationToString(summary.StudyTime), strconv.Itoa(summary.CompletedSessions)})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.WriteAll(data); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}
	return b.String(), nil
}

// durationToString formats d as HH:MM:SS.
func durationToString(d time.Duration) string {
	total := int(d.Seconds())
	return pad(total/3600) + ":" + pad(total/60%60) + ":" + pad(total%60)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
