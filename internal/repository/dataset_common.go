package repository

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

// Timestamp layouts observed across the exported worksheets. Values are
// timezone-naive; everything parses into UTC.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02",
}

type columnIndex struct {
	timestamp int
	userEmail int
	sessionID int
	indicator int
	rating    int
}

func mapColumns(header []string) columnIndex {
	idx := columnIndex{timestamp: -1, userEmail: -1, sessionID: -1, indicator: -1, rating: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case models.ColumnTimestamp:
			idx.timestamp = i
		case models.ColumnUserEmail:
			idx.userEmail = i
		case models.ColumnSessionID:
			idx.sessionID = i
		case models.ColumnSessionAlt:
			// Some exports name the session column sess6digit. Session id wins
			// when both are present.
			if idx.sessionID == -1 {
				idx.sessionID = i
			}
		case models.ColumnIndicator:
			idx.indicator = i
		case models.ColumnRating:
			idx.rating = i
		}
	}
	return idx
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isEmptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseTimestamp coerces a raw cell into a UTC time. Unparseable values
// become nil, matching the source behavior of treating bad timestamps as
// missing rather than failing the whole load.
func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}

// parseRating coerces a raw cell into a finite rating. Blank, unparseable
// and non-finite values become nil.
func parseRating(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// recordsToDataset converts a header row plus data records into a Dataset.
// Records that are blank across every field are dropped before the dataset
// is handed to the pipeline.
func recordsToDataset(header []string, records [][]string) models.Dataset {
	idx := mapColumns(header)

	dataset := make(models.Dataset, 0, len(records))
	for _, record := range records {
		if isEmptyRecord(record) {
			continue
		}
		dataset = append(dataset, models.Row{
			Timestamp: parseTimestamp(cell(record, idx.timestamp)),
			UserEmail: cell(record, idx.userEmail),
			SessionID: cell(record, idx.sessionID),
			Indicator: cell(record, idx.indicator),
			Rating:    parseRating(cell(record, idx.rating)),
		})
	}
	return dataset
}
