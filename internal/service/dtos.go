package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Role of an authenticated dashboard user. Anything the permission list
// stores other than "admin" maps to RoleUser.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the authenticated caller for one request. It is resolved from
// the permission store per call and passed explicitly through the pipeline;
// there is no session-scoped identity state.
type Identity struct {
	Email string
	Role  Role
}

// Period selects the calendar bucketing for rollups.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a raw period string.
func ParsePeriod(raw string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(raw))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodYear:
		return PeriodYear, nil
	default:
		return "", fmt.Errorf("unknown period %q", raw)
	}
}

// FilterCriteria narrows a dataset by timestamp window and facet
// allow-lists. Start and End are inclusive instants. An empty facet slice
// imposes no constraint. Criteria are built fresh per request.
type FilterCriteria struct {
	Start      time.Time
	End        time.Time
	Indicators []string
	Emails     []string
}

// Summary holds the headline metrics for a filtered dataset. Means are
// unrounded; a nil mean is the no-data sentinel, never zero. Round2 applies
// the presentation rounding.
type Summary struct {
	TotalUniqueSessions int
	PositiveMean        *float64
	NegativeMean        *float64
	CombinedMean        *float64
}

// PeriodStats is the per-bucket aggregate of a period rollup.
type PeriodStats struct {
	UniqueSessions int
	MeanRating     *float64
}

// PeriodBucket is a rollup entry with its bucket label, sorted for display.
type PeriodBucket struct {
	Period         string
	UniqueSessions int
	MeanRating     *float64
}

// IndicatorKey identifies one (bucket, indicator) group.
type IndicatorKey struct {
	Period    string
	Indicator string
}

// IndicatorStats is the per-(bucket, indicator) aggregate.
type IndicatorStats struct {
	UniqueSessions int
	PositiveMean   *float64
	NegativeMean   *float64
}

// IndicatorBucket is a breakdown entry with its keys, sorted for display.
type IndicatorBucket struct {
	Period         string
	Indicator      string
	UniqueSessions int
	PositiveMean   *float64
	NegativeMean   *float64
}

// Round2 rounds to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
