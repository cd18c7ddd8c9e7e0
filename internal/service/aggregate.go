package service

import (
	"time"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

const bucketLabelLayout = "2006-01-02"

// BucketLabel returns the right-labeled calendar bucket containing ts:
// the date itself for day, the Sunday ending the week, the last day of the
// month, Dec 31 of the year. Labels are dates formatted 2006-01-02, so
// lexicographic order is chronological.
func BucketLabel(ts time.Time, period Period) string {
	var end time.Time
	switch period {
	case PeriodWeek:
		offset := (7 - int(ts.Weekday())) % 7
		end = ts.AddDate(0, 0, offset)
	case PeriodMonth:
		end = time.Date(ts.Year(), ts.Month()+1, 0, 0, 0, 0, 0, ts.Location())
	case PeriodYear:
		end = time.Date(ts.Year(), 12, 31, 0, 0, 0, 0, ts.Location())
	default:
		end = ts
	}
	return end.Format(bucketLabelLayout)
}

// meanAccumulator tracks a running sum without deciding up front whether
// any value will arrive; mean() keeps nil as the no-data sentinel.
type meanAccumulator struct {
	sum   float64
	count int
}

func (a *meanAccumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *meanAccumulator) mean() *float64 {
	if a.count == 0 {
		return nil
	}
	m := a.sum / float64(a.count)
	return &m
}

// Summarize computes the headline metrics over a dataset. Sessions are
// counted distinct over non-empty ids. Ratings split by sign: zero and
// absent ratings belong to neither the positive nor the negative subset,
// but zero does count toward the combined mean. Empty subsets yield nil
// means, never zero.
func Summarize(dataset models.Dataset) Summary {
	sessions := make(map[string]struct{})
	var positive, negative, combined meanAccumulator

	for _, row := range dataset {
		if row.SessionID != "" {
			sessions[row.SessionID] = struct{}{}
		}
		if row.Rating == nil {
			continue
		}
		r := *row.Rating
		combined.add(r)
		switch {
		case r > 0:
			positive.add(r)
		case r < 0:
			negative.add(r)
		}
	}

	return Summary{
		TotalUniqueSessions: len(sessions),
		PositiveMean:        positive.mean(),
		NegativeMean:        negative.mean(),
		CombinedMean:        combined.mean(),
	}
}

// GroupByPeriod partitions rows into the calendar buckets containing their
// timestamps and aggregates each bucket. Rows without a timestamp are
// skipped; buckets with no rows are not emitted.
func GroupByPeriod(dataset models.Dataset, period Period) map[string]PeriodStats {
	sessions := make(map[string]map[string]struct{})
	means := make(map[string]*meanAccumulator)

	for _, row := range dataset {
		if row.Timestamp == nil {
			continue
		}
		label := BucketLabel(*row.Timestamp, period)
		if _, ok := sessions[label]; !ok {
			sessions[label] = make(map[string]struct{})
			means[label] = &meanAccumulator{}
		}
		if row.SessionID != "" {
			sessions[label][row.SessionID] = struct{}{}
		}
		if row.Rating != nil {
			means[label].add(*row.Rating)
		}
	}

	grouped := make(map[string]PeriodStats, len(sessions))
	for label, ids := range sessions {
		grouped[label] = PeriodStats{
			UniqueSessions: len(ids),
			MeanRating:     means[label].mean(),
		}
	}
	return grouped
}

// GroupByPeriodIndicator groups by the pair (bucket, indicator) and
// aggregates unique sessions plus sign-split rating means per group. Rows
// without an indicator are excluded from this output only.
func GroupByPeriodIndicator(dataset models.Dataset, period Period) map[IndicatorKey]IndicatorStats {
	type group struct {
		sessions map[string]struct{}
		positive meanAccumulator
		negative meanAccumulator
	}
	groups := make(map[IndicatorKey]*group)

	for _, row := range dataset {
		if row.Timestamp == nil || row.Indicator == "" {
			continue
		}
		key := IndicatorKey{
			Period:    BucketLabel(*row.Timestamp, period),
			Indicator: row.Indicator,
		}
		g, ok := groups[key]
		if !ok {
			g = &group{sessions: make(map[string]struct{})}
			groups[key] = g
		}
		if row.SessionID != "" {
			g.sessions[row.SessionID] = struct{}{}
		}
		if row.Rating != nil {
			switch {
			case *row.Rating > 0:
				g.positive.add(*row.Rating)
			case *row.Rating < 0:
				g.negative.add(*row.Rating)
			}
		}
	}

	grouped := make(map[IndicatorKey]IndicatorStats, len(groups))
	for key, g := range groups {
		grouped[key] = IndicatorStats{
			UniqueSessions: len(g.sessions),
			PositiveMean:   g.positive.mean(),
			NegativeMean:   g.negative.mean(),
		}
	}
	return grouped
}
