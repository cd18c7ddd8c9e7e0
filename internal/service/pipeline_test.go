package service

import (
	"testing"
	"time"

	"github.com/naturecounter/insights-server/internal/repository/models"
	"github.com/stretchr/testify/assert"
)

// Shared builders for the pipeline and aggregation tests.

func tsAt(value string) *time.Time {
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return &ts
}

func ratingOf(v float64) *float64 {
	return &v
}

func row(ts *time.Time, email, session, indicator string, rating *float64) models.Row {
	return models.Row{
		Timestamp: ts,
		UserEmail: email,
		SessionID: session,
		Indicator: indicator,
		Rating:    rating,
	}
}

func TestRestrict(t *testing.T) {
	dataset := models.Dataset{
		row(tsAt("2025-03-01 09:00"), "ana@example.org", "s1", "Joy", ratingOf(3)),
		row(tsAt("2025-03-01 10:00"), "ben@example.org", "s2", "Calm", ratingOf(-1)),
		row(tsAt("2025-03-02 11:00"), "ana@example.org", "s3", "Joy", nil),
	}

	t.Run("admin sees everything unchanged", func(t *testing.T) {
		got := Restrict(dataset, Identity{Email: "root@example.org", Role: RoleAdmin})

		assert.Equal(t, dataset, got)
	})

	t.Run("user sees only exact email matches", func(t *testing.T) {
		got := Restrict(dataset, Identity{Email: "ana@example.org", Role: RoleUser})

		assert.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, "ana@example.org", r.UserEmail)
		}
	})

	t.Run("no case folding against stored emails", func(t *testing.T) {
		stored := models.Dataset{
			row(tsAt("2025-03-01 09:00"), "Ana@Example.org", "s1", "Joy", ratingOf(3)),
		}

		got := Restrict(stored, Identity{Email: "ana@example.org", Role: RoleUser})

		assert.Empty(t, got)
	})

	t.Run("input order preserved", func(t *testing.T) {
		got := Restrict(dataset, Identity{Email: "ana@example.org", Role: RoleUser})

		assert.Equal(t, "s1", got[0].SessionID)
		assert.Equal(t, "s3", got[1].SessionID)
	})
}

func TestNarrow(t *testing.T) {
	dataset := models.Dataset{
		row(tsAt("2025-03-01 00:00"), "ana@example.org", "s1", "Joy", ratingOf(3)),
		row(tsAt("2025-03-01 23:59"), "ana@example.org", "s2", "Calm", ratingOf(2)),
		row(tsAt("2025-03-02 00:00"), "ben@example.org", "s3", "Joy", ratingOf(5)),
		row(tsAt("2025-03-05 12:00"), "ana@example.org", "s4", "Focus", ratingOf(-2)),
		row(nil, "ana@example.org", "s5", "Joy", ratingOf(1)),
	}

	window := func(start, end string) FilterCriteria {
		return FilterCriteria{Start: *tsAt(start), End: *tsAt(end)}
	}

	t.Run("window bounds are inclusive", func(t *testing.T) {
		got := Narrow(dataset, window("2025-03-01 00:00", "2025-03-02 00:00"))

		assert.Len(t, got, 3)
	})

	t.Run("start after end yields empty, not an error", func(t *testing.T) {
		got := Narrow(dataset, window("2025-03-10 00:00", "2025-03-01 00:00"))

		assert.Empty(t, got)
	})

	t.Run("rows without timestamps are excluded", func(t *testing.T) {
		got := Narrow(dataset, window("2025-01-01 00:00", "2025-12-31 23:59"))

		for _, r := range got {
			assert.NotNil(t, r.Timestamp)
		}
		assert.Len(t, got, 4)
	})

	t.Run("indicator facet keeps only listed values", func(t *testing.T) {
		rows := models.Dataset{
			row(tsAt("2025-03-01 09:00"), "ana@example.org", "s1", "Joy", ratingOf(1)),
			row(tsAt("2025-03-01 10:00"), "ana@example.org", "s2", "Joy", ratingOf(2)),
			row(tsAt("2025-03-01 11:00"), "ana@example.org", "s3", "Joy", ratingOf(3)),
			row(tsAt("2025-03-01 12:00"), "ana@example.org", "s4", "Calm", ratingOf(4)),
			row(tsAt("2025-03-01 13:00"), "ana@example.org", "s5", "Focus", ratingOf(5)),
		}

		criteria := window("2025-03-01 00:00", "2025-03-02 00:00")
		criteria.Indicators = []string{"Joy"}

		got := Narrow(rows, criteria)

		assert.Len(t, got, 3)
		for _, r := range got {
			assert.Equal(t, "Joy", r.Indicator)
		}
	})

	t.Run("empty facet list means no filter", func(t *testing.T) {
		criteria := window("2025-03-01 00:00", "2025-03-06 00:00")
		criteria.Indicators = []string{}
		criteria.Emails = nil

		got := Narrow(dataset, criteria)

		assert.Len(t, got, 4)
	})

	t.Run("email facet composes with the window", func(t *testing.T) {
		criteria := window("2025-03-01 00:00", "2025-03-06 00:00")
		criteria.Emails = []string{"ben@example.org"}

		got := Narrow(dataset, criteria)

		assert.Len(t, got, 1)
		assert.Equal(t, "s3", got[0].SessionID)
	})

	t.Run("idempotent", func(t *testing.T) {
		criteria := window("2025-03-01 00:00", "2025-03-02 00:00")
		criteria.Indicators = []string{"Joy", "Calm"}

		once := Narrow(dataset, criteria)
		twice := Narrow(once, criteria)

		assert.Equal(t, once, twice)
	})
}
