package models

import "time"

// Source column names as they appear in the check-in and rating worksheets.
// The loaders match on these; the pipeline itself never touches raw columns.
const (
	ColumnTimestamp  = "Timestamp"
	ColumnUserEmail  = "User email"
	ColumnSessionID  = "Session id"
	ColumnSessionAlt = "sess6digit"
	ColumnIndicator  = "Indicator"
	ColumnRating     = "Rating"
)

// Row is one observation from a source worksheet. Absent values are
// modeled explicitly: a nil Timestamp or Rating and an empty SessionID or
// Indicator mean the cell was blank or unparseable, not zero.
type Row struct {
	Timestamp *time.Time
	UserEmail string
	SessionID string
	Indicator string
	Rating    *float64
}

// Dataset is an ordered sequence of rows. Order is preserved for display;
// duplicate sessions and timestamps are expected and meaningful.
type Dataset []Row

// Permission is one entry of the dashboard access list.
type Permission struct {
	Email string
	Role  string
}
