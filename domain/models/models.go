package models

import "time"

// Metric names a numeric column of the case table that aggregations can run over.
type Metric string

const (
	MetricNewCases        Metric = "new_cases"
	MetricCumulativeCases Metric = "cumulative_cases"
)

// Known reports whether the metric is one of the recognized case columns.
func (m Metric) Known() bool {
	return m == MetricNewCases || m == MetricCumulativeCases
}

// RawRecord is one row of the source CSV as loaded, before any validation.
// DateReported stays a string because the source may ship malformed dates.
type RawRecord struct {
	DateReported    string
	Country         string
	NewCases        int
	CumulativeCases int
}

// CaseRecord is a cleaned row with a parsed report date.
type CaseRecord struct {
	Date            time.Time
	Country         string
	NewCases        int
	CumulativeCases int
}

// GlobalDailyRow is one date of the worldwide totals table.
type GlobalDailyRow struct {
	Date          time.Time
	TotalNewCases int
	RollingMean   float64
}

// CountryRollingRow is one (date, country) point of the per-country
// rolling average table.
type CountryRollingRow struct {
	Date        time.Time
	Country     string
	Value       int
	RollingMean float64
}
