package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/covid_tracker/domain/models"
)

func TestCleanGlobalDataSortsAndDeduplicates(t *testing.T) {
	raw := []models.RawRecord{
		{DateReported: "2020-01-02", Country: "A", NewCases: 4, CumulativeCases: 6},
		{DateReported: "2020-01-01", Country: "A", NewCases: 2, CumulativeCases: 2},
		{DateReported: "2020-01-01", Country: "A", NewCases: 2, CumulativeCases: 2}, // exact duplicate
		{DateReported: "not-a-date", Country: "A", NewCases: 9, CumulativeCases: 9},
		{DateReported: "2020-01-01", Country: "B", NewCases: 1, CumulativeCases: 1},
	}

	series := CleanGlobalData(raw)
	require.Len(t, series, 3)

	for i := 1; i < len(series); i++ {
		assert.False(t, series[i].Date.Before(series[i-1].Date), "dates must be non-decreasing")
	}
	seen := map[models.CaseRecord]struct{}{}
	for _, rec := range series {
		_, dup := seen[rec]
		assert.False(t, dup, "no two rows may be identical: %+v", rec)
		seen[rec] = struct{}{}
	}
}

func TestCleanGlobalDataKeepsConflictingReports(t *testing.T) {
	// same (date, country) with different counts is two genuine rows, the
	// source's data-quality gap is preserved rather than resolved here
	raw := []models.RawRecord{
		{DateReported: "2020-01-01", Country: "A", NewCases: 2, CumulativeCases: 2},
		{DateReported: "2020-01-01", Country: "A", NewCases: 5, CumulativeCases: 5},
	}
	series := CleanGlobalData(raw)
	assert.Len(t, series, 2)
}

func TestCleanGlobalDataIdempotent(t *testing.T) {
	raw := []models.RawRecord{
		{DateReported: "2020-01-02", Country: "A", NewCases: 4, CumulativeCases: 6},
		{DateReported: "2020-01-01", Country: "B", NewCases: 1, CumulativeCases: 1},
		{DateReported: "2020-01-01", Country: "A", NewCases: 2, CumulativeCases: 2},
	}
	once := CleanGlobalData(raw)

	recycled := make([]models.RawRecord, len(once))
	for i, rec := range once {
		recycled[i] = models.RawRecord{
			DateReported:    rec.Date.Format("2006-01-02"),
			Country:         rec.Country,
			NewCases:        rec.NewCases,
			CumulativeCases: rec.CumulativeCases,
		}
	}
	twice := CleanGlobalData(recycled)
	assert.Equal(t, once, twice)
}

func TestCleanGlobalDataNegativeCountsPassThrough(t *testing.T) {
	raw := []models.RawRecord{
		{DateReported: "2020-01-01", Country: "A", NewCases: -5, CumulativeCases: 0},
	}
	series := CleanGlobalData(raw)
	require.Len(t, series, 1)
	assert.Equal(t, -5, series[0].NewCases)
}

func TestParseReportDate(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2020-01-01", true},
		{"2020-01-01 15:04:05", true},
		{"2020-01-01T15:04:05Z", true},
		{"01/31/2020", true},
		{"31.01.2020", true},
		{"", false},
		{"yesterday", false},
		{"2020-13-45", false},
	}
	for _, c := range cases {
		_, err := parseReportDate(c.value)
		if c.ok {
			assert.NoError(t, err, c.value)
		} else {
			assert.Error(t, err, c.value)
		}
	}
}
