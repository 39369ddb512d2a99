// cleaner.go
package main

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pivolan/covid_tracker/domain/models"
)

// candidate layouts for the report date, most common first
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"02.01.2006",
}

func parseReportDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// CleanGlobalData parses dates, drops rows whose date cannot be parsed,
// sorts ascending by date and removes rows that repeat in every field.
// Rows sharing (date, country) but differing in case counts are both kept,
// and negative or zero counts pass through untouched.
func CleanGlobalData(raw []models.RawRecord) []models.CaseRecord {
	parsed := make([]models.CaseRecord, 0, len(raw))
	for _, r := range raw {
		date, err := parseReportDate(r.DateReported)
		if err != nil {
			continue
		}
		parsed = append(parsed, models.CaseRecord{
			Date:            date,
			Country:         r.Country,
			NewCases:        r.NewCases,
			CumulativeCases: r.CumulativeCases,
		})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Date.Before(parsed[j].Date)
	})

	seen := make(map[models.CaseRecord]struct{}, len(parsed))
	series := parsed[:0]
	for _, rec := range parsed {
		if _, ok := seen[rec]; ok {
			continue
		}
		seen[rec] = struct{}{}
		series = append(series, rec)
	}

	log.Printf("After cleaning: %d rows (%d dropped)", len(series), len(raw)-len(series))
	return series
}
