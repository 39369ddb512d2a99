// table_formatters.go
package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/covid_tracker/domain/models"
)

// Diagnostic table dumps for the console, one per pipeline stage. Each
// renders at most n rows so a full WHO dataset does not flood the log.

func GenerateRawTable(records []models.RawRecord, n int) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date_reported", "Country", "New_cases", "Cumulative_cases"})
	for _, r := range headRaw(records, n) {
		t.AppendRow(table.Row{r.DateReported, r.Country, r.NewCases, r.CumulativeCases})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateSeriesTable renders the tail of the cleaned series, mirroring the
// raw head dump so both ends of the data are visible after cleaning.
func GenerateSeriesTable(series []models.CaseRecord, n int) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Country", "New_cases", "Cumulative_cases"})
	start := len(series) - n
	if start < 0 {
		start = 0
	}
	for _, r := range series[start:] {
		t.AppendRow(table.Row{r.Date.Format("2006-01-02"), r.Country, r.NewCases, r.CumulativeCases})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func GenerateGlobalDailyTable(daily []models.GlobalDailyRow, n int) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Total_new_cases", "Rolling_mean"})
	if n > len(daily) {
		n = len(daily)
	}
	for _, r := range daily[:n] {
		t.AppendRow(table.Row{r.Date.Format("2006-01-02"), r.TotalNewCases, fmt.Sprintf("%.2f", r.RollingMean)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func headRaw(records []models.RawRecord, n int) []models.RawRecord {
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}
