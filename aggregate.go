// aggregate.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/pivolan/covid_tracker/domain/models"
)

var (
	ErrInvalidWindow = errors.New("invalid rolling window")
	ErrUnknownMetric = errors.New("unknown metric")
)

// rollingMeans computes a trailing mean over the previous `window` values
// inclusive of the current one. Near the start of the series the window
// shrinks to the number of values available, so position 0 is always the
// value itself rather than an undefined point.
func rollingMeans(values []float64, window int) []float64 {
	means := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		means[i] = sum / float64(n)
	}
	return means
}

// ComputeGlobalRolling collapses the country dimension into one total per
// date and attaches the trailing rolling mean of that total. An empty series
// produces an empty table.
func ComputeGlobalRolling(series []models.CaseRecord, window int) ([]models.GlobalDailyRow, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window=%d, must be a positive integer", ErrInvalidWindow, window)
	}

	totals := map[time.Time]int{}
	dates := make([]time.Time, 0)
	for _, rec := range series {
		if _, ok := totals[rec.Date]; !ok {
			dates = append(dates, rec.Date)
		}
		totals[rec.Date] += rec.NewCases
	}

	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i] = float64(totals[d])
	}
	means := rollingMeans(values, window)

	daily := make([]models.GlobalDailyRow, len(dates))
	for i, d := range dates {
		daily[i] = models.GlobalDailyRow{
			Date:          d,
			TotalNewCases: totals[d],
			RollingMean:   means[i],
		}
	}
	return daily, nil
}

func metricValue(rec models.CaseRecord, metric models.Metric) int {
	if metric == models.MetricCumulativeCases {
		return rec.CumulativeCases
	}
	return rec.NewCases
}

// ComputeCountriesRolling filters the series to the requested countries and
// computes the trailing rolling mean of the chosen metric independently per
// country. Countries absent from the data simply contribute no rows. Output
// is grouped by country in first-seen order, each group in date order.
func ComputeCountriesRolling(series []models.CaseRecord, countries []string, metric models.Metric, window int) ([]models.CountryRollingRow, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window=%d, must be a positive integer", ErrInvalidWindow, window)
	}
	if !metric.Known() {
		return nil, fmt.Errorf("%w: %q, want %q or %q", ErrUnknownMetric, metric,
			models.MetricNewCases, models.MetricCumulativeCases)
	}

	requested := make(map[string]bool, len(countries))
	for _, c := range countries {
		requested[c] = true
	}

	groups := map[string][]models.CaseRecord{}
	order := make([]string, 0, len(countries))
	for _, rec := range series {
		if !requested[rec.Country] {
			continue
		}
		if _, ok := groups[rec.Country]; !ok {
			order = append(order, rec.Country)
		}
		groups[rec.Country] = append(groups[rec.Country], rec)
	}

	rows := make([]models.CountryRollingRow, 0, len(series))
	for _, country := range order {
		group := groups[country]
		values := make([]float64, len(group))
		for i, rec := range group {
			values[i] = float64(metricValue(rec, metric))
		}
		means := rollingMeans(values, window)
		for i, rec := range group {
			rows = append(rows, models.CountryRollingRow{
				Date:        rec.Date,
				Country:     country,
				Value:       metricValue(rec, metric),
				RollingMean: means[i],
			})
		}
	}
	return rows, nil
}
