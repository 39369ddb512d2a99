package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/covid_tracker/domain/models"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleSeries() []models.CaseRecord {
	return []models.CaseRecord{
		{Date: day(1), Country: "A", NewCases: 2, CumulativeCases: 2},
		{Date: day(1), Country: "B", NewCases: 1, CumulativeCases: 1},
		{Date: day(2), Country: "A", NewCases: 4, CumulativeCases: 6},
		{Date: day(2), Country: "B", NewCases: 3, CumulativeCases: 4},
	}
}

func TestRollingMeansMatchesDefinition(t *testing.T) {
	// mean over the min(window, i+1) most recent points, for every position
	values := []float64{5, 0, 3, 8, 1, 1, 9, 4, 2, 7}
	for _, window := range []int{1, 2, 3, 7, 10, 15} {
		means := rollingMeans(values, window)
		require.Len(t, means, len(values))
		for i := range values {
			start := i - window + 1
			if start < 0 {
				start = 0
			}
			sum := 0.0
			for _, v := range values[start : i+1] {
				sum += v
			}
			expected := sum / float64(i+1-start)
			assert.InDelta(t, expected, means[i], 1e-9, "window=%d i=%d", window, i)
		}
	}
}

func TestRollingMeansFirstPositionIsValueItself(t *testing.T) {
	means := rollingMeans([]float64{42, 10, 20}, 7)
	assert.Equal(t, 42.0, means[0])
}

func TestComputeGlobalRollingScenario(t *testing.T) {
	daily, err := ComputeGlobalRolling(sampleSeries(), 2)
	require.NoError(t, err)
	require.Len(t, daily, 2)

	assert.Equal(t, day(1), daily[0].Date)
	assert.Equal(t, 3, daily[0].TotalNewCases)
	assert.Equal(t, 3.0, daily[0].RollingMean)

	assert.Equal(t, day(2), daily[1].Date)
	assert.Equal(t, 7, daily[1].TotalNewCases)
	assert.Equal(t, 5.0, daily[1].RollingMean)
}

func TestComputeGlobalRollingInvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1, -7} {
		daily, err := ComputeGlobalRolling(sampleSeries(), window)
		assert.ErrorIs(t, err, ErrInvalidWindow, "window=%d", window)
		assert.Nil(t, daily)
	}
}

func TestComputeGlobalRollingEmptyInput(t *testing.T) {
	daily, err := ComputeGlobalRolling(nil, 7)
	require.NoError(t, err)
	assert.Empty(t, daily)
}

func TestComputeCountriesRollingScenario(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"A"}, models.MetricNewCases, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A", rows[0].Country)
	assert.Equal(t, day(1), rows[0].Date)
	assert.Equal(t, 2, rows[0].Value)
	assert.Equal(t, 2.0, rows[0].RollingMean)

	assert.Equal(t, "A", rows[1].Country)
	assert.Equal(t, 3.0, rows[1].RollingMean)
}

func TestComputeCountriesRollingWindowsDoNotLeakBetweenCountries(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"A", "B"}, models.MetricNewCases, 2)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// grouped by country in first-seen order, date order inside each group
	assert.Equal(t, []float64{2, 3}, []float64{rows[0].RollingMean, rows[1].RollingMean})
	assert.Equal(t, "B", rows[2].Country)
	assert.Equal(t, 1.0, rows[2].RollingMean)
	assert.Equal(t, 2.0, rows[3].RollingMean)
}

func TestComputeCountriesRollingCumulativeMetric(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"A"}, models.MetricCumulativeCases, 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Value)
	assert.Equal(t, 2.0, rows[0].RollingMean)
	assert.Equal(t, 6, rows[1].Value)
	assert.Equal(t, 4.0, rows[1].RollingMean)
}

func TestComputeCountriesRollingEmptyCountrySet(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), nil, models.MetricNewCases, 7)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestComputeCountriesRollingUnknownCountryIsNotAnError(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"Atlantis"}, models.MetricNewCases, 7)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestComputeCountriesRollingUnknownMetric(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"A"}, models.Metric("deaths"), 7)
	assert.ErrorIs(t, err, ErrUnknownMetric)
	assert.Nil(t, rows)
}

func TestComputeCountriesRollingInvalidWindow(t *testing.T) {
	rows, err := ComputeCountriesRolling(sampleSeries(), []string{"A"}, models.MetricNewCases, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.Nil(t, rows)
}
