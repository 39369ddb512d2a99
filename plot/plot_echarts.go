package plot

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTMLRenderer draws interactive line charts as standalone HTML pages.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(c Chart, w io.Writer) error {
	if len(c.Series) == 0 {
		return fmt.Errorf("no series to draw for chart %q", c.Title)
	}

	axis := unionDates(c.Series)
	labels := make([]string, len(axis))
	for i, d := range axis {
		labels[i] = d.Format("2006-01-02")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     "1200px",
			Height:    "600px",
		}),
	)

	line.SetXAxis(labels)
	for _, s := range c.Series {
		byDate := make(map[time.Time]float64, len(s.Dates))
		for i, d := range s.Dates {
			byDate[d] = s.Values[i]
		}
		// dates the series never reported stay as gaps on the shared axis
		data := make([]opts.LineData, len(axis))
		for i, d := range axis {
			if v, ok := byDate[d]; ok {
				data[i] = opts.LineData{Value: v}
			} else {
				data[i] = opts.LineData{Value: nil}
			}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("error rendering chart: %v", err)
	}
	return nil
}

// unionDates merges every series' dates into one sorted, distinct axis.
func unionDates(series []Series) []time.Time {
	seen := map[time.Time]struct{}{}
	var axis []time.Time
	for _, s := range series {
		for _, d := range s.Dates {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			axis = append(axis, d)
		}
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i].Before(axis[j]) })
	return axis
}
