package plot

import (
	"io"
	"time"
)

// Series is one named line on a chart: its own date axis and matching values.
type Series struct {
	Name   string
	Dates  []time.Time
	Values []float64
}

// Chart describes a time-series figure independent of any rendering backend.
type Chart struct {
	Title  string
	YLabel string
	Series []Series
}

// Renderer draws a chart description into a finished artifact on w.
type Renderer interface {
	Render(c Chart, w io.Writer) error
}
