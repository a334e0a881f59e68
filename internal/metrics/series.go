// Package metrics transforms a raw metrics snapshot into display-ready
// values. Every function is a pure mapping from input to output; nothing in
// this package holds state or mutates the snapshot it is handed.
package metrics

import "math"

// priorPercent is the synthetic starting point shown before any evidence,
// matching the server's default BKT prior of 0.01.
const priorPercent = 1

// Point is one x/y pair of a chart series.
type Point struct {
	X       int
	Percent int
}

// KnowledgeSeries converts a knowledge history into a percentage series for
// charting. A synthetic prior point is prepended for display only — the
// history itself starts at the state after the first answered question — so
// the output always has len(history)+1 points, labeled 0..n. The function is
// idempotent: the same history always yields an identical series.
func KnowledgeSeries(history []float64) []Point {
	series := make([]Point, 0, len(history)+1)
	series = append(series, Point{X: 0, Percent: priorPercent})
	for i, v := range history {
		series = append(series, Point{X: i + 1, Percent: roundPercent(v)})
	}
	return series
}

// Bar is one difficulty bar: a proportional height in [0,1] and a 0-9 scale
// label. Inputs outside [0,1] are an upstream contract violation and are
// passed through unclamped, rendering as visually malformed bars rather
// than failing the refresh.
type Bar struct {
	Height float64
	Label  int
}

// DifficultyBars maps a difficulty history onto proportional bars.
func DifficultyBars(history []float64) []Bar {
	bars := make([]Bar, len(history))
	for i, v := range history {
		bars[i] = Bar{
			Height: v,
			Label:  int(math.Round(v * 9)),
		}
	}
	return bars
}

func roundPercent(v float64) int {
	return int(math.Round(v * 100))
}
