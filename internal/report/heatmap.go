package report

import (
	"time"

	"github.com/nottschess/leaguegen/internal/league"
)

// heatmap counts fixtures per date over the whole season, laid out as seven
// weekday rows by N week columns for rendering.
type heatmap struct {
	league *league.League
	points map[time.Time]int
}

func newHeatmap(l *league.League) *heatmap {
	return &heatmap{league: l, points: make(map[time.Time]int)}
}

func (h *heatmap) addFixtures(fixtures []*league.Fixture) {
	for _, f := range fixtures {
		if !f.Date.IsZero() {
			h.points[f.Date]++
		}
	}
}

// start is the last Monday on or before the league start.
func (h *heatmap) start() time.Time {
	d := h.league.Start
	return d.AddDate(0, 0, -(int(league.WeekdayOf(d)) - 1))
}

// end is the first Sunday on or after the league end.
func (h *heatmap) end() time.Time {
	d := h.league.End
	return d.AddDate(0, 0, 7-int(league.WeekdayOf(d)))
}

func (h *heatmap) weekCount() int {
	return (int(h.end().Sub(h.start())/(24*time.Hour)) + 1) / 7
}

// HeatCell is one day in the rendered heatmap.
type HeatCell struct {
	Date    time.Time
	Count   int
	Holiday bool
}

// Heat is the intensity class, clamped to 0-4.
func (c HeatCell) Heat() int {
	if c.Count > 4 {
		return 4
	}
	return c.Count
}

// table returns seven rows (Monday..Sunday), one cell per week.
func (h *heatmap) table() [][]HeatCell {
	weeks := h.weekCount()
	rows := make([][]HeatCell, 7)
	for i := range rows {
		row := make([]HeatCell, 0, weeks)
		d := h.start().AddDate(0, 0, i)
		for w := 0; w < weeks; w++ {
			row = append(row, HeatCell{
				Date:    d,
				Count:   h.points[d],
				Holiday: h.league.Calendar.IsHoliday(d),
			})
			d = d.AddDate(0, 0, 7)
		}
		rows[i] = row
	}
	return rows
}
