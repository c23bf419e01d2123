// Package schedule turns a league into a constraint model, hands it to an
// oracle backend, and writes the solved dates back onto the fixtures.
package schedule

import (
	"time"

	"github.com/nottschess/leaguegen/internal/league"
)

// dateEncoding is the bijection between calendar dates and small integer
// offsets anchored at the league start, shared by the model builder and the
// result decoder.
type dateEncoding struct {
	start time.Time
	end   time.Time
}

func newDateEncoding(l *league.League) dateEncoding {
	return dateEncoding{start: l.Start, end: l.End}
}

func (e dateEncoding) dateToInt(d time.Time) int {
	return int(d.Sub(e.start) / (24 * time.Hour))
}

func (e dateEncoding) intToDate(x int) time.Time {
	return e.start.AddDate(0, 0, x)
}

// weekdayToInt maps a weekday to its residue mod 7 relative to the weekday
// of the league start, so that dateToInt(d) % 7 == weekdayToInt(WeekdayOf(d))
// for every date d.
func (e dateEncoding) weekdayToInt(w league.Weekday) int {
	offset := int(league.WeekdayOf(e.start))
	return ((int(w)-offset)%7 + 7) % 7
}

// possibleDays returns the ascending offsets of every date in
// [start, end] falling on the given weekday, stepping by 7.
func (e dateEncoding) possibleDays(w league.Weekday) []int {
	last := e.dateToInt(e.end)
	var days []int
	for d := e.weekdayToInt(w); d <= last; d += 7 {
		days = append(days, d)
	}
	return days
}
