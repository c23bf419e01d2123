// Package report renders a solved league as an HTML summary or a flat CSV.
package report

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/nottschess/leaguegen/internal/league"
)

// undefinedDate marks fixtures that have no resolved date yet.
const undefinedDate = "<undefined>"

// WriteCSV emits one row per fixture: division, home, away, date (or
// "<undefined>"), sorted by (date, home, away) within each division,
// undated fixtures first.
func WriteCSV(w io.Writer, l *league.League) error {
	cw := csv.NewWriter(w)
	for _, d := range l.Divisions {
		fixtures := append([]*league.Fixture(nil), d.Fixtures...)
		sort.SliceStable(fixtures, func(i, j int) bool {
			fi, fj := fixtures[i], fixtures[j]
			if !fi.Date.Equal(fj.Date) {
				return fi.Date.Before(fj.Date)
			}
			if fi.Home.Name != fj.Home.Name {
				return fi.Home.Name < fj.Home.Name
			}
			return fi.Away.Name < fj.Away.Name
		})
		for _, f := range fixtures {
			date := undefinedDate
			if !f.Date.IsZero() {
				date = f.Date.Format(league.DateFormat)
			}
			if err := cw.Write([]string{d.Name, f.Home.Name, f.Away.Name, date}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
