package schedule

import (
	"fmt"
	"time"

	"github.com/nottschess/leaguegen/internal/league"
)

// Verify re-checks a dated league against the scheduling rules and returns
// a human-readable violation per breach. A league fresh out of a successful
// Solve should verify clean, except that a manually pinned date may sit off
// its club's weekday: pins are honored, and reported here for visibility.
func Verify(l *league.League, p Policy) []string {
	var violations []string
	report := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	cutoff := sameClubCutoff(l)
	for _, f := range l.Fixtures() {
		if f.Date.IsZero() {
			report("fixture %s is undated", f.Name())
			continue
		}
		if league.WeekdayOf(f.Date) != f.Weekday() {
			report("fixture %s is on a %s, not its club's %s",
				f, league.WeekdayOf(f.Date), f.Weekday())
		}
		if f.Date.Before(l.Start) || f.Date.After(l.End) {
			report("fixture %s is outside the season window", f)
		}
		for _, c := range []*league.Club{f.Home.Club, f.Away.Club} {
			if !c.LateStart.IsZero() && f.Date.Before(c.LateStart) {
				report("fixture %s precedes %s's late start %s",
					f, c.Name, c.LateStart.Format(league.DateFormat))
			}
		}
		if fixtureHoliday(l, f, f.Date) {
			report("fixture %s falls on a holiday", f)
		}
		if f.SameClub() && f.Date.After(cutoff) {
			report("same-club fixture %s is after %s", f, cutoff.Format(league.DateFormat))
		}
	}

	for _, t := range l.Teams() {
		byDate := make(map[time.Time]*league.Fixture)
		for _, f := range t.Fixtures() {
			if f.Date.IsZero() {
				continue
			}
			if other, ok := byDate[f.Date]; ok {
				report("%s plays twice on %s: %s and %s",
					t.Name, f.Date.Format(league.DateFormat), other.Name(), f.Name())
			}
			byDate[f.Date] = f
		}
	}

	for _, vw := range l.VenuesWeekdays() {
		counts := make(map[time.Time]int)
		for _, f := range vw.Venue.Fixtures() {
			if f.Weekday() == vw.Weekday && !f.Date.IsZero() {
				counts[f.Date]++
			}
		}
		for date, n := range counts {
			if n > vw.Venue.MaxMatchesPerDay {
				report("%s hosts %d matches on %s, capacity %d",
					vw.Venue.Name, n, date.Format(league.DateFormat), vw.Venue.MaxMatchesPerDay)
			}
		}
	}

	for _, pair := range l.FixturePairs() {
		f1, f2 := pair[0], pair[1]
		if f1.Date.IsZero() || f2.Date.IsZero() {
			continue
		}
		gap := int(f1.Date.Sub(f2.Date) / (24 * time.Hour))
		if gap < 0 {
			gap = -gap
		}
		if gap < p.PairSeparationDays {
			report("%s and %s are only %d days apart, minimum %d",
				f1.Name(), f2.Name(), gap, p.PairSeparationDays)
		}
	}

	return violations
}
