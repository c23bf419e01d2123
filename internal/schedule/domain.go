package schedule

import (
	"time"

	"github.com/nottschess/leaguegen/internal/league"
)

// fixtureDomain computes the admissible date offsets for a fixture: the
// league-window days on the fixture's weekday, on or after every applicable
// late start, excluding holidays from any attached calendar, and capped at
// 31 January for same-club fixtures. A manually pinned date short-circuits
// all pruning and yields a singleton domain.
func fixtureDomain(l *league.League, e dateEncoding, f *league.Fixture) []int {
	if !f.Date.IsZero() {
		return []int{e.dateToInt(f.Date)}
	}

	earliest := 0
	for _, c := range []*league.Club{f.Home.Club, f.Away.Club} {
		if !c.LateStart.IsZero() {
			if d := e.dateToInt(c.LateStart); d > earliest {
				earliest = d
			}
		}
	}

	latest := e.dateToInt(l.End)
	if f.SameClub() {
		if cutoff := e.dateToInt(sameClubCutoff(l)); cutoff < latest {
			latest = cutoff
		}
	}

	var domain []int
	for _, d := range e.possibleDays(f.Weekday()) {
		if d < earliest || d > latest {
			continue
		}
		if fixtureHoliday(l, f, e.intToDate(d)) {
			continue
		}
		domain = append(domain, d)
	}
	return domain
}

// sameClubCutoff is the last admissible date for matches between two teams
// of the same club: 31 January of the league end's year.
func sameClubCutoff(l *league.League) time.Time {
	return league.Date(l.End.Year(), time.January, 31)
}

// fixtureHoliday reports whether the date is a holiday for the fixture under
// any of the additive calendars: league, venue, either club, either team.
func fixtureHoliday(l *league.League, f *league.Fixture, d time.Time) bool {
	return l.Calendar.IsHoliday(d) ||
		f.Venue().Calendar.IsHoliday(d) ||
		f.Home.Club.Calendar.IsHoliday(d) ||
		f.Away.Club.Calendar.IsHoliday(d) ||
		f.Home.Calendar.IsHoliday(d) ||
		f.Away.Calendar.IsHoliday(d)
}
