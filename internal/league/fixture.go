package league

import (
	"sort"
	"time"
)

// Fixture is a single match between two teams of the same division, one
// designated home and one away. Date stays zero until the scheduler resolves
// it, unless it was pinned manually beforehand.
type Fixture struct {
	// ID is the fixture's stable index in the league arena, assigned by
	// league.New. It is -1 until then.
	ID int

	Home *Team
	Away *Team
	Date time.Time
}

// NewFixture builds an undated fixture.
func NewFixture(home, away *Team) *Fixture {
	return &Fixture{ID: -1, Home: home, Away: away}
}

// Venue is the home team's club's venue.
func (f *Fixture) Venue() *Venue {
	return f.Home.Club.Venue
}

// Weekday is the home team's club's weekday. A resolved date must fall on it
// unless the date was pinned manually.
func (f *Fixture) Weekday() Weekday {
	return f.Home.Club.Weekday
}

// Name renders the fixture as "<home> x <away>".
func (f *Fixture) Name() string {
	return f.Home.Name + " x " + f.Away.Name
}

// SameClub reports whether both teams belong to the same club.
func (f *Fixture) SameClub() bool {
	return f.Home.Club == f.Away.Club
}

// Involves reports whether t plays in the fixture.
func (f *Fixture) Involves(t *Team) bool {
	return f.Home == t || f.Away == t
}

// Between reports whether the fixture is exactly the meeting of t1 and t2.
func (f *Fixture) Between(t1, t2 *Team) bool {
	return (f.Home == t1 && f.Away == t2) || (f.Home == t2 && f.Away == t1)
}

// SamePair reports whether g is the fixture between the same two teams,
// home/away swapped or not.
func (f *Fixture) SamePair(g *Fixture) bool {
	return g.Between(f.Home, f.Away)
}

func (f *Fixture) String() string {
	dateStr := "????-??-??"
	if !f.Date.IsZero() {
		dateStr = f.Date.Format(DateFormat)
	}
	return dateStr + " " + f.Name()
}

// ByDate returns a copy of fixtures sorted by (date, name), undated first.
func ByDate(fixtures []*Fixture) []*Fixture {
	out := append([]*Fixture(nil), fixtures...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}
