package league

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// OnlyWhen constrains a club to use only home dates on which the reference
// club also has a home fixture, so that two clubs sharing scarce slots
// co-occupy the same days.
type OnlyWhen struct {
	Club      *Club // constrained
	Reference *Club
}

// League is the top-level container. New wires the fixture arena and every
// derived view eagerly; entities are immutable for the duration of a
// scheduling run apart from fixture dates being resolved, and the whole
// structure is not safe for concurrent use.
type League struct {
	Name      string
	Start     time.Time
	End       time.Time
	Calendar  Calendar
	Divisions []*Division
	OnlyWhen  []OnlyWhen

	fixtures      []*Fixture // the owned arena; Fixture.ID indexes it
	venues        []*Venue
	venueWeekdays []VenueWeekday
	clubs         []*Club
	holidays      map[Weekday][]time.Time
}

// VenueWeekday is one independently scheduled (venue, weekday) group. A venue
// hosting clubs on different weekdays appears once per weekday.
type VenueWeekday struct {
	Venue   *Venue
	Weekday Weekday
}

// New assembles a league from its divisions. It assigns arena indices to
// every fixture and populates the team and venue back-reference index lists.
func New(name string, start, end time.Time, calendar Calendar, divisions []*Division) (*League, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("league %q: end %s is not after start %s",
			name, end.Format(DateFormat), start.Format(DateFormat))
	}
	l := &League{
		Name:      name,
		Start:     Date(start.Year(), start.Month(), start.Day()),
		End:       Date(end.Year(), end.Month(), end.Day()),
		Calendar:  calendar,
		Divisions: divisions,
		holidays:  make(map[Weekday][]time.Time),
	}

	seenVenue := make(map[*Venue]bool)
	seenGroup := make(map[VenueWeekday]bool)
	seenClub := make(map[*Club]bool)
	seenTeam := make(map[*Team]bool)
	for _, d := range divisions {
		for _, t := range d.Teams {
			if t.league != nil && t.league != l {
				return nil, fmt.Errorf("league %q: team %q already belongs to another league", name, t.Name)
			}
			if seenTeam[t] {
				return nil, fmt.Errorf("league %q: team %q is listed more than once", name, t.Name)
			}
			seenTeam[t] = true
			t.league = l
			c := t.Club
			if !seenClub[c] {
				seenClub[c] = true
				l.clubs = append(l.clubs, c)
			}
			if !seenVenue[c.Venue] {
				seenVenue[c.Venue] = true
				c.Venue.league = l
				l.venues = append(l.venues, c.Venue)
			}
			group := VenueWeekday{Venue: c.Venue, Weekday: c.Weekday}
			if !seenGroup[group] {
				seenGroup[group] = true
				l.venueWeekdays = append(l.venueWeekdays, group)
			}
		}
		for _, f := range d.Fixtures {
			f.ID = len(l.fixtures)
			l.fixtures = append(l.fixtures, f)
			f.Home.fixtures = append(f.Home.fixtures, f.ID)
			f.Away.fixtures = append(f.Away.fixtures, f.ID)
			venue := f.Venue()
			venue.fixtures = append(venue.fixtures, f.ID)
		}
	}

	for _, h := range calendar.Holidays() {
		if !h.Before(l.Start) && !h.After(l.End) {
			wd := WeekdayOf(h)
			l.holidays[wd] = append(l.holidays[wd], h)
		}
	}
	return l, nil
}

// DeclareRoster replaces the derived venue and club enumerations with an
// explicit declaration order, as read from a persisted document. The lists
// must cover every venue and club in use and may carry extra entries no
// division references yet; those survive a later save.
func (l *League) DeclareRoster(venues []*Venue, clubs []*Club) error {
	declaredVenue := make(map[*Venue]bool, len(venues))
	for _, v := range venues {
		if declaredVenue[v] {
			return fmt.Errorf("league %q: venue %q declared twice", l.Name, v.Name)
		}
		declaredVenue[v] = true
		if v.league != nil && v.league != l {
			return fmt.Errorf("league %q: venue %q already belongs to another league", l.Name, v.Name)
		}
		v.league = l
	}
	declaredClub := make(map[*Club]bool, len(clubs))
	for _, c := range clubs {
		if declaredClub[c] {
			return fmt.Errorf("league %q: club %q declared twice", l.Name, c.Name)
		}
		declaredClub[c] = true
	}
	for _, v := range l.venues {
		if !declaredVenue[v] {
			return fmt.Errorf("league %q: venue %q is in use but not declared", l.Name, v.Name)
		}
	}
	for _, c := range l.clubs {
		if !declaredClub[c] {
			return fmt.Errorf("league %q: club %q is in use but not declared", l.Name, c.Name)
		}
	}
	l.venues = venues
	l.clubs = clubs
	return nil
}

// Venues returns the distinct venues in use, in first-seen order unless
// DeclareRoster fixed an explicit order.
func (l *League) Venues() []*Venue {
	return l.venues
}

// VenuesWeekdays returns the distinct (venue, weekday) groups, in first-seen
// order.
func (l *League) VenuesWeekdays() []VenueWeekday {
	return l.venueWeekdays
}

// Clubs returns the distinct clubs, in first-seen order unless DeclareRoster
// fixed an explicit order.
func (l *League) Clubs() []*Club {
	return l.clubs
}

// Teams returns every team, walking divisions in order and each division's
// teams in declaration order. This order is significant: the first-meeting
// tie-break depends on it.
func (l *League) Teams() []*Team {
	var teams []*Team
	for _, d := range l.Divisions {
		teams = append(teams, d.Teams...)
	}
	return teams
}

// Fixtures returns the fixture arena: every fixture across all divisions in
// declaration order, indexed by Fixture.ID.
func (l *League) Fixtures() []*Fixture {
	return l.fixtures
}

// FixturePairs returns every reverse-fixture pair across all divisions.
func (l *League) FixturePairs() [][2]*Fixture {
	var pairs [][2]*Fixture
	for _, d := range l.Divisions {
		pairs = append(pairs, d.Pairs...)
	}
	return pairs
}

// HolidaysOn returns the league-calendar holidays falling on the given
// weekday within [Start, End], ascending.
func (l *League) HolidaysOn(w Weekday) []time.Time {
	return l.holidays[w]
}

func (l *League) fixturesAt(ids []int) []*Fixture {
	out := make([]*Fixture, len(ids))
	for i, id := range ids {
		out[i] = l.fixtures[id]
	}
	return out
}

func (l *League) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s (from %s until %s) ===\n",
		l.Name, l.Start.Format(DateFormat), l.End.Format(DateFormat))
	for _, d := range l.Divisions {
		b.WriteString("\n")
		b.WriteString(d.String())
	}
	return b.String()
}

func sortedCopy(xs []string) []string {
	out := append([]string(nil), xs...)
	sort.Strings(out)
	return out
}
