package league

import (
	"fmt"
	"time"
)

// Venue is a place where clubs schedule their matches. Multiple clubs may
// share a venue, possibly on different weekdays.
type Venue struct {
	Name string

	// MaxMatchesPerDay caps how many fixtures the venue hosts on a single
	// date, independently for each (venue, weekday) group.
	MaxMatchesPerDay int

	// MinimizeEmptyDays flips the scheduling preference for this venue from
	// "spread fixtures across many days" to "concentrate fixtures and leave
	// other days empty".
	MinimizeEmptyDays bool

	Calendar Calendar

	league   *League
	fixtures []int // arena indices, wired by league.New
}

// NewVenue builds a venue with the default capacity of two matches per day.
func NewVenue(name string) *Venue {
	return &Venue{Name: name, MaxMatchesPerDay: 2, Calendar: EmptyCalendar()}
}

// Club is a chess club. All of its teams play their home fixtures at the
// club's venue on the club's weekday.
type Club struct {
	Name    string
	Venue   *Venue
	Weekday Weekday

	// LateStart, when non-zero, forbids any match involving the club's teams
	// before that date.
	LateStart time.Time

	Calendar Calendar
	Teams    []*Team
}

// NewClub builds a club playing at venue on the given weekday.
func NewClub(name string, venue *Venue, weekday Weekday) *Club {
	return &Club{Name: name, Venue: venue, Weekday: weekday, Calendar: EmptyCalendar()}
}

// NewTeam appends an auto-named team ("<club> <n>") to the club.
func (c *Club) NewTeam() *Team {
	return c.NewNamedTeam(fmt.Sprintf("%s %d", c.Name, len(c.Teams)+1))
}

// NewNamedTeam appends a team with an explicit display name to the club.
func (c *Club) NewNamedTeam(name string) *Team {
	t := &Team{Name: name, Club: c, Calendar: EmptyCalendar()}
	c.Teams = append(c.Teams, t)
	return t
}

// Team is a team fielded by a club in one division.
type Team struct {
	Name     string
	Club     *Club
	Calendar Calendar

	league   *League
	fixtures []int // arena indices, wired by league.New
}

func (t *Team) String() string {
	return t.Name
}

// Fixtures returns every fixture the team participates in, home or away, in
// declaration order. Empty until the team's division is part of a league.
func (t *Team) Fixtures() []*Fixture {
	if t.league == nil {
		return nil
	}
	return t.league.fixturesAt(t.fixtures)
}

// Fixtures returns every fixture hosted at the venue, in declaration order.
// Empty until the owning league has been assembled.
func (v *Venue) Fixtures() []*Fixture {
	if v.league == nil {
		return nil
	}
	return v.league.fixturesAt(v.fixtures)
}
