package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-09-01 is a Sunday, 2024-09-02 a Monday
	assert.Equal(t, Sunday, WeekdayOf(Date(2024, 9, 1)))
	assert.Equal(t, Monday, WeekdayOf(Date(2024, 9, 2)))
	assert.Equal(t, Saturday, WeekdayOf(Date(2024, 9, 7)))
}

func TestWeekdayValid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(0).Valid())
	assert.False(t, Weekday(8).Valid())
}

func TestCalendarNormalizesToMidnight(t *testing.T) {
	noon := time.Date(2024, 12, 25, 12, 30, 0, 0, time.Local)
	c := NewCalendar(noon)

	assert.True(t, c.IsHoliday(Date(2024, 12, 25)))
	assert.True(t, c.IsHoliday(time.Date(2024, 12, 25, 23, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsHoliday(Date(2024, 12, 26)))
	assert.Equal(t, 1, c.Len())
}

func newTestLeague(t *testing.T) (*League, *Club, *Club) {
	t.Helper()
	venue := NewVenue("Shared Hall")
	castle := NewClub("Castle", venue, Monday)
	rook := NewClub("Rook", venue, Tuesday)
	d := NewDivision("Division 1", []*Team{
		castle.NewTeam(), castle.NewTeam(), rook.NewTeam(),
	})
	l, err := New("Test League", Date(2024, 9, 1), Date(2025, 5, 15), EmptyCalendar(), []*Division{d})
	assert.NoError(t, err)
	return l, castle, rook
}

func TestLeagueWiring(t *testing.T) {
	l, castle, rook := newTestLeague(t)

	// Arena IDs are dense and in declaration order
	for i, f := range l.Fixtures() {
		assert.Equal(t, i, f.ID)
	}
	assert.Len(t, l.Fixtures(), 3*2)

	// Derived views in first-seen order
	assert.Equal(t, []*Club{castle, rook}, l.Clubs())
	assert.Len(t, l.Venues(), 1)
	assert.Equal(t, []VenueWeekday{
		{Venue: castle.Venue, Weekday: Monday},
		{Venue: rook.Venue, Weekday: Tuesday},
	}, l.VenuesWeekdays())

	// Every team sees exactly its own fixtures
	for _, team := range l.Teams() {
		fixtures := team.Fixtures()
		assert.Len(t, fixtures, 4)
		for _, f := range fixtures {
			assert.True(t, f.Involves(team))
		}
	}

	// The shared venue hosts everything
	assert.Len(t, castle.Venue.Fixtures(), 6)
}

func TestLeagueRejectsReusedTeam(t *testing.T) {
	l, castle, _ := newTestLeague(t)
	assert.NotNil(t, l)

	other := NewDivision("Other", []*Team{castle.Teams[0], castle.NewTeam()})
	_, err := New("Second League", Date(2024, 9, 1), Date(2025, 5, 15), EmptyCalendar(), []*Division{other})
	assert.ErrorContains(t, err, "already belongs to another league")
}

func TestLeagueRejectsTeamInTwoDivisions(t *testing.T) {
	venue := NewVenue("Hall")
	club := NewClub("Castle", venue, Monday)
	a, b, c := club.NewTeam(), club.NewTeam(), club.NewTeam()
	d1 := NewDivision("D1", []*Team{a, b})
	d2 := NewDivision("D2", []*Team{a, c})

	_, err := New("L", Date(2024, 9, 1), Date(2025, 5, 15), EmptyCalendar(), []*Division{d1, d2})

	assert.ErrorContains(t, err, "listed more than once")
}

func TestLeagueRejectsEmptyWindow(t *testing.T) {
	_, err := New("Backwards", Date(2025, 5, 15), Date(2024, 9, 1), EmptyCalendar(), nil)
	assert.ErrorContains(t, err, "not after")
}

func TestHolidaysOn(t *testing.T) {
	venue := NewVenue("Hall")
	club := NewClub("Castle", venue, Monday)
	d := NewDivision("D", []*Team{club.NewTeam(), club.NewTeam()})

	xmas := Date(2024, 12, 25)     // a Wednesday
	mondayOff := Date(2024, 12, 30)
	outside := Date(2024, 8, 5) // before the season
	l, err := New("L", Date(2024, 9, 1), Date(2025, 5, 15), NewCalendar(xmas, mondayOff, outside), []*Division{d})
	assert.NoError(t, err)

	assert.Equal(t, []time.Time{mondayOff}, l.HolidaysOn(Monday))
	assert.Equal(t, []time.Time{xmas}, l.HolidaysOn(Wednesday))
	assert.Empty(t, l.HolidaysOn(Friday))
}

func TestFixtureViews(t *testing.T) {
	venue := NewVenue("Hall")
	club := NewClub("Castle", venue, Monday)
	a, b := club.NewTeam(), club.NewTeam()
	f := NewFixture(a, b)

	assert.Equal(t, "Castle 1 x Castle 2", f.Name())
	assert.Equal(t, venue, f.Venue())
	assert.Equal(t, Monday, f.Weekday())
	assert.True(t, f.SameClub())
	assert.True(t, f.Between(b, a))
	assert.Equal(t, "????-??-?? Castle 1 x Castle 2", f.String())

	f.Date = Date(2024, 10, 7)
	assert.Equal(t, "2024-10-07 Castle 1 x Castle 2", f.String())
}

func TestByDate(t *testing.T) {
	venue := NewVenue("Hall")
	club := NewClub("Castle", venue, Monday)
	a, b, c := club.NewTeam(), club.NewTeam(), club.NewTeam()

	late := NewFixture(a, b)
	late.Date = Date(2024, 11, 4)
	early := NewFixture(b, c)
	early.Date = Date(2024, 9, 30)
	undated := NewFixture(c, a)

	sorted := ByDate([]*Fixture{late, early, undated})
	assert.Equal(t, []*Fixture{undated, early, late}, sorted)
}
