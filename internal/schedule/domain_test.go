package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nottschess/leaguegen/internal/league"
)

type domainFixtureSetup struct {
	league  *league.League
	enc     dateEncoding
	fixture *league.Fixture
}

// twoClubLeague builds a minimal league with one fixture per direction
// between a Monday club and a Tuesday club sharing a venue.
func twoClubLeague(t *testing.T, calendar league.Calendar, mutate func(home, away *league.Club)) domainFixtureSetup {
	t.Helper()
	venue := league.NewVenue("Hall")
	castle := league.NewClub("Castle", venue, league.Monday)
	rook := league.NewClub("Rook", venue, league.Tuesday)
	if mutate != nil {
		mutate(castle, rook)
	}
	d := league.NewDivision("D", []*league.Team{castle.NewTeam(), rook.NewTeam()})
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), calendar, []*league.Division{d})
	assert.NoError(t, err)
	return domainFixtureSetup{league: l, enc: newDateEncoding(l), fixture: d.Fixtures[0]}
}

func TestFixtureDomainFollowsHomeWeekday(t *testing.T) {
	s := twoClubLeague(t, league.EmptyCalendar(), nil)

	domain := fixtureDomain(s.league, s.enc, s.fixture)
	assert.NotEmpty(t, domain)
	for _, d := range domain {
		assert.Equal(t, league.Monday, league.WeekdayOf(s.enc.intToDate(d)))
	}
}

func TestFixtureDomainExcludesHolidays(t *testing.T) {
	blocked := league.Date(2024, 10, 7) // a Monday

	t.Run("league calendar", func(t *testing.T) {
		s := twoClubLeague(t, league.NewCalendar(blocked), nil)
		assert.NotContains(t, fixtureDomain(s.league, s.enc, s.fixture), s.enc.dateToInt(blocked))
	})

	t.Run("venue calendar", func(t *testing.T) {
		s := twoClubLeague(t, league.EmptyCalendar(), func(home, _ *league.Club) {
			home.Venue.Calendar = league.NewCalendar(blocked)
		})
		assert.NotContains(t, fixtureDomain(s.league, s.enc, s.fixture), s.enc.dateToInt(blocked))
	})

	t.Run("away club calendar", func(t *testing.T) {
		s := twoClubLeague(t, league.EmptyCalendar(), func(_, away *league.Club) {
			away.Calendar = league.NewCalendar(blocked)
		})
		assert.NotContains(t, fixtureDomain(s.league, s.enc, s.fixture), s.enc.dateToInt(blocked))
	})

	t.Run("team calendar", func(t *testing.T) {
		s := twoClubLeague(t, league.EmptyCalendar(), nil)
		s.fixture.Away.Calendar = league.NewCalendar(blocked)
		assert.NotContains(t, fixtureDomain(s.league, s.enc, s.fixture), s.enc.dateToInt(blocked))
	})
}

func TestFixtureDomainHonorsLateStart(t *testing.T) {
	lateStart := league.Date(2024, 11, 1)
	s := twoClubLeague(t, league.EmptyCalendar(), func(_, away *league.Club) {
		away.LateStart = lateStart
	})

	domain := fixtureDomain(s.league, s.enc, s.fixture)
	assert.NotEmpty(t, domain)
	assert.GreaterOrEqual(t, domain[0], s.enc.dateToInt(lateStart))
}

func TestFixtureDomainSameClubCutoff(t *testing.T) {
	venue := league.NewVenue("Hall")
	club := league.NewClub("Castle", venue, league.Monday)
	d := league.NewDivision("D", []*league.Team{club.NewTeam(), club.NewTeam()})
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), league.EmptyCalendar(), []*league.Division{d})
	assert.NoError(t, err)
	enc := newDateEncoding(l)

	cutoff := enc.dateToInt(league.Date(2025, 1, 31))
	for _, f := range d.Fixtures {
		domain := fixtureDomain(l, enc, f)
		assert.NotEmpty(t, domain)
		assert.LessOrEqual(t, domain[len(domain)-1], cutoff)
	}
}

func TestFixtureDomainPinned(t *testing.T) {
	s := twoClubLeague(t, league.EmptyCalendar(), nil)
	// Pinned off the club weekday, on a holiday: still a singleton
	pinned := league.Date(2024, 10, 5) // a Saturday
	s.fixture.Date = pinned
	s.league.Calendar = league.NewCalendar(pinned)

	assert.Equal(t, []int{s.enc.dateToInt(pinned)}, fixtureDomain(s.league, s.enc, s.fixture))
}
