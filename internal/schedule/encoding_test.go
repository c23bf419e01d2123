package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nottschess/leaguegen/internal/league"
)

func encodingLeague(t *testing.T) *league.League {
	t.Helper()
	venue := league.NewVenue("Hall")
	club := league.NewClub("Castle", venue, league.Monday)
	d := league.NewDivision("D", []*league.Team{club.NewTeam(), club.NewTeam()})
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), league.EmptyCalendar(), []*league.Division{d})
	assert.NoError(t, err)
	return l
}

func TestDateIntBijection(t *testing.T) {
	e := newDateEncoding(encodingLeague(t))

	assert.Equal(t, 0, e.dateToInt(league.Date(2024, 9, 1)))
	assert.Equal(t, 1, e.dateToInt(league.Date(2024, 9, 2)))
	assert.Equal(t, league.Date(2024, 9, 1), e.intToDate(0))

	// Bijective across the whole window
	for d := 0; d <= e.dateToInt(e.end); d++ {
		assert.Equal(t, d, e.dateToInt(e.intToDate(d)))
	}
}

func TestWeekdayToInt(t *testing.T) {
	e := newDateEncoding(encodingLeague(t))

	// The league starts on a Sunday, so Sunday is residue 0 and Monday 1
	assert.Equal(t, 0, e.weekdayToInt(league.Sunday))
	assert.Equal(t, 1, e.weekdayToInt(league.Monday))
	assert.Equal(t, 6, e.weekdayToInt(league.Saturday))

	// Residues agree with actual dates
	for d := 0; d < 14; d++ {
		date := e.intToDate(d)
		assert.Equal(t, d%7, e.weekdayToInt(league.WeekdayOf(date)))
	}
}

func TestPossibleDays(t *testing.T) {
	e := newDateEncoding(encodingLeague(t))

	days := e.possibleDays(league.Monday)
	assert.NotEmpty(t, days)
	assert.Equal(t, 1, days[0])
	for i, d := range days {
		assert.Equal(t, league.Monday, league.WeekdayOf(e.intToDate(d)))
		if i > 0 {
			assert.Equal(t, days[i-1]+7, d)
		}
	}

	// The window end (2025-05-15, a Thursday) is itself admissible
	thursdays := e.possibleDays(league.Thursday)
	assert.Equal(t, e.dateToInt(e.end), thursdays[len(thursdays)-1])
}
