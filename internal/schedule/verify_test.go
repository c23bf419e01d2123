package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nottschess/leaguegen/internal/league"
)

func TestVerifyReportsBreaches(t *testing.T) {
	venue := league.NewVenue("Hall")
	venue.MaxMatchesPerDay = 1
	castle := league.NewClub("Castle", venue, league.Monday)
	rook := league.NewClub("Rook", league.NewVenue("Annex"), league.Tuesday)
	c1, c2 := castle.NewTeam(), castle.NewTeam()
	r1 := rook.NewTeam()
	d := league.NewDivision("D", []*league.Team{c1, c2, r1})
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), league.EmptyCalendar(), []*league.Division{d})
	assert.NoError(t, err)

	dateOf := func(home, away *league.Team) *league.Fixture {
		for _, f := range l.Fixtures() {
			if f.Home == home && f.Away == away {
				return f
			}
		}
		t.Fatalf("no fixture %s x %s", home.Name, away.Name)
		return nil
	}

	monday := league.Date(2024, 9, 2)
	dateOf(c1, c2).Date = monday
	dateOf(c1, r1).Date = monday // c1 plays twice, venue over capacity
	dateOf(c2, r1).Date = monday.AddDate(0, 0, 7)
	dateOf(c2, c1).Date = league.Date(2025, 2, 3)  // same-club past 31 January
	dateOf(r1, c1).Date = league.Date(2024, 9, 4)  // a Wednesday, not Rook's Tuesday
	dateOf(r1, c2).Date = league.Date(2024, 9, 17) // 8 days after the reverse leg

	violations := Verify(l, DefaultPolicy())

	contains := func(substr string) bool {
		for _, v := range violations {
			if strings.Contains(v, substr) {
				return true
			}
		}
		return false
	}
	assert.True(t, contains("plays twice"), "%v", violations)
	assert.True(t, contains("capacity"), "%v", violations)
	assert.True(t, contains("after 2025-01-31"), "%v", violations)
	assert.True(t, contains("Wednesday"), "%v", violations)
	assert.True(t, contains("days apart"), "%v", violations)
}

func TestVerifyReportsUndatedAndHolidays(t *testing.T) {
	castle := league.NewClub("Castle", league.NewVenue("Hall"), league.Monday)
	rook := league.NewClub("Rook", league.NewVenue("Annex"), league.Tuesday)
	d := league.NewDivision("D", []*league.Team{castle.NewTeam(), rook.NewTeam()})
	blocked := league.Date(2024, 9, 2)
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), league.NewCalendar(blocked), []*league.Division{d})
	assert.NoError(t, err)

	d.Fixtures[0].Date = blocked

	violations := Verify(l, DefaultPolicy())
	assert.Len(t, violations, 2)
	assert.Contains(t, violations[0], "holiday")
	assert.Contains(t, violations[1], "undated")
}
