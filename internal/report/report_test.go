package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nottschess/leaguegen/internal/league"
)

func reportLeague(t *testing.T) *league.League {
	t.Helper()
	castle := league.NewClub("Castle", league.NewVenue("Hall"), league.Monday)
	rook := league.NewClub("Rook", league.NewVenue("Annex"), league.Tuesday)
	d := league.NewDivision("Division 1", []*league.Team{castle.NewTeam(), rook.NewTeam()})
	l, err := league.New("Report League",
		league.Date(2024, 9, 1), league.Date(2025, 5, 15),
		league.NewCalendar(league.Date(2024, 12, 25)),
		[]*league.Division{d})
	assert.NoError(t, err)
	return l
}

func TestWriteCSV(t *testing.T) {
	l := reportLeague(t)
	l.Fixtures()[1].Date = league.Date(2024, 10, 8)

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, l))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		// undated first, then by date
		{"Division 1", "Castle 1", "Rook 1", "<undefined>"},
		{"Division 1", "Rook 1", "Castle 1", "2024-10-08"},
	}, rows)
}

func TestWriteCSVOrdersByDateThenName(t *testing.T) {
	castle := league.NewClub("Castle", league.NewVenue("Hall"), league.Monday)
	a, b, c := castle.NewTeam(), castle.NewTeam(), castle.NewTeam()
	d := league.NewDivision("D", []*league.Team{a, b, c})
	l, err := league.New("L", league.Date(2024, 9, 1), league.Date(2025, 5, 15), league.EmptyCalendar(), []*league.Division{d})
	assert.NoError(t, err)

	day := league.Date(2024, 9, 2)
	for _, f := range l.Fixtures() {
		f.Date = day
		day = day.AddDate(0, 0, 7)
	}
	// Two fixtures share the last date; they tie-break on home then away name
	l.Fixtures()[0].Date = day
	l.Fixtures()[5].Date = day

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, l))

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 6)
	last, secondToLast := rows[5], rows[4]
	assert.Equal(t, []string{"D", "Castle 3", "Castle 2", day.Format(league.DateFormat)}, last)
	assert.Equal(t, []string{"D", "Castle 1", "Castle 2", day.Format(league.DateFormat)}, secondToLast)
}

func TestWriteHTML(t *testing.T) {
	l := reportLeague(t)
	for i, f := range l.Fixtures() {
		f.Date = league.Date(2024, 10, 7).AddDate(0, 0, i*49+i)
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteHTML(&buf, l))
	html := buf.String()

	assert.Contains(t, html, "<title>Report League</title>")
	assert.Contains(t, html, "from 2024-09-01 until 2025-05-15")
	assert.Contains(t, html, "Division 1")
	assert.Contains(t, html, "Hall (Mondays)")
	assert.Contains(t, html, "Annex (Tuesdays)")
	assert.Contains(t, html, "Castle 1 x Rook 1")
	// Scheduled days show up as heat cells, holidays as marked cells
	assert.Contains(t, html, `title="2024-10-07"`)
	assert.Contains(t, html, "heat-holiday")
	// Per-team listings carry the home/away mark
	assert.Contains(t, html, `<td class="mark">H</td>`)
	assert.Contains(t, html, `<td class="mark">A</td>`)
}

func TestHeatmapLayout(t *testing.T) {
	l := reportLeague(t)
	hm := newHeatmap(l)
	hm.addFixtures(l.Fixtures())

	table := hm.table()
	assert.Len(t, table, 7)

	// Rows run Monday..Sunday; every column is one week
	for weekday, row := range table {
		assert.Equal(t, hm.weekCount(), len(row))
		for _, cell := range row {
			assert.Equal(t, league.Weekday(weekday+1), league.WeekdayOf(cell.Date))
		}
	}

	// The first cell is the Monday on or before the league start, the last
	// cell the Sunday on or after its end
	first := table[0][0].Date
	lastRow := table[6]
	last := lastRow[len(lastRow)-1].Date
	assert.False(t, first.After(l.Start))
	assert.False(t, last.Before(l.End))
	assert.Less(t, int(l.Start.Sub(first)/(24*time.Hour)), 7)
}

func TestHeatCellClamp(t *testing.T) {
	assert.Equal(t, 0, HeatCell{Count: 0}.Heat())
	assert.Equal(t, 3, HeatCell{Count: 3}.Heat())
	assert.Equal(t, 4, HeatCell{Count: 9}.Heat())
}
