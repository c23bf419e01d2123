package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/samber/lo"

	"github.com/nottschess/leaguegen/internal/league"
)

type page struct {
	Title     string
	Subtitle  string
	Heatmap   [][]HeatCell
	Divisions []section
	Venues    []section
	Teams     []section
}

type section struct {
	Title    string
	Heatmap  [][]HeatCell
	Fixtures []row
}

type row struct {
	Date  string
	Label string
	Mark  string // "H"/"A" in the per-team listings
}

// WriteHTML renders the league summary: a season heatmap, then fixtures by
// division, by (venue, weekday) group, and by team.
func WriteHTML(w io.Writer, l *league.League) error {
	all := newHeatmap(l)
	all.addFixtures(l.Fixtures())

	p := page{
		Title: l.Name,
		Subtitle: fmt.Sprintf("from %s until %s",
			l.Start.Format(league.DateFormat), l.End.Format(league.DateFormat)),
		Heatmap: all.table(),
	}

	for _, d := range l.Divisions {
		hm := newHeatmap(l)
		hm.addFixtures(d.Fixtures)
		p.Divisions = append(p.Divisions, section{
			Title:    d.Name,
			Heatmap:  hm.table(),
			Fixtures: rows(d.Fixtures, nil),
		})
	}

	for _, vw := range l.VenuesWeekdays() {
		group := lo.Filter(vw.Venue.Fixtures(), func(f *league.Fixture, _ int) bool {
			return f.Weekday() == vw.Weekday
		})
		hm := newHeatmap(l)
		hm.addFixtures(group)
		p.Venues = append(p.Venues, section{
			Title:    fmt.Sprintf("%s (%ss)", vw.Venue.Name, vw.Weekday),
			Heatmap:  hm.table(),
			Fixtures: rows(group, nil),
		})
	}

	for _, t := range l.Teams() {
		p.Teams = append(p.Teams, section{
			Title:    t.Name,
			Fixtures: rows(t.Fixtures(), t),
		})
	}

	return pageTemplate.Execute(w, p)
}

func rows(fixtures []*league.Fixture, perspective *league.Team) []row {
	return lo.Map(league.ByDate(fixtures), func(f *league.Fixture, _ int) row {
		date := undefinedDate
		if !f.Date.IsZero() {
			date = f.Date.Format(league.DateFormat)
		}
		r := row{Date: date, Label: f.Name()}
		if perspective != nil {
			if f.Home == perspective {
				r.Mark = "H"
			} else {
				r.Mark = "A"
			}
		}
		return r
	})
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h2 { margin-top: 1.5em; border-bottom: 1px solid #ccc; }
table.heatmap { border-collapse: collapse; margin: 0.5em 0; }
table.heatmap td { width: 0.9em; height: 0.9em; border: 1px solid #eee; }
td.heat-0 { background: #ffffff; }
td.heat-1 { background: #c6e48b; }
td.heat-2 { background: #7bc96f; }
td.heat-3 { background: #239a3b; }
td.heat-4 { background: #196127; }
td.heat-holiday { border: 1px solid #d73a49; }
table.fixtures td { padding: 0.1em 0.8em 0.1em 0; }
.mark { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Subtitle}}</p>
{{template "heatmap" .Heatmap}}

<h1>Divisions</h1>
{{range .Divisions}}
<h2>{{.Title}}</h2>
{{template "heatmap" .Heatmap}}
{{template "fixtures" .Fixtures}}
{{end}}

<h1>Venues</h1>
{{range .Venues}}
<h2>{{.Title}}</h2>
{{template "heatmap" .Heatmap}}
{{template "fixtures" .Fixtures}}
{{end}}

<h1>Teams</h1>
{{range .Teams}}
<h2>{{.Title}}</h2>
{{template "fixtures" .Fixtures}}
{{end}}
</body>
</html>
{{define "heatmap"}}<table class="heatmap"><tbody>
{{range .}}<tr>{{range .}}<td class="heat-{{.Heat}}{{if .Holiday}} heat-holiday{{end}}" title="{{.Date.Format "2006-01-02"}}"></td>{{end}}</tr>
{{end}}</tbody></table>{{end}}
{{define "fixtures"}}<table class="fixtures"><tbody>
{{range .}}<tr><td>{{.Date}}</td><td>{{.Label}}</td>{{with .Mark}}<td class="mark">{{.}}</td>{{end}}</tr>
{{end}}</tbody></table>{{end}}`))
