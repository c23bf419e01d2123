package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/nottschess/leaguegen/internal/league"
)

// Load reads and resolves a persisted league document.
func Load(path string) (*league.League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return Parse(data)
}

// Parse decodes a league document and resolves every name reference into
// the entity graph. Missing fields and dangling references are errors.
func Parse(data []byte) (*league.League, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("store: malformed document: %w", err)
	}
	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: malformed document: %w", err)
	}
	return resolve(&doc)
}

// Save writes the league to path as an indented JSON document.
func Save(path string, l *league.League) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Marshal renders the league as its persisted document.
func Marshal(l *league.League) ([]byte, error) {
	doc := Document{
		Name:     l.Name,
		Start:    l.Start.Format(league.DateFormat),
		End:      l.End.Format(league.DateFormat),
		Calendar: calendarDoc(l.Calendar),
	}
	for _, v := range l.Venues() {
		doc.Venues = append(doc.Venues, VenueDoc{
			Name:              v.Name,
			MaxMatchesPerDay:  lo.ToPtr(v.MaxMatchesPerDay),
			MinimizeEmptyDays: v.MinimizeEmptyDays,
			Calendar:          calendarDoc(v.Calendar),
		})
	}
	for _, c := range l.Clubs() {
		cd := ClubDoc{
			Name:    c.Name,
			Venue:   c.Venue.Name,
			Weekday: int(c.Weekday),
			Teams: lo.Map(c.Teams, func(t *league.Team, _ int) string {
				return t.Name
			}),
			Calendar: calendarDoc(c.Calendar),
		}
		if !c.LateStart.IsZero() {
			cd.LateStart = lo.ToPtr(c.LateStart.Format(league.DateFormat))
		}
		doc.Clubs = append(doc.Clubs, cd)
	}
	for _, d := range l.Divisions {
		dd := DivisionDoc{
			Name: d.Name,
			Teams: lo.Map(d.Teams, func(t *league.Team, _ int) string {
				return t.Name
			}),
		}
		for _, f := range d.Fixtures {
			fd := FixtureDoc{Home: f.Home.Name, Away: f.Away.Name}
			if !f.Date.IsZero() {
				fd.Date = lo.ToPtr(f.Date.Format(league.DateFormat))
			}
			dd.Fixtures = append(dd.Fixtures, fd)
		}
		doc.Divisions = append(doc.Divisions, dd)
	}
	for _, rel := range l.OnlyWhen {
		doc.OnlyWhen = append(doc.OnlyWhen, OnlyWhenDoc{
			Club:      rel.Club.Name,
			Reference: rel.Reference.Name,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return append(data, '\n'), nil
}

func calendarDoc(c league.Calendar) CalendarDoc {
	return CalendarDoc{
		Holidays: lo.Map(c.Holidays(), func(d time.Time, _ int) string {
			return d.Format(league.DateFormat)
		}),
	}
}

func resolve(doc *Document) (*league.League, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("store: document has no league name")
	}
	start, err := parseDate(doc.Start)
	if err != nil {
		return nil, fmt.Errorf("store: league start: %w", err)
	}
	end, err := parseDate(doc.End)
	if err != nil {
		return nil, fmt.Errorf("store: league end: %w", err)
	}

	venues := make(map[string]*league.Venue, len(doc.Venues))
	venueOrder := make([]*league.Venue, 0, len(doc.Venues))
	for _, vd := range doc.Venues {
		if vd.Name == "" {
			return nil, fmt.Errorf("store: venue without a name")
		}
		if _, ok := venues[vd.Name]; ok {
			return nil, fmt.Errorf("store: duplicate venue %q", vd.Name)
		}
		v := league.NewVenue(vd.Name)
		if vd.MaxMatchesPerDay != nil {
			v.MaxMatchesPerDay = *vd.MaxMatchesPerDay
		}
		v.MinimizeEmptyDays = vd.MinimizeEmptyDays
		if v.Calendar, err = parseCalendar(vd.Calendar); err != nil {
			return nil, fmt.Errorf("store: venue %q: %w", vd.Name, err)
		}
		venues[vd.Name] = v
		venueOrder = append(venueOrder, v)
	}

	clubs := make(map[string]*league.Club, len(doc.Clubs))
	clubOrder := make([]*league.Club, 0, len(doc.Clubs))
	teams := make(map[string]*league.Team)
	for _, cd := range doc.Clubs {
		venue, ok := venues[cd.Venue]
		if !ok {
			return nil, fmt.Errorf("store: club %q references unknown venue %q", cd.Name, cd.Venue)
		}
		weekday := league.Weekday(cd.Weekday)
		if !weekday.Valid() {
			return nil, fmt.Errorf("store: club %q has weekday %d, want 1-7", cd.Name, cd.Weekday)
		}
		if _, ok := clubs[cd.Name]; ok {
			return nil, fmt.Errorf("store: duplicate club %q", cd.Name)
		}
		c := league.NewClub(cd.Name, venue, weekday)
		if cd.LateStart != nil {
			if c.LateStart, err = parseDate(*cd.LateStart); err != nil {
				return nil, fmt.Errorf("store: club %q late start: %w", cd.Name, err)
			}
		}
		if c.Calendar, err = parseCalendar(cd.Calendar); err != nil {
			return nil, fmt.Errorf("store: club %q: %w", cd.Name, err)
		}
		for _, name := range cd.Teams {
			if _, ok := teams[name]; ok {
				return nil, fmt.Errorf("store: duplicate team %q", name)
			}
			teams[name] = c.NewNamedTeam(name)
		}
		clubs[cd.Name] = c
		clubOrder = append(clubOrder, c)
	}

	var divisions []*league.Division
	for _, dd := range doc.Divisions {
		var divTeams []*league.Team
		for _, name := range dd.Teams {
			t, ok := teams[name]
			if !ok {
				return nil, fmt.Errorf("store: division %q references unknown team %q", dd.Name, name)
			}
			divTeams = append(divTeams, t)
		}
		var fixtures []*league.Fixture
		for _, fd := range dd.Fixtures {
			home, ok := teams[fd.Home]
			if !ok {
				return nil, fmt.Errorf("store: division %q: unknown home team %q", dd.Name, fd.Home)
			}
			away, ok := teams[fd.Away]
			if !ok {
				return nil, fmt.Errorf("store: division %q: unknown away team %q", dd.Name, fd.Away)
			}
			f := league.NewFixture(home, away)
			if fd.Date != nil {
				if f.Date, err = parseDate(*fd.Date); err != nil {
					return nil, fmt.Errorf("store: fixture %q: %w", f.Name(), err)
				}
			}
			fixtures = append(fixtures, f)
		}
		d, err := league.AssembleDivision(dd.Name, divTeams, fixtures)
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		divisions = append(divisions, d)
	}

	calendar, err := parseCalendar(doc.Calendar)
	if err != nil {
		return nil, fmt.Errorf("store: league calendar: %w", err)
	}
	l, err := league.New(doc.Name, start, end, calendar, divisions)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	// Saving must reproduce the document, so the league keeps the declared
	// venue and club order rather than the order divisions happen to visit.
	if err := l.DeclareRoster(venueOrder, clubOrder); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	for _, owd := range doc.OnlyWhen {
		constrained, ok := clubs[owd.Club]
		if !ok {
			return nil, fmt.Errorf("store: onlyWhen references unknown club %q", owd.Club)
		}
		reference, ok := clubs[owd.Reference]
		if !ok {
			return nil, fmt.Errorf("store: onlyWhen references unknown club %q", owd.Reference)
		}
		l.OnlyWhen = append(l.OnlyWhen, league.OnlyWhen{Club: constrained, Reference: reference})
	}
	return l, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	d, err := time.Parse(league.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return league.Date(d.Year(), d.Month(), d.Day()), nil
}

func parseCalendar(cd CalendarDoc) (league.Calendar, error) {
	holidays := make([]time.Time, len(cd.Holidays))
	for i, s := range cd.Holidays {
		d, err := parseDate(s)
		if err != nil {
			return league.Calendar{}, fmt.Errorf("calendar: %w", err)
		}
		holidays[i] = d
	}
	return league.NewCalendar(holidays...), nil
}
