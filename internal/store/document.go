// Package store persists leagues as JSON documents and rebuilds the entity
// graph from them. The document shape is stable; round-tripping a league
// through Marshal and Parse reproduces the same document modulo key order.
package store

// Document is the top-level persisted league.
type Document struct {
	Name      string        `json:"name" mapstructure:"name"`
	Start     string        `json:"start" mapstructure:"start"`
	End       string        `json:"end" mapstructure:"end"`
	Venues    []VenueDoc    `json:"venues" mapstructure:"venues"`
	Clubs     []ClubDoc     `json:"clubs" mapstructure:"clubs"`
	Divisions []DivisionDoc `json:"divisions" mapstructure:"divisions"`
	Calendar  CalendarDoc   `json:"calendar" mapstructure:"calendar"`
	OnlyWhen  []OnlyWhenDoc `json:"onlyWhen,omitempty" mapstructure:"onlyWhen"`
}

type VenueDoc struct {
	Name string `json:"name" mapstructure:"name"`

	// MaxMatchesPerDay is a pointer so that an absent field can fall back to
	// the venue default instead of reading as capacity zero.
	MaxMatchesPerDay  *int        `json:"maxMatchesPerDay" mapstructure:"maxMatchesPerDay"`
	MinimizeEmptyDays bool        `json:"minimizeEmptyDays" mapstructure:"minimizeEmptyDays"`
	Calendar          CalendarDoc `json:"calendar" mapstructure:"calendar"`
}

type ClubDoc struct {
	Name      string      `json:"name" mapstructure:"name"`
	Venue     string      `json:"venue" mapstructure:"venue"`
	Weekday   int         `json:"weekday" mapstructure:"weekday"`
	LateStart *string     `json:"lateStart" mapstructure:"lateStart"`
	Teams     []string    `json:"teams" mapstructure:"teams"`
	Calendar  CalendarDoc `json:"calendar" mapstructure:"calendar"`
}

type DivisionDoc struct {
	Name     string       `json:"name" mapstructure:"name"`
	Teams    []string     `json:"teams" mapstructure:"teams"`
	Fixtures []FixtureDoc `json:"fixtures" mapstructure:"fixtures"`
}

type FixtureDoc struct {
	Home string  `json:"home" mapstructure:"home"`
	Away string  `json:"away" mapstructure:"away"`
	Date *string `json:"date" mapstructure:"date"`
}

type CalendarDoc struct {
	Holidays []string `json:"holidays" mapstructure:"holidays"`
}

type OnlyWhenDoc struct {
	Club      string `json:"club" mapstructure:"club"`
	Reference string `json:"reference" mapstructure:"reference"`
}
