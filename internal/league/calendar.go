package league

import (
	"sort"
	"time"
)

// Calendar is an immutable set of holiday dates. Calendars attach to the
// league, to venues, to clubs and to teams independently; a date is a holiday
// for a fixture if any of the attached calendars contains it.
type Calendar struct {
	holidays map[time.Time]bool
}

// NewCalendar builds a calendar from the given holiday dates.
func NewCalendar(holidays ...time.Time) Calendar {
	set := make(map[time.Time]bool, len(holidays))
	for _, d := range holidays {
		set[Date(d.Year(), d.Month(), d.Day())] = true
	}
	return Calendar{holidays: set}
}

// EmptyCalendar is the default calendar for entities without blackout dates.
func EmptyCalendar() Calendar {
	return Calendar{}
}

// IsHoliday reports whether d is a holiday.
func (c Calendar) IsHoliday(d time.Time) bool {
	return c.holidays[Date(d.Year(), d.Month(), d.Day())]
}

// Holidays returns the holiday dates in ascending order.
func (c Calendar) Holidays() []time.Time {
	out := make([]time.Time, 0, len(c.holidays))
	for d := range c.holidays {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Len returns the number of holidays.
func (c Calendar) Len() int {
	return len(c.holidays)
}
