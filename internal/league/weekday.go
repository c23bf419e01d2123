package league

import "time"

// Weekday is an ISO-8601 weekday: 1 is Monday, 7 is Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (w Weekday) String() string {
	if name, ok := weekdayNames[w]; ok {
		return name
	}
	return "Weekday(?)"
}

// Valid reports whether w is one of the seven ISO weekdays.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayOf returns the ISO weekday of d.
func WeekdayOf(d time.Time) Weekday {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Weekday(wd)
}

// DateFormat is the ISO date layout used everywhere dates are rendered or parsed.
const DateFormat = "2006-01-02"

// Date builds a date at UTC midnight. All league dates are normalized this way
// so that day arithmetic is exact.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
