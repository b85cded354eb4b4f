// Package daydate holds a calendar day without time of day or location.
package daydate

import (
	"fmt"
	"strings"
	"time"
)

// Day is stored in Firestore as {year, month, day}.
type Day struct {
	Year  int `firestore:"year" json:"year"`
	Month int `firestore:"month" json:"month"`
	Day   int `firestore:"day" json:"day"`
}

// dayIDLayout accepts both "2020-07-01" and "2020-7-1".
const dayIDLayout = "2006-1-2"

func New(year int, month time.Month, day int) Day {
	return Day{Year: year, Month: int(month), Day: day}
}

func FromTime(t time.Time) Day {
	return Day{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// FromDayID parses a shift day identifier. Ids that do not name a real
// calendar day (e.g. "2020-02-30") are rejected.
func FromDayID(id string) (Day, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Day{}, false
	}
	t, err := time.Parse(dayIDLayout, id)
	if err != nil {
		return Day{}, false
	}
	return FromTime(t), true
}

func (d Day) DayID() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Day) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// Compare returns -1, 0 or +1.
func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }

// Format renders the day as DD<sep>MM<sep>YYYY.
func (d Day) Format(sep string) string {
	return fmt.Sprintf("%02d%s%02d%s%04d", d.Day, sep, d.Month, sep, d.Year)
}

func (d Day) String() string { return d.DayID() }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
