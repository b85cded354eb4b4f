package shift

import (
	"sort"

	"github.com/shopspring/decimal"

	"camp-admin/backend/internal/daydate"
)

// Known shift kinds, in the order they happen on a day.
const (
	KindMorning   = "Voormiddag"
	KindNoon      = "Middag"
	KindAfternoon = "Namiddag"
	KindFullDay   = "Volledige dag"
	KindExternal  = "Externe activiteit"
	KindOther     = "Andere"
)

var kindOrder = map[string]int{
	KindMorning:   0,
	KindNoon:      1,
	KindAfternoon: 2,
	KindFullDay:   3,
	KindExternal:  4,
	KindOther:     5,
}

// Shift is one scheduled block of activity on a day.
type Shift struct {
	ID          string          `json:"id"`
	Tenant      string          `json:"tenant"`
	DayID       string          `json:"dayId"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Location    string          `json:"location,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

func (s Shift) Day() (daydate.Day, bool) {
	return daydate.FromDayID(s.DayID)
}

func kindRank(kind string) int {
	if r, ok := kindOrder[kind]; ok {
		return r
	}
	return len(kindOrder)
}

// Sorted returns a copy of shifts ordered by day, then kind. Shifts that
// compare equal keep their input order; unparseable days go last.
func Sorted(shifts []Shift) []Shift {
	out := make([]Shift, len(shifts))
	copy(out, shifts)

	sort.SliceStable(out, func(i, j int) bool {
		di, okI := out[i].Day()
		dj, okJ := out[j].Day()
		if okI != okJ {
			return okI
		}
		if okI {
			if c := di.Compare(dj); c != 0 {
				return c < 0
			}
		}
		return kindRank(out[i].Kind) < kindRank(out[j].Kind)
	})
	return out
}

// OnDay keeps the shifts taking place on day, in input order.
func OnDay(shifts []Shift, day daydate.Day) []Shift {
	out := []Shift{}
	for _, s := range shifts {
		if d, ok := s.Day(); ok && d == day {
			out = append(out, s)
		}
	}
	return out
}

// InYear keeps the shifts taking place in year.
func InYear(shifts []Shift, year int) []Shift {
	out := []Shift{}
	for _, s := range shifts {
		if d, ok := s.Day(); ok && d.Year == year {
			out = append(out, s)
		}
	}
	return out
}

// IDs returns the shift ids in order.
func IDs(shifts []Shift) []string {
	out := make([]string, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, s.ID)
	}
	return out
}

type DayGroup struct {
	Day    daydate.Day
	Shifts []Shift
}

// GroupByDay groups shifts by calendar day, chronologically. Shifts with an
// unparseable day id are returned separately.
func GroupByDay(shifts []Shift) (groups []DayGroup, invalid []Shift) {
	byDay := map[daydate.Day]int{}
	for _, s := range shifts {
		d, ok := s.Day()
		if !ok {
			invalid = append(invalid, s)
			continue
		}
		i, seen := byDay[d]
		if !seen {
			i = len(groups)
			byDay[d] = i
			groups = append(groups, DayGroup{Day: d})
		}
		groups[i].Shifts = append(groups[i].Shifts, s)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.Before(groups[j].Day)
	})
	return groups, invalid
}
