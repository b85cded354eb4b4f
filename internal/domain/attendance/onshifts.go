package attendance

import "github.com/shopspring/decimal"

// OnShifts aggregates the attendances of many shifts, typically all shifts
// of one year. Everything is held in memory; there is no paging.
type OnShifts struct {
	shifts []OnShift
	index  map[string]int
}

// NewOnShifts keeps the first entry when a shift id occurs more than once.
func NewOnShifts(list ...OnShift) OnShifts {
	s := OnShifts{
		shifts: make([]OnShift, 0, len(list)),
		index:  make(map[string]int, len(list)),
	}
	for _, a := range list {
		if _, dup := s.index[a.shiftID]; dup {
			continue
		}
		s.index[a.shiftID] = len(s.shifts)
		s.shifts = append(s.shifts, a)
	}
	return s
}

// FromLoaded builds the aggregate for one audience from store data.
func FromLoaded(aud Audience, list []ShiftAttendances) OnShifts {
	on := make([]OnShift, 0, len(list))
	for _, a := range list {
		on = append(on, ForAudience(aud, a))
	}
	return NewOnShifts(on...)
}

func (s OnShifts) Len() int { return len(s.shifts) }

func (s OnShifts) ShiftIDs() []string {
	out := make([]string, 0, len(s.shifts))
	for _, a := range s.shifts {
		out = append(out, a.shiftID)
	}
	return out
}

func (s OnShifts) Shift(shiftID string) (OnShift, bool) {
	i, ok := s.index[shiftID]
	if !ok {
		return OnShift{}, false
	}
	return s.shifts[i], true
}

// NumberOfAttendances counts the shifts personID attended.
func (s OnShifts) NumberOfAttendances(aud Audience, personID string) int {
	n := 0
	for _, a := range s.shifts {
		n += a.NumberOfAttendances(aud, personID)
	}
	return n
}

// DidAttend is false for shifts that are not part of the aggregate.
func (s OnShifts) DidAttend(aud Audience, personID, shiftID string) bool {
	a, ok := s.Shift(shiftID)
	return ok && a.DidAttend(aud, personID)
}

// AmountPaidBy sums what personID paid over all shifts.
func (s OnShifts) AmountPaidBy(aud Audience, personID string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.shifts {
		total = total.Add(a.AmountPaid(aud, personID))
	}
	return total
}

// UniqueAttendances counts the distinct people that attended at least one of
// shiftIDs. Unknown shift ids contribute nobody.
func (s OnShifts) UniqueAttendances(aud Audience, shiftIDs []string) int {
	seen := map[string]struct{}{}
	for _, id := range shiftIDs {
		if a, ok := s.Shift(id); ok {
			a.addAttendingTo(aud, seen)
		}
	}
	return len(seen)
}
