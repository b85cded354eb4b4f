package attendance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OnShift holds the child and crew attendances of exactly one shift.
// It never modifies the maps it was created with.
type OnShift struct {
	shiftID  string
	children map[string]Detail
	crew     map[string]Detail
}

func NewOnShift(shiftID string, children, crew map[string]Detail) OnShift {
	return OnShift{shiftID: shiftID, children: children, crew: crew}
}

// ForAudience wraps loaded attendance data of one audience.
func ForAudience(aud Audience, a ShiftAttendances) OnShift {
	if aud == Crew {
		return NewOnShift(a.ShiftID, nil, a.Records)
	}
	return NewOnShift(a.ShiftID, a.Records, nil)
}

func (a OnShift) ShiftID() string { return a.shiftID }

func (a OnShift) records(aud Audience) map[string]Detail {
	if aud == Crew {
		return a.crew
	}
	return a.children
}

// Record returns the stored record for personID, attended or not.
func (a OnShift) Record(aud Audience, personID string) (Detail, bool) {
	d, ok := a.records(aud)[personID]
	return d, ok
}

func (a OnShift) DidAttend(aud Audience, personID string) bool {
	d, ok := a.Record(aud, personID)
	return ok && d.Attended()
}

func (a OnShift) NumberOfAttendances(aud Audience, personID string) int {
	if a.DidAttend(aud, personID) {
		return 1
	}
	return 0
}

// AmountPaid is zero when there is no record or no amount on it.
func (a OnShift) AmountPaid(aud Audience, personID string) decimal.Decimal {
	d, ok := a.Record(aud, personID)
	if !ok || !d.AmountPaid.Valid {
		return decimal.Zero
	}
	return d.AmountPaid.Decimal
}

// AttendingIDs returns the ids of everyone who attended, sorted.
func (a OnShift) AttendingIDs(aud Audience) []string {
	recs := a.records(aud)
	out := make([]string, 0, len(recs))
	for id, d := range recs {
		if d.Attended() {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (a OnShift) addAttendingTo(aud Audience, set map[string]struct{}) {
	for id, d := range a.records(aud) {
		if d.Attended() {
			set[id] = struct{}{}
		}
	}
}
