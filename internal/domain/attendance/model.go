package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Audience selects which attendance map of a shift is queried.
type Audience int

const (
	Children Audience = iota
	Crew
)

func (a Audience) String() string {
	switch a {
	case Children:
		return "children"
	case Crew:
		return "crew"
	default:
		return "unknown"
	}
}

// Detail is the detailed attendance of one child or crew member on one
// shift. The presence of a Detail means the person attended, unless
// DidAttend explicitly says otherwise.
type Detail struct {
	DidAttend            *bool               `json:"didAttend,omitempty"`
	AmountPaid           decimal.NullDecimal `json:"amountPaid"`
	AgeGroupName         string              `json:"ageGroupName,omitempty"`
	Enrolled             *time.Time          `json:"enrolled,omitempty"`
	EnrolledRegisteredBy string              `json:"enrolledRegisteredBy,omitempty"`
	// Hours is only recorded for crew members.
	Hours decimal.NullDecimal `json:"hours"`
}

func (d Detail) Attended() bool {
	return d.DidAttend == nil || *d.DidAttend
}

// ShiftAttendances is the attendance data of one shift for one audience, as
// loaded from the store.
type ShiftAttendances struct {
	ShiftID string
	Records map[string]Detail
}

// ShiftIDs returns the shift ids in order.
func ShiftIDs(list []ShiftAttendances) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ShiftID)
	}
	return out
}

// Find returns the attendance data for shiftID, if loaded.
func Find(list []ShiftAttendances, shiftID string) (ShiftAttendances, bool) {
	for _, a := range list {
		if a.ShiftID == shiftID {
			return a, true
		}
	}
	return ShiftAttendances{}, false
}
