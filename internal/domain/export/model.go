package export

import (
	"fmt"
	"strconv"
	"strings"

	"camp-admin/backend/internal/daydate"
)

type Kind string

const (
	KindChildren            Kind = "children"
	KindCrew                Kind = "crew"
	KindChildrenWithComment Kind = "children-with-comment"
	KindChildAttendances    Kind = "child-attendances"
	KindCrewAttendances     Kind = "crew-attendances"
	KindFiscalCertificates  Kind = "fiscal-certificates"
	KindChildrenPerDay      Kind = "children-per-day"
	KindDayOverview         Kind = "day-overview"
)

var kinds = []Kind{
	KindChildren,
	KindCrew,
	KindChildrenWithComment,
	KindChildAttendances,
	KindCrewAttendances,
	KindFiscalCertificates,
	KindChildrenPerDay,
	KindDayOverview,
}

// Kinds lists every supported export.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func (k Kind) Valid() bool {
	for _, v := range kinds {
		if k == v {
			return true
		}
	}
	return false
}

// NeedsYear reports whether the export covers the shifts of one year.
func (k Kind) NeedsYear() bool {
	switch k {
	case KindChildAttendances, KindCrewAttendances, KindFiscalCertificates, KindChildrenPerDay:
		return true
	}
	return false
}

func (k Kind) NeedsDay() bool { return k == KindDayOverview }

// Request is a validated export request. Year and Day are only set when the
// kind needs them.
type Request struct {
	Kind Kind
	Year int
	Day  daydate.Day
}

// ParseRequest validates raw request parameters, e.g. from a query string.
func ParseRequest(kind, year, day string) (Request, error) {
	k := Kind(strings.TrimSpace(kind))
	if !k.Valid() {
		return Request{}, fmt.Errorf("%w: unknown export %q", ErrBadRequest, kind)
	}
	req := Request{Kind: k}

	if k.NeedsYear() {
		y, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil || y < 1 || y > 9999 {
			return Request{}, fmt.Errorf("%w: year is required for %s", ErrBadRequest, k)
		}
		req.Year = y
	}

	if k.NeedsDay() {
		d, ok := daydate.FromDayID(day)
		if !ok {
			return Request{}, fmt.Errorf("%w: day (YYYY-MM-DD) is required for %s", ErrBadRequest, k)
		}
		req.Day = d
	}

	return req, nil
}
