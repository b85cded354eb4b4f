package person

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Named is implemented by every entity that appears as a row in a report.
type Named interface {
	PersonID() string
	GivenName() string
	FamilyName() string
}

// sortLanguage is the locale used to order names in reports.
var sortLanguage = language.Dutch

// SortByName returns a copy of list ordered by last name, then first name,
// then id. A collator is created per call since collate.Collator is not safe
// for concurrent use.
func SortByName[T Named](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)

	c := collate.New(sortLanguage, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if r := c.CompareString(a.FamilyName(), b.FamilyName()); r != 0 {
			return r < 0
		}
		if r := c.CompareString(a.GivenName(), b.GivenName()); r != 0 {
			return r < 0
		}
		return a.PersonID() < b.PersonID()
	})
	return out
}

// WithAttendances keeps the entities for which count reports at least one
// attendance. The input slice is not modified.
func WithAttendances[T Named](list []T, count func(id string) int) []T {
	out := make([]T, 0, len(list))
	for _, p := range list {
		if count(p.PersonID()) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// IndexByID maps id to entity. The first entity wins on duplicate ids.
func IndexByID[T Named](list []T) map[string]T {
	out := make(map[string]T, len(list))
	for _, p := range list {
		if _, ok := out[p.PersonID()]; !ok {
			out[p.PersonID()] = p
		}
	}
	return out
}

type Address struct {
	Street  string `firestore:"street,omitempty" json:"street,omitempty"`
	Number  string `firestore:"number,omitempty" json:"number,omitempty"`
	ZipCode string `firestore:"zipCode,omitempty" json:"zipCode,omitempty"`
	City    string `firestore:"city,omitempty" json:"city,omitempty"`
}

// IsValid reports whether the address is complete enough to send mail to.
func (a Address) IsValid() bool {
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.ZipCode) != "" &&
		strings.TrimSpace(a.City) != ""
}

// StreetAndNumber is "street number", trimmed.
func (a Address) StreetAndNumber() string {
	return strings.TrimSpace(strings.TrimSpace(a.Street) + " " + strings.TrimSpace(a.Number))
}

// Formatted renders "Street 1, 1000 City", leaving out missing parts.
func (a Address) Formatted() string {
	line1 := a.StreetAndNumber()
	line2 := strings.TrimSpace(strings.TrimSpace(a.ZipCode) + " " + strings.TrimSpace(a.City))
	switch {
	case line1 == "":
		return line2
	case line2 == "":
		return line1
	default:
		return fmt.Sprintf("%s, %s", line1, line2)
	}
}

type Phone struct {
	PhoneNumber string `firestore:"phoneNumber" json:"phoneNumber"`
	Comment     string `firestore:"comment,omitempty" json:"comment,omitempty"`
}

func (p Phone) String() string {
	if p.Comment == "" {
		return p.PhoneNumber
	}
	return fmt.Sprintf("%s (%s)", p.PhoneNumber, p.Comment)
}

// JoinPhones renders a phone list as one cell.
func JoinPhones(phones []Phone) string {
	parts := make([]string, 0, len(phones))
	for _, p := range phones {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
