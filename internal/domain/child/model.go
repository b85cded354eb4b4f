package child

import (
	"strings"

	"camp-admin/backend/internal/daydate"
	"camp-admin/backend/internal/domain/person"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Label is the Dutch label used in exports; unknown genders yield "".
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Man"
	case GenderFemale:
		return "Vrouw"
	case GenderOther:
		return "Anders"
	default:
		return ""
	}
}

// ContactPersonRef links a child to a contact person of the same tenant.
type ContactPersonRef struct {
	ContactPersonID     string `firestore:"contactPersonId" json:"contactPersonId"`
	RelationshipToChild string `firestore:"relationshipToChild,omitempty" json:"relationshipToChild,omitempty"`
}

type Child struct {
	ID                   string             `firestore:"-" json:"id"`
	Tenant               string             `firestore:"tenant" json:"tenant"`
	FirstName            string             `firestore:"firstName" json:"firstName"`
	LastName             string             `firestore:"lastName" json:"lastName"`
	BirthDate            *daydate.Day       `firestore:"birthDate,omitempty" json:"birthDate,omitempty"`
	Address              person.Address     `firestore:"address" json:"address"`
	Phone                []person.Phone     `firestore:"phone" json:"phone"`
	Email                []string           `firestore:"email" json:"email"`
	Gender               Gender             `firestore:"gender,omitempty" json:"gender,omitempty"`
	UitpasNumber         string             `firestore:"uitpasNumber,omitempty" json:"uitpasNumber,omitempty"`
	Remarks              string             `firestore:"remarks" json:"remarks"`
	PrimaryContactPerson *ContactPersonRef  `firestore:"primaryContactPerson,omitempty" json:"primaryContactPerson,omitempty"`
	ContactPeople        []ContactPersonRef `firestore:"contactPeople" json:"contactPeople"`
	ManagedByParents     []string           `firestore:"managedByParents,omitempty" json:"managedByParents,omitempty"`
}

func (c Child) PersonID() string   { return c.ID }
func (c Child) GivenName() string  { return c.FirstName }
func (c Child) FamilyName() string { return c.LastName }

func (c Child) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Child) HasRemarks() bool {
	return strings.TrimSpace(c.Remarks) != ""
}

// PrimaryContactPersonID returns the referenced contact person id, if any.
func (c Child) PrimaryContactPersonID() (string, bool) {
	if c.PrimaryContactPerson == nil || c.PrimaryContactPerson.ContactPersonID == "" {
		return "", false
	}
	return c.PrimaryContactPerson.ContactPersonID, true
}

// WithRemarks keeps the children that have a non-blank remark.
func WithRemarks(list []Child) []Child {
	out := make([]Child, 0, len(list))
	for _, c := range list {
		if c.HasRemarks() {
			out = append(out, c)
		}
	}
	return out
}
