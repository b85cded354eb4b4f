package crew

import (
	"strings"

	"camp-admin/backend/internal/daydate"
	"camp-admin/backend/internal/domain/person"
)

type Certificates struct {
	HasPlayworkerCertificate bool `firestore:"hasPlayworkerCertificate" json:"hasPlayworkerCertificate"`
	HasTeamleaderCertificate bool `firestore:"hasTeamleaderCertificate" json:"hasTeamleaderCertificate"`
	HasTrainerCertificate    bool `firestore:"hasTrainerCertificate" json:"hasTrainerCertificate"`
}

// Labels lists the held certificates in a fixed order.
func (c Certificates) Labels() []string {
	var out []string
	if c.HasPlayworkerCertificate {
		out = append(out, "Attest animator")
	}
	if c.HasTeamleaderCertificate {
		out = append(out, "Attest hoofdanimator")
	}
	if c.HasTrainerCertificate {
		out = append(out, "Attest instructeur")
	}
	return out
}

// Crew is a crew member ("animator").
type Crew struct {
	ID           string         `firestore:"-" json:"id"`
	Tenant       string         `firestore:"tenant" json:"tenant"`
	FirstName    string         `firestore:"firstName" json:"firstName"`
	LastName     string         `firestore:"lastName" json:"lastName"`
	BirthDate    *daydate.Day   `firestore:"birthDate,omitempty" json:"birthDate,omitempty"`
	Address      person.Address `firestore:"address" json:"address"`
	Phone        []person.Phone `firestore:"phone" json:"phone"`
	Email        []string       `firestore:"email" json:"email"`
	Active       bool           `firestore:"active" json:"active"`
	BankAccount  string         `firestore:"bankAccount,omitempty" json:"bankAccount,omitempty"`
	YearStarted  *int           `firestore:"yearStarted,omitempty" json:"yearStarted,omitempty"`
	Certificates *Certificates  `firestore:"certificates,omitempty" json:"certificates,omitempty"`
	Remarks      string         `firestore:"remarks" json:"remarks"`
}

func (c Crew) PersonID() string   { return c.ID }
func (c Crew) GivenName() string  { return c.FirstName }
func (c Crew) FamilyName() string { return c.LastName }

// CertificatesLabel joins the held certificates; no certificates yields "".
func (c Crew) CertificatesLabel() string {
	if c.Certificates == nil {
		return ""
	}
	return strings.Join(c.Certificates.Labels(), ", ")
}
