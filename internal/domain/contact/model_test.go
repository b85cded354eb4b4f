package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/contact"
	"camp-admin/backend/internal/domain/person"
)

var gent = person.Address{Street: "Kerkstraat", Number: "1", ZipCode: "9000", City: "Gent"}
var brugge = person.Address{Street: "Markt", Number: "7", ZipCode: "8000", City: "Brugge"}

func TestAddressForChildPrefersOwnAddress(t *testing.T) {
	c := child.Child{Address: gent, PrimaryContactPerson: &child.ContactPersonRef{ContactPersonID: "p1"}}
	contacts := []contact.Person{{ID: "p1", Address: brugge}}

	addr, ok := contact.AddressForChild(c, contacts)

	assert.True(t, ok)
	assert.Equal(t, gent, addr)
}

func TestAddressForChildFallsBackToPrimaryContact(t *testing.T) {
	c := child.Child{PrimaryContactPerson: &child.ContactPersonRef{ContactPersonID: "p1"}}
	contacts := []contact.Person{{ID: "p0", Address: gent}, {ID: "p1", Address: brugge}}

	addr, ok := contact.AddressForChild(c, contacts)

	assert.True(t, ok)
	assert.Equal(t, brugge, addr)
}

func TestAddressForChildUnknownContact(t *testing.T) {
	c := child.Child{PrimaryContactPerson: &child.ContactPersonRef{ContactPersonID: "missing"}}

	addr, ok := contact.AddressForChild(c, []contact.Person{{ID: "p1", Address: brugge}})

	assert.False(t, ok)
	assert.Equal(t, person.Address{}, addr)

	_, ok = contact.PrimaryContact(child.Child{}, nil)
	assert.False(t, ok)
}
