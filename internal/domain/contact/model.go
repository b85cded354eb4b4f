package contact

import (
	"strings"

	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/person"
)

// Person is a parent, guardian or other contact of one or more children.
type Person struct {
	ID        string         `firestore:"-" json:"id"`
	Tenant    string         `firestore:"tenant" json:"tenant"`
	FirstName string         `firestore:"firstName" json:"firstName"`
	LastName  string         `firestore:"lastName" json:"lastName"`
	Address   person.Address `firestore:"address" json:"address"`
	Phone     []person.Phone `firestore:"phone" json:"phone"`
	Email     []string       `firestore:"email" json:"email"`
	Remarks   string         `firestore:"remarks" json:"remarks"`
}

func (p Person) PersonID() string   { return p.ID }
func (p Person) GivenName() string  { return p.FirstName }
func (p Person) FamilyName() string { return p.LastName }

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Find returns the first contact with the given id.
func Find(contacts []Person, id string) (Person, bool) {
	if id == "" {
		return Person{}, false
	}
	for _, p := range contacts {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// PrimaryContact resolves the child's primary contact person among contacts.
// A child without primary contact, or one referencing an unknown contact,
// yields false.
func PrimaryContact(c child.Child, contacts []Person) (Person, bool) {
	id, ok := c.PrimaryContactPersonID()
	if !ok {
		return Person{}, false
	}
	return Find(contacts, id)
}

// AddressForChild returns the child's own address when it is valid and
// otherwise the address of the child's primary contact person.
func AddressForChild(c child.Child, contacts []Person) (person.Address, bool) {
	if c.Address.IsValid() {
		return c.Address, true
	}
	p, ok := PrimaryContact(c, contacts)
	if !ok || !p.Address.IsValid() {
		return person.Address{}, false
	}
	return p.Address, true
}
