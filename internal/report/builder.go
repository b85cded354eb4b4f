// Package report turns loaded domain data into spreadsheet.Data. Builders
// never fail: records that cannot be placed are logged and left out.
package report

import (
	"log/slog"
	"strings"

	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/crew"
	"camp-admin/backend/internal/domain/person"
	ss "camp-admin/backend/internal/spreadsheet"
)

type Builder struct {
	Log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{Log: log}
}

func (b *Builder) log() *slog.Logger {
	if b == nil || b.Log == nil {
		return slog.Default()
	}
	return b.Log
}

func text(s string) ss.Value { return ss.String(s) }

func yesNo(v bool) string {
	if v {
		return "Ja"
	}
	return "Nee"
}

// ChildList is the full roster in the order given.
func (b *Builder) ChildList(children []child.Child) ss.Data {
	return ss.Data{
		Filename: "Alle kinderen",
		Worksheets: []ss.Worksheet{{
			Name:    "Alle kinderen",
			Columns: childColumns(children),
		}},
	}
}

// ChildrenWithCommentList renders the given children as a child list under
// its own title. Filtering on remarks is up to the caller.
func (b *Builder) ChildrenWithCommentList(children []child.Child) ss.Data {
	return ss.Data{
		Filename: "Kinderen met opmerking",
		Worksheets: []ss.Worksheet{{
			Name:    "Kinderen met opmerking",
			Columns: childColumns(children),
		}},
	}
}

func childColumns(list []child.Child) []ss.Column {
	h := ss.Header
	return []ss.Column{
		ss.NewColumn(20, h("Voornaam"), list, func(c child.Child) ss.Value { return text(c.FirstName) }),
		ss.NewColumn(25, h("Familienaam"), list, func(c child.Child) ss.Value { return text(c.LastName) }),
		ss.NewColumn(15, h("Geboortedatum"), list, func(c child.Child) ss.Value { return ss.OptionalDate(c.BirthDate) }),
		ss.NewColumn(25, h("Telefoonnummer"), list, func(c child.Child) ss.Value { return text(person.JoinPhones(c.Phone)) }),
		ss.NewColumn(25, h("Emailadres"), list, func(c child.Child) ss.Value { return text(strings.Join(c.Email, ", ")) }),
		ss.NewColumn(30, h("Adres"), list, func(c child.Child) ss.Value { return text(c.Address.Formatted()) }),
		ss.NewColumn(0, h("Gender"), list, func(c child.Child) ss.Value { return text(c.Gender.Label()) }),
		ss.NewColumn(25, h("Uitpasnummer"), list, func(c child.Child) ss.Value { return text(c.UitpasNumber) }),
		ss.NewColumn(75, h("Opmerkingen"), list, func(c child.Child) ss.Value { return text(c.Remarks) }),
	}
}

// CrewList is the full crew roster in the order given.
func (b *Builder) CrewList(list []crew.Crew) ss.Data {
	h := ss.Header
	return ss.Data{
		Filename: "Alle animatoren",
		Worksheets: []ss.Worksheet{{
			Name: "Alle animatoren",
			Columns: []ss.Column{
				ss.NewColumn(20, h("Voornaam"), list, func(c crew.Crew) ss.Value { return text(c.FirstName) }),
				ss.NewColumn(25, h("Familienaam"), list, func(c crew.Crew) ss.Value { return text(c.LastName) }),
				ss.NewColumn(15, h("Geboortedatum"), list, func(c crew.Crew) ss.Value { return ss.OptionalDate(c.BirthDate) }),
				ss.NewColumn(25, h("Telefoonnummer"), list, func(c crew.Crew) ss.Value { return text(person.JoinPhones(c.Phone)) }),
				ss.NewColumn(25, h("Emailadres"), list, func(c crew.Crew) ss.Value { return text(strings.Join(c.Email, ", ")) }),
				ss.NewColumn(30, h("Adres"), list, func(c crew.Crew) ss.Value { return text(c.Address.Formatted()) }),
				ss.NewColumn(0, h("Actief"), list, func(c crew.Crew) ss.Value { return text(yesNo(c.Active)) }),
				ss.NewColumn(25, h("Rekeningnummer"), list, func(c crew.Crew) ss.Value { return text(c.BankAccount) }),
				ss.NewColumn(0, h("Gestart in"), list, func(c crew.Crew) ss.Value { return ss.OptionalInt(c.YearStarted) }),
				ss.NewColumn(35, h("Attesten"), list, func(c crew.Crew) ss.Value { return text(c.CertificatesLabel()) }),
				ss.NewColumn(75, h("Opmerkingen"), list, func(c crew.Crew) ss.Value { return text(c.Remarks) }),
			},
		}},
	}
}
