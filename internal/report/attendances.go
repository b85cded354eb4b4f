package report

import (
	"fmt"
	"log/slog"

	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/contact"
	"camp-admin/backend/internal/domain/crew"
	"camp-admin/backend/internal/domain/person"
	"camp-admin/backend/internal/domain/shift"
	ss "camp-admin/backend/internal/spreadsheet"
)

// ChildAttendanceList shows, per child with at least one attendance, on which
// shifts of year the child was present.
func (b *Builder) ChildAttendanceList(children []child.Child, shifts []shift.Shift, atts []attendance.ShiftAttendances, year int) ss.Data {
	name := fmt.Sprintf("Aanwezigheden kinderen %d", year)
	return attendanceList(b.log(), name, attendance.Children, children, shifts, atts)
}

// CrewAttendanceList is ChildAttendanceList for crew members.
func (b *Builder) CrewAttendanceList(members []crew.Crew, shifts []shift.Shift, atts []attendance.ShiftAttendances, year int) ss.Data {
	name := fmt.Sprintf("Aanwezigheden animatoren %d", year)
	return attendanceList(b.log(), name, attendance.Crew, members, shifts, atts)
}

func attendanceList[T person.Named](log *slog.Logger, name string, aud attendance.Audience, people []T, shifts []shift.Shift, atts []attendance.ShiftAttendances) ss.Data {
	on := attendance.FromLoaded(aud, atts)
	sorted := shift.Sorted(shifts)
	subjects := person.WithAttendances(person.SortByName(people), func(id string) int {
		return on.NumberOfAttendances(aud, id)
	})
	warnUnknownShifts(log, aud, sorted, on)

	cols := []ss.Column{
		ss.NewColumn(20, ss.Header("", "", "Voornaam"), subjects, func(p T) ss.Value { return text(p.GivenName()) }),
		ss.NewColumn(25, ss.Header("", "", "Familienaam"), subjects, func(p T) ss.Value { return text(p.FamilyName()) }),
	}
	for _, s := range sorted {
		cols = append(cols, ss.NewColumn(22,
			[]ss.Value{shiftDay(log, s), text(s.Kind), text(s.Description)},
			subjects,
			func(p T) ss.Value { return ss.Bool(on.DidAttend(aud, p.PersonID(), s.ID)) },
		))
	}

	return ss.Data{
		Filename:   name,
		Worksheets: []ss.Worksheet{{Name: name, Columns: cols}},
	}
}

// FiscalCertificates lists, per child with attendances in year, what was paid
// and where the tax certificate should be sent.
func (b *Builder) FiscalCertificates(children []child.Child, contacts []contact.Person, shifts []shift.Shift, atts []attendance.ShiftAttendances, year int) ss.Data {
	log := b.log()
	aud := attendance.Children
	on := attendance.FromLoaded(aud, atts)
	sorted := shift.Sorted(shifts)
	subjects := person.WithAttendances(person.SortByName(children), func(id string) int {
		return on.NumberOfAttendances(aud, id)
	})
	warnUnknownShifts(log, aud, sorted, on)

	address := func(c child.Child) person.Address {
		a, _ := contact.AddressForChild(c, contacts)
		return a
	}
	head := func(label string) []ss.Value {
		return ss.Header("", "", "", label)
	}

	cols := []ss.Column{
		ss.NewColumn(20, head("Voornaam"), subjects, func(c child.Child) ss.Value { return text(c.FirstName) }),
		ss.NewColumn(25, head("Familienaam"), subjects, func(c child.Child) ss.Value { return text(c.LastName) }),
		ss.NewColumn(25, head("Totaal (incl. korting)"), subjects, func(c child.Child) ss.Value {
			return ss.Number(on.AmountPaidBy(aud, c.ID))
		}),
		ss.NewColumn(25, head("Geboortedatum"), subjects, func(c child.Child) ss.Value { return ss.OptionalDate(c.BirthDate) }),
		ss.NewColumn(25, head("Contactpersoon"), subjects, func(c child.Child) ss.Value {
			p, ok := contact.PrimaryContact(c, contacts)
			if !ok {
				if id, has := c.PrimaryContactPersonID(); has {
					log.Warn("primary contact person not found", "child", c.ID, "contactPerson", id)
				}
				return text("")
			}
			return text(p.FullName())
		}),
		ss.NewColumn(25, head("Straat en nummer"), subjects, func(c child.Child) ss.Value { return text(address(c).StreetAndNumber()) }),
		ss.NewColumn(25, head("Postcode"), subjects, func(c child.Child) ss.Value { return text(address(c).ZipCode) }),
		ss.NewColumn(25, head("Stad"), subjects, func(c child.Child) ss.Value { return text(address(c).City) }),
		legendColumn(len(subjects)),
	}
	for _, s := range sorted {
		cols = append(cols, ss.NewColumn(22,
			[]ss.Value{shiftDay(log, s), text(s.Kind), ss.Number(s.Price), text(s.Description)},
			subjects,
			func(c child.Child) ss.Value { return ss.Bool(on.DidAttend(aud, c.ID, s.ID)) },
		))
	}

	name := fmt.Sprintf("Data fiscale attesten %d", year)
	return ss.Data{
		Filename:   name,
		Worksheets: []ss.Worksheet{{Name: name, Columns: cols}},
	}
}

// legendColumn labels the four header rows of the shift columns and is blank
// next to the children.
func legendColumn(rows int) ss.Column {
	values := ss.Header("Dag", "Type", "Prijs", "Beschrijving")
	for i := 0; i < rows; i++ {
		values = append(values, ss.Empty())
	}
	return ss.Column{Values: values, Width: 25}
}

func shiftDay(log *slog.Logger, s shift.Shift) ss.Value {
	d, ok := s.Day()
	if !ok {
		log.Warn("shift has invalid day id", "shift", s.ID, "dayId", s.DayID)
		return text(s.DayID)
	}
	return ss.Date(d)
}

// warnUnknownShifts logs attendances recorded on shifts that are not part of
// the report. They still count towards totals.
func warnUnknownShifts(log *slog.Logger, aud attendance.Audience, shifts []shift.Shift, on attendance.OnShifts) {
	known := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		known[s.ID] = struct{}{}
	}
	for _, id := range on.ShiftIDs() {
		if _, ok := known[id]; !ok {
			log.Warn("attendances for unknown shift", "audience", aud.String(), "shift", id)
		}
	}
}
