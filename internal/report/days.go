package report

import (
	"fmt"

	"camp-admin/backend/internal/daydate"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/person"
	"camp-admin/backend/internal/domain/shift"
	ss "camp-admin/backend/internal/spreadsheet"
)

// ChildrenPerDay counts, per day with shifts, how many different children
// attended at least one shift that day.
func (b *Builder) ChildrenPerDay(shifts []shift.Shift, atts []attendance.ShiftAttendances, year int) ss.Data {
	log := b.log()
	on := attendance.FromLoaded(attendance.Children, atts)

	groups, invalid := shift.GroupByDay(shifts)
	for _, s := range invalid {
		log.Warn("shift has invalid day id", "shift", s.ID, "dayId", s.DayID)
	}

	return ss.Data{
		Filename: fmt.Sprintf("Aantal unieke kinderen per dag %d", year),
		Worksheets: []ss.Worksheet{{
			Name: fmt.Sprintf("Unieke kinderen per dag %d", year),
			Columns: []ss.Column{
				ss.NewColumn(20, ss.Header("Dag"), groups, func(g shift.DayGroup) ss.Value { return ss.Date(g.Day) }),
				ss.NewColumn(25, ss.Header("Aantal unieke kinderen"), groups, func(g shift.DayGroup) ss.Value {
					return ss.Int(on.UniqueAttendances(attendance.Children, shift.IDs(g.Shifts)))
				}),
			},
		}},
	}
}

type dayRow struct {
	child    child.Child
	ageGroup string
	shift    shift.Shift
}

// DayOverview lists every child attending a shift on day, one row per child
// and shift, ordered by shift and then by name.
func (b *Builder) DayOverview(children []child.Child, shifts []shift.Shift, atts []attendance.ShiftAttendances, day daydate.Day) ss.Data {
	log := b.log()
	byID := person.IndexByID(children)

	var rows []dayRow
	for _, s := range shift.Sorted(shift.OnDay(shifts, day)) {
		loaded, _ := attendance.Find(atts, s.ID)
		on := attendance.ForAudience(attendance.Children, loaded)

		var attending []child.Child
		for _, id := range on.AttendingIDs(attendance.Children) {
			c, ok := byID[id]
			if !ok {
				log.Warn("attending child not found", "shift", s.ID, "child", id)
				continue
			}
			attending = append(attending, c)
		}
		for _, c := range person.SortByName(attending) {
			rec, _ := on.Record(attendance.Children, c.ID)
			rows = append(rows, dayRow{child: c, ageGroup: rec.AgeGroupName, shift: s})
		}
	}

	return ss.Data{
		Filename: "Overzicht voor " + day.Format("-"),
		Worksheets: []ss.Worksheet{{
			Name: "Aanwezigheden kinderen",
			Columns: []ss.Column{
				ss.NewColumn(0, ss.Header("Voornaam"), rows, func(r dayRow) ss.Value { return text(r.child.FirstName) }),
				ss.NewColumn(0, ss.Header("Achternaam"), rows, func(r dayRow) ss.Value { return text(r.child.LastName) }),
				ss.NewColumn(0, ss.Header("Leeftijdsgroep"), rows, func(r dayRow) ss.Value { return text(r.ageGroup) }),
				ss.NewColumn(0, ss.Header("Soort"), rows, func(r dayRow) ss.Value { return text(r.shift.Kind) }),
				ss.NewColumn(0, ss.Header("Beschrijving"), rows, func(r dayRow) ss.Value { return text(r.shift.Description) }),
			},
		}},
	}
}
