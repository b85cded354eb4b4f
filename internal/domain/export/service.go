package export

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"camp-admin/backend/internal/daydate"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/contact"
	"camp-admin/backend/internal/domain/crew"
	"camp-admin/backend/internal/domain/person"
	"camp-admin/backend/internal/domain/shift"
	"camp-admin/backend/internal/report"
	ss "camp-admin/backend/internal/spreadsheet"
)

type ChildLister interface {
	ListForTenant(ctx context.Context, tenant string) ([]child.Child, error)
}

type CrewLister interface {
	ListForTenant(ctx context.Context, tenant string) ([]crew.Crew, error)
}

type ContactLister interface {
	ListForTenant(ctx context.Context, tenant string) ([]contact.Person, error)
}

type ShiftLister interface {
	ListForTenantInYear(ctx context.Context, tenant string, year int) ([]shift.Shift, error)
	ListForTenantOnDay(ctx context.Context, tenant string, day daydate.Day) ([]shift.Shift, error)
}

type AttendanceLoader interface {
	AttendancesOnShifts(ctx context.Context, aud attendance.Audience, tenant string, shifts []shift.Shift) ([]attendance.ShiftAttendances, error)
}

type Service struct {
	children    ChildLister
	crew        CrewLister
	contacts    ContactLister
	shifts      ShiftLister
	attendances AttendanceLoader
	reports     *report.Builder
}

func NewService(children ChildLister, crew CrewLister, contacts ContactLister, shifts ShiftLister, attendances AttendanceLoader, reports *report.Builder) *Service {
	return &Service{
		children:    children,
		crew:        crew,
		contacts:    contacts,
		shifts:      shifts,
		attendances: attendances,
		reports:     reports,
	}
}

// inputs is everything a report may need. Only the parts asked for are loaded.
type inputs struct {
	children    []child.Child
	crew        []crew.Crew
	contacts    []contact.Person
	shifts      []shift.Shift
	attendances []attendance.ShiftAttendances
}

type needs struct {
	children bool
	crew     bool
	contacts bool
	shifts   bool
	audience attendance.Audience
}

// Build loads what the requested export needs and renders it.
func (s *Service) Build(ctx context.Context, tenant string, req Request) (ss.Data, error) {
	tenant = strings.TrimSpace(tenant)
	if tenant == "" {
		return ss.Data{}, fmt.Errorf("%w: tenant is required", ErrBadRequest)
	}
	if !req.Kind.Valid() {
		return ss.Data{}, fmt.Errorf("%w: unknown export %q", ErrBadRequest, req.Kind)
	}

	var n needs
	switch req.Kind {
	case KindChildren, KindChildrenWithComment:
		n = needs{children: true}
	case KindCrew:
		n = needs{crew: true}
	case KindChildAttendances, KindDayOverview:
		n = needs{children: true, shifts: true, audience: attendance.Children}
	case KindCrewAttendances:
		n = needs{crew: true, shifts: true, audience: attendance.Crew}
	case KindFiscalCertificates:
		n = needs{children: true, contacts: true, shifts: true, audience: attendance.Children}
	case KindChildrenPerDay:
		n = needs{shifts: true, audience: attendance.Children}
	}

	in, err := s.load(ctx, tenant, req, n)
	if err != nil {
		return ss.Data{}, err
	}

	r := s.reports
	switch req.Kind {
	case KindChildren:
		return r.ChildList(person.SortByName(in.children)), nil
	case KindChildrenWithComment:
		return r.ChildrenWithCommentList(person.SortByName(child.WithRemarks(in.children))), nil
	case KindCrew:
		return r.CrewList(person.SortByName(in.crew)), nil
	case KindChildAttendances:
		return r.ChildAttendanceList(in.children, in.shifts, in.attendances, req.Year), nil
	case KindCrewAttendances:
		return r.CrewAttendanceList(in.crew, in.shifts, in.attendances, req.Year), nil
	case KindFiscalCertificates:
		return r.FiscalCertificates(in.children, in.contacts, in.shifts, in.attendances, req.Year), nil
	case KindChildrenPerDay:
		return r.ChildrenPerDay(in.shifts, in.attendances, req.Year), nil
	default:
		return r.DayOverview(in.children, in.shifts, in.attendances, req.Day), nil
	}
}

func (s *Service) load(ctx context.Context, tenant string, req Request, n needs) (inputs, error) {
	var in inputs
	g, gctx := errgroup.WithContext(ctx)

	if n.children {
		g.Go(func() error {
			list, err := s.children.ListForTenant(gctx, tenant)
			if err != nil {
				return fmt.Errorf("load children: %w", err)
			}
			in.children = list
			return nil
		})
	}
	if n.crew {
		g.Go(func() error {
			list, err := s.crew.ListForTenant(gctx, tenant)
			if err != nil {
				return fmt.Errorf("load crew: %w", err)
			}
			in.crew = list
			return nil
		})
	}
	if n.contacts {
		g.Go(func() error {
			list, err := s.contacts.ListForTenant(gctx, tenant)
			if err != nil {
				return fmt.Errorf("load contact people: %w", err)
			}
			in.contacts = list
			return nil
		})
	}
	if n.shifts {
		// Attendances are keyed by shift, so they load after the shifts.
		g.Go(func() error {
			var (
				shifts []shift.Shift
				err    error
			)
			if req.Kind.NeedsDay() {
				shifts, err = s.shifts.ListForTenantOnDay(gctx, tenant, req.Day)
			} else {
				shifts, err = s.shifts.ListForTenantInYear(gctx, tenant, req.Year)
			}
			if err != nil {
				return fmt.Errorf("load shifts: %w", err)
			}

			atts, err := s.attendances.AttendancesOnShifts(gctx, n.audience, tenant, shifts)
			if err != nil {
				return fmt.Errorf("load %s attendances: %w", n.audience, err)
			}
			in.shifts = shifts
			in.attendances = atts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return inputs{}, err
	}
	return in, nil
}
