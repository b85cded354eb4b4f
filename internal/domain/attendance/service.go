package attendance

import (
	"context"
	"fmt"

	"camp-admin/backend/internal/domain/shift"
)

// Store is the persistence the service reads attendances from.
type Store interface {
	GetManyByShift(ctx context.Context, aud Audience, tenant string, shiftIDs []string) ([]ShiftAttendances, error)
	GetByChild(ctx context.Context, tenant, childID string) (map[string]Detail, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AttendancesOnShifts loads the attendances of aud on the given shifts.
func (s *Service) AttendancesOnShifts(ctx context.Context, aud Audience, tenant string, shifts []shift.Shift) ([]ShiftAttendances, error) {
	if tenant == "" {
		return nil, fmt.Errorf("%w: tenant is required", ErrBadRequest)
	}

	ids := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		if sh.ID != "" {
			ids = append(ids, sh.ID)
		}
	}
	if len(ids) == 0 {
		return []ShiftAttendances{}, nil
	}

	return s.store.GetManyByShift(ctx, aud, tenant, ids)
}

// AttendancesForChild returns the attendances of a child keyed by shift id.
// A child that never attended yields an empty map.
func (s *Service) AttendancesForChild(ctx context.Context, tenant, childID string) (map[string]Detail, error) {
	if tenant == "" || childID == "" {
		return nil, fmt.Errorf("%w: tenant and childId are required", ErrBadRequest)
	}

	out, err := s.store.GetByChild(ctx, tenant, childID)
	if IsErrNotFound(err) {
		return map[string]Detail{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
