package attendance_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/shift"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetManyByShift(ctx context.Context, aud attendance.Audience, tenant string, shiftIDs []string) ([]attendance.ShiftAttendances, error) {
	args := m.Called(ctx, aud, tenant, shiftIDs)
	if v := args.Get(0); v != nil {
		return v.([]attendance.ShiftAttendances), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) GetByChild(ctx context.Context, tenant, childID string) (map[string]attendance.Detail, error) {
	args := m.Called(ctx, tenant, childID)
	if v := args.Get(0); v != nil {
		return v.(map[string]attendance.Detail), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAttendancesOnShiftsWithoutShiftsSkipsStore(t *testing.T) {
	store := new(mockStore)
	svc := attendance.NewService(store)

	out, err := svc.AttendancesOnShifts(context.Background(), attendance.Children, "t1", nil)

	require.NoError(t, err)
	assert.Empty(t, out)
	store.AssertNotCalled(t, "GetManyByShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendancesOnShiftsLoadsByShiftID(t *testing.T) {
	store := new(mockStore)
	want := []attendance.ShiftAttendances{{ShiftID: "s1", Records: map[string]attendance.Detail{"c1": {}}}}
	store.On("GetManyByShift", mock.Anything, attendance.Crew, "t1", []string{"s1", "s2"}).Return(want, nil)
	svc := attendance.NewService(store)

	out, err := svc.AttendancesOnShifts(context.Background(), attendance.Crew, "t1",
		[]shift.Shift{{ID: "s1"}, {ID: ""}, {ID: "s2"}})

	require.NoError(t, err)
	assert.Equal(t, want, out)
	store.AssertExpectations(t)
}

func TestAttendancesOnShiftsRequiresTenant(t *testing.T) {
	svc := attendance.NewService(new(mockStore))

	_, err := svc.AttendancesOnShifts(context.Background(), attendance.Children, "", []shift.Shift{{ID: "s1"}})

	assert.True(t, attendance.IsErrBadRequest(err))
}

func TestAttendancesForChild(t *testing.T) {
	store := new(mockStore)
	store.On("GetByChild", mock.Anything, "t1", "missing").
		Return(nil, fmt.Errorf("%w: no attendances", attendance.ErrNotFound))
	store.On("GetByChild", mock.Anything, "t1", "broken").
		Return(nil, errors.New("unavailable"))
	store.On("GetByChild", mock.Anything, "t1", "c1").
		Return(map[string]attendance.Detail{"s1": {}}, nil)
	svc := attendance.NewService(store)
	ctx := context.Background()

	out, err := svc.AttendancesForChild(ctx, "t1", "missing")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = svc.AttendancesForChild(ctx, "t1", "broken")
	assert.EqualError(t, err, "unavailable")

	out, err = svc.AttendancesForChild(ctx, "t1", "c1")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
