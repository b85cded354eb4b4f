package shift_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/daydate"
	"camp-admin/backend/internal/domain/shift"
)

func TestSortedByDayThenKindThenInput(t *testing.T) {
	in := []shift.Shift{
		{ID: "s5", DayID: "not-a-day", Kind: shift.KindMorning},
		{ID: "s1", DayID: "2020-07-02", Kind: shift.KindAfternoon},
		{ID: "s2", DayID: "2020-07-02", Kind: shift.KindMorning},
		{ID: "s3", DayID: "2020-7-1", Kind: "Kamp"},
		{ID: "s4", DayID: "2020-07-01", Kind: "Kamp"},
		{ID: "s6", DayID: "2020-07-01", Kind: shift.KindFullDay},
	}

	out := shift.Sorted(in)

	assert.Equal(t, []string{"s6", "s3", "s4", "s2", "s1", "s5"}, shift.IDs(out))
	assert.Equal(t, "s5", in[0].ID, "input must not be reordered")
}

func TestSortedIsDeterministic(t *testing.T) {
	in := []shift.Shift{
		{ID: "a", DayID: "2020-07-01", Kind: "Kamp"},
		{ID: "b", DayID: "2020-07-01", Kind: "Kamp"},
		{ID: "c", DayID: "2020-07-01", Kind: "Kamp"},
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, []string{"a", "b", "c"}, shift.IDs(shift.Sorted(in)))
	}
}

func TestGroupByDay(t *testing.T) {
	in := []shift.Shift{
		{ID: "s3", DayID: "2020-07-02"},
		{ID: "s1", DayID: "2020-07-01"},
		{ID: "bad", DayID: ""},
		{ID: "s2", DayID: "2020-7-1"},
	}

	groups, invalid := shift.GroupByDay(in)

	require.Len(t, groups, 2)
	assert.Equal(t, daydate.New(2020, time.July, 1), groups[0].Day)
	assert.Equal(t, []string{"s1", "s2"}, shift.IDs(groups[0].Shifts))
	assert.Equal(t, []string{"s3"}, shift.IDs(groups[1].Shifts))
	assert.Equal(t, []string{"bad"}, shift.IDs(invalid))
}

func TestOnDayAndInYear(t *testing.T) {
	in := []shift.Shift{
		{ID: "a", DayID: "2019-12-31"},
		{ID: "b", DayID: "2020-01-01"},
		{ID: "c", DayID: "2020-1-1"},
	}

	assert.Equal(t, []string{"b", "c"}, shift.IDs(shift.InYear(in, 2020)))
	assert.Equal(t, []string{"a"}, shift.IDs(shift.OnDay(in, daydate.New(2019, time.December, 31))))
}
