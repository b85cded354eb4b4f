package daydate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/daydate"
)

func TestFromDayID(t *testing.T) {
	d, ok := daydate.FromDayID("2020-07-01")
	require.True(t, ok)
	assert.Equal(t, daydate.New(2020, time.July, 1), d)

	unpadded, ok := daydate.FromDayID("2020-7-1")
	require.True(t, ok)
	assert.Equal(t, d, unpadded)

	for _, bad := range []string{"", "2020-02-30", "tomorrow", "2020/07/01"} {
		_, ok := daydate.FromDayID(bad)
		assert.False(t, ok, bad)
	}
}

func TestDayIDIsCanonical(t *testing.T) {
	d, _ := daydate.FromDayID("2020-7-1")
	assert.Equal(t, "2020-07-01", d.DayID())
	assert.Equal(t, "01-07-2020", d.Format("-"))
}

func TestCompare(t *testing.T) {
	a := daydate.New(2020, time.July, 1)
	b := daydate.New(2020, time.July, 2)
	c := daydate.New(2021, time.January, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, b.Before(c))
	assert.Equal(t, time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), a.Time())
}
