package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/daydate"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		year    string
		day     string
		want    Request
		wantErr bool
	}{
		{name: "roster ignores year", kind: "children", year: "abc", want: Request{Kind: KindChildren}},
		{name: "yearly", kind: "fiscal-certificates", year: "2020", want: Request{Kind: KindFiscalCertificates, Year: 2020}},
		{name: "yearly trims", kind: " child-attendances ", year: " 2021 ", want: Request{Kind: KindChildAttendances, Year: 2021}},
		{name: "day overview", kind: "day-overview", day: "2020-07-01", want: Request{Kind: KindDayOverview, Day: daydate.New(2020, 7, 1)}},
		{name: "unknown kind", kind: "bubbles", wantErr: true},
		{name: "missing year", kind: "children-per-day", wantErr: true},
		{name: "negative year", kind: "crew-attendances", year: "-1", wantErr: true},
		{name: "missing day", kind: "day-overview", wantErr: true},
		{name: "invalid day", kind: "day-overview", day: "2020-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.kind, tt.year, tt.day)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsErrBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKinds(t *testing.T) {
	all := Kinds()
	assert.Len(t, all, 8)
	for _, k := range all {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, Kind("").Valid())
	assert.True(t, KindDayOverview.NeedsDay())
	assert.False(t, KindDayOverview.NeedsYear())
}
