package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountFromStore(t *testing.T) {
	cases := []struct {
		name  string
		in    interface{}
		valid bool
		want  string
	}{
		{"float", 7.5, true, "7.5"},
		{"int", int64(5), true, "5"},
		{"price map", map[string]interface{}{"euro": int64(3), "cents": int64(50)}, true, "3.5"},
		{"cents only", map[string]interface{}{"cents": int64(5)}, true, "0.05"},
		{"empty map", map[string]interface{}{}, false, "0"},
		{"missing", nil, false, "0"},
		{"garbage", "12", false, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := amountFromStore(tc.in)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.want, got.Decimal.String())
		})
	}
}

func TestDetailDocKeepsMarker(t *testing.T) {
	no := false
	d := detailDoc{DidAttend: &no, AgeGroupName: "Kleuters"}.toDetail()

	assert.False(t, d.Attended())
	assert.Equal(t, "Kleuters", d.AgeGroupName)
	assert.False(t, d.AmountPaid.Valid)
}
