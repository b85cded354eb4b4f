package spreadsheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/daydate"
)

func TestWorksheetValidate(t *testing.T) {
	ok := Worksheet{Name: "ok", Columns: []Column{
		{Values: []Value{String("a"), Int(1)}},
		{Values: []Value{Empty(), Bool(true)}},
	}}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 2, ok.Rows())

	ragged := Worksheet{Name: "ragged", Columns: []Column{
		{Values: []Value{String("a"), Int(1)}},
		{Values: []Value{String("b")}},
	}}
	err := ragged.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRaggedColumns)

	assert.ErrorIs(t, Data{Worksheets: []Worksheet{ok, ragged}}.Validate(), ErrRaggedColumns)
	assert.NoError(t, Data{}.Validate())
}

func TestValueAccessors(t *testing.T) {
	s, ok := String("x").Str()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = Int(3).Str()
	assert.False(t, ok)

	n, ok := Number(decimal.RequireFromString("12.5")).Num()
	assert.True(t, ok)
	assert.Equal(t, "12.5", n.String())

	day := daydate.New(2020, 7, 1)
	d, ok := Date(day).Day()
	assert.True(t, ok)
	assert.Equal(t, day, d)

	assert.True(t, OptionalDate(nil).IsEmpty())
	assert.Equal(t, KindDate, OptionalDate(&day).Kind())
	assert.True(t, OptionalInt(nil).IsEmpty())

	assert.Equal(t, "01/07/2020", Date(day).Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "", Empty().Text())
}

func TestNewColumn(t *testing.T) {
	col := NewColumn(20, Header("", "Naam"), []string{"a", "b"}, func(s string) Value { return String(s) })
	assert.Equal(t, 20.0, col.Width)
	assert.Equal(t, []Value{String(""), String("Naam"), String("a"), String("b")}, col.Values)
}
