package spreadsheet

import (
	"strconv"

	"github.com/shopspring/decimal"

	"camp-admin/backend/internal/daydate"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

// Value is one cell. The zero Value is empty.
type Value struct {
	kind Kind
	str  string
	num  decimal.Decimal
	b    bool
	day  daydate.Day
}

func Empty() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(n decimal.Decimal) Value { return Value{kind: KindNumber, num: n} }

func Int(n int) Value { return Number(decimal.NewFromInt(int64(n))) }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Date(d daydate.Day) Value { return Value{kind: KindDate, day: d} }

// OptionalDate is empty for a nil day.
func OptionalDate(d *daydate.Day) Value {
	if d == nil {
		return Empty()
	}
	return Date(*d)
}

// OptionalInt is empty for a nil number.
func OptionalInt(n *int) Value {
	if n == nil {
		return Empty()
	}
	return Int(*n)
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) Str() (string, bool)          { return v.str, v.kind == KindString }
func (v Value) Num() (decimal.Decimal, bool) { return v.num, v.kind == KindNumber }
func (v Value) Bool() (bool, bool)           { return v.b, v.kind == KindBool }
func (v Value) Day() (daydate.Day, bool)     { return v.day, v.kind == KindDate }

// Text is a plain rendering of the cell, used for CSV-like output and logs.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.day.Format("/")
	default:
		return ""
	}
}
