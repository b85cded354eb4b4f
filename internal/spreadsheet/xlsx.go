package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	maxSheetName  = 31
	dateFormat    = "dd/mm/yyyy"
	defaultSheet  = "Sheet1"
	sheetNameJunk = `:\/?*[]`
)

// WriteXLSX renders data as an Excel workbook. Data is validated first; a
// ragged worksheet is rejected before anything is written to w.
func WriteXLSX(w io.Writer, data Data) error {
	if err := data.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(dateFormat)})
	if err != nil {
		return fmt.Errorf("xlsx date style: %w", err)
	}

	names := SheetNames(data.Worksheets)
	for i, ws := range data.Worksheets {
		name := names[i]
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("xlsx rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx new sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, ws, dateStyle); err != nil {
			return err
		}
	}
	if len(data.Worksheets) > 0 {
		f.SetActiveSheet(0)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, ws Worksheet, dateStyle int) error {
	for c, col := range ws.Columns {
		colName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if col.Width > 0 {
			if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
				return fmt.Errorf("xlsx column width: %w", err)
			}
		}

		for r, v := range col.Values {
			if v.IsEmpty() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return fmt.Errorf("xlsx cell %s: %w", cell, err)
			}
			if v.Kind() == KindDate {
				if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
					return fmt.Errorf("xlsx cell style %s: %w", cell, err)
				}
			}
		}
	}
	return nil
}

func cellValue(v Value) interface{} {
	switch v.Kind() {
	case KindString:
		s, _ := v.Str()
		return s
	case KindNumber:
		n, _ := v.Num()
		if n.IsInteger() {
			return n.IntPart()
		}
		return n.InexactFloat64()
	case KindBool:
		b, _ := v.Bool()
		return b
	case KindDate:
		d, _ := v.Day()
		return d.Time()
	default:
		return nil
	}
}

// SheetNames maps worksheet names to names Excel accepts: forbidden
// characters replaced, at most 31 characters, unique (case-insensitive) and
// never blank.
func SheetNames(worksheets []Worksheet) []string {
	out := make([]string, len(worksheets))
	seen := map[string]bool{}
	for i, ws := range worksheets {
		base := sanitizeSheetName(ws.Name)
		if base == "" {
			base = fmt.Sprintf("Blad%d", i+1)
		}
		name := base
		for n := 2; seen[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
		}
		seen[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(sheetNameJunk, r) {
			return '-'
		}
		return r
	}, name)
	name = strings.Trim(strings.TrimSpace(name), "'")
	return strings.TrimSpace(truncateRunes(name, maxSheetName))
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

func strPtr(s string) *string { return &s }
