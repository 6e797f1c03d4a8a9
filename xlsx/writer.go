// Package xlsx writes classified tables to an Excel workbook.
package xlsx

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/ae7q/model"
)

// DateFormat is the number format applied to date cells.
const DateFormat = "yyyy-mm-dd hh:mm:ss"

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// SheetName returns the name of the sheet holding table index.
func SheetName(index int, schema model.Schema) string {
	name := fmt.Sprintf("%d-%s", index, schema)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

// Write stores tables as a workbook, one sheet per table in order. Header
// rows are bold, dates are written as date cells and list cells are joined
// with commas.
func Write(w io.Writer, tables []*model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	dateFmt := DateFormat
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("creating date style: %w", err)
	}

	for i, t := range tables {
		sheet := SheetName(i, t.Schema)
		if i == 0 {
			// reuse the default sheet so the workbook has no blank first page
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sheet, err)
		}

		if err := writeTable(f, sheet, t, header, date); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile stores tables as a workbook at path.
func WriteFile(path string, tables []*model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, tables); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTable(f *excelize.File, sheet string, t *model.Table, headerStyle, dateStyle int) error {
	row := 1

	if t.HasHeader() {
		if err := writeRow(f, sheet, row, t.Header, dateStyle); err != nil {
			return err
		}
		if len(t.Header) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(t.Header), row)
			if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
				return err
			}
		}
		row++
	}

	for _, r := range t.Rows {
		if err := writeRow(f, sheet, row, r, dateStyle); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values model.Row, dateStyle int) error {
	for c, v := range values {
		if v.Kind() == model.KindEmpty {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return err
		}

		if tm, ok := v.Time(); ok {
			if err := f.SetCellValue(sheet, cell, tm); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
				return err
			}
			continue
		}

		if err := f.SetCellValue(sheet, cell, v.String()); err != nil {
			return err
		}
	}
	return nil
}
