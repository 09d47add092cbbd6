package export

import (
	"fmt"
	"io"

	"carbon-credits/internal/model"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of an XLSX export.
const SheetName = "Carbon Credits"

// numFmts maps column precision to a custom number format.
var numFmts = map[int]string{
	1: "0.0",
	2: "0.00",
	3: "0.000",
}

// buildWorkbook lays out records on one sheet: bold frozen header, auto-filter, typed cells.
func buildWorkbook(records []model.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	colStyles := make([]int, len(model.Columns))
	for i, c := range model.Columns {
		if c.Kind != model.KindFloat {
			continue
		}
		numFmt := numFmts[c.Precision]
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column style %s: %w", c.Name, err)
		}
		colStyles[i] = style
	}

	header := make([]any, len(model.Columns))
	for i, c := range model.Columns {
		header[i] = c.Name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(model.Columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, r := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		vals := r.Values()
		if err := f.SetSheetRow(SheetName, cell, &vals); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if len(records) > 0 {
		for i, style := range colStyles {
			if style == 0 {
				continue
			}
			top, _ := excelize.CoordinatesToCellName(i+1, 2)
			bottom, _ := excelize.CoordinatesToCellName(i+1, len(records)+1)
			if err := f.SetCellStyle(SheetName, top, bottom, style); err != nil {
				f.Close()
				return nil, fmt.Errorf("style column %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}
	if err := f.AutoFilter(SheetName, "A1:"+lastHeader, nil); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto filter: %w", err)
	}
	return f, nil
}

// WriteXLSX writes the workbook to w.
func WriteXLSX(w io.Writer, records []model.Record) error {
	f, err := buildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteXLSXFile saves the workbook at path, overwriting any existing file.
func WriteXLSXFile(path string, records []model.Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := buildWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
