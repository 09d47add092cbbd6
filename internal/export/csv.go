package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"carbon-credits/internal/model"
)

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(FormatRow(r)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates (or truncates) path and writes records to it.
func WriteCSVFile(path string, records []model.Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// FormatRow renders a record as CSV cells, floats at their column precision.
func FormatRow(r model.Record) []string {
	vals := r.Values()
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = fmtValue(model.Columns[i], v)
	}
	return row
}

func fmtValue(c model.Column, v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return fmtFloat(x, c.Precision)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func fmtFloat(x float64, precision int) string {
	return strconv.FormatFloat(x, 'f', precision, 64)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
