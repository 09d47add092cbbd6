package export

import (
	"fmt"
	"strings"

	"carbon-credits/internal/model"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// ContentType is the HTTP media type for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// WriteFile writes records to path in the given format.
func WriteFile(path string, format Format, records []model.Record) error {
	switch format {
	case FormatCSV:
		return WriteCSVFile(path, records)
	case FormatXLSX:
		return WriteXLSXFile(path, records)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}
