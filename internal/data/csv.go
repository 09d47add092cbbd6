package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"carbon-credits/internal/model"
)

// LoadRecordsCSV reads a dataset file written by the exporter.
func LoadRecordsCSV(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadRecordsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadRecordsCSV decodes a header row followed by one record per line.
// The header must match model.Columns exactly.
func ReadRecordsCSV(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(model.Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, want := range model.ColumnNames() {
		if header[i] != want {
			return nil, fmt.Errorf("header column %d: expected %q, got %q", i+1, want, header[i])
		}
	}

	out := []model.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// GroupByCompany splits records into company-keyed slices, preserving order.
func GroupByCompany(records []model.Record) map[string][]model.Record {
	out := map[string][]model.Record{}
	for _, r := range records {
		out[r.Company] = append(out[r.Company], r)
	}
	return out
}

func parseRow(row []string) (model.Record, error) {
	var rec model.Record
	for i, dst := range rec.Fields() {
		cell := strings.TrimSpace(row[i])
		name := model.Columns[i].Name
		switch p := dst.(type) {
		case *string:
			*p = cell
		case *float64:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return rec, fmt.Errorf("%s: %w", name, err)
			}
			*p = v
		case *int:
			v, err := strconv.Atoi(cell)
			if err != nil {
				return rec, fmt.Errorf("%s: %w", name, err)
			}
			*p = v
		case *bool:
			// strconv.ParseBool accepts both "true" and "True".
			v, err := strconv.ParseBool(cell)
			if err != nil {
				return rec, fmt.Errorf("%s: %w", name, err)
			}
			*p = v
		}
	}
	return rec, nil
}
