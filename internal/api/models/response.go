package models

import (
	"time"

	"carbon-credits/internal/model"
	"carbon-credits/internal/report"
)

// DatasetResponse represents a generated dataset
type DatasetResponse struct {
	ID        string         `json:"id"`
	Seed      uint64         `json:"seed"`
	Window    TimeWindow     `json:"window"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
	Summary   report.Summary `json:"summary"`
	Records   []RecordRow    `json:"records,omitempty"`
}

// TimeWindow represents the inclusive date range of a dataset
type TimeWindow struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`
}

// RecordsResponse is the body of GET /api/v1/datasets/:id/records
type RecordsResponse struct {
	ID      string      `json:"id"`
	Count   int         `json:"count"`
	Records []RecordRow `json:"records"`
}

// SummaryResponse is the body of GET /api/v1/datasets/:id/summary
type SummaryResponse struct {
	ID       string                  `json:"id"`
	Summary  report.Summary          `json:"summary"`
	Rankings []report.CompanyRanking `json:"rankings"`
}

// RecordRow is one dataset row keyed by column name.
type RecordRow map[string]any

// NewRecordRow keys the record's values by their column names.
func NewRecordRow(r model.Record) RecordRow {
	row := make(RecordRow, len(model.Columns))
	for i, v := range r.Values() {
		row[model.Columns[i].Name] = v
	}
	return row
}

// NewRecordRows converts records in order.
func NewRecordRows(records []model.Record) []RecordRow {
	out := make([]RecordRow, len(records))
	for i, r := range records {
		out[i] = NewRecordRow(r)
	}
	return out
}

// CompanyInfo represents one catalog entry
type CompanyInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
