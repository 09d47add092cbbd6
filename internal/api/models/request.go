package models

// CreateDatasetRequest is the body of POST /api/v1/datasets. Every field is optional.
type CreateDatasetRequest struct {
	Seed           *uint64 `json:"seed,omitempty"`            // default: 42
	AsOf           string  `json:"as_of,omitempty"`           // YYYY-MM-DD; default: today
	IncludeRecords bool    `json:"include_records,omitempty"` // default: false
}

// ExportQuery is the query string of GET /api/v1/datasets/:id/export.
type ExportQuery struct {
	Format string `form:"format"` // "csv" (default) or "xlsx"
}
