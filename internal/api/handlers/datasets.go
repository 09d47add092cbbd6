package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"carbon-credits/internal/api/models"
	"carbon-credits/internal/data"
	"carbon-credits/internal/dataset"
	"carbon-credits/internal/export"
	"carbon-credits/internal/model"
	"carbon-credits/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DatasetHandler handles dataset generation and retrieval
type DatasetHandler struct {
	cache *data.DatasetCache
	now   func() time.Time
}

// NewDatasetHandler creates a new dataset handler backed by cache
func NewDatasetHandler(cache *data.DatasetCache) *DatasetHandler {
	return &DatasetHandler{cache: cache, now: time.Now}
}

// CreateDataset handles POST /api/v1/datasets
func (h *DatasetHandler) CreateDataset(c *gin.Context) {
	var req models.CreateDatasetRequest
	// An empty body means all defaults.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params, err := h.buildParams(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_AS_OF", err.Error())
		return
	}

	result, err := dataset.Generate(params)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "GENERATION_ERROR", err.Error())
		return
	}

	entry := h.cache.Put(result)
	log.Info().
		Str("id", entry.ID).
		Uint64("seed", result.Seed).
		Int("records", len(result.Records)).
		Msg("dataset created")

	c.JSON(http.StatusCreated, buildDatasetResponse(entry, req.IncludeRecords))
}

// GetRecords handles GET /api/v1/datasets/:id/records
func (h *DatasetHandler) GetRecords(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RecordsResponse{
		ID:      entry.ID,
		Count:   len(entry.Result.Records),
		Records: models.NewRecordRows(entry.Result.Records),
	})
}

// GetSummary handles GET /api/v1/datasets/:id/summary
func (h *DatasetHandler) GetSummary(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SummaryResponse{
		ID:       entry.ID,
		Summary:  report.Summarize(entry.Result.Records),
		Rankings: report.RankCompanies(entry.Result.Records),
	})
}

// ExportDataset handles GET /api/v1/datasets/:id/export
func (h *DatasetHandler) ExportDataset(c *gin.Context) {
	var q models.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if q.Format == "" {
		q.Format = string(export.FormatCSV)
	}
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return
	}

	entry, ok := h.lookup(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	switch format {
	case export.FormatXLSX:
		err = export.WriteXLSX(&buf, entry.Result.Records)
	default:
		err = export.WriteCSV(&buf, entry.Result.Records)
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		return
	}

	filename := fmt.Sprintf("carbon_credits_%s.%s", entry.ID, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (h *DatasetHandler) buildParams(req models.CreateDatasetRequest) (dataset.Params, error) {
	p := dataset.Params{Seed: model.DefaultSeed, AsOf: h.now()}
	if req.Seed != nil {
		p.Seed = *req.Seed
	}
	if req.AsOf != "" {
		asOf, err := time.Parse(model.DateLayout, req.AsOf)
		if err != nil {
			return p, fmt.Errorf("as_of must be YYYY-MM-DD: %w", err)
		}
		if asOf.IsZero() {
			return p, fmt.Errorf("as_of %q is out of range", req.AsOf)
		}
		p.AsOf = asOf
	}
	return p, nil
}

func (h *DatasetHandler) lookup(c *gin.Context) (*data.CacheEntry, bool) {
	id := c.Param("id")
	entry, ok := h.cache.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "DATASET_NOT_FOUND",
			fmt.Sprintf("dataset %q not found or expired", id))
		return nil, false
	}
	return entry, true
}

func buildDatasetResponse(entry *data.CacheEntry, includeRecords bool) models.DatasetResponse {
	res := entry.Result
	out := models.DatasetResponse{
		ID:   entry.ID,
		Seed: res.Seed,
		Window: models.TimeWindow{
			Start: res.Start.Format(model.DateLayout),
			End:   res.End.Format(model.DateLayout),
		},
		CreatedAt: entry.CreatedAt,
		ExpiresAt: entry.ExpiresAt,
		Summary:   report.Summarize(res.Records),
	}
	if includeRecords {
		out.Records = models.NewRecordRows(res.Records)
	}
	return out
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
