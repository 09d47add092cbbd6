package api

import (
	"net/http"

	"carbon-credits/internal/api/handlers"
	"carbon-credits/internal/api/middleware"
	"carbon-credits/internal/api/models"
	"carbon-credits/internal/data"

	"github.com/gin-gonic/gin"
)

// RouterConfig wires the router's dependencies.
type RouterConfig struct {
	Cache          *data.DatasetCache
	AllowedOrigins []string
	// RequestLogging adds one log line per request.
	RequestLogging bool
}

// NewRouter builds the HTTP API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.AllowedOrigins...))
	if cfg.RequestLogging {
		router.Use(middleware.Logger())
	}

	datasetHandler := handlers.NewDatasetHandler(cfg.Cache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/companies", handlers.ListCompanies)

		v1.POST("/datasets", datasetHandler.CreateDataset)
		v1.GET("/datasets/:id/records", datasetHandler.GetRecords)
		v1.GET("/datasets/:id/summary", datasetHandler.GetSummary)
		v1.GET("/datasets/:id/export", datasetHandler.ExportDataset)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Not found",
			},
		})
	})

	return router
}
