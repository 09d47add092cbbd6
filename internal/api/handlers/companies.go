package handlers

import (
	"net/http"

	"carbon-credits/internal/api/models"
	"carbon-credits/internal/model"

	"github.com/gin-gonic/gin"
)

// ListCompanies handles GET /api/v1/companies
func ListCompanies(c *gin.Context) {
	catalog := model.CompanyCatalog()
	companies := make([]models.CompanyInfo, len(catalog))
	for i, name := range catalog {
		companies[i] = models.CompanyInfo{Index: i, Name: name}
	}
	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}
