package handlers

import (
	"net/http"

	response "aviniti_tools/internal/adapter/http/dto/response"
	"aviniti_tools/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only feature catalog. The catalog is static
// process data, so there is no usecase layer behind this handler.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListFeatures(c *gin.Context) {
	if categoryID := c.Query("category"); categoryID != "" {
		c.JSON(http.StatusOK, response.FromFeatures(catalog.FeaturesByCategory(categoryID)))
		return
	}
	c.JSON(http.StatusOK, response.FromFeatures(catalog.Features()))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(catalog.Categories()))
}
