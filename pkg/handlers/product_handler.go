package handlers

import (
	"net/http"
	"strconv"

	"shopmate-api/pkg/models"
	"shopmate-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the catalog browse endpoints.
type ProductHandler struct {
	catalog *services.CatalogService
	filter  *services.FilterService
}

// NewProductHandler creates a product handler.
func NewProductHandler(catalog *services.CatalogService, filter *services.FilterService) *ProductHandler {
	return &ProductHandler{catalog: catalog, filter: filter}
}

// GetProducts handles GET /products with optional structured filter
// query parameters, a free-text query hint, and a limit.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters := filtersFromQuery(c)
	query := c.Query("query")

	snapshot := h.catalog.GetCatalog(query)
	products := h.filter.FilterProducts(snapshot, filters, query)

	if limitParam := c.Query("limit"); limitParam != "" {
		if limit, err := strconv.Atoi(limitParam); err == nil && limit > 0 && limit < len(products) {
			products = products[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
		"filters":  filters,
	})
}

// GetSimilar handles GET /products/:id/similar. Relations are looked
// up over the full catalog snapshot, so externally fetched records can
// appear alongside seed products. An empty result is a valid 200
// response; only an unknown id is a 404.
func (h *ProductHandler) GetSimilar(c *gin.Context) {
	id := c.Param("id")

	target, ok := h.catalog.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	similar := h.filter.SimilarProducts(h.catalog.GetCatalog(""), target)
	c.JSON(http.StatusOK, gin.H{"similar": similar})
}

// filtersFromQuery builds a tri-state filter object from the request's
// query parameters. Absent parameters stay unset.
func filtersFromQuery(c *gin.Context) models.Filters {
	var filters models.Filters

	setString := func(param string, field **string) {
		if value := c.Query(param); value != "" {
			*field = &value
		}
	}
	setInt := func(param string, field **int) {
		if value := c.Query(param); value != "" {
			if parsed, err := strconv.Atoi(value); err == nil {
				*field = &parsed
			}
		}
	}

	setString("category", &filters.Category)
	setString("subcategory", &filters.Subcategory)
	setString("color", &filters.Color)
	setString("brand", &filters.Brand)
	setString("size", &filters.Size)
	setInt("minPrice", &filters.MinPrice)
	setInt("maxPrice", &filters.MaxPrice)

	if value := c.Query("ecoFriendly"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			filters.EcoFriendly = &parsed
		}
	}

	return filters
}
