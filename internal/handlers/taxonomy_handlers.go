package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/smilespa-golang/internal/catalog"
)

// --- Category Handlers ---

// GetAllCategories handles GET /v1/categories
// One summary card per category that has products, in catalog order.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	h.respondCatalog(c, "categories", h.Catalog.CategorySummaries())
}

// GetCategory handles GET /v1/categories/:category?subcategory=
// An unknown category is an empty page, not a 404, matching the storefront.
func (h *Handlers) GetCategory(c *gin.Context) {
	page := h.Catalog.CategoryPage(c.Param("category"), c.Query("subcategory"))
	h.respondCatalog(c, "page", page)
}

// GetCategoryProducts handles GET /v1/categories/:category/products
func (h *Handlers) GetCategoryProducts(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.ProductsByCategory(c.Param("category")))
}

// GetSubcategoryProducts handles GET /v1/subcategories/:subcategory/products
func (h *Handlers) GetSubcategoryProducts(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.ProductsBySubcategory(c.Param("subcategory")))
}

// --- Display Names ---
// Labels are static, so these skip the catalog ETag.

// GetCategoryDisplayName handles GET /v1/display-names/categories/:slug
func (h *Handlers) GetCategoryDisplayName(c *gin.Context) {
	slug := c.Param("slug")
	c.JSON(http.StatusOK, gin.H{
		"slug":        slug,
		"displayName": catalog.CategoryDisplayName(slug),
		"image":       catalog.CategoryBoxImage(slug),
	})
}

// GetSubcategoryDisplayName handles GET /v1/display-names/subcategories/:slug
func (h *Handlers) GetSubcategoryDisplayName(c *gin.Context) {
	slug := c.Param("slug")
	c.JSON(http.StatusOK, gin.H{
		"slug":        slug,
		"displayName": catalog.SubcategoryDisplayName(slug),
	})
}
