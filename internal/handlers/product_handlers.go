package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/smilespa-golang/internal/catalog"
)

// --- Inputs ---

// ListProductsInput holds the optional listing filters. Filters combine.
type ListProductsInput struct {
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	Tag         string `form:"tag"`
	Q           string `form:"q"`
	Featured    bool   `form:"featured"`
	InStock     bool   `form:"inStock"`
}

type RelatedProductsInput struct {
	Limit int `form:"limit" binding:"gte=0"`
}

// ListProducts handles GET /v1/products
func (h *Handlers) ListProducts(c *gin.Context) {
	var input ListProductsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := h.Catalog.Find(catalog.Query{
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		Tag:          input.Tag,
		Text:         input.Q,
		FeaturedOnly: input.Featured,
		InStockOnly:  input.InStock,
	})
	h.respondCatalog(c, "products", products)
}

// GetFeaturedProducts handles GET /v1/products/featured
func (h *Handlers) GetFeaturedProducts(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.FeaturedProducts())
}

// GetInStockProducts handles GET /v1/products/in-stock
func (h *Handlers) GetInStockProducts(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.InStockProducts())
}

// SearchProducts handles GET /v1/products/search?q=
// A missing q matches every product.
func (h *Handlers) SearchProducts(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.Search(c.Query("q")))
}

// GetProductsByTag handles GET /v1/tags/:tag/products
func (h *Handlers) GetProductsByTag(c *gin.Context) {
	h.respondCatalog(c, "products", h.Catalog.ProductsByTag(c.Param("tag")))
}

// GetProduct handles GET /v1/products/:id
// The response is the full detail page: product, labels, related items,
// breadcrumbs and the outbound booking link.
func (h *Handlers) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	page := h.Catalog.ProductPage(productID)
	if !page.Found {
		h.Logger.Debug("product not found", zap.String("id", productID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	page.BookingURL = h.BookingURL

	// bookingUrl comes from config, so it is part of the tag
	h.respondTagged(c, catalog.DeriveETag(h.Catalog.ETag(), h.BookingURL), "page", page)
}

// GetRelatedProducts handles GET /v1/products/:id/related?limit=
func (h *Handlers) GetRelatedProducts(c *gin.Context) {
	productID := c.Param("id")

	var input RelatedProductsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	if _, ok := h.Catalog.ProductByID(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.respondCatalog(c, "products", h.Catalog.RelatedProducts(productID, input.Limit))
}
