package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/smilespa-golang/internal/handlers"
	"github.com/01moynul/smilespa-golang/internal/middleware"
)

// CORSMiddleware lets the storefront at allowOrigin read the catalog API.
// The API is read-only, so only GET and the preflight OPTIONS are allowed.
func CORSMiddleware(allowOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, If-None-Match, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
		c.Writer.Header().Set("Vary", "Origin")

		// Preflight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every catalog route under /v1.
func SetupRouter(h *handlers.Handlers, allowOrigin string, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Request id must run first so the other middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(CORSMiddleware(allowOrigin))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Product Routes ---
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/featured", h.GetFeaturedProducts)
		v1.GET("/products/in-stock", h.GetInStockProducts)
		v1.GET("/products/search", h.SearchProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/products/:id/related", h.GetRelatedProducts)
		v1.GET("/tags/:tag/products", h.GetProductsByTag)

		// --- Category Routes ---
		v1.GET("/categories", h.GetAllCategories)
		v1.GET("/categories/:category", h.GetCategory)
		v1.GET("/categories/:category/products", h.GetCategoryProducts)
		v1.GET("/subcategories/:subcategory/products", h.GetSubcategoryProducts)

		// --- Display Names ---
		v1.GET("/display-names/categories/:slug", h.GetCategoryDisplayName)
		v1.GET("/display-names/subcategories/:slug", h.GetSubcategoryDisplayName)
	}

	return router
}
