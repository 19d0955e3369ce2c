package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/smilespa-golang/internal/catalog"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Catalog     *catalog.Catalog // Immutable, shared by every request
	Logger      *zap.Logger
	BookingURL  string // Outbound link to the hosted booking widget
	CacheMaxAge int    // Seconds, for Cache-Control on catalog responses
}

// respondCatalog writes a catalog-derived payload under key. The catalog
// ETag is attached and a matching If-None-Match short-circuits to 304.
func (h *Handlers) respondCatalog(c *gin.Context, key string, value any) {
	h.respondTagged(c, h.Catalog.ETag(), key, value)
}

// respondTagged is respondCatalog with a caller-supplied tag.
func (h *Handlers) respondTagged(c *gin.Context, etag, key string, value any) {
	c.Header("ETag", etag)
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.CacheMaxAge))

	if catalog.MatchesETag(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: value})
}
