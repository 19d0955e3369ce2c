package catalog

import (
	"strings"

	"github.com/01moynul/smilespa-golang/internal/models"
)

// DefaultRelatedLimit caps RelatedProducts when the caller passes no limit.
const DefaultRelatedLimit = 4

// --- Lookups ---
// Every accessor below is total: a miss is an empty slice or ok=false.
// Result order is always catalog declaration order.

// Returned products are deep copies; nothing a caller does to them reaches
// the store.

// ProductByID returns the product with the given id.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i].Clone(), true
}

// AllProducts returns every product.
func (c *Catalog) AllProducts() []models.Product {
	return c.filter(func(models.Product) bool { return true })
}

// ProductsByCategory returns the products whose category equals slug.
func (c *Catalog) ProductsByCategory(slug string) []models.Product {
	return c.filter(func(p models.Product) bool {
		return string(p.Category) == slug
	})
}

// ProductsBySubcategory returns the products whose subcategory equals slug.
func (c *Catalog) ProductsBySubcategory(slug string) []models.Product {
	if slug == "" {
		return []models.Product{}
	}
	return c.filter(func(p models.Product) bool {
		return string(p.Subcategory) == slug
	})
}

// FeaturedProducts returns the products flagged as featured.
func (c *Catalog) FeaturedProducts() []models.Product {
	return c.filter(func(p models.Product) bool { return p.Featured })
}

// InStockProducts returns the products flagged as in stock.
func (c *Catalog) InStockProducts() []models.Product {
	return c.filter(func(p models.Product) bool { return p.InStock })
}

// Search matches query as a case-insensitive substring of the name, the
// description or any tag. An empty query matches everything.
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(query)
	return c.filter(func(p models.Product) bool {
		return matchesSearch(p, q)
	})
}

func matchesSearch(p models.Product, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}

// ProductsByTag returns the products carrying tag exactly, ignoring case.
// Unlike Search, "peptide" does not match a "copper-peptide" tag.
func (c *Catalog) ProductsByTag(tag string) []models.Product {
	return c.filter(func(p models.Product) bool { return p.HasTag(tag) })
}

// RelatedProducts resolves the related ids of the product, in their listed
// order, keeping at most limit. Ids that do not resolve are skipped.
// limit <= 0 means DefaultRelatedLimit.
func (c *Catalog) RelatedProducts(id string, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := []models.Product{}
	p, ok := c.ProductByID(id)
	if !ok {
		return out
	}
	for _, rid := range p.RelatedProducts {
		if len(out) == limit {
			break
		}
		if related, ok := c.ProductByID(rid); ok {
			out = append(out, related)
		}
	}
	return out
}

// Query combines the listing filters. Zero fields do not filter. Matching
// rules are those of the single-purpose accessors: exact category and
// subcategory, exact case-insensitive tag, substring text.
type Query struct {
	Category     string
	Subcategory  string
	Tag          string
	Text         string
	FeaturedOnly bool
	InStockOnly  bool
}

// Find returns the products satisfying every set field of q.
func (c *Catalog) Find(q Query) []models.Product {
	text := strings.ToLower(q.Text)
	return c.filter(func(p models.Product) bool {
		switch {
		case q.Category != "" && string(p.Category) != q.Category:
			return false
		case q.Subcategory != "" && string(p.Subcategory) != q.Subcategory:
			return false
		case q.Tag != "" && !p.HasTag(q.Tag):
			return false
		case text != "" && !matchesSearch(p, text):
			return false
		case q.FeaturedOnly && !p.Featured:
			return false
		case q.InStockOnly && !p.InStock:
			return false
		}
		return true
	})
}

// filter never returns nil so callers render [] rather than null.
func (c *Catalog) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
