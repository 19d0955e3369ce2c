package catalog

import (
	"fmt"

	"github.com/01moynul/smilespa-golang/internal/models"
)

const (
	productsIndexPath = "/products"
	// fallbackRating is shown on a category card whose lead product has no rating.
	fallbackRating = 4.5
)

// Categories returns the categories present in the catalog, in order of
// first appearance.
func (c *Catalog) Categories() []models.Category {
	seen := make(map[models.Category]bool)
	out := []models.Category{}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Subcategories returns the distinct subcategories used within a category,
// in order of first appearance.
func (c *Catalog) Subcategories(category string) []models.Subcategory {
	return distinctSubcategories(c.ProductsByCategory(category))
}

func distinctSubcategories(products []models.Product) []models.Subcategory {
	seen := make(map[models.Subcategory]bool)
	out := []models.Subcategory{}
	for _, p := range products {
		if p.Subcategory == "" || seen[p.Subcategory] {
			continue
		}
		seen[p.Subcategory] = true
		out = append(out, p.Subcategory)
	}
	return out
}

// CategorySummaries builds one index card per present category. The card's
// price and rating come from the first featured product of the category, or
// its first product when none is featured.
func (c *Catalog) CategorySummaries() []models.CategorySummary {
	out := []models.CategorySummary{}
	for _, cat := range c.Categories() {
		products := c.ProductsByCategory(string(cat))
		lead := products[0]
		for _, p := range products {
			if p.Featured {
				lead = p
				break
			}
		}

		summary := models.CategorySummary{
			Category:     cat,
			Title:        cat.DisplayName(),
			Description:  fmt.Sprintf("%d products available", len(products)),
			Image:        CategoryBoxImage(string(cat)),
			Link:         CategoryLink(string(cat)),
			FromPrice:    lead.Price,
			Rating:       fallbackRating,
			ProductCount: len(products),
		}
		if lead.Rating != nil && *lead.Rating != 0 {
			summary.Rating = *lead.Rating
		}
		if lead.ReviewCount != nil {
			summary.ReviewCount = *lead.ReviewCount
		}
		out = append(out, summary)
	}
	return out
}

// CategoryPage assembles a category listing, optionally narrowed to one
// subcategory. The subcategory filter list always reflects the whole
// category. An unknown category yields an empty page titled with its slug.
func (c *Catalog) CategoryPage(category, subcategory string) models.CategoryPage {
	products := c.ProductsByCategory(category)

	refs := []models.SubcategoryRef{}
	for _, sub := range distinctSubcategories(products) {
		refs = append(refs, models.SubcategoryRef{Slug: sub, Title: sub.DisplayName()})
	}

	if subcategory != "" {
		narrowed := []models.Product{}
		for _, p := range products {
			if string(p.Subcategory) == subcategory {
				narrowed = append(narrowed, p)
			}
		}
		products = narrowed
	}

	title := CategoryDisplayName(category)
	return models.CategoryPage{
		Category:      models.Category(category),
		Title:         title,
		Image:         CategoryBoxImage(category),
		Subcategories: refs,
		Selected:      models.Subcategory(subcategory),
		Products:      products,
		Breadcrumbs: []models.Breadcrumb{
			{Label: "Products", Href: productsIndexPath},
			{Label: title},
		},
	}
}

// categoryRelatedLimit caps the same-category strip on a detail page.
const categoryRelatedLimit = 3

// ProductPage assembles a product detail view. Related lists the product's
// own related ids (up to DefaultRelatedLimit); when none resolve it falls
// back to the first categoryRelatedLimit other products of the same
// category. Found reports whether id resolved.
func (c *Catalog) ProductPage(id string) models.ProductPage {
	p, ok := c.ProductByID(id)
	if !ok {
		return models.ProductPage{}
	}

	catTitle := p.Category.DisplayName()
	page := models.ProductPage{
		Found:         true,
		Product:       p,
		CategoryTitle: catTitle,
		Link:          ProductLink(p),
		Related:       c.pageRelated(p),
		Breadcrumbs: []models.Breadcrumb{
			{Label: "Products", Href: productsIndexPath},
			{Label: catTitle, Href: CategoryLink(string(p.Category))},
			{Label: p.Name},
		},
	}
	if p.Subcategory != "" {
		page.SubcategoryTitle = p.Subcategory.DisplayName()
	}
	return page
}

func (c *Catalog) pageRelated(p models.Product) []models.Product {
	if related := c.RelatedProducts(p.ID, DefaultRelatedLimit); len(related) > 0 {
		return related
	}
	out := []models.Product{}
	for _, other := range c.ProductsByCategory(string(p.Category)) {
		if len(out) == categoryRelatedLimit {
			break
		}
		if other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}
