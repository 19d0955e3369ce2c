package catalog

import "github.com/01moynul/smilespa-golang/internal/models"

// DefaultBoxImage is used for categories without dedicated box art.
const DefaultBoxImage = "/pics/products/boxes/box.png"

var categoryBoxImages = map[models.Category]string{
	models.CategoryWeightManagement:     "/pics/products/boxes/weight-box.png",
	models.CategoryFitnessPerformance:   "/pics/products/boxes/fitness-box.png",
	models.CategoryOralPeptides:         "/pics/products/boxes/oral-box.png",
	models.CategoryTissueRepairRecovery: "/pics/products/boxes/tissue-box.png",
	models.CategoryHealthAntiAging:      DefaultBoxImage,
	models.CategoryOrganSystemSupport:   DefaultBoxImage,
	models.CategoryAesthetics:           DefaultBoxImage,
}

// CategoryDisplayName maps a category slug to its label; unknown slugs are
// returned unchanged.
func CategoryDisplayName(slug string) string {
	return models.Category(slug).DisplayName()
}

// SubcategoryDisplayName maps a subcategory slug to its label; unknown slugs
// are returned unchanged.
func SubcategoryDisplayName(slug string) string {
	return models.Subcategory(slug).DisplayName()
}

// CategoryBoxImage returns the box artwork path for a category.
func CategoryBoxImage(slug string) string {
	if img, ok := categoryBoxImages[models.Category(slug)]; ok {
		return img
	}
	return DefaultBoxImage
}

// ProductLink is the storefront path of a product detail page.
func ProductLink(p models.Product) string {
	return "/products/" + string(p.Category) + "/" + p.ID
}

// CategoryLink is the storefront path of a category listing.
func CategoryLink(slug string) string {
	return "/products/" + slug
}
