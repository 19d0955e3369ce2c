package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/smilespa-golang/internal/models"
)

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tissue Repair & Recovery", CategoryDisplayName("tissue-repair-recovery"))
	assert.Equal(t, "Organ/System Support", CategoryDisplayName("organ-system-support"))
	assert.Equal(t, "Peptides & Wellness", CategoryDisplayName("peptides"))
	assert.Equal(t, "unknown-slug", CategoryDisplayName("unknown-slug"))
	assert.Equal(t, "", CategoryDisplayName(""))

	assert.Equal(t, "Calming, Safety, Connection & Trust", SubcategoryDisplayName("calming-safety-connection-trust"))
	assert.Equal(t, "Fat Loss", SubcategoryDisplayName("fat-loss"))
	assert.Equal(t, "unknown-slug", SubcategoryDisplayName("unknown-slug"))
}

func TestCategoryBoxImage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/pics/products/boxes/weight-box.png", CategoryBoxImage("weight-management"))
	assert.Equal(t, "/pics/products/boxes/tissue-box.png", CategoryBoxImage("tissue-repair-recovery"))
	assert.Equal(t, DefaultBoxImage, CategoryBoxImage("aesthetics"))
	assert.Equal(t, DefaultBoxImage, CategoryBoxImage("peptides"))
	assert.Equal(t, DefaultBoxImage, CategoryBoxImage(""))
	assert.Equal(t, DefaultBoxImage, CategoryBoxImage("unknown-slug"))
}

func TestFeaturedTissueRepairScenario(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	bpc, ok := c.ProductByID("bpc-157")
	require.True(t, ok)
	assert.Equal(t, models.CategoryTissueRepairRecovery, bpc.Category)
	assert.True(t, bpc.Featured)

	assert.Contains(t, ids(c.FeaturedProducts()), "bpc-157")
	assert.Contains(t, ids(c.ProductsByCategory("tissue-repair-recovery")), "bpc-157")
	assert.Equal(t, "Tissue Repair & Recovery", CategoryDisplayName(string(bpc.Category)))
	assert.Equal(t, "/products/tissue-repair-recovery/bpc-157", ProductLink(bpc))
}

func TestCategories(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	assert.Equal(t, []models.Category{
		models.CategoryWeightManagement,
		models.CategoryFitnessPerformance,
		models.CategoryTissueRepairRecovery,
		models.CategoryOralPeptides,
		models.CategoryOrganSystemSupport,
		models.CategoryHealthAntiAging,
		models.CategoryAesthetics,
	}, c.Categories())

	assert.Equal(t, []models.Subcategory{
		models.SubcategoryLibidoHormonalSupport,
		models.SubcategoryGutHealthInflammation,
		models.SubcategoryFightsInfection,
	}, c.Subcategories("organ-system-support"))
	assert.Empty(t, c.Subcategories("unknown"))
}

func TestCategorySummaries(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	summaries := c.CategorySummaries()
	require.Len(t, summaries, 7)

	total := 0
	for _, s := range summaries {
		total += s.ProductCount
	}
	assert.Equal(t, shippedSize, total)

	organ := summaries[4]
	assert.Equal(t, models.CategoryOrganSystemSupport, organ.Category)
	assert.Equal(t, "Organ/System Support", organ.Title)
	assert.Equal(t, "7 products available", organ.Description)
	assert.Equal(t, "/products/organ-system-support", organ.Link)
	assert.Equal(t, DefaultBoxImage, organ.Image)
	// gonadorelin is first but not featured; hcg is the first featured
	assert.Equal(t, "89.99", organ.FromPrice.String())
	assert.Equal(t, 4.6, organ.Rating)
	assert.Equal(t, 33, organ.ReviewCount)

	t.Run("FallbacksWithoutFeaturedOrRating", func(t *testing.T) {
		t.Parallel()
		small := mustNew(t, testProduct("plain", models.CategoryAesthetics))
		s := small.CategorySummaries()
		require.Len(t, s, 1)
		assert.Equal(t, 4.5, s[0].Rating)
		assert.Equal(t, 0, s[0].ReviewCount)
		assert.Equal(t, "10", s[0].FromPrice.String())
		assert.Equal(t, "1 products available", s[0].Description)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, mustNew(t).CategorySummaries())
	})
}

func TestCategoryPage(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	page := c.CategoryPage("organ-system-support", "")
	assert.Equal(t, "Organ/System Support", page.Title)
	assert.Len(t, page.Products, 7)
	assert.Equal(t, []models.SubcategoryRef{
		{Slug: models.SubcategoryLibidoHormonalSupport, Title: "Libido & Hormonal Support"},
		{Slug: models.SubcategoryGutHealthInflammation, Title: "Gut Health & Inflammation"},
		{Slug: models.SubcategoryFightsInfection, Title: "Fights Infection"},
	}, page.Subcategories)
	assert.Equal(t, []models.Breadcrumb{
		{Label: "Products", Href: "/products"},
		{Label: "Organ/System Support"},
	}, page.Breadcrumbs)

	narrowed := c.CategoryPage("organ-system-support", "fights-infection")
	assert.Equal(t, []string{"ll-37"}, ids(narrowed.Products))
	assert.Len(t, narrowed.Subcategories, 3, "filter buttons still list the whole category")
	assert.Equal(t, models.SubcategoryFightsInfection, narrowed.Selected)

	unknown := c.CategoryPage("unknown-slug", "")
	assert.Equal(t, "unknown-slug", unknown.Title)
	assert.Equal(t, DefaultBoxImage, unknown.Image)
	assert.NotNil(t, unknown.Products)
	assert.Empty(t, unknown.Products)
	assert.Empty(t, unknown.Subcategories)
}

func TestProductPage(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	page := c.ProductPage("semax")
	require.True(t, page.Found)
	assert.Equal(t, "SEMAX", page.Product.Name)
	assert.Equal(t, "Oral Peptides", page.CategoryTitle)
	assert.Equal(t, "Cognition & Focus", page.SubcategoryTitle)
	assert.Equal(t, "/products/oral-peptides/semax", page.Link)
	assert.Equal(t, []string{"selank", "semax-selank", "dihexa"}, ids(page.Related))
	assert.Equal(t, []models.Breadcrumb{
		{Label: "Products", Href: "/products"},
		{Label: "Oral Peptides", Href: "/products/oral-peptides"},
		{Label: "SEMAX"},
	}, page.Breadcrumbs)

	missing := c.ProductPage("nonexistent-id")
	assert.False(t, missing.Found)
}

func TestProductPageCategoryFallback(t *testing.T) {
	t.Parallel()
	c := shipped(t)

	// no relatedProducts in the data: first three others of the category
	page := c.ProductPage("ghk-cu")
	require.True(t, page.Found)
	assert.Equal(t, []string{"dsip", "epithalon", "mots-c"}, ids(page.Related))

	page = c.ProductPage("dsip")
	assert.Equal(t, []string{"epithalon", "ghk-cu", "mots-c"}, ids(page.Related))

	// sole member of its category
	page = c.ProductPage("radiant-xo-serum")
	assert.NotNil(t, page.Related)
	assert.Empty(t, page.Related)

	for _, p := range c.AllProducts() {
		if p.Category == models.CategoryAesthetics {
			continue
		}
		assert.NotEmpty(t, c.ProductPage(p.ID).Related, p.ID)
	}
}

func TestProductPageDanglingRelatedFallsBack(t *testing.T) {
	t.Parallel()

	a := testProduct("alpha", models.CategoryPeptides)
	a.RelatedProducts = []string{"ghost"}
	c := mustNew(t, a, testProduct("beta", models.CategoryPeptides), testProduct("gamma", models.CategoryAesthetics))

	assert.Equal(t, []string{"beta"}, ids(c.ProductPage("alpha").Related))
}
