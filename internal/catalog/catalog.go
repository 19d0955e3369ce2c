// Package catalog holds the immutable product catalog and its read-only
// accessors. A Catalog is built once with New (or one of the Load helpers)
// and shared by reference; none of its methods mutate it, so it is safe for
// concurrent use without locking.
package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/01moynul/smilespa-golang/internal/models"
)

var (
	// ErrDuplicateID indicates two products share the same id.
	ErrDuplicateID = errors.New("catalog: duplicate product id")
	// ErrInvalidProduct indicates a product failed field validation.
	ErrInvalidProduct = errors.New("catalog: invalid product")
)

// Catalog is an in-memory, immutable list of products in declaration order.
type Catalog struct {
	products []models.Product
	byID     map[string]int
	dangling map[string][]string
	etag     string
}

// New validates products and builds a Catalog over a private copy of them.
// Every problem found is reported in a single joined error.
func New(products []models.Product) (*Catalog, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		dangling: make(map[string][]string),
	}
	for i, p := range products {
		c.products[i] = p.Clone()
	}

	var errs []error
	for i, p := range c.products {
		// 1. Field-level rules
		if err := validateProduct(validate, p); err != nil {
			errs = append(errs, err)
		}

		// 2. Uniqueness
		if first, exists := c.byID[p.ID]; exists {
			errs = append(errs, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, p.ID, first, i))
			continue
		}
		c.byID[p.ID] = i
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// 3. Related ids that point nowhere are tolerated, only recorded
	for _, p := range c.products {
		for _, rid := range p.RelatedProducts {
			if _, ok := c.byID[rid]; !ok {
				c.dangling[p.ID] = append(c.dangling[p.ID], rid)
			}
		}
	}

	etag, err := computeETag(c.products)
	if err != nil {
		return nil, err
	}
	c.etag = etag

	return c, nil
}

func validateProduct(validate *validator.Validate, p models.Product) error {
	label := p.ID
	if label == "" {
		label = p.Name
	}

	var problems []error
	if err := validate.Struct(p); err != nil {
		problems = append(problems, err)
	}
	if p.ID != "" && !slug.IsSlug(p.ID) {
		problems = append(problems, fmt.Errorf("id %q is not a kebab-case slug", p.ID))
	}
	if p.Category != "" && !p.Category.Valid() {
		problems = append(problems, fmt.Errorf("unknown category %q", p.Category))
	}
	if !p.Subcategory.Valid() {
		problems = append(problems, fmt.Errorf("unknown subcategory %q", p.Subcategory))
	}
	if p.Price.IsNegative() {
		problems = append(problems, fmt.Errorf("negative price %s", p.Price))
	}
	if p.OriginalPrice != nil && p.OriginalPrice.IsNegative() {
		problems = append(problems, fmt.Errorf("negative original price %s", p.OriginalPrice))
	}
	for _, v := range p.Variants {
		if v.Price.IsNegative() {
			problems = append(problems, fmt.Errorf("variant %q has negative price %s", v.ID, v.Price))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidProduct, label, errors.Join(problems...))
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ETag is a weak entity tag identifying this catalog's content.
func (c *Catalog) ETag() string {
	return c.etag
}

// DanglingRelations maps product ids to the related ids that do not resolve.
func (c *Catalog) DanglingRelations() map[string][]string {
	out := make(map[string][]string, len(c.dangling))
	for id, missing := range c.dangling {
		out[id] = append([]string(nil), missing...)
	}
	return out
}
