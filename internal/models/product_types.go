package models

import (
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a single catalog entry.
// Optional numeric facts are pointers so they are omitted from JSON when unset.
type Product struct {
	ID               string      `json:"id" validate:"required"`
	Name             string      `json:"name" validate:"required"`
	Category         Category    `json:"category" validate:"required"`
	Subcategory      Subcategory `json:"subcategory,omitempty"`
	Description      string      `json:"description" validate:"required"`
	ShortDescription string      `json:"shortDescription"`

	// --- Pricing ---
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Currency      string           `json:"currency" validate:"required,len=3,uppercase"`

	// --- Media & Content ---
	Images      ProductImages `json:"images"`
	Nutrition   Nutrition     `json:"nutrition"`
	Ingredients []string      `json:"ingredients"`
	Benefits    []string      `json:"benefits"`
	Allergens   []string      `json:"allergens"`
	Tags        []string      `json:"tags" validate:"dive,required"`

	// --- Display Flags ---
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewCount *int     `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`

	// Joins (resolved by lookup, not embedded)
	Variants        []ProductVariant `json:"variants,omitempty" validate:"dive"`
	RelatedProducts []string         `json:"relatedProducts,omitempty"`
}

// ProductImages holds static asset paths under /pics.
type ProductImages struct {
	Main      string   `json:"main" validate:"required"`
	Gallery   []string `json:"gallery,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// Nutrition is descriptive only; no units are enforced.
type Nutrition struct {
	Calories    *float64 `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein     *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat         *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
	Fiber       *float64 `json:"fiber,omitempty" validate:"omitempty,gte=0"`
	Sugar       *float64 `json:"sugar,omitempty" validate:"omitempty,gte=0"`
	Sodium      *float64 `json:"sodium,omitempty" validate:"omitempty,gte=0"`
	ServingSize string   `json:"servingSize,omitempty"`
}

// ProductVariant is a purchasable option of a product (size, strength...).
type ProductVariant struct {
	ID         string            `json:"id" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Price      decimal.Decimal   `json:"price"`
	InStock    bool              `json:"inStock"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// HasTag reports whether the product carries tag, ignoring case.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy of p that shares no slices, maps or pointers with it.
func (p Product) Clone() Product {
	out := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	out.Images.Gallery = slices.Clone(p.Images.Gallery)
	out.Nutrition = p.Nutrition.clone()
	out.Ingredients = slices.Clone(p.Ingredients)
	out.Benefits = slices.Clone(p.Benefits)
	out.Allergens = slices.Clone(p.Allergens)
	out.Tags = slices.Clone(p.Tags)
	out.Rating = clonePtr(p.Rating)
	out.ReviewCount = clonePtr(p.ReviewCount)
	if p.Variants != nil {
		out.Variants = make([]ProductVariant, len(p.Variants))
		for i, v := range p.Variants {
			v.Attributes = maps.Clone(v.Attributes)
			out.Variants[i] = v
		}
	}
	out.RelatedProducts = slices.Clone(p.RelatedProducts)
	return out
}

func (n Nutrition) clone() Nutrition {
	n.Calories = clonePtr(n.Calories)
	n.Protein = clonePtr(n.Protein)
	n.Carbs = clonePtr(n.Carbs)
	n.Fat = clonePtr(n.Fat)
	n.Fiber = clonePtr(n.Fiber)
	n.Sugar = clonePtr(n.Sugar)
	n.Sodium = clonePtr(n.Sodium)
	return n
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
