package models

import "github.com/shopspring/decimal"

// --- Navigation View Models ---

// Breadcrumb is one step of a page trail. Href is empty for the current page.
type Breadcrumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// CategorySummary is the card shown for a category on the products index.
type CategorySummary struct {
	Category     Category        `json:"category"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Link         string          `json:"link"`
	FromPrice    decimal.Decimal `json:"fromPrice"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	ProductCount int             `json:"productCount"`
}

// CategoryPage is everything a category listing renders.
type CategoryPage struct {
	Category      Category         `json:"category"`
	Title         string           `json:"title"`
	Image         string           `json:"image"`
	Subcategories []SubcategoryRef `json:"subcategories"`
	Selected      Subcategory      `json:"selectedSubcategory,omitempty"`
	Products      []Product        `json:"products"`
	Breadcrumbs   []Breadcrumb     `json:"breadcrumbs"`
}

// SubcategoryRef pairs a subcategory slug with its label for filter buttons.
type SubcategoryRef struct {
	Slug  Subcategory `json:"slug"`
	Title string      `json:"title"`
}

// ProductPage is the product detail view. Found is false when the id is unknown.
type ProductPage struct {
	Found            bool         `json:"-"`
	Product          Product      `json:"product"`
	CategoryTitle    string       `json:"categoryTitle"`
	SubcategoryTitle string       `json:"subcategoryTitle,omitempty"`
	Link             string       `json:"link"`
	Related          []Product    `json:"related"`
	Breadcrumbs      []Breadcrumb `json:"breadcrumbs"`
	BookingURL       string       `json:"bookingUrl,omitempty"`
}
