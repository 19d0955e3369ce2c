package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/01moynul/smilespa-golang/internal/models"
)

//go:embed data/products.yaml
var defaultCatalog []byte

// --- File Format ---
// The data file is a YAML list of product records. Prices are plain
// numbers in the file and become decimals on load.

type productRecord struct {
	ID               string          `yaml:"id"`
	Name             string          `yaml:"name"`
	Category         string          `yaml:"category"`
	Subcategory      string          `yaml:"subcategory"`
	Description      string          `yaml:"description"`
	ShortDescription string          `yaml:"shortDescription"`
	Price            float64         `yaml:"price"`
	OriginalPrice    *float64        `yaml:"originalPrice"`
	Currency         string          `yaml:"currency"`
	Images           imagesRecord    `yaml:"images"`
	Nutrition        nutritionRecord `yaml:"nutrition"`
	Ingredients      []string        `yaml:"ingredients"`
	Benefits         []string        `yaml:"benefits"`
	Allergens        []string        `yaml:"allergens"`
	Tags             []string        `yaml:"tags"`
	InStock          bool            `yaml:"inStock"`
	Featured         bool            `yaml:"featured"`
	Rating           *float64        `yaml:"rating"`
	ReviewCount      *int            `yaml:"reviewCount"`
	Variants         []variantRecord `yaml:"variants"`
	RelatedProducts  []string        `yaml:"relatedProducts"`
}

type imagesRecord struct {
	Main      string   `yaml:"main"`
	Gallery   []string `yaml:"gallery"`
	Thumbnail string   `yaml:"thumbnail"`
}

type nutritionRecord struct {
	Calories    *float64 `yaml:"calories"`
	Protein     *float64 `yaml:"protein"`
	Carbs       *float64 `yaml:"carbs"`
	Fat         *float64 `yaml:"fat"`
	Fiber       *float64 `yaml:"fiber"`
	Sugar       *float64 `yaml:"sugar"`
	Sodium      *float64 `yaml:"sodium"`
	ServingSize string   `yaml:"servingSize"`
}

type variantRecord struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Price      float64           `yaml:"price"`
	InStock    bool              `yaml:"inStock"`
	Attributes map[string]string `yaml:"attributes"`
}

// LoadDefault builds the catalog shipped inside the binary.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile builds a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return c, nil
}

// Load decodes YAML product records from r and validates them with New.
// Unknown fields are rejected so typos in the data file surface at startup.
func Load(r io.Reader) (*Catalog, error) {
	var records []productRecord
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toProduct())
	}
	return New(products)
}

func (r productRecord) toProduct() models.Product {
	p := models.Product{
		ID:               r.ID,
		Name:             r.Name,
		Category:         models.Category(r.Category),
		Subcategory:      models.Subcategory(r.Subcategory),
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            decimal.NewFromFloat(r.Price),
		Currency:         r.Currency,
		Images: models.ProductImages{
			Main:      r.Images.Main,
			Gallery:   r.Images.Gallery,
			Thumbnail: r.Images.Thumbnail,
		},
		Nutrition: models.Nutrition{
			Calories:    r.Nutrition.Calories,
			Protein:     r.Nutrition.Protein,
			Carbs:       r.Nutrition.Carbs,
			Fat:         r.Nutrition.Fat,
			Fiber:       r.Nutrition.Fiber,
			Sugar:       r.Nutrition.Sugar,
			Sodium:      r.Nutrition.Sodium,
			ServingSize: r.Nutrition.ServingSize,
		},
		Ingredients:     nonNil(r.Ingredients),
		Benefits:        nonNil(r.Benefits),
		Allergens:       nonNil(r.Allergens),
		Tags:            nonNil(r.Tags),
		InStock:         r.InStock,
		Featured:        r.Featured,
		Rating:          r.Rating,
		ReviewCount:     r.ReviewCount,
		RelatedProducts: r.RelatedProducts,
	}
	if r.OriginalPrice != nil {
		op := decimal.NewFromFloat(*r.OriginalPrice)
		p.OriginalPrice = &op
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, models.ProductVariant{
			ID:         v.ID,
			Name:       v.Name,
			Price:      decimal.NewFromFloat(v.Price),
			InStock:    v.InStock,
			Attributes: v.Attributes,
		})
	}
	return p
}

// nonNil keeps empty lists rendering as [] in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
