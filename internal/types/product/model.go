package product

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	InStock       bool             `json:"inStock"`
	Featured      bool             `json:"featured,omitempty"`
	Images        []string         `json:"images"`
	Specs         []Spec           `json:"specs,omitempty"`
}

// Image is the cover image, empty when the product has none.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Patch is a partial update; nil fields are left untouched. A JSON null
// cannot be told apart from an absent field, so removing the original price
// takes ClearOriginalPrice.
type Patch struct {
	Name          *string          `json:"name,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	// ClearOriginalPrice drops the discount; it wins over OriginalPrice.
	ClearOriginalPrice bool             `json:"clearOriginalPrice,omitempty"`
	Description        *string          `json:"description,omitempty"`
	Category           *string          `json:"category,omitempty"`
	Rating             *float64         `json:"rating,omitempty"`
	Reviews            *int             `json:"reviews,omitempty"`
	InStock            *bool            `json:"inStock,omitempty"`
	Featured           *bool            `json:"featured,omitempty"`
	Images             *[]string        `json:"images,omitempty"`
	Specs              *[]Spec          `json:"specs,omitempty"`
}

func (p Patch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		dst.OriginalPrice = &op
	}
	if p.ClearOriginalPrice {
		dst.OriginalPrice = nil
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Rating != nil {
		dst.Rating = *p.Rating
	}
	if p.Reviews != nil {
		dst.Reviews = *p.Reviews
	}
	if p.InStock != nil {
		dst.InStock = *p.InStock
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
	if p.Images != nil {
		dst.Images = slices.Clone(*p.Images)
	}
	if p.Specs != nil {
		dst.Specs = slices.Clone(*p.Specs)
	}
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

type Filter struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     SortKey
}

// Clone returns a deep copy so callers never alias catalog state.
func (p Product) Clone() Product {
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	if p.Images != nil {
		p.Images = slices.Clone(p.Images)
	}
	if p.Specs != nil {
		p.Specs = slices.Clone(p.Specs)
	}
	return p
}
