package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/anthony-garcia-santos/techstorage/internal/types/product"
)

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pricePtr(v int64) *decimal.Decimal {
	d := price(v)
	return &d
}

// DefaultProducts is the launch catalog installed into an empty store.
func DefaultProducts() []product.Product {
	return []product.Product{
		{
			ID:            "1",
			Name:          "iPhone 15 Pro",
			Price:         price(1299),
			OriginalPrice: pricePtr(1599),
			Description: "Premium smartphone with the A17 Pro chip and a 48MP camera\n\n" +
				"Released: 2023\nCarrier: Unlocked\nNetwork: GSM / 4G / 5G",
			Category: "phones",
			Rating:   4.8,
			Reviews:  324,
			InStock:  true,
			Featured: true,
			Images: []string{
				"/iphone-15-pro-smartphone.jpg",
				"/iphone-15-pro-front-view.jpg",
				"/iphone-15-pro-back-view.jpg",
				"/iphone-15-pro-side-view.jpg",
			},
			Specs: []product.Spec{
				{Label: "Display", Value: `6.1" Super Retina XDR`},
				{Label: "Processor", Value: "A17 Pro"},
				{Label: "Camera", Value: "48MP Main"},
				{Label: "Battery", Value: "Up to 29 hours"},
				{Label: "Storage", Value: "256GB"},
			},
		},
		{
			ID:            "2",
			Name:          `MacBook Pro 16"`,
			Price:         price(2499),
			OriginalPrice: pricePtr(2999),
			Description:   `MacBook Pro 16" with the M3 Max chip, built for professionals who need maximum processing power.`,
			Category:      "laptops",
			Rating:        4.9,
			Reviews:       512,
			InStock:       true,
			Featured:      true,
			Images: []string{
				"/macbook-pro-laptop.jpg",
				"/macbook-pro-keyboard-view.jpg",
				"/macbook-pro-side-profile.jpg",
				"/macbook-pro-ports-view.jpg",
			},
			Specs: []product.Spec{
				{Label: "Display", Value: `16" Liquid Retina XDR`},
				{Label: "Processor", Value: "M3 Max"},
				{Label: "RAM", Value: "36GB"},
				{Label: "Storage", Value: "1TB SSD"},
				{Label: "Battery", Value: "Up to 22 hours"},
			},
		},
		{
			ID:          "3",
			Name:        "AirPods Pro Max",
			Price:       price(549),
			Description: "High-fidelity audio with adaptive active noise cancellation in an aluminium design.",
			Category:    "accessories",
			Rating:      4.7,
			Reviews:     289,
			InStock:     true,
			Featured:    true,
			Images: []string{
				"/airpods-pro-max-headphones.jpg",
				"/airpods-pro-max-side-view.jpg",
				"/airpods-pro-max-case.jpg",
				"/airpods-pro-max-controls.jpg",
			},
			Specs: []product.Spec{
				{Label: "Driver", Value: "40mm dynamic"},
				{Label: "Noise cancelling", Value: "Adaptive active"},
				{Label: "Battery", Value: "Up to 20 hours"},
				{Label: "Connectivity", Value: "Bluetooth 5.0"},
				{Label: "Weight", Value: "384g"},
			},
		},
		{
			ID:          "4",
			Name:        "iPad Air",
			Price:       price(799),
			Description: "iPad Air with the M1 chip, fast enough for work and play in a thin and light body.",
			Category:    "tablets",
			Rating:      4.6,
			Reviews:     198,
			InStock:     true,
			Featured:    true,
			Images: []string{
				"/ipad-air-tablet.jpg",
				"/ipad-air-with-apple-pencil.jpg",
				"/ipad-air-landscape-mode.jpg",
				"/ipad-air-back-view.jpg",
			},
			Specs: []product.Spec{
				{Label: "Display", Value: `10.9" Liquid Retina`},
				{Label: "Processor", Value: "Apple M1"},
				{Label: "Storage", Value: "256GB"},
				{Label: "Camera", Value: "12MP rear"},
				{Label: "Battery", Value: "Up to 10 hours"},
			},
		},
	}
}
