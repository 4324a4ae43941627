package main

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/category"
	catDto "github.com/fekuna/omnipos-warehouse-service/internal/category/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/product"
	prodDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/shopspring/decimal"
)

type sampleProduct struct {
	name, description, category string
	stock, minStock             int
	price                       string
}

var sampleCategories = []string{"Office Supplies", "Electronics", "Cleaning", "Safety", "Tools"}

var sampleProducts = []sampleProduct{
	{"Printer Paper A4", "500-sheet ream, 75 g/m2", "Office Supplies", 120, 30, "4.50"},
	{"Ballpoint Pens", "Box of 50, blue ink", "Office Supplies", 18, 20, "7.90"},
	{"USB-C Cable", "1 m braided charging cable", "Electronics", 45, 10, "6.25"},
	{"Wireless Mouse", "2.4 GHz optical mouse", "Electronics", 8, 10, "14.99"},
	{"Floor Cleaner", "5 L concentrate", "Cleaning", 25, 5, "11.40"},
	{"Nitrile Gloves", "Box of 100, size M", "Safety", 4, 15, "9.80"},
	{"Safety Goggles", "Anti-fog, EN166", "Safety", 30, 10, "5.60"},
	{"Claw Hammer", "16 oz steel shaft", "Tools", 12, 3, "18.00"},
}

// seed loads a small demo catalog into empty stores.
func seed(ctx context.Context, categories category.UseCase, products product.UseCase) error {
	ids := make(map[string]int, len(sampleCategories))
	for _, name := range sampleCategories {
		c, err := categories.CreateCategory(ctx, &catDto.CreateCategoryInput{Name: name})
		if err != nil {
			return err
		}
		ids[name] = c.ID
	}

	for _, p := range sampleProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		if _, err := products.CreateProduct(ctx, &prodDto.CreateProductInput{
			Name:        p.name,
			Description: p.description,
			CategoryID:  ids[p.category],
			Stock:       p.stock,
			MinStock:    p.minStock,
			Price:       price,
		}); err != nil {
			return err
		}
	}
	return nil
}
