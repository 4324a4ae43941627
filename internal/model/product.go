package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int             `json:"category_id"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Category    *Category       `json:"category,omitempty"` // Joined data, not owned by the product
}

// IsLowStock reports whether stock is at or below the minimum.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// CategoryName returns the joined category name, or "" when not joined.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// Clone returns a copy that shares no pointers with p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.Category != nil {
		cat := *p.Category
		c.Category = &cat
	}
	return &c
}
