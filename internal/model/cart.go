package model

type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CartLine is a cart entry joined with the live product. Product is nil
// when the product was deleted after the line was added.
type CartLine struct {
	CartItem
	Product *Product `json:"product,omitempty"`
}

// ExceedsStock reports whether the line can no longer be withdrawn as is:
// the product was deleted or its stock dropped below the line quantity.
func (l *CartLine) ExceedsStock() bool {
	return l.Product == nil || l.Quantity > l.Product.Stock
}

type Cart struct {
	Lines []CartLine `json:"lines"`
}

// TotalItems sums the line quantities. It is never stored.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Committable reports whether every line is still covered by current stock.
func (c *Cart) Committable() bool {
	for i := range c.Lines {
		if c.Lines[i].ExceedsStock() {
			return false
		}
	}
	return len(c.Lines) > 0
}
