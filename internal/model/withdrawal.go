package model

import "time"

// WithdrawalItem is a cart line frozen at commit time.
type WithdrawalItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

type Withdrawal struct {
	ID                int              `json:"id"`
	Items             []WithdrawalItem `json:"items"`
	TotalItems        int              `json:"total_items"`
	UserID            int              `json:"user_id"`
	UserName          string           `json:"user_name"`
	UserSection       string           `json:"user_section"`
	WithdrawerName    string           `json:"withdrawer_name"`
	WithdrawerSection string           `json:"withdrawer_section"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// Clone deep-copies the withdrawal so ledger entries cannot be mutated through it.
func (w *Withdrawal) Clone() *Withdrawal {
	if w == nil {
		return nil
	}
	c := *w
	c.Items = make([]WithdrawalItem, len(w.Items))
	for i, it := range w.Items {
		c.Items[i] = it
		c.Items[i].Product = *it.Product.Clone()
	}
	return &c
}
