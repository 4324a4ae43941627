// Package guard serializes read-validate-write sequences against the catalog.
package guard

import "sync"

// Stock is shared by every component that checks catalog state before
// writing it: cart edits, manual adjustments and withdrawal commits against
// stock levels, and product writes against category deletion.
type Stock struct {
	mu sync.Mutex
}

func New() *Stock {
	return &Stock{}
}

// Do runs fn while holding the stock lock and returns its error.
func (g *Stock) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
