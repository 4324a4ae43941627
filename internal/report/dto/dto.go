package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

const (
	TopProductsLimit   = 4
	TopCategoriesLimit = 4
	RecentLimit        = 5

	// UnknownProduct names a withdrawn product that has since been deleted.
	UnknownProduct = "Unknown product"
)

type ProductQuantity struct {
	ProductID int
	Name      string
	Quantity  int
}

type CategoryCount struct {
	Category string
	Count    int
}

type Dashboard struct {
	TotalProducts        int
	LowStockProducts     int
	TotalCategories      int // distinct categories referenced by products
	TotalWithdrawals     int
	TopWithdrawnProducts []ProductQuantity
	TopCategories        []CategoryCount
	RecentProducts       []model.Product
	RecentWithdrawals    []model.Withdrawal
}

// Export is a rendered download.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
