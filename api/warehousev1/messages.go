package warehousev1

import "time"

type Empty struct{}

// --- Category ---

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type GetCategoryRequest struct {
	Id int `json:"id"`
}

type ListCategoriesRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
	Total      int         `json:"total"`
}

type UpdateCategoryRequest struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type DeleteCategoryRequest struct {
	Id int `json:"id"`
}

type CategoryResponse struct {
	Category *Category `json:"category"`
}

// --- Product ---

type Product struct {
	Id           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryId   int       `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Stock        int       `json:"stock"`
	MinStock     int       `json:"min_stock"`
	Price        string    `json:"price"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryId  int    `json:"category_id"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	Price       string `json:"price"`
}

// UpdateProductRequest carries only the fields to change; nil means keep.
type UpdateProductRequest struct {
	Id          int     `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryId  *int    `json:"category_id,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	MinStock    *int    `json:"min_stock,omitempty"`
	Price       *string `json:"price,omitempty"`
}

type GetProductRequest struct {
	Id int `json:"id"`
}

type DeleteProductRequest struct {
	Id int `json:"id"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
}

type SearchProductsRequest struct {
	Query string `json:"query"`
}

type FilterByCategoryRequest struct {
	Category string `json:"category"`
}

type ListLowStockRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

// --- Inventory ---

type StockMovement struct {
	Id             int       `json:"id"`
	ProductId      int       `json:"product_id"`
	MovementType   string    `json:"movement_type"`
	QuantityChange int       `json:"quantity_change"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	ReferenceId    string    `json:"reference_id"`
	Notes          string    `json:"notes"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdjustInventoryRequest struct {
	ProductId      int    `json:"product_id"`
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
}

type AdjustInventoryResponse struct {
	Product  *Product       `json:"product"`
	Movement *StockMovement `json:"movement"`
}

type ListMovementsRequest struct {
	ProductId    int    `json:"product_id"`
	MovementType string `json:"movement_type"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

type ListMovementsResponse struct {
	Movements []*StockMovement `json:"movements"`
	Total     int              `json:"total"`
}

// --- Cart ---

// CartLine flags ExceedsStock when the product was deleted or its stock fell
// below Quantity after the line was added.
type CartLine struct {
	ProductId    int      `json:"product_id"`
	Quantity     int      `json:"quantity"`
	Product      *Product `json:"product,omitempty"`
	ExceedsStock bool     `json:"exceeds_stock"`
}

type Cart struct {
	Lines       []*CartLine `json:"lines"`
	TotalItems  int         `json:"total_items"`
	Committable bool        `json:"committable"`
}

type AddToCartRequest struct {
	ProductId int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductId int `json:"product_id"`
}

type UpdateCartItemRequest struct {
	ProductId int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CartResponse struct {
	Cart *Cart `json:"cart"`
}

// --- Withdrawal ---

type WithdrawalItem struct {
	ProductId int      `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product"`
}

type Withdrawal struct {
	Id                int               `json:"id"`
	Items             []*WithdrawalItem `json:"items"`
	TotalItems        int               `json:"total_items"`
	UserId            int               `json:"user_id"`
	UserName          string            `json:"user_name"`
	UserSection       string            `json:"user_section"`
	WithdrawerName    string            `json:"withdrawer_name"`
	WithdrawerSection string            `json:"withdrawer_section"`
	Notes             string            `json:"notes"`
	CreatedAt         time.Time         `json:"created_at"`
}

type ConfirmWithdrawalRequest struct {
	WithdrawerName    string `json:"withdrawer_name"`
	WithdrawerSection string `json:"withdrawer_section"`
	Notes             string `json:"notes"`
}

type GetWithdrawalRequest struct {
	Id int `json:"id"`
}

type WithdrawalResponse struct {
	Withdrawal *Withdrawal `json:"withdrawal"`
}

type ListWithdrawalsResponse struct {
	Withdrawals []*Withdrawal `json:"withdrawals"`
}

// --- Auth ---

type User struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Role         string `json:"role"`
	Section      string `json:"section"`
}

type LoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SessionResponse has a nil User when nobody is logged in.
type SessionResponse struct {
	User *User `json:"user"`
}

// --- Report ---

type ProductQuantity struct {
	ProductId int    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DashboardResponse struct {
	TotalProducts        int                `json:"total_products"`
	LowStockProducts     int                `json:"low_stock_products"`
	TotalCategories      int                `json:"total_categories"`
	TotalWithdrawals     int                `json:"total_withdrawals"`
	TopWithdrawnProducts []*ProductQuantity `json:"top_withdrawn_products"`
	TopCategories        []*CategoryCount   `json:"top_categories"`
	RecentProducts       []*Product         `json:"recent_products"`
	RecentWithdrawals    []*Withdrawal      `json:"recent_withdrawals"`
}

type ExportLowStockRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

type ExportWithdrawalRequest struct {
	Id int `json:"id"`
}

type ExportResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
