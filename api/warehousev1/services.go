package warehousev1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	CategoryServiceName   = "warehouse.v1.CategoryService"
	ProductServiceName    = "warehouse.v1.ProductService"
	InventoryServiceName  = "warehouse.v1.InventoryService"
	CartServiceName       = "warehouse.v1.CartService"
	WithdrawalServiceName = "warehouse.v1.WithdrawalService"
	AuthServiceName       = "warehouse.v1.AuthService"
	ReportServiceName     = "warehouse.v1.ReportService"
)

const metadataFile = "warehouse/v1/warehouse.json"

// --- CategoryService ---

type CategoryServiceServer interface {
	CreateCategory(context.Context, *CreateCategoryRequest) (*CategoryResponse, error)
	GetCategory(context.Context, *GetCategoryRequest) (*CategoryResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*Empty, error)
}

var CategoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CategoryServiceName, "CreateCategory", CategoryServiceServer.CreateCategory),
		unary(CategoryServiceName, "GetCategory", CategoryServiceServer.GetCategory),
		unary(CategoryServiceName, "ListCategories", CategoryServiceServer.ListCategories),
		unary(CategoryServiceName, "UpdateCategory", CategoryServiceServer.UpdateCategory),
		unary(CategoryServiceName, "DeleteCategory", CategoryServiceServer.DeleteCategory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryService_ServiceDesc, srv)
}

// --- ProductService ---

type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	SearchProducts(context.Context, *SearchProductsRequest) (*ListProductsResponse, error)
	FilterByCategory(context.Context, *FilterByCategoryRequest) (*ListProductsResponse, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListProductsResponse, error)
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ProductServiceName, "CreateProduct", ProductServiceServer.CreateProduct),
		unary(ProductServiceName, "GetProduct", ProductServiceServer.GetProduct),
		unary(ProductServiceName, "UpdateProduct", ProductServiceServer.UpdateProduct),
		unary(ProductServiceName, "DeleteProduct", ProductServiceServer.DeleteProduct),
		unary(ProductServiceName, "ListProducts", ProductServiceServer.ListProducts),
		unary(ProductServiceName, "SearchProducts", ProductServiceServer.SearchProducts),
		unary(ProductServiceName, "FilterByCategory", ProductServiceServer.FilterByCategory),
		unary(ProductServiceName, "ListLowStock", ProductServiceServer.ListLowStock),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

// --- InventoryService ---

type InventoryServiceServer interface {
	AdjustInventory(context.Context, *AdjustInventoryRequest) (*AdjustInventoryResponse, error)
	ListInventoryMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InventoryServiceName, "AdjustInventory", InventoryServiceServer.AdjustInventory),
		unary(InventoryServiceName, "ListInventoryMovements", InventoryServiceServer.ListInventoryMovements),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

// --- CartService ---

type CartServiceServer interface {
	GetCart(context.Context, *Empty) (*CartResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*CartResponse, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*CartResponse, error)
	UpdateCartItemQuantity(context.Context, *UpdateCartItemRequest) (*CartResponse, error)
	ClearCart(context.Context, *Empty) (*CartResponse, error)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CartServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CartServiceName, "GetCart", CartServiceServer.GetCart),
		unary(CartServiceName, "AddToCart", CartServiceServer.AddToCart),
		unary(CartServiceName, "RemoveFromCart", CartServiceServer.RemoveFromCart),
		unary(CartServiceName, "UpdateCartItemQuantity", CartServiceServer.UpdateCartItemQuantity),
		unary(CartServiceName, "ClearCart", CartServiceServer.ClearCart),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

// --- WithdrawalService ---

type WithdrawalServiceServer interface {
	ConfirmWithdrawal(context.Context, *ConfirmWithdrawalRequest) (*WithdrawalResponse, error)
	GetWithdrawal(context.Context, *GetWithdrawalRequest) (*WithdrawalResponse, error)
	ListWithdrawals(context.Context, *Empty) (*ListWithdrawalsResponse, error)
}

var WithdrawalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: WithdrawalServiceName,
	HandlerType: (*WithdrawalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(WithdrawalServiceName, "ConfirmWithdrawal", WithdrawalServiceServer.ConfirmWithdrawal),
		unary(WithdrawalServiceName, "GetWithdrawal", WithdrawalServiceServer.GetWithdrawal),
		unary(WithdrawalServiceName, "ListWithdrawals", WithdrawalServiceServer.ListWithdrawals),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterWithdrawalServiceServer(s grpc.ServiceRegistrar, srv WithdrawalServiceServer) {
	s.RegisterService(&WithdrawalService_ServiceDesc, srv)
}

// --- AuthService ---

type AuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*SessionResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
	GetSession(context.Context, *Empty) (*SessionResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*Empty, error)
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "Login", AuthServiceServer.Login),
		unary(AuthServiceName, "Logout", AuthServiceServer.Logout),
		unary(AuthServiceName, "GetSession", AuthServiceServer.GetSession),
		unary(AuthServiceName, "ChangePassword", AuthServiceServer.ChangePassword),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

// --- ReportService ---

type ReportServiceServer interface {
	GetDashboard(context.Context, *Empty) (*DashboardResponse, error)
	ExportLowStock(context.Context, *ExportLowStockRequest) (*ExportResponse, error)
	ExportWithdrawal(context.Context, *ExportWithdrawalRequest) (*ExportResponse, error)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ReportServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ReportServiceName, "GetDashboard", ReportServiceServer.GetDashboard),
		unary(ReportServiceName, "ExportLowStock", ReportServiceServer.ExportLowStock),
		unary(ReportServiceName, "ExportWithdrawal", ReportServiceServer.ExportWithdrawal),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: metadataFile,
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}
