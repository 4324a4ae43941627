package report

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	reportDto "github.com/fekuna/omnipos-warehouse-service/internal/report/dto"
)

type UseCase interface {
	Dashboard(ctx context.Context) (*reportDto.Dashboard, error)
	ExportLowStock(ctx context.Context, filters *dto.ProductFilters) (*reportDto.Export, error)
	ExportWithdrawal(ctx context.Context, id int) (*reportDto.Export, error)
}
