package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-warehouse-service/internal/apperr"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	productDto "github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/report"
	"github.com/fekuna/omnipos-warehouse-service/internal/report/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DownloadHandler serves spreadsheet exports over plain HTTP.
type DownloadHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewDownloadHandler(uc report.UseCase, log logger.ZapLogger) *DownloadHandler {
	return &DownloadHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DownloadHandler) Register(r gin.IRoutes) {
	r.GET("/healthz", h.health)
	r.GET("/export/low-stock", h.lowStock)
	r.GET("/export/withdrawals/:id", h.withdrawal)
}

func (h *DownloadHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DownloadHandler) lowStock(c *gin.Context) {
	export, err := h.uc.ExportLowStock(c.Request.Context(), &productDto.ProductFilters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	attach(c, export)
}

func (h *DownloadHandler) withdrawal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid withdrawal id"})
		return
	}

	export, err := h.uc.ExportWithdrawal(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	attach(c, export)
}

func (h *DownloadHandler) fail(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("export failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render export"})
	}
}

func attach(c *gin.Context, e *dto.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", e.Filename))
	c.Data(http.StatusOK, e.ContentType, e.Content)
}
