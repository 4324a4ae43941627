// Package exporter renders already-validated records as xlsx workbooks.
package exporter

import (
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const notAvailable = "N/A"

var (
	LowStockHeaders = []string{
		"Name", "Description", "Category", "Current Stock", "Minimum Stock", "Deficit", "Price",
	}
	WithdrawalHeaders = []string{
		"Product", "Category", "Quantity", "Withdrawal Date", "Withdrawal Time",
		"Registered By", "Registering Section", "Withdrawn By", "Withdrawing Section", "Notes",
	}
)

// LowStock renders one row per product. Deficit is minStock - stock.
func LowStock(products []model.Product) ([]byte, error) {
	rows := make([][]interface{}, len(products))
	for i, p := range products {
		price, _ := p.Price.Float64()
		rows[i] = []interface{}{
			p.Name,
			p.Description,
			p.CategoryName(),
			p.Stock,
			p.MinStock,
			p.MinStock - p.Stock,
			price,
		}
	}
	return render("Low Stock", LowStockHeaders, rows)
}

// Withdrawal renders one row per item of w.
func Withdrawal(w *model.Withdrawal) ([]byte, error) {
	notes := w.Notes
	if notes == "" {
		notes = notAvailable
	}
	date := w.CreatedAt.Format("2006-01-02")
	clock := w.CreatedAt.Format("15:04:05")

	rows := make([][]interface{}, len(w.Items))
	for i, it := range w.Items {
		rows[i] = []interface{}{
			it.Product.Name,
			it.Product.CategoryName(),
			it.Quantity,
			date,
			clock,
			w.UserName,
			w.UserSection,
			w.WithdrawerName,
			w.WithdrawerSection,
			notes,
		}
	}
	return render(fmt.Sprintf("Withdrawal %d", w.ID), WithdrawalHeaders, rows)
}

func render(sheet string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
