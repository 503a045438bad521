package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/middleware"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/store"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Date", "Category", "Amount", "Payment Method", "Description"}

// ExportHandler serves CSV and XLSX downloads of the caller's expenses.
type ExportHandler struct {
	Expenses *store.ExpenseStore
}

func NewExportHandler(expenses *store.ExpenseStore) *ExportHandler {
	return &ExportHandler{Expenses: expenses}
}

// ExportCSV streams the caller's expenses as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	from, to, errs := parseDateRange(c)
	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	expenses, err := h.Expenses.List(user.ID, from, to)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load expenses")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range expenses {
		e := &expenses[i]
		writer.Write([]string{
			e.Date.Format("2006-01-02"),
			e.Category,
			util.FormatCent(e.AmountCent),
			e.PaymentMethod,
			e.Description,
		})
	}
}

// ExportXLSX streams the caller's expenses as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	from, to, errs := parseDateRange(c)
	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	expenses, err := h.Expenses.List(user.ID, from, to)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load expenses")
		return
	}

	f := excelize.NewFile()
	sheetName := "Expenses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range expenses {
		e := &expenses[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), util.FormatCent(e.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.Description)
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to export")
	}
}
