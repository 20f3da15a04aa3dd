package handler

import (
	app "github.com/accounting/backend/internal/application/accounting"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles financial report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *app.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *app.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes on the given group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.BalanceSheet)
		reports.GET("/income-statement", h.IncomeStatement)
		reports.GET("/cash-flow-statement", h.CashFlowStatement)
		reports.GET("/totals", h.Totals)
	}
}

// BalanceSheet handles GET /reports/balance-sheet
func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	report, err := h.reportService.BalanceSheet(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, app.ReportResponse{Report: report})
}

// IncomeStatement handles GET /reports/income-statement
func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	report, err := h.reportService.IncomeStatement(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, app.ReportResponse{Report: report})
}

// CashFlowStatement handles GET /reports/cash-flow-statement
func (h *ReportHandler) CashFlowStatement(c *gin.Context) {
	report, err := h.reportService.CashFlowStatement(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, app.ReportResponse{Report: report})
}

// Totals handles GET /reports/totals
func (h *ReportHandler) Totals(c *gin.Context) {
	totals, err := h.reportService.Totals(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, totals)
}
