package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/dto"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers report routes. The pseudo company id
// "consolidated" selects the cross-company aggregate.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/companies/:companyID/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Derives the balance sheet from current account state; equity includes net income computed on the fly. Repeated calls never change ledger state.
// @Produce json
// @Param companyID path string true "Company ID or 'consolidated'"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	companyID := c.Param("companyID")

	var err error
	var report *dto.BalanceSheetResponse
	if companyID == consolidatedID {
		consolidated, cErr := h.reportingService.ConsolidatedBalanceSheet(c.Request.Context())
		if cErr == nil {
			resp := dto.ToBalanceSheetResponse(consolidated, consolidatedID)
			report = &resp
		}
		err = cErr
	} else {
		single, sErr := h.reportingService.BalanceSheet(c.Request.Context(), companyID)
		if sErr == nil {
			resp := dto.ToBalanceSheetResponse(single, companyID)
			report = &resp
		}
		err = sErr
	}
	if err != nil {
		respondServiceError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Generate an income statement
// @Description Lists nonzero revenue and expense accounts in chart order with totals and net income
// @Produce json
// @Param companyID path string true "Company ID or 'consolidated'"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	companyID := c.Param("companyID")

	var err error
	var report *dto.IncomeStatementResponse
	if companyID == consolidatedID {
		consolidated, cErr := h.reportingService.ConsolidatedIncomeStatement(c.Request.Context())
		if cErr == nil {
			resp := dto.ToIncomeStatementResponse(consolidated, consolidatedID)
			report = &resp
		}
		err = cErr
	} else {
		single, sErr := h.reportingService.IncomeStatement(c.Request.Context(), companyID)
		if sErr == nil {
			resp := dto.ToIncomeStatementResponse(single, companyID)
			report = &resp
		}
		err = sErr
	}
	if err != nil {
		respondServiceError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}
