package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/dto"
	"github.com/businessfin/bfp_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for posting transactions and
// reading a company's books.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers chart and transaction routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	companies := rg.Group("/companies/:companyID")
	{
		companies.GET("/accounts", h.getChart)
		companies.POST("/transactions", h.postTransaction)
		companies.GET("/transactions", h.getTransactionHistory)
		companies.GET("/transactions/export", h.exportTransactionHistoryCSV)
	}
}

// getChart godoc
// @Summary Get a company's chart of accounts
// @Description Returns every account with its current balance, in chart-definition order
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/accounts [get]
func (h *transactionHandler) getChart(c *gin.Context) {
	accounts, err := h.ledgerService.GetChart(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get chart of accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// postTransaction godoc
// @Summary Post a balanced transaction
// @Description Validates the entries (known accounts, exactly one positive side each, debits equal credits) and atomically applies them
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transaction body dto.PostTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/transactions [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	txn, err := h.ledgerService.PostTransaction(c.Request.Context(), companyID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to post transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransactionHistory godoc
// @Summary Get a company's transaction history
// @Description Returns the full log flattened to one row per entry, oldest transaction first
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} map[string][]dto.TransactionRowResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/transactions [get]
func (h *transactionHandler) getTransactionHistory(c *gin.Context) {
	rows, err := h.ledgerService.GetTransactionHistory(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get transaction history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// exportTransactionHistoryCSV godoc
// @Summary Download a company's transaction history as CSV
// @Produce text/csv
// @Param companyID path string true "Company ID"
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/transactions/export [get]
func (h *transactionHandler) exportTransactionHistoryCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	rows, err := h.ledgerService.GetTransactionHistory(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to export transaction history")
		return
	}

	filename := fmt.Sprintf("transaction_history_%s_%s.csv", companyID, time.Now().Format(dto.DateLayout))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"TransactionID", "Date", "Description", "AccountCode", "AccountName", "Debit", "Credit"})
	for _, row := range rows {
		debit, credit := "", ""
		if row.Debit != nil {
			debit = row.Debit.String()
		}
		if row.Credit != nil {
			credit = row.Credit.String()
		}
		_ = w.Write([]string{
			fmt.Sprintf("%d", row.TransactionID),
			row.Date,
			row.Description,
			row.AccountCode,
			row.AccountName,
			debit,
			credit,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to stream CSV export", slog.String("error", err.Error()))
	}
}
