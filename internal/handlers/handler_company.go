package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/dto"
	"github.com/businessfin/bfp_backend/internal/middleware"
)

// companyHandler handles HTTP requests for registry-level company
// management.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers company management routes.
func registerCompanyRoutes(rg *gin.RouterGroup, svcs *portssvc.ServiceContainer) {
	h := newCompanyHandler(svcs.Company)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
		companies.PATCH("/:companyID", h.renameCompany)
		companies.POST("/:companyID/reset", h.resetCompany)
	}
}

// listCompanies godoc
// @Summary List all companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get one company summary
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	summary, err := h.companyService.GetCompany(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(summary))
}

// renameCompany godoc
// @Summary Rename a company
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param company body dto.RenameCompanyRequest true "New name"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID} [patch]
func (h *companyHandler) renameCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.RenameCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for renameCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.companyService.RenameCompany(c.Request.Context(), companyID, req.Name); err != nil {
		respondServiceError(c, err, "Failed to rename company")
		return
	}

	summary, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to get company after rename")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(summary))
}

// resetCompany godoc
// @Summary Reset a company's books
// @Description Reseeds the chart of accounts to zero balances and clears the transaction log. The company name is kept.
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /companies/{companyID}/reset [post]
func (h *companyHandler) resetCompany(c *gin.Context) {
	companyID := c.Param("companyID")

	if err := h.companyService.ResetCompany(c.Request.Context(), companyID); err != nil {
		respondServiceError(c, err, "Failed to reset company")
		return
	}

	summary, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to get company after reset")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(summary))
}
