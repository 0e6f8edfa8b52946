package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
)

// exportHandler handles HTTP requests for the full backup snapshot.
type exportHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newExportHandler(cs portssvc.CompanySvcFacade) *exportHandler {
	return &exportHandler{companyService: cs}
}

// registerExportRoutes registers the snapshot export route.
func registerExportRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newExportHandler(companyService)
	rg.GET("/export", h.exportSnapshot)
}

// exportSnapshot godoc
// @Summary Export the full bookkeeping state
// @Description Returns every company's name, chart with current balances and complete transaction log. Amounts are decimal strings.
// @Produce json
// @Success 200 {object} dto.SnapshotExport
// @Router /export [get]
func (h *exportHandler) exportSnapshot(c *gin.Context) {
	snapshot, err := h.companyService.ExportSnapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to export snapshot")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
