package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/businessfin/bfp_backend/internal/apperrors"
	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/core/services"
	"github.com/businessfin/bfp_backend/internal/dto"
	"github.com/businessfin/bfp_backend/internal/middleware"
)

// consolidatedID is the pseudo company id selecting cross-company reports.
const consolidatedID = "consolidated"

// RegisterRoutes wires every API route onto the engine.
func RegisterRoutes(r *gin.Engine, svcs *portssvc.ServiceContainer) {
	dto.RegisterValidations()

	r.GET("/health", getHealth)

	v1 := r.Group("/api/v1")
	registerCompanyRoutes(v1, svcs)
	registerTransactionRoutes(v1, svcs.Ledger)
	registerReportingRoutes(v1, svcs.Reporting)
	registerExportRoutes(v1, svcs.Company)
}

// getHealth godoc
// @Summary Liveness probe
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondServiceError translates service errors into HTTP responses:
// unknown resources map to 404, the validation taxonomy to 400 with the
// sentinel message, everything else to 500.
func respondServiceError(c *gin.Context, err error, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsValidationError(err) || errors.Is(err, services.ErrEmptyCompanyName):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}
