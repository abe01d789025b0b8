package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
)

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/renewals-summary", h.getRenewalSummary)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance over every entry dated on or before asOf
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	// Parse asOf date parameter
	asOfStr := c.DefaultQuery("asOf", time.Now().UTC().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		ve := apperrors.NewValidationError("asOf", "must be a date in YYYY-MM-DD format")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.KindValidation, Message: ve.Error(), Violations: ve.Violations})
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("asOf", asOfStr))
	tb, err := h.reportingService.TrialBalance(c.Request.Context(), caller, asOf)
	if err != nil {
		respondError(c, logger, err, "generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getRenewalSummary godoc
// @Summary Renewal workload summary
// @Description Counts renewal records per status and open records per active agent
// @Tags reports
// @Produce json
// @Success 200 {object} dto.RenewalSummaryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/renewals-summary [get]
func (h *reportingHandler) getRenewalSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	summary, err := h.reportingService.RenewalSummary(c.Request.Context(), caller)
	if err != nil {
		respondError(c, logger, err, "generate renewal summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalSummaryResponse(summary))
}
