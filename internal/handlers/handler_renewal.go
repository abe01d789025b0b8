package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
)

// renewalHandler handles HTTP requests related to renewal records.
type renewalHandler struct {
	renewalService portssvc.RenewalSvcFacade
}

// newRenewalHandler creates a new renewalHandler.
func newRenewalHandler(rs portssvc.RenewalSvcFacade) *renewalHandler {
	return &renewalHandler{
		renewalService: rs,
	}
}

// RegisterRenewalRoutes registers the renewal workflow routes on rg.
func RegisterRenewalRoutes(rg *gin.RouterGroup, renewalService portssvc.RenewalSvcFacade) {
	h := newRenewalHandler(renewalService)

	renewals := rg.Group("/renewals")
	{
		renewals.POST("", h.createRenewal)
		renewals.GET("", h.listRenewals)
		renewals.POST("/bulk-assign", h.bulkAssign)
		renewals.GET("/:renewalID", h.getRenewal)
		renewals.PATCH("/:renewalID", h.updateRenewal)
		renewals.POST("/:renewalID/assign", h.assignAgent)
		renewals.POST("/:renewalID/contacts", h.logContact)
		renewals.POST("/:renewalID/decision", h.processDecision)
	}
}

// createRenewal godoc
// @Summary Open a renewal record
// @Description Opens an UNASSIGNED renewal record for a business. A business has at most one open record.
// @Tags renewals
// @Accept json
// @Produce json
// @Param renewal body dto.CreateRenewalRequest true "Renewal details"
// @Success 201 {object} dto.RenewalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or open record exists"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Business not found"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals [post]
func (h *renewalHandler) createRenewal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	rec, err := h.renewalService.CreateRenewal(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, logger, err, "create renewal")
		return
	}

	logger.Info("Renewal created", slog.String("renewal_id", rec.RenewalID), slog.String("business_id", rec.BusinessID))
	c.JSON(http.StatusCreated, dto.ToRenewalResponse(rec))
}

// listRenewals godoc
// @Summary List renewal records
// @Description Lists renewal records newest first. Agents only see records assigned to them.
// @Tags renewals
// @Produce json
// @Param status query string false "Status filter"
// @Param agentID query string false "Assigned agent filter"
// @Param businessID query string false "Business filter"
// @Param priority query int false "Priority filter (0-3)"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListRenewalsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals [get]
func (h *renewalHandler) listRenewals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListRenewalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	resp, err := h.renewalService.ListRenewals(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, logger, err, "list renewals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRenewal godoc
// @Summary Get a renewal record
// @Description Retrieves a renewal record with its contact log
// @Tags renewals
// @Produce json
// @Param renewalID path string true "Renewal ID"
// @Success 200 {object} dto.RenewalResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Renewal not found"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/{renewalID} [get]
func (h *renewalHandler) getRenewal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("renewal_id", c.Param("renewalID")))
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	rec, err := h.renewalService.GetRenewal(c.Request.Context(), caller, c.Param("renewalID"))
	if err != nil {
		respondError(c, logger, err, "get renewal")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalResponse(rec))
}

// updateRenewal godoc
// @Summary Update a renewal record
// @Description Changes priority, internal notes or follow-up date of an open record
// @Tags renewals
// @Accept json
// @Produce json
// @Param renewalID path string true "Renewal ID"
// @Param renewal body dto.UpdateRenewalRequest true "Fields to update"
// @Success 200 {object} dto.RenewalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Renewal not found"
// @Failure 409 {object} dto.ErrorResponse "Record is closed or was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/{renewalID} [patch]
func (h *renewalHandler) updateRenewal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("renewal_id", c.Param("renewalID")))

	var req dto.UpdateRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	rec, err := h.renewalService.UpdateRenewal(c.Request.Context(), caller, c.Param("renewalID"), req)
	if err != nil {
		respondError(c, logger, err, "update renewal")
		return
	}
	c.JSON(http.StatusOK, dto.ToRenewalResponse(rec))
}

// assignAgent godoc
// @Summary Assign an agent
// @Description Assigns an active agent to an open renewal record
// @Tags renewals
// @Accept json
// @Produce json
// @Param renewalID path string true "Renewal ID"
// @Param assignment body dto.AssignAgentRequest true "Agent to assign"
// @Success 200 {object} dto.RenewalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or assignee"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Renewal not found"
// @Failure 409 {object} dto.ErrorResponse "Record is closed or was modified concurrently"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/{renewalID}/assign [post]
func (h *renewalHandler) assignAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("renewal_id", c.Param("renewalID")))

	var req dto.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	rec, err := h.renewalService.AssignAgent(c.Request.Context(), caller, c.Param("renewalID"), req.AgentID)
	if err != nil {
		respondError(c, logger, err, "assign agent")
		return
	}

	logger.Info("Agent assigned", slog.String("agent_id", req.AgentID))
	c.JSON(http.StatusOK, dto.ToRenewalResponse(rec))
}

// bulkAssign godoc
// @Summary Assign an agent to many records
// @Description Assigns one agent to each listed record independently and reports every outcome
// @Tags renewals
// @Accept json
// @Produce json
// @Param assignment body dto.BulkAssignRequest true "Records and agent"
// @Success 200 {object} dto.BulkAssignResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or assignee"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/bulk-assign [post]
func (h *renewalHandler) bulkAssign(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	outcomes, err := h.renewalService.BulkAssignAgent(c.Request.Context(), caller, req.RenewalIDs, req.AgentID)
	if err != nil {
		respondError(c, logger, err, "bulk assign agent")
		return
	}

	resp := dto.ToBulkAssignResponse(outcomes)
	logger.Info("Bulk assignment finished",
		slog.String("agent_id", req.AgentID),
		slog.Int("succeeded", resp.Succeeded),
		slog.Int("failed", resp.Failed))
	c.JSON(http.StatusOK, resp)
}

// logContact godoc
// @Summary Log a contact attempt
// @Description Appends a contact attempt to an assigned record. The first contact moves it to IN_PROGRESS.
// @Tags renewals
// @Accept json
// @Produce json
// @Param renewalID path string true "Renewal ID"
// @Param contact body dto.LogContactRequest true "Contact attempt"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Renewal not found"
// @Failure 409 {object} dto.ErrorResponse "Record is not assigned or is closed"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/{renewalID}/contacts [post]
func (h *renewalHandler) logContact(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("renewal_id", c.Param("renewalID")))

	var req dto.LogContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	contact, err := h.renewalService.LogContact(c.Request.Context(), caller, c.Param("renewalID"), req)
	if err != nil {
		respondError(c, logger, err, "log contact")
		return
	}

	logger.Info("Contact logged", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// processDecision godoc
// @Summary Decide a renewal
// @Description Applies an ACCEPT, REJECT or POSTPONE decision. ACCEPT extends the subscription and posts any payment to the ledger atomically.
// @Tags renewals
// @Accept json
// @Produce json
// @Param renewalID path string true "Renewal ID"
// @Param decision body dto.DecisionRequest true "Decision"
// @Success 200 {object} dto.RenewalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Renewal or package not found"
// @Failure 409 {object} dto.ErrorResponse "Record is not decidable"
// @Failure 422 {object} dto.ErrorResponse "Payment entry rejected by the ledger"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /renewals/{renewalID}/decision [post]
func (h *renewalHandler) processDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("renewal_id", c.Param("renewalID")))

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	rec, err := h.renewalService.ProcessDecision(c.Request.Context(), caller, c.Param("renewalID"), req)
	if err != nil {
		respondError(c, logger, err, "process decision")
		return
	}

	logger.Info("Renewal decided", slog.String("decision", string(req.Decision)), slog.String("status", string(rec.Status)))
	c.JSON(http.StatusOK, dto.ToRenewalResponse(rec))
}
