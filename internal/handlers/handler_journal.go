package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
	"github.com/SscSPs/greenpages_backend/internal/utils/export"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(ledgerService portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{
		ledgerService: ledgerService,
	}
}

// RegisterJournalRoutes registers the journal entry routes on rg.
func RegisterJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newJournalHandler(ledgerService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.postJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/export", h.exportJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
	}
}

// postJournalEntry godoc
// @Summary Post a manual journal entry
// @Description Validates and posts a balanced journal entry. Lines carry either a debit or a credit.
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.CreateJournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Unbalanced entry or invalid line"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.ValidateAndPost(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, logger, err, "post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.CreateJournalEntryResponse{EntryID: entry.EntryID})
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines
// @Tags journal
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("entry_id", c.Param("entryID")))
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetJournalEntry(c.Request.Context(), caller, c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "get journal entry")
		return
	}

	logger.Debug("Journal entry retrieved successfully")
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists journal entries newest first
// @Tags journal
// @Produce json
// @Param source query string false "MANUAL or RENEWAL_PAYMENT"
// @Param fromDate query string false "First entry date (YYYY-MM-DD)"
// @Param toDate query string false "Last entry date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListJournalEntries(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, logger, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportJournalEntries godoc
// @Summary Export journal entries
// @Description Downloads every entry matching the filters as an XLSX workbook, one row per line
// @Tags journal
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param source query string false "MANUAL or RENEWAL_PAYMENT"
// @Param fromDate query string false "First entry date (YYYY-MM-DD)"
// @Param toDate query string false "Last entry date (YYYY-MM-DD), inclusive"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid query or too many rows"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /journal-entries/export [get]
func (h *journalHandler) exportJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	// Buffered so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := h.ledgerService.ExportJournalEntries(c.Request.Context(), caller, params, &buf); err != nil {
		respondError(c, logger, err, "export journal entries")
		return
	}

	filename := "journal-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}
