package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/middleware"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// cashFlowHandler handles HTTP requests for the ledger and its projections.
type cashFlowHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	summaryService portssvc.SummarySvcFacade
}

// newCashFlowHandler creates a new cashFlowHandler.
func newCashFlowHandler(ledgerService portssvc.LedgerSvcFacade, summaryService portssvc.SummarySvcFacade) *cashFlowHandler {
	return &cashFlowHandler{
		ledgerService:  ledgerService,
		summaryService: summaryService,
	}
}

// createEntry godoc
// @Summary Create a manual ledger entry
// @Description Records an external payable or other manual OUT entry
// @Tags cashflow
// @Accept json
// @Produce json
// @Param entry body dto.CreateExternalPayableRequest true "Entry to create"
// @Success 201 {object} dto.CashFlowEntryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /cashflow/entries [post]
func (h *cashFlowHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExternalPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateExternalPayable(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create ledger entry")
		return
	}

	logger.Info("Ledger entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToCashFlowEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves entries filtered by direction, status and due date range
// @Tags cashflow
// @Produce json
// @Param direction query string false "IN or OUT"
// @Param status query string false "PENDING or PAID"
// @Param dueFrom query string false "Earliest due date (RFC3339)"
// @Param dueTo query string false "Latest due date (RFC3339)"
// @Success 200 {array} dto.CashFlowEntryResponse
// @Router /cashflow/entries [get]
func (h *cashFlowHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter portsrepo.EntryFilter
	if raw := c.Query("direction"); raw != "" {
		direction := domain.EntryDirection(raw)
		if !direction.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid direction"})
			return
		}
		filter.Direction = &direction
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.EntryStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("dueFrom"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueFrom"})
			return
		}
		filter.DueFrom = &t
	}
	if raw := c.Query("dueTo"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueTo"})
			return
		}
		filter.DueTo = &t
	}

	entries, err := h.summaryService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list ledger entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowEntryResponses(entries))
}

// listOverdueEntries godoc
// @Summary List overdue ledger entries
// @Description Retrieves PENDING entries whose due date has passed
// @Tags cashflow
// @Produce json
// @Success 200 {array} dto.CashFlowEntryResponse
// @Router /cashflow/entries/overdue [get]
func (h *cashFlowHandler) listOverdueEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.summaryService.ListOverdueEntries(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list overdue entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowEntryResponses(entries))
}

// markEntryPaid godoc
// @Summary Mark an entry paid
// @Description Settles a PENDING entry; settling twice is rejected
// @Tags cashflow
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param payment body dto.MarkEntryPaidRequest false "Optional payment timestamp"
// @Success 200 {object} dto.CashFlowEntryResponse
// @Failure 409 {object} map[string]string "Entry already paid"
// @Router /cashflow/entries/{entryID}/pay [post]
func (h *cashFlowHandler) markEntryPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.MarkEntryPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind JSON for markEntryPaid", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.MarkEntryPaid(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to mark entry paid")
		return
	}

	logger.Info("Ledger entry paid", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToCashFlowEntryResponse(entry))
}

// updateEntryDueDate godoc
// @Summary Update an entry's due date
// @Description Moves the due date of any entry regardless of status
// @Tags cashflow
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param dueDate body dto.UpdateDueDateRequest true "New due date"
// @Success 200 {object} dto.CashFlowEntryResponse
// @Router /cashflow/entries/{entryID}/due-date [put]
func (h *cashFlowHandler) updateEntryDueDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateEntryDueDate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.UpdateEntryDueDate(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update entry due date")
		return
	}

	logger.Info("Ledger entry due date updated", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToCashFlowEntryResponse(entry))
}

// getSummary godoc
// @Summary Get the cash-flow summary
// @Description Returns receivable/payable totals and the current month's settled figures
// @Tags cashflow
// @Produce json
// @Success 200 {object} accounting.Summary
// @Router /cashflow/summary [get]
func (h *cashFlowHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.Summarize(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getSeries godoc
// @Summary Get period totals
// @Description Buckets entries into day, week or month totals for charts
// @Tags cashflow
// @Produce json
// @Param granularity query string false "day, week or month (default day)"
// @Success 200 {object} map[string]accounting.PeriodTotals
// @Router /cashflow/series [get]
func (h *cashFlowHandler) getSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	granularity := accounting.Granularity(c.DefaultQuery("granularity", string(accounting.GranularityDay)))
	series, err := h.summaryService.Series(c.Request.Context(), granularity)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute series")
		return
	}

	c.JSON(http.StatusOK, series)
}

// registerCashFlowRoutes registers ledger specific routes
func registerCashFlowRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, summaryService portssvc.SummarySvcFacade) {
	h := newCashFlowHandler(ledgerService, summaryService)

	cashflow := group.Group("/cashflow")
	{
		cashflow.POST("/entries", h.createEntry)
		cashflow.GET("/entries", h.listEntries)
		cashflow.GET("/entries/overdue", h.listOverdueEntries)
		cashflow.POST("/entries/:entryID/pay", h.markEntryPaid)
		cashflow.PUT("/entries/:entryID/due-date", h.updateEntryDueDate)
		cashflow.GET("/summary", h.getSummary)
		cashflow.GET("/series", h.getSeries)
	}
}
