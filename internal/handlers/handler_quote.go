package handlers

import (
	"net/http"
	"strconv"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"log/slog"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(quoteService portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService: quoteService,
	}
}

// createQuote godoc
// @Summary Create a quote
// @Description Creates a quote in PENDING with its item and service lines
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote to create"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create quote")
		return
	}

	logger.Info("Quote created successfully", slog.String("quote_id", quote.QuoteID))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// listQuotes godoc
// @Summary List quotes
// @Description Retrieves quotes with token pagination, optionally filtered by status
// @Tags quotes
// @Produce json
// @Param status query string false "Filter by status (PENDING, APPROVED, PAID, CANCELLED)"
// @Param limit query int false "Page size (default 20)"
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListQuotesResponse
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status *domain.QuoteStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.QuoteStatus(raw)
		status = &s
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}

	quotes, newNextToken, err := h.quoteService.ListQuotes(c.Request.Context(), status, limit, nextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list quotes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes, newNextToken))
}

// listOverdueQuotes godoc
// @Summary List overdue quotes
// @Description Retrieves PENDING quotes older than the approval window
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.ListQuotesResponse
// @Router /quotes/overdue [get]
func (h *quoteHandler) listOverdueQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quotes, err := h.quoteService.ListOverdueQuotes(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list overdue quotes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes, nil))
}

// getQuote godoc
// @Summary Get a quote
// @Description Retrieves a quote with its lines and status log
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} map[string]string "Quote not found"
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), quoteID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// updateQuote godoc
// @Summary Update a PENDING quote
// @Description Replaces the quote's line collections wholesale and updates client, fee flag and notes
// @Tags quotes
// @Accept json
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Param quote body dto.UpdateQuoteRequest true "Updated quote"
// @Success 200 {object} dto.QuoteResponse
// @Failure 422 {object} map[string]string "Quote is no longer editable"
// @Router /quotes/{quoteID} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), quoteID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update quote")
		return
	}

	logger.Info("Quote updated successfully", slog.String("quote_id", quoteID))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// transitionQuote godoc
// @Summary Transition a quote
// @Description Moves the quote to a legal successor status; the transition to PAID writes the receivable ledger entry atomically
// @Tags quotes
// @Accept json
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Param transition body dto.TransitionQuoteRequest true "Target status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 409 {object} map[string]string "Concurrent transition"
// @Failure 422 {object} map[string]string "Illegal transition"
// @Router /quotes/{quoteID}/transition [post]
func (h *quoteHandler) transitionQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.TransitionQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for transitionQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quote, err := h.quoteService.TransitionQuote(c.Request.Context(), quoteID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transition quote")
		return
	}

	logger.Info("Quote transitioned successfully",
		slog.String("quote_id", quoteID), slog.String("status", string(quote.Status)))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// deleteQuote godoc
// @Summary Delete a quote
// @Description Soft-deletes a PENDING or CANCELLED quote
// @Tags quotes
// @Param quoteID path string true "Quote ID"
// @Success 204 "Deleted"
// @Failure 422 {object} map[string]string "Quote is not deletable"
// @Router /quotes/{quoteID} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), quoteID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete quote")
		return
	}

	logger.Info("Quote deleted successfully", slog.String("quote_id", quoteID))
	c.Status(http.StatusNoContent)
}

// registerQuoteRoutes registers quote specific routes
func registerQuoteRoutes(group *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := group.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/overdue", h.listOverdueQuotes)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.PUT("/:quoteID", h.updateQuote)
		quotes.DELETE("/:quoteID", h.deleteQuote)
		quotes.POST("/:quoteID/transition", h.transitionQuote)
	}
}
