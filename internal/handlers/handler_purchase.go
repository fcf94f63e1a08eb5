package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests for purchases and labor entries.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(purchaseService portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: purchaseService}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Writes the purchase, its stock movement, an optional project expense and the payable ledger entry atomically
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase to record"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.RecordPurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Removes the purchase and everything it produced: stock entry, project expense and ledger entry
// @Tags purchases
// @Param purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete purchase")
		return
	}

	logger.Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}

// createLaborEntry godoc
// @Summary Record a labor entry
// @Description Writes the labor entry, an optional project expense and the payable ledger entry atomically
// @Tags purchases
// @Accept json
// @Produce json
// @Param labor body dto.CreateLaborEntryRequest true "Labor entry to record"
// @Success 201 {object} dto.LaborEntryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /labor-entries [post]
func (h *purchaseHandler) createLaborEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLaborEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createLaborEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.purchaseService.RecordLaborEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record labor entry")
		return
	}

	logger.Info("Labor entry recorded", slog.String("labor_entry_id", entry.LaborEntryID))
	c.JSON(http.StatusCreated, dto.ToLaborEntryResponse(entry))
}

// registerPurchaseRoutes registers purchase and labor specific routes
func registerPurchaseRoutes(group *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	group.POST("/purchases", h.createPurchase)
	group.DELETE("/purchases/:purchaseID", h.deletePurchase)
	group.POST("/labor-entries", h.createLaborEntry)
}
