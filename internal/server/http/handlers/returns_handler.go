package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/server/http/dto"
	"github.com/okatev/shopflow/internal/usecase"
)

// ReturnsHandler manages return and refund endpoints.
type ReturnsHandler struct {
	facade ReturnsFacade
}

// NewReturnsHandler constructs ReturnsHandler.
func NewReturnsHandler(facade ReturnsFacade) *ReturnsHandler {
	return &ReturnsHandler{facade: facade}
}

// Process handles POST /api/returns.
func (h *ReturnsHandler) Process(c *gin.Context) {
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ProcessReturn(c.Request.Context(), req.OrderID, req.UserID, toReturnItems(req.Items), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNoItemsToReturn), errors.Is(err, domainErrors.ErrNonPositiveRefund):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Eligibility handles POST /api/returns/eligibility.
func (h *ReturnsHandler) Eligibility(c *gin.Context) {
	var req dto.EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, h.facade.ReturnEligibility(req.OrderID, toReturnItems(req.Items)))
}

// Status handles GET /api/returns/:id/status.
func (h *ReturnsHandler) Status(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.RefundStatus(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func toReturnItems(items []dto.ReturnItem) []usecase.ReturnItem {
	converted := make([]usecase.ReturnItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, usecase.ReturnItem{
			ProductID:         item.ProductID,
			UnitPrice:         item.UnitPrice,
			Quantity:          item.Quantity,
			Category:          item.Category,
			DaysSincePurchase: item.DaysSincePurchase,
			ReservationID:     item.ReservationID,
		})
	}
	return converted
}
