package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/server/http/dto"
)

// DiscountHandler manages discount endpoints.
type DiscountHandler struct {
	facade DiscountFacade
}

// NewDiscountHandler constructs DiscountHandler.
func NewDiscountHandler(facade DiscountFacade) *DiscountHandler {
	return &DiscountHandler{facade: facade}
}

// Apply handles POST /api/orders/:id/discount.
func (h *DiscountHandler) Apply(c *gin.Context) {
	var req dto.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ApplyDiscount(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidDiscountCode), errors.Is(err, domainErrors.ErrBelowMinimumOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrOrderNotModifiable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApplyBulk handles POST /api/discounts/bulk.
func (h *DiscountHandler) ApplyBulk(c *gin.Context) {
	var req dto.BulkDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ApplyBulkDiscount(c.Request.Context(), req.ProductID, req.Quantity, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUserNotFound), errors.Is(err, domainErrors.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
