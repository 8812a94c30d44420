package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okatev/shopflow/internal/adapter/inventory"
	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/server/http/dto"
	"github.com/okatev/shopflow/internal/usecase"
)

// CheckoutHandler processes express checkout requests.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Express handles POST /api/checkout/express.
func (h *CheckoutHandler) Express(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]usecase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	result, err := h.facade.ExpressCheckout(c.Request.Context(), usecase.CheckoutRequest{
		UserID: req.UserID,
		Items:  items,
		ShippingAddress: model.Address{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			Zip:     req.ShippingAddress.Zip,
			Country: req.ShippingAddress.Country,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoValidItems), errors.Is(err, domainErrors.ErrEmptyOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, inventory.ErrInsufficientStock), errors.Is(err, domainErrors.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
