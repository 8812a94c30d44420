package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/server/http/dto"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Ship handles POST /api/orders/:id/ship.
func (h *OrderHandler) Ship(c *gin.Context) {
	var req dto.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ShipOrder(c.Request.Context(), c.Param("id"), req.TrackingNumber, req.Carrier)
	if err != nil {
		h.renderLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Deliver handles POST /api/orders/:id/deliver.
func (h *OrderHandler) Deliver(c *gin.Context) {
	result, err := h.facade.DeliverOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.CancelOrder(c.Request.Context(), c.Param("id"), req.UserID, req.Reason)
	if err != nil {
		h.renderLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) renderLifecycleError(c *gin.Context, err error) {
	var transitionErr *model.InvalidTransitionError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Subtotal:  order.Subtotal,
		Tax:       order.Tax,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}
