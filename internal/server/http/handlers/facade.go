package handlers

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/usecase"
)

// CheckoutFacade exposes the express checkout flow.
type CheckoutFacade interface {
	ExpressCheckout(ctx context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, orderID string) (*model.Order, error)
	ShipOrder(ctx context.Context, orderID, trackingNumber, carrier string) (*usecase.ShipmentResult, error)
	DeliverOrder(ctx context.Context, orderID string) (*usecase.DeliveryResult, error)
	CancelOrder(ctx context.Context, orderID, userID, reason string) (*usecase.CancellationResult, error)
}

// DiscountFacade provides discount operations.
type DiscountFacade interface {
	ApplyDiscount(ctx context.Context, orderID, code string) (*usecase.OrderDiscountResult, error)
	ApplyBulkDiscount(ctx context.Context, productID string, quantity int, userID string) (*usecase.BulkDiscountResult, error)
}

// ReturnsFacade provides return and refund operations.
type ReturnsFacade interface {
	ProcessReturn(ctx context.Context, orderID, userID string, items []usecase.ReturnItem, reason string) (*usecase.ReturnResult, error)
	ReturnEligibility(orderID string, items []usecase.ReturnItem) *usecase.EligibilityResult
	RefundStatus(ctx context.Context, returnID, userID string) (*usecase.RefundStatusResult, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	CheckoutFacade
	OrderFacade
	DiscountFacade
	ReturnsFacade
}
