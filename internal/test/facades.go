package test

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/notification"
	"github.com/okatev/shopflow/internal/usecase"
)

// CommerceFacadeStub provides controllable behaviour for HTTP handlers.
type CommerceFacadeStub struct {
	CheckoutFn    func(context.Context, usecase.CheckoutRequest) (*usecase.CheckoutResult, error)
	OrderFn       func(context.Context, string) (*model.Order, error)
	ShipFn        func(context.Context, string, string, string) (*usecase.ShipmentResult, error)
	DeliverFn     func(context.Context, string) (*usecase.DeliveryResult, error)
	CancelFn      func(context.Context, string, string, string) (*usecase.CancellationResult, error)
	DiscountFn    func(context.Context, string, string) (*usecase.OrderDiscountResult, error)
	BulkFn        func(context.Context, string, int, string) (*usecase.BulkDiscountResult, error)
	ReturnFn      func(context.Context, string, string, []usecase.ReturnItem, string) (*usecase.ReturnResult, error)
	EligibilityFn func(string, []usecase.ReturnItem) *usecase.EligibilityResult
	StatusFn      func(context.Context, string, string) (*usecase.RefundStatusResult, error)
}

// ExpressCheckout delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) ExpressCheckout(ctx context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, req)
	}
	return &usecase.CheckoutResult{OrderID: "order-1", ItemsCount: len(req.Items)}, nil
}

// Order delegates to the configured function or returns a default order.
func (s *CommerceFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

// ShipOrder delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) ShipOrder(ctx context.Context, orderID, trackingNumber, carrier string) (*usecase.ShipmentResult, error) {
	if s.ShipFn != nil {
		return s.ShipFn(ctx, orderID, trackingNumber, carrier)
	}
	return &usecase.ShipmentResult{OrderID: orderID, Status: model.OrderStatusShipped, TrackingNumber: trackingNumber, Carrier: carrier}, nil
}

// DeliverOrder delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) DeliverOrder(ctx context.Context, orderID string) (*usecase.DeliveryResult, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, orderID)
	}
	return &usecase.DeliveryResult{OrderID: orderID, Status: model.OrderStatusDelivered}, nil
}

// CancelOrder delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) CancelOrder(ctx context.Context, orderID, userID, reason string) (*usecase.CancellationResult, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, userID, reason)
	}
	return &usecase.CancellationResult{OrderID: orderID, Status: model.OrderStatusCancelled, Reason: reason}, nil
}

// ApplyDiscount delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) ApplyDiscount(ctx context.Context, orderID, code string) (*usecase.OrderDiscountResult, error) {
	if s.DiscountFn != nil {
		return s.DiscountFn(ctx, orderID, code)
	}
	return &usecase.OrderDiscountResult{OrderID: orderID, DiscountCode: code}, nil
}

// ApplyBulkDiscount delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) ApplyBulkDiscount(ctx context.Context, productID string, quantity int, userID string) (*usecase.BulkDiscountResult, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, productID, quantity, userID)
	}
	return &usecase.BulkDiscountResult{ProductID: productID, Quantity: quantity}, nil
}

// ProcessReturn delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) ProcessReturn(ctx context.Context, orderID, userID string, items []usecase.ReturnItem, reason string) (*usecase.ReturnResult, error) {
	if s.ReturnFn != nil {
		return s.ReturnFn(ctx, orderID, userID, items, reason)
	}
	return &usecase.ReturnResult{ReturnID: "RET-STUB0001", OrderID: orderID, Status: "approved"}, nil
}

// ReturnEligibility delegates to the configured function or returns an empty split.
func (s *CommerceFacadeStub) ReturnEligibility(orderID string, items []usecase.ReturnItem) *usecase.EligibilityResult {
	if s.EligibilityFn != nil {
		return s.EligibilityFn(orderID, items)
	}
	return &usecase.EligibilityResult{OrderID: orderID, EligibleItems: items}
}

// RefundStatus delegates to the configured function or returns a default result.
func (s *CommerceFacadeStub) RefundStatus(ctx context.Context, returnID, userID string) (*usecase.RefundStatusResult, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, returnID, userID)
	}
	return &usecase.RefundStatusResult{ReturnID: returnID, UserID: userID, Status: "processing"}, nil
}

// DispatcherCall records one dispatched notification.
type DispatcherCall struct {
	Recipient string
	Kind      notification.Kind
	Payload   notification.Payload
}

// DispatcherStub records dispatched notifications for tests.
type DispatcherStub struct {
	Err   error
	Calls []DispatcherCall
}

// Send records the notification and returns the configured error.
func (s *DispatcherStub) Send(ctx context.Context, recipient string, kind notification.Kind, payload notification.Payload) error {
	s.Calls = append(s.Calls, DispatcherCall{Recipient: recipient, Kind: kind, Payload: payload})
	return s.Err
}
