package app

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/domain/repository"
	"github.com/okatev/shopflow/internal/usecase"
)

// CommerceFacade is the single entry point the HTTP layer talks to. It
// loads order aggregates and hands them to the use cases.
type CommerceFacade struct {
	checkout  *usecase.CheckoutUseCase
	lifecycle *usecase.LifecycleUseCase
	discounts *usecase.DiscountUseCase
	returns   *usecase.ReturnsUseCase
	orders    repository.OrderRepository
	taxRate   float64
}

func NewCommerceFacade(
	checkout *usecase.CheckoutUseCase,
	lifecycle *usecase.LifecycleUseCase,
	discounts *usecase.DiscountUseCase,
	returns *usecase.ReturnsUseCase,
	orders repository.OrderRepository,
	taxRate float64,
) *CommerceFacade {
	return &CommerceFacade{
		checkout:  checkout,
		lifecycle: lifecycle,
		discounts: discounts,
		returns:   returns,
		orders:    orders,
		taxRate:   taxRate,
	}
}

func (f *CommerceFacade) ExpressCheckout(ctx context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
	return f.checkout.ExpressCheckout(ctx, req)
}

func (f *CommerceFacade) ShipOrder(ctx context.Context, orderID, trackingNumber, carrier string) (*usecase.ShipmentResult, error) {
	order, err := f.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return f.lifecycle.MarkAsShipped(ctx, order, trackingNumber, carrier)
}

func (f *CommerceFacade) DeliverOrder(ctx context.Context, orderID string) (*usecase.DeliveryResult, error) {
	order, err := f.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return f.lifecycle.MarkAsDelivered(ctx, order)
}

func (f *CommerceFacade) CancelOrder(ctx context.Context, orderID, userID, reason string) (*usecase.CancellationResult, error) {
	order, err := f.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return f.lifecycle.CancelOrder(ctx, order, userID, reason)
}

func (f *CommerceFacade) ApplyDiscount(ctx context.Context, orderID, code string) (*usecase.OrderDiscountResult, error) {
	order, err := f.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return f.discounts.ApplyToOrder(ctx, order, code)
}

func (f *CommerceFacade) ApplyBulkDiscount(ctx context.Context, productID string, quantity int, userID string) (*usecase.BulkDiscountResult, error) {
	return f.discounts.ApplyBulk(ctx, productID, quantity, userID)
}

func (f *CommerceFacade) ProcessReturn(ctx context.Context, orderID, userID string, items []usecase.ReturnItem, reason string) (*usecase.ReturnResult, error) {
	return f.returns.ProcessReturn(ctx, orderID, userID, items, reason)
}

func (f *CommerceFacade) ReturnEligibility(orderID string, items []usecase.ReturnItem) *usecase.EligibilityResult {
	return f.returns.Eligibility(orderID, items)
}

func (f *CommerceFacade) RefundStatus(ctx context.Context, returnID, userID string) (*usecase.RefundStatusResult, error) {
	return f.returns.RefundStatus(ctx, returnID, userID)
}

func (f *CommerceFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.loadOrder(ctx, orderID)
}

// loadOrder restores an order aggregate with the configured tax rate so
// total recalculation stays consistent with checkout.
func (f *CommerceFacade) loadOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.SetTaxRate(f.taxRate)
	return order, nil
}
