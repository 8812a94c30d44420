package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/domain/repository"
)

const defaultCarrier = "standard"

// LifecycleUseCase sequences status transition, persistence, and
// notification for each fulfillment event. Every operation follows the
// same protocol: entity transition first (nothing happens on rejection),
// then persistence (errors propagate), then a best-effort notification.
type LifecycleUseCase struct {
	orders   repository.OrderRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewLifecycleUseCase constructs LifecycleUseCase.
func NewLifecycleUseCase(orders repository.OrderRepository, notifier Notifier, logger *slog.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{orders: orders, notifier: notifier, logger: logger}
}

// ShipmentResult describes a completed shipping event.
type ShipmentResult struct {
	OrderID        string            `json:"order_id"`
	Status         model.OrderStatus `json:"status"`
	TrackingNumber string            `json:"tracking_number"`
	Carrier        string            `json:"carrier"`
	ShippedAt      time.Time         `json:"shipped_at"`
}

// DeliveryResult describes a completed delivery event.
type DeliveryResult struct {
	OrderID     string            `json:"order_id"`
	Status      model.OrderStatus `json:"status"`
	DeliveredAt time.Time         `json:"delivered_at"`
}

// CancellationResult describes a completed cancellation event.
type CancellationResult struct {
	OrderID     string            `json:"order_id"`
	Status      model.OrderStatus `json:"status"`
	Reason      string            `json:"reason"`
	CancelledAt time.Time         `json:"cancelled_at"`
}

// MarkAsShipped advances an order to SHIPPED, persists the status, and
// notifies the customer with tracking details.
func (u *LifecycleUseCase) MarkAsShipped(ctx context.Context, order *model.Order, trackingNumber, carrier string) (*ShipmentResult, error) {
	txnID := transactionID("SHIP")
	if carrier == "" {
		carrier = defaultCarrier
	}

	if err := order.UpdateStatus(model.OrderStatusShipped); err != nil {
		u.logTransitionFailure(txnID, "ship", order.ID, err)
		return nil, &LifecycleError{Op: "ship", OrderID: order.ID, Err: err}
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusShipped); err != nil {
		return nil, err
	}

	u.notifier.SendShippingConfirmation(ctx, order, trackingNumber, carrier)

	u.logger.Info("order marked as shipped",
		slog.String("txn_id", txnID),
		slog.String("order_id", order.ID),
		slog.String("tracking_number", trackingNumber),
		slog.String("carrier", carrier),
	)

	return &ShipmentResult{
		OrderID:        order.ID,
		Status:         model.OrderStatusShipped,
		TrackingNumber: trackingNumber,
		Carrier:        carrier,
		ShippedAt:      time.Now().UTC(),
	}, nil
}

// MarkAsDelivered records that a shipped order has been delivered.
func (u *LifecycleUseCase) MarkAsDelivered(ctx context.Context, order *model.Order) (*DeliveryResult, error) {
	txnID := transactionID("DELIV")

	if err := order.UpdateStatus(model.OrderStatusDelivered); err != nil {
		u.logTransitionFailure(txnID, "deliver", order.ID, err)
		return nil, &LifecycleError{Op: "deliver", OrderID: order.ID, Err: err}
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusDelivered); err != nil {
		return nil, err
	}

	u.notifier.SendDeliveryConfirmation(ctx, order)

	u.logger.Info("order marked as delivered",
		slog.String("txn_id", txnID),
		slog.String("order_id", order.ID),
	)

	return &DeliveryResult{
		OrderID:     order.ID,
		Status:      model.OrderStatusDelivered,
		DeliveredAt: time.Now().UTC(),
	}, nil
}

// CancelOrder cancels an order on behalf of a user and notifies the
// customer with the stated reason.
func (u *LifecycleUseCase) CancelOrder(ctx context.Context, order *model.Order, userID, reason string) (*CancellationResult, error) {
	txnID := transactionID("CANCEL")

	if err := order.UpdateStatus(model.OrderStatusCancelled); err != nil {
		u.logTransitionFailure(txnID, "cancel", order.ID, err)
		return nil, &LifecycleError{Op: "cancel", OrderID: order.ID, Err: err}
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}

	u.notifier.SendCancellationNotice(ctx, order, reason)

	u.logger.Info("order cancelled",
		slog.String("txn_id", txnID),
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.String("reason", reason),
	)

	return &CancellationResult{
		OrderID:     order.ID,
		Status:      model.OrderStatusCancelled,
		Reason:      reason,
		CancelledAt: time.Now().UTC(),
	}, nil
}

func (u *LifecycleUseCase) logTransitionFailure(txnID, op, orderID string, err error) {
	u.logger.Error("order transition rejected",
		slog.String("txn_id", txnID),
		slog.String("op", op),
		slog.String("order_id", orderID),
		slog.String("error", err.Error()),
	)
}
