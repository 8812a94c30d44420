package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/okatev/shopflow/internal/domain/model"
)

// Kind identifies the notification template understood by the platform
// notification service.
type Kind string

const (
	KindOrderConfirmation Kind = "order_confirmation"
	KindShippingUpdate    Kind = "shipping_update"
	KindErrorAlert        Kind = "error_alert"
)

// Payload carries the structured data attached to a notification.
type Payload map[string]any

// Dispatcher sends a typed notification to a recipient address.
// Implementations may fail; callers decide whether that is fatal.
type Dispatcher interface {
	Send(ctx context.Context, recipient string, kind Kind, payload Payload) error
}

// StatusNotifier dispatches order lifecycle notifications to customers.
// Every send is best-effort: a dispatch failure is logged and reported
// as false, never propagated.
type StatusNotifier struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewStatusNotifier constructs StatusNotifier.
func NewStatusNotifier(dispatcher Dispatcher, logger *slog.Logger) *StatusNotifier {
	return &StatusNotifier{dispatcher: dispatcher, logger: logger}
}

func recipientFor(order *model.Order) string {
	return fmt.Sprintf("customer-%s@example.com", order.UserID)
}

// SendShippingConfirmation notifies the customer that their order has shipped.
func (n *StatusNotifier) SendShippingConfirmation(ctx context.Context, order *model.Order, trackingNumber, carrier string) bool {
	payload := Payload{
		"order_id":        order.ID,
		"tracking_number": trackingNumber,
		"carrier":         carrier,
		"total":           order.Total,
		"message":         FormatShippingUpdate(order.ID, carrier, trackingNumber, ""),
	}
	if err := n.dispatcher.Send(ctx, recipientFor(order), KindShippingUpdate, payload); err != nil {
		n.logger.Error("shipping notification failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	n.logger.Info("shipping notification sent", slog.String("order_id", order.ID))
	return true
}

// SendDeliveryConfirmation notifies the customer that their order was delivered.
func (n *StatusNotifier) SendDeliveryConfirmation(ctx context.Context, order *model.Order) bool {
	return FormatAndSendOrderUpdate(ctx, n.dispatcher, n.logger, recipientFor(order), KindOrderConfirmation, order, Payload{
		"status": string(model.OrderStatusDelivered),
	})
}

// SendCancellationNotice notifies the customer that their order was cancelled.
func (n *StatusNotifier) SendCancellationNotice(ctx context.Context, order *model.Order, reason string) bool {
	return FormatAndSendOrderUpdate(ctx, n.dispatcher, n.logger, recipientFor(order), KindOrderConfirmation, order, Payload{
		"status": string(model.OrderStatusCancelled),
		"reason": reason,
	})
}

// FormatAndSendOrderUpdate formats an order update and dispatches it in
// one call. The formatter never calls back into dispatch; this function
// owns the one-directional composition of the two. Extra payloads are
// merged into the dispatched payload after the formatted message.
func FormatAndSendOrderUpdate(ctx context.Context, d Dispatcher, logger *slog.Logger, recipient string, kind Kind, order *model.Order, extra ...Payload) bool {
	var message string
	switch kind {
	case KindShippingUpdate:
		message = FormatShippingUpdate(order.ID, "", "", "")
	case KindOrderConfirmation:
		message = FormatOrderConfirmation(order.ID, order.Items, order.Total, time.Now())
	default:
		message = FormatErrorAlert("orders", string(kind), "unknown update kind", time.Now())
	}

	payload := Payload{
		"order_id": order.ID,
		"message":  message,
	}
	for _, fields := range extra {
		for key, value := range fields {
			payload[key] = value
		}
	}
	if err := d.Send(ctx, recipient, kind, payload); err != nil {
		logger.Error("failed to send formatted update",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	logger.Info("formatted update sent",
		slog.String("order_id", order.ID),
		slog.String("kind", string(kind)),
	)
	return true
}
