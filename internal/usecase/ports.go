package usecase

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
)

// InventoryService is the subset of the stock reservation service the
// orchestrators depend on.
type InventoryService interface {
	ReserveStock(ctx context.Context, productID string, quantity int, orderContextID string) (*model.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	ReleaseStock(ctx context.Context, reservationID string) (bool, error)
}

// Notifier dispatches customer-facing lifecycle notifications. Sends are
// best-effort; implementations report failure instead of returning it.
type Notifier interface {
	SendShippingConfirmation(ctx context.Context, order *model.Order, trackingNumber, carrier string) bool
	SendDeliveryConfirmation(ctx context.Context, order *model.Order) bool
	SendCancellationNotice(ctx context.Context, order *model.Order, reason string) bool
}
