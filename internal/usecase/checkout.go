package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/domain/repository"
)

// CheckoutUseCase turns a raw cart into confirmed inventory holds and a
// persisted order, or fully undoes partial holds on any failure.
type CheckoutUseCase struct {
	products  repository.ProductRepository
	orders    repository.OrderRepository
	inventory InventoryService
	taxRate   float64
	logger    *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(products repository.ProductRepository, orders repository.OrderRepository, inventory InventoryService, taxRate float64, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		products:  products,
		orders:    orders,
		inventory: inventory,
		taxRate:   taxRate,
		logger:    logger,
	}
}

// CartItem is one raw cart line as submitted by the customer.
type CartItem struct {
	ProductID string
	Quantity  int
}

// CheckoutRequest is the input of the express checkout flow.
type CheckoutRequest struct {
	UserID          string
	Items           []CartItem
	ShippingAddress model.Address
}

// CheckoutResult describes a completed checkout.
type CheckoutResult struct {
	OrderID           string  `json:"order_id"`
	Total             float64 `json:"total"`
	Tax               float64 `json:"tax"`
	ItemsCount        int     `json:"items_count"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

// ExpressCheckout runs the fast-path checkout: raw cart lines go
// straight to order construction without the standard input validation
// step. Unknown products are dropped silently. Reservation ids are
// accumulated before each next step so that a failure anywhere can
// release every hold made so far.
func (u *CheckoutUseCase) ExpressCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	txnID := transactionID("EXPRESS")
	u.logger.Info("express checkout started",
		slog.String("txn_id", txnID),
		slog.String("user_id", req.UserID),
	)

	var reservations []string
	result, err := u.run(ctx, txnID, req, &reservations)
	if err != nil {
		u.releaseReservations(ctx, txnID, reservations)
		u.logger.Error("express checkout failed",
			slog.String("txn_id", txnID),
			slog.String("error", err.Error()),
		)
		var checkoutErr *CheckoutError
		if errors.As(err, &checkoutErr) {
			return nil, err
		}
		return nil, &CheckoutError{Err: err}
	}

	u.logger.Info("express checkout completed",
		slog.String("txn_id", txnID),
		slog.String("order_id", result.OrderID),
		slog.Float64("total", result.Total),
	)
	return result, nil
}

// run appends every acquired reservation id to the shared accumulator
// before taking the next step, so the caller can compensate all of them
// on failure, including one acquired in a partially completed loop.
func (u *CheckoutUseCase) run(ctx context.Context, txnID string, req CheckoutRequest, reservations *[]string) (*CheckoutResult, error) {
	var orderItems []model.OrderItem

	for _, line := range req.Items {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				u.logger.Warn("skipping unknown product",
					slog.String("txn_id", txnID),
					slog.String("product_id", line.ProductID),
				)
				continue
			}
			return nil, err
		}

		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		reservation, err := u.inventory.ReserveStock(ctx, line.ProductID, quantity, txnID)
		if err != nil {
			return nil, err
		}
		*reservations = append(*reservations, reservation.ID)

		orderItems = append(orderItems, model.OrderItem{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.Price,
		})
	}

	if len(orderItems) == 0 {
		return nil, &CheckoutError{Err: domainErrors.ErrNoValidItems}
	}

	order, err := model.NewOrder(req.UserID, orderItems, req.ShippingAddress, u.taxRate)
	if err != nil {
		return nil, err
	}

	orderID, err := u.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, reservationID := range *reservations {
		if err := u.inventory.ConfirmReservation(ctx, reservationID); err != nil {
			return nil, err
		}
	}

	if err := order.UpdateStatus(model.OrderStatusConfirmed); err != nil {
		return nil, err
	}
	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusConfirmed); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		OrderID:           orderID,
		Total:             order.Total,
		Tax:               order.Tax,
		ItemsCount:        len(orderItems),
		EstimatedDelivery: time.Now().UTC().Add(72 * time.Hour).Format("2006-01-02"),
	}, nil
}

// releaseReservations frees every accumulated hold in order. A failed
// release is logged and must not stop the remaining releases.
func (u *CheckoutUseCase) releaseReservations(ctx context.Context, txnID string, reservations []string) {
	for _, reservationID := range reservations {
		released, err := u.inventory.ReleaseStock(ctx, reservationID)
		if err != nil {
			u.logger.Error("failed to release reservation",
				slog.String("txn_id", txnID),
				slog.String("reservation_id", reservationID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !released {
			u.logger.Warn("reservation was not released",
				slog.String("txn_id", txnID),
				slog.String("reservation_id", reservationID),
			)
		}
	}
}
