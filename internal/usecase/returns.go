package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/domain/repository"
)

// ReturnsUseCase handles product return and refund requests: refund
// calculation, inventory release, and the final order status update.
type ReturnsUseCase struct {
	users     repository.UserRepository
	orders    repository.OrderRepository
	inventory InventoryService
	calc      *RefundCalculator
	logger    *slog.Logger
}

// NewReturnsUseCase constructs ReturnsUseCase.
func NewReturnsUseCase(users repository.UserRepository, orders repository.OrderRepository, inventory InventoryService, calc *RefundCalculator, logger *slog.Logger) *ReturnsUseCase {
	return &ReturnsUseCase{users: users, orders: orders, inventory: inventory, calc: calc, logger: logger}
}

// ReturnResult describes an approved return.
type ReturnResult struct {
	ReturnID             string    `json:"return_id"`
	OrderID              string    `json:"order_id"`
	RefundAmount         float64   `json:"refund_amount"`
	Status               string    `json:"status"`
	ReleasedReservations []string  `json:"released_reservations"`
	ProcessedAt          time.Time `json:"processed_at"`
}

// IneligibleItem pairs a rejected return item with the rejection reason.
type IneligibleItem struct {
	ReturnItem
	Reason string `json:"reason"`
}

// EligibilityResult splits a return request into eligible and
// ineligible items with an estimated refund for the eligible part.
type EligibilityResult struct {
	OrderID         string           `json:"order_id"`
	EligibleItems   []ReturnItem     `json:"eligible_items"`
	IneligibleItems []IneligibleItem `json:"ineligible_items"`
	EstimatedRefund float64          `json:"estimated_refund"`
}

// RefundStatusResult reports the state of a previously filed return.
type RefundStatusResult struct {
	ReturnID  string    `json:"return_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	QueriedAt time.Time `json:"queried_at"`
}

// ProcessReturn calculates the refund, releases the items' inventory
// reservations, and marks the order refunded.
func (u *ReturnsUseCase) ProcessReturn(ctx context.Context, orderID, userID string, items []ReturnItem, reason string) (*ReturnResult, error) {
	retID := returnID()

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, &ReturnError{
				Msg: fmt.Sprintf("user not found: %s", userID),
				Err: domainErrors.ErrUserNotFound,
			}
		}
		return nil, err
	}

	if len(items) == 0 {
		return nil, &ReturnError{Err: domainErrors.ErrNoItemsToReturn}
	}

	refundAmount := u.calc.Refund(items)
	if refundAmount <= 0 {
		return nil, &ReturnError{Err: domainErrors.ErrNonPositiveRefund}
	}

	released := make([]string, 0, len(items))
	for _, item := range items {
		if item.ReservationID == "" {
			continue
		}
		ok, err := u.inventory.ReleaseStock(ctx, item.ReservationID)
		if err != nil {
			u.logger.Error("return processing failed",
				slog.String("txn_id", retID),
				slog.String("reservation_id", item.ReservationID),
				slog.String("error", err.Error()),
			)
			return nil, &ReturnError{Msg: fmt.Sprintf("return failed: %v", err), Err: err}
		}
		if ok {
			released = append(released, item.ReservationID)
		}
	}

	if err := u.orders.UpdateStatus(ctx, orderID, model.OrderStatusRefunded); err != nil {
		return nil, &ReturnError{Msg: fmt.Sprintf("return failed: %v", err), Err: err}
	}

	u.logger.Info("return transaction",
		slog.String("txn_id", retID),
		slog.Float64("amount", refundAmount),
		slog.String("status", "refunded"),
		slog.String("user_id", userID),
		slog.String("payment_method", "original"),
	)
	u.logger.Info("return processed",
		slog.String("txn_id", retID),
		slog.String("order_id", orderID),
		slog.Float64("refund_amount", refundAmount),
		slog.Int("items_returned", len(items)),
		slog.Int("reservations_released", len(released)),
		slog.String("reason", reason),
	)

	return &ReturnResult{
		ReturnID:             retID,
		OrderID:              orderID,
		RefundAmount:         refundAmount,
		Status:               "approved",
		ReleasedReservations: released,
		ProcessedAt:          time.Now().UTC(),
	}, nil
}

// Eligibility checks which items of an order qualify for return.
func (u *ReturnsUseCase) Eligibility(orderID string, items []ReturnItem) *EligibilityResult {
	eligible := make([]ReturnItem, 0, len(items))
	ineligible := make([]IneligibleItem, 0)

	for _, item := range items {
		if ok, reasonText := u.calc.Eligible(item); ok {
			eligible = append(eligible, item)
		} else {
			ineligible = append(ineligible, IneligibleItem{ReturnItem: item, Reason: reasonText})
		}
	}

	return &EligibilityResult{
		OrderID:         orderID,
		EligibleItems:   eligible,
		IneligibleItems: ineligible,
		EstimatedRefund: u.calc.Refund(eligible),
	}
}

// RefundStatus reports the current state of a return request.
func (u *ReturnsUseCase) RefundStatus(ctx context.Context, retID, userID string) (*RefundStatusResult, error) {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, &ReturnError{
				Msg: fmt.Sprintf("user not found: %s", userID),
				Err: domainErrors.ErrUserNotFound,
			}
		}
		return nil, err
	}

	return &RefundStatusResult{
		ReturnID:  retID,
		UserID:    userID,
		Status:    "processing",
		QueriedAt: time.Now().UTC(),
	}, nil
}
