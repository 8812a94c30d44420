package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/money"
)

// OrderStatus describes the fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	// OrderStatusRefunded is written by the returns flow straight to
	// persistence; it is not reachable through UpdateStatus.
	OrderStatusRefunded OrderStatus = "REFUNDED"
)

// allowedTransitions lists every legal status change. DELIVERED and
// CANCELLED are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
}

// InvalidTransitionError reports an illegal status change attempt.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// OrderItem is a single line of an order. It has no identity outside
// its owning order.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// LineTotal returns unit price times quantity.
func (i OrderItem) LineTotal() float64 {
	return money.LineTotal(i.UnitPrice, i.Quantity)
}

// Address is a shipping destination.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order represents one customer purchase. Totals are derived from the
// items and recomputed whenever they change; the status only moves
// through UpdateStatus.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	ShippingAddress Address
	Subtotal        float64
	Tax             float64
	Total           float64
	Status          OrderStatus
	CreatedAt       time.Time

	taxRate float64
}

// NewOrder constructs an order in PENDING status, applying business rule
// validation to the supplied items and computing monetary totals.
func NewOrder(userID string, items []OrderItem, addr Address, taxRate float64) (*Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domainErrors.ErrInvalidQuantity)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, domainErrors.ErrInvalidUnitPrice)
		}
	}

	order := &Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: addr,
		Status:          OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
		taxRate:         taxRate,
	}
	order.recalculateTotals()
	return order, nil
}

// SetItems replaces the order's items and recomputes totals.
func (o *Order) SetItems(items []OrderItem) {
	o.Items = items
	o.recalculateTotals()
}

// TaxRate reports the rate used for the order's tax computation.
func (o *Order) TaxRate() float64 {
	return o.taxRate
}

// SetTaxRate attaches a tax rate to an order restored from persistence
// and recomputes totals with it.
func (o *Order) SetTaxRate(rate float64) {
	o.taxRate = rate
	o.recalculateTotals()
}

// Totals are rounded after every arithmetic step: subtotal first, then
// tax from the rounded subtotal, then their rounded sum.
func (o *Order) recalculateTotals() {
	lines := make([]float64, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, item.LineTotal())
	}
	o.Subtotal = money.Round2(money.Sum(lines...))
	o.Tax = money.Mul(o.Subtotal, o.taxRate)
	o.Total = money.Add(o.Subtotal, o.Tax)
}

// UpdateStatus moves the order to next if the transition is legal,
// otherwise returns an InvalidTransitionError and leaves the order
// untouched. Persistence is the caller's responsibility.
func (o *Order) UpdateStatus(next OrderStatus) error {
	for _, allowed := range allowedTransitions[o.Status] {
		if allowed == next {
			o.Status = next
			return nil
		}
	}
	return &InvalidTransitionError{From: o.Status, To: next}
}

// CanCancel reports whether CANCELLED is still reachable. Collaborators
// use it to gate mutation of orders that must stay modifiable.
func (o *Order) CanCancel() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped:
		return true
	}
	return false
}
