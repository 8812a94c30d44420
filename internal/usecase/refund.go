package usecase

import (
	"fmt"
	"strings"

	"github.com/okatev/shopflow/internal/domain/money"
)

const returnWindowDays = 30

var nonReturnableCategories = map[string]struct{}{
	"electronics": {},
	"books":       {},
}

// ReturnItem is one line of a return request.
type ReturnItem struct {
	ProductID         string  `json:"product_id"`
	UnitPrice         float64 `json:"unit_price"`
	Quantity          int     `json:"quantity"`
	Category          string  `json:"category"`
	DaysSincePurchase int     `json:"days_since_purchase"`
	ReservationID     string  `json:"reservation_id"`
}

// RefundCalculator computes refund amounts and checks return
// eligibility against the category and window rules.
type RefundCalculator struct {
	taxRate float64
}

// NewRefundCalculator constructs RefundCalculator.
func NewRefundCalculator(taxRate float64) *RefundCalculator {
	return &RefundCalculator{taxRate: taxRate}
}

// Refund returns the total refund including tax reversal: the item line
// totals are summed unrounded, the tax credit is rounded, and so is the
// final sum.
func (c *RefundCalculator) Refund(items []ReturnItem) float64 {
	if len(items) == 0 {
		return 0
	}
	lines := make([]float64, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lines = append(lines, money.LineTotal(item.UnitPrice, quantity))
	}
	subtotal := money.Sum(lines...)
	taxCredit := money.Mul(subtotal, c.taxRate)
	return money.Add(subtotal, taxCredit)
}

// Eligible reports whether an item qualifies for return and, if not, why.
func (c *RefundCalculator) Eligible(item ReturnItem) (bool, string) {
	category := strings.ToLower(item.Category)
	if _, blocked := nonReturnableCategories[category]; blocked {
		return false, fmt.Sprintf("category %q is non-returnable", category)
	}
	if item.DaysSincePurchase > returnWindowDays {
		return false, fmt.Sprintf("return window of %d days has expired", returnWindowDays)
	}
	if item.Quantity <= 0 {
		return false, "quantity must be at least 1"
	}
	return true, ""
}

// PartialRefund computes the refund for returning returnQuantity units
// of a single item, rounding after each step.
func (c *RefundCalculator) PartialRefund(item ReturnItem, returnQuantity int) float64 {
	subtotal := money.Round2(money.LineTotal(item.UnitPrice, returnQuantity))
	taxCredit := money.Mul(subtotal, c.taxRate)
	return money.Add(subtotal, taxCredit)
}
