package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/domain/money"
	"github.com/okatev/shopflow/internal/domain/repository"
)

// DiscountUseCase applies promotional codes and bulk purchase pricing.
// The code table and thresholds are injected so tests can substitute
// them. All computations are pure; nothing is persisted.
type DiscountUseCase struct {
	codes          map[string]model.DiscountCode
	products       repository.ProductRepository
	users          repository.UserRepository
	taxRate        float64
	minOrderAmount float64
	logger         *slog.Logger
}

// NewDiscountUseCase constructs DiscountUseCase.
func NewDiscountUseCase(codes map[string]model.DiscountCode, products repository.ProductRepository, users repository.UserRepository, taxRate, minOrderAmount float64, logger *slog.Logger) *DiscountUseCase {
	return &DiscountUseCase{
		codes:          codes,
		products:       products,
		users:          users,
		taxRate:        taxRate,
		minOrderAmount: minOrderAmount,
		logger:         logger,
	}
}

// OrderDiscountResult describes a discount applied to an order.
type OrderDiscountResult struct {
	OrderID        string             `json:"order_id"`
	DiscountCode   string             `json:"discount_code"`
	DiscountType   model.DiscountType `json:"discount_type"`
	DiscountAmount float64            `json:"discount_amount"`
	OriginalTotal  float64            `json:"original_total"`
	NewSubtotal    float64            `json:"new_subtotal"`
	NewTax         float64            `json:"new_tax"`
	NewTotal       float64            `json:"new_total"`
}

// BulkDiscountResult describes tiered pricing for a high-quantity purchase.
type BulkDiscountResult struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	BasePrice       float64 `json:"base_price"`
	DiscountPercent float64 `json:"discount_percent"`
	UnitPrice       float64 `json:"unit_price"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
}

// ApplyToOrder validates a discount code against an order and
// recalculates totals after the discount, rounding after every step.
// The order must still be in a modifiable (cancellable) state.
func (u *DiscountUseCase) ApplyToOrder(ctx context.Context, order *model.Order, code string) (*OrderDiscountResult, error) {
	txnID := transactionID("DISC")
	_ = ctx

	discount, ok := u.codes[strings.ToUpper(code)]
	if !ok {
		return nil, &DiscountError{
			Msg: fmt.Sprintf("invalid discount code: %s", code),
			Err: domainErrors.ErrInvalidDiscountCode,
		}
	}

	if !order.CanCancel() {
		return nil, &DiscountError{
			Msg: fmt.Sprintf("discount cannot be applied to orders in %q status", order.Status),
			Err: domainErrors.ErrOrderNotModifiable,
		}
	}

	if order.Subtotal < discount.MinOrder {
		return nil, &DiscountError{
			Msg: fmt.Sprintf("order subtotal $%.2f is below minimum $%.2f required for code %q", order.Subtotal, discount.MinOrder, code),
			Err: domainErrors.ErrBelowMinimumOrder,
		}
	}

	var discountAmount float64
	if discount.Type == model.DiscountTypePercentage {
		discountAmount = money.Mul(order.Subtotal, discount.Value/100)
	} else {
		discountAmount = discount.Value
		if discountAmount > order.Subtotal {
			discountAmount = order.Subtotal
		}
	}

	newSubtotal := money.Sub(order.Subtotal, discountAmount)
	newTax := money.Mul(newSubtotal, u.taxRate)
	newTotal := money.Add(newSubtotal, newTax)

	if newTotal < u.minOrderAmount {
		return nil, &DiscountError{
			Msg: fmt.Sprintf("discounted total $%.2f falls below the minimum order amount of $%.2f", newTotal, u.minOrderAmount),
			Err: domainErrors.ErrBelowMinimumOrder,
		}
	}

	u.logger.Info("discount applied",
		slog.String("txn_id", txnID),
		slog.String("order_id", order.ID),
		slog.String("code", code),
		slog.Float64("discount_amount", discountAmount),
		slog.Float64("new_total", newTotal),
	)

	return &OrderDiscountResult{
		OrderID:        order.ID,
		DiscountCode:   code,
		DiscountType:   discount.Type,
		DiscountAmount: discountAmount,
		OriginalTotal:  order.Total,
		NewSubtotal:    newSubtotal,
		NewTax:         newTax,
		NewTotal:       newTotal,
	}, nil
}

// BulkDiscountPercent returns the tiered discount percentage for a
// quantity. Boundary quantities get the higher tier.
func BulkDiscountPercent(quantity int) float64 {
	switch {
	case quantity >= 50:
		return 15.0
	case quantity >= 20:
		return 10.0
	case quantity >= 10:
		return 5.0
	default:
		return 0.0
	}
}

// ApplyBulk prices a high-quantity purchase of one product, applying the
// tier discount to the unit price before multiplying by quantity.
func (u *DiscountUseCase) ApplyBulk(ctx context.Context, productID string, quantity int, userID string) (*BulkDiscountResult, error) {
	txnID := transactionID("BULK")

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, &DiscountError{
				Msg: fmt.Sprintf("user not found: %s", userID),
				Err: domainErrors.ErrUserNotFound,
			}
		}
		return nil, err
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return nil, &DiscountError{
				Msg: fmt.Sprintf("product not found: %s", productID),
				Err: domainErrors.ErrProductNotFound,
			}
		}
		return nil, err
	}

	if !product.IsInStock() {
		return nil, &DiscountError{
			Msg: fmt.Sprintf("product %s is out of stock", productID),
			Err: domainErrors.ErrOutOfStock,
		}
	}
	product.UpdateStock(-quantity)

	discountPct := BulkDiscountPercent(quantity)
	unitPrice := money.Mul(product.Price, 1-discountPct/100)
	subtotal := money.Round2(money.LineTotal(unitPrice, quantity))
	tax := money.Mul(subtotal, u.taxRate)
	total := money.Add(subtotal, tax)

	u.logger.Info("bulk discount applied",
		slog.String("txn_id", txnID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Float64("discount_pct", discountPct),
		slog.Float64("total", total),
	)

	return &BulkDiscountResult{
		ProductID:       productID,
		ProductName:     product.Name,
		Quantity:        quantity,
		BasePrice:       product.Price,
		DiscountPercent: discountPct,
		UnitPrice:       unitPrice,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
	}, nil
}
