package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
)

func discountCodes() map[string]model.DiscountCode {
	return map[string]model.DiscountCode{
		"SAVE10": {Type: model.DiscountTypePercentage, Value: 10.0, MinOrder: 50.0},
		"FLAT20": {Type: model.DiscountTypeFlat, Value: 20.0, MinOrder: 100.0},
		"BULK5":  {Type: model.DiscountTypePercentage, Value: 5.0, MinOrder: 200.0},
	}
}

func newDiscountTestUseCase(products *stubProductRepository, users *stubUserRepository) *DiscountUseCase {
	return NewDiscountUseCase(discountCodes(), products, users, 0.08, 10.0, discardLogger())
}

func orderWithSubtotal(t *testing.T, unitPrice float64) *model.Order {
	t.Helper()
	order, err := model.NewOrder("user-1", []model.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: unitPrice}}, model.Address{}, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return order
}

func TestApplyToOrderPercentage(t *testing.T) {
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	order := orderWithSubtotal(t, 200)

	result, err := uc.ApplyToOrder(context.Background(), order, "save10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DiscountAmount != 20.00 {
		t.Fatalf("discount = %v, want 20.00", result.DiscountAmount)
	}
	if result.NewSubtotal != 180.00 || result.NewTax != 14.40 || result.NewTotal != 194.40 {
		t.Fatalf("new totals = %v/%v/%v, want 180.00/14.40/194.40", result.NewSubtotal, result.NewTax, result.NewTotal)
	}
	if result.OriginalTotal != order.Total {
		t.Fatalf("original total = %v, want %v", result.OriginalTotal, order.Total)
	}
}

func TestApplyToOrderRoundingIsStepwise(t *testing.T) {
	// Subtotal 99.995 rounds to 100.00 at construction; the 10% discount
	// amount is then 10.00 and the rest follows step-rounded.
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	order := orderWithSubtotal(t, 99.995)

	result, err := uc.ApplyToOrder(context.Background(), order, "SAVE10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DiscountAmount != 10.00 {
		t.Fatalf("discount = %v, want 10.00", result.DiscountAmount)
	}
	if result.NewSubtotal != 90.00 {
		t.Fatalf("new subtotal = %v, want 90.00", result.NewSubtotal)
	}
	if result.NewTax != 7.20 || result.NewTotal != 97.20 {
		t.Fatalf("new tax/total = %v/%v, want 7.20/97.20", result.NewTax, result.NewTotal)
	}
}

func TestApplyToOrderFlatCappedAtSubtotal(t *testing.T) {
	codes := discountCodes()
	codes["FLAT20"] = model.DiscountCode{Type: model.DiscountTypeFlat, Value: 20.0, MinOrder: 0}
	uc := NewDiscountUseCase(codes, catalog(), &stubUserRepository{}, 0.08, 0, discardLogger())
	order := orderWithSubtotal(t, 15)

	result, err := uc.ApplyToOrder(context.Background(), order, "FLAT20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DiscountAmount != 15.00 {
		t.Fatalf("discount = %v, want capped 15.00", result.DiscountAmount)
	}
	if result.NewSubtotal != 0 || result.NewTotal != 0 {
		t.Fatalf("new subtotal/total = %v/%v, want 0/0", result.NewSubtotal, result.NewTotal)
	}
}

func TestApplyToOrderInvalidCode(t *testing.T) {
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	_, err := uc.ApplyToOrder(context.Background(), orderWithSubtotal(t, 200), "NOPE")
	if !errors.Is(err, domainErrors.ErrInvalidDiscountCode) {
		t.Fatalf("expected invalid code error, got %v", err)
	}
}

func TestApplyToOrderRequiresModifiableState(t *testing.T) {
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	order := orderWithSubtotal(t, 200)
	order.Status = model.OrderStatusDelivered

	_, err := uc.ApplyToOrder(context.Background(), order, "SAVE10")
	if !errors.Is(err, domainErrors.ErrOrderNotModifiable) {
		t.Fatalf("expected not modifiable error, got %v", err)
	}
}

func TestApplyToOrderBelowCodeMinimum(t *testing.T) {
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	_, err := uc.ApplyToOrder(context.Background(), orderWithSubtotal(t, 40), "SAVE10")
	if !errors.Is(err, domainErrors.ErrBelowMinimumOrder) {
		t.Fatalf("expected below minimum error, got %v", err)
	}
}

func TestApplyToOrderDiscountedTotalBelowMinimum(t *testing.T) {
	codes := map[string]model.DiscountCode{
		"HUGE": {Type: model.DiscountTypePercentage, Value: 95.0, MinOrder: 0},
	}
	uc := NewDiscountUseCase(codes, catalog(), &stubUserRepository{}, 0.08, 10.0, discardLogger())
	_, err := uc.ApplyToOrder(context.Background(), orderWithSubtotal(t, 60), "HUGE")
	if !errors.Is(err, domainErrors.ErrBelowMinimumOrder) {
		t.Fatalf("expected below minimum error, got %v", err)
	}
}

func TestBulkDiscountPercentTiers(t *testing.T) {
	cases := []struct {
		quantity int
		want     float64
	}{
		{1, 0}, {9, 0}, {10, 5}, {19, 5}, {20, 10}, {49, 10}, {50, 15}, {500, 15},
	}
	for _, c := range cases {
		if got := BulkDiscountPercent(c.quantity); got != c.want {
			t.Fatalf("BulkDiscountPercent(%d) = %v, want %v", c.quantity, got, c.want)
		}
	}
}

func TestApplyBulk(t *testing.T) {
	users := &stubUserRepository{users: map[string]*model.User{"user-1": {ID: "user-1"}}}
	uc := newDiscountTestUseCase(catalog(), users)

	result, err := uc.ApplyBulk(context.Background(), "p1", 20, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 50 * 0.90 = 45.00; 45 * 20 = 900; tax 72; total 972.
	if result.DiscountPercent != 10 || result.UnitPrice != 45.00 {
		t.Fatalf("pct/unit = %v/%v, want 10/45.00", result.DiscountPercent, result.UnitPrice)
	}
	if result.Subtotal != 900.00 || result.Tax != 72.00 || result.Total != 972.00 {
		t.Fatalf("subtotal/tax/total = %v/%v/%v, want 900/72/972", result.Subtotal, result.Tax, result.Total)
	}
	if result.BasePrice != 50 || result.ProductName != "Widget" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestApplyBulkUserNotFound(t *testing.T) {
	uc := newDiscountTestUseCase(catalog(), &stubUserRepository{})
	_, err := uc.ApplyBulk(context.Background(), "p1", 10, "ghost")
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		t.Fatalf("expected user not found error, got %v", err)
	}
}

func TestApplyBulkProductNotFound(t *testing.T) {
	users := &stubUserRepository{users: map[string]*model.User{"user-1": {ID: "user-1"}}}
	uc := newDiscountTestUseCase(catalog(), users)
	_, err := uc.ApplyBulk(context.Background(), "ghost", 10, "user-1")
	if !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected product not found error, got %v", err)
	}
}

func TestApplyBulkOutOfStock(t *testing.T) {
	users := &stubUserRepository{users: map[string]*model.User{"user-1": {ID: "user-1"}}}
	products := &stubProductRepository{products: map[string]*model.Product{
		"p1": {ID: "p1", Name: "Widget", Price: 50, StockQuantity: 0},
	}}
	uc := newDiscountTestUseCase(products, users)
	_, err := uc.ApplyBulk(context.Background(), "p1", 10, "user-1")
	if !errors.Is(err, domainErrors.ErrOutOfStock) {
		t.Fatalf("expected out of stock error, got %v", err)
	}
}
