package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/okatev/shopflow/internal/config"
	"github.com/okatev/shopflow/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newCheckoutUseCase,
	newLifecycleUseCase,
	newDiscountUseCase,
	newReturnsUseCase,
)

type checkoutParams struct {
	fx.In

	Products  repository.ProductRepository
	Orders    repository.OrderRepository
	Inventory InventoryService
	Config    *config.Config
	Logger    *slog.Logger
}

func newCheckoutUseCase(p checkoutParams) *CheckoutUseCase {
	return NewCheckoutUseCase(p.Products, p.Orders, p.Inventory, p.Config.TaxRate, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Orders   repository.OrderRepository
	Notifier Notifier
	Logger   *slog.Logger
}

func newLifecycleUseCase(p lifecycleParams) *LifecycleUseCase {
	return NewLifecycleUseCase(p.Orders, p.Notifier, p.Logger)
}

type discountParams struct {
	fx.In

	Products repository.ProductRepository
	Users    repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func newDiscountUseCase(p discountParams) *DiscountUseCase {
	return NewDiscountUseCase(p.Config.DiscountCodes, p.Products, p.Users, p.Config.TaxRate, p.Config.MinOrderAmount, p.Logger)
}

type returnsParams struct {
	fx.In

	Users     repository.UserRepository
	Orders    repository.OrderRepository
	Inventory InventoryService
	Config    *config.Config
	Logger    *slog.Logger
}

func newReturnsUseCase(p returnsParams) *ReturnsUseCase {
	return NewReturnsUseCase(p.Users, p.Orders, p.Inventory, NewRefundCalculator(p.Config.TaxRate), p.Logger)
}
