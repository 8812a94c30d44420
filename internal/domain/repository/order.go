package repository

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Save(ctx context.Context, order *model.Order) (string, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
