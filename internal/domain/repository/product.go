package repository

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
)

// ProductRepository describes read access to the product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
}
