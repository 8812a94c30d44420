package repository

import (
	"context"

	"github.com/okatev/shopflow/internal/domain/model"
)

// UserRepository describes read access to customer records.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}
