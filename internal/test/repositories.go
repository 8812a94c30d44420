package test

import (
	"context"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with an initialized map.
func NewUserRepositoryStub(users ...*model.User) *UserRepositoryStub {
	stub := &UserRepositoryStub{Users: make(map[string]*model.User)}
	for _, u := range users {
		stub.Users[u.ID] = u
	}
	return stub
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub serves a fixed catalog.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Err      error
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	SaveFn         func(context.Context, *model.Order) (string, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error

	Saved       []*model.Order
	Order       *model.Order
	UpdateCalls []OrderUpdateCall
}

// Save tracks invocations and returns the order id.
func (s *OrderRepositoryStub) Save(ctx context.Context, order *model.Order) (string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, order)
	}
	s.Saved = append(s.Saved, order)
	return order.ID, nil
}

// GetByID returns configured order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Order == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Order, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// InventoryStub simulates the inventory service.
type InventoryStub struct {
	ReserveFn func(context.Context, string, int, string) (*model.Reservation, error)
	ConfirmFn func(context.Context, string) error
	ReleaseFn func(context.Context, string) (bool, error)

	Reserved  []string
	Confirmed []string
	Released  []string
}

// ReserveStock returns per-product reservation ids unless overridden.
func (s *InventoryStub) ReserveStock(ctx context.Context, productID string, quantity int, orderContextID string) (*model.Reservation, error) {
	if s.ReserveFn != nil {
		return s.ReserveFn(ctx, productID, quantity, orderContextID)
	}
	res := &model.Reservation{ID: "res-" + productID, ProductID: productID, Quantity: quantity}
	s.Reserved = append(s.Reserved, res.ID)
	return res, nil
}

// ConfirmReservation records confirmation requests.
func (s *InventoryStub) ConfirmReservation(ctx context.Context, reservationID string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, reservationID)
	}
	s.Confirmed = append(s.Confirmed, reservationID)
	return nil
}

// ReleaseStock records release requests.
func (s *InventoryStub) ReleaseStock(ctx context.Context, reservationID string) (bool, error) {
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, reservationID)
	}
	s.Released = append(s.Released, reservationID)
	return true, nil
}

// NotifierStub records notifier invocations.
type NotifierStub struct {
	Result bool
	Calls  []string
}

func (s *NotifierStub) record(kind string) bool {
	s.Calls = append(s.Calls, kind)
	return s.Result
}

// SendShippingConfirmation records the call and returns the configured result.
func (s *NotifierStub) SendShippingConfirmation(ctx context.Context, order *model.Order, trackingNumber, carrier string) bool {
	return s.record("shipping")
}

// SendDeliveryConfirmation records the call and returns the configured result.
func (s *NotifierStub) SendDeliveryConfirmation(ctx context.Context, order *model.Order) bool {
	return s.record("delivery")
}

// SendCancellationNotice records the call and returns the configured result.
func (s *NotifierStub) SendCancellationNotice(ctx context.Context, order *model.Order, reason string) bool {
	return s.record("cancellation")
}
