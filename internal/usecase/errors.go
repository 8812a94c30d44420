package usecase

import (
	"errors"
	"fmt"

	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, domainErrors.ErrNotFound)
}

// LifecycleError reports a rejected order lifecycle transition.
type LifecycleError struct {
	Op      string
	OrderID string
	Err     error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s order %s: %v", e.Op, e.OrderID, e.Err)
}

func (e *LifecycleError) Unwrap() error { return e.Err }

// CheckoutError wraps any failure of the express checkout flow. By the
// time it surfaces, compensation over accumulated reservations has
// already run.
type CheckoutError struct {
	Err error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed: %v", e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

// DiscountError reports a rejected discount application.
type DiscountError struct {
	Msg string
	Err error
}

func (e *DiscountError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err.Error()
}

func (e *DiscountError) Unwrap() error { return e.Err }

// ReturnError reports a rejected or failed return request.
type ReturnError struct {
	Msg string
	Err error
}

func (e *ReturnError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err.Error()
}

func (e *ReturnError) Unwrap() error { return e.Err }
