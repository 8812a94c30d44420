package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/okatev/shopflow/internal/adapter/inventory"
	domainErrors "github.com/okatev/shopflow/internal/domain/errors"
	"github.com/okatev/shopflow/internal/domain/model"
	"github.com/okatev/shopflow/internal/server/http/dto"
	testhelpers "github.com/okatev/shopflow/internal/test"
	"github.com/okatev/shopflow/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type pingerStub struct {
	err error
}

func (p pingerStub) HealthCheck(context.Context) error {
	return p.err
}

func TestHealthHandlerPing(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(pingerStub{}).Ping, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(pingerStub{err: errors.New("db down")}).Ping, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestCheckoutHandlerExpress(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{CheckoutFn: func(_ context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
		if req.UserID != "user-1" || len(req.Items) != 1 || req.Items[0].ProductID != "p1" {
			t.Fatalf("unexpected request passed to facade: %+v", req)
		}
		return &usecase.CheckoutResult{OrderID: "order-1", Total: 108, Tax: 8, ItemsCount: 1}, nil
	}}
	body, _ := json.Marshal(dto.CheckoutRequest{
		UserID: "user-1",
		Items:  []dto.CartItem{{ProductID: "p1", Quantity: 2}},
	})
	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Express, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var result usecase.CheckoutResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.OrderID != "order-1" || result.Total != 108 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestCheckoutHandlerExpressErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no valid items", &usecase.CheckoutError{Err: domainErrors.ErrNoValidItems}, http.StatusUnprocessableEntity},
		{"out of stock", &usecase.CheckoutError{Err: fmt.Errorf("reserve p1: %w", inventory.ErrInsufficientStock)}, http.StatusConflict},
		{"internal", &usecase.CheckoutError{Err: errors.New("db down")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.CommerceFacadeStub{CheckoutFn: func(context.Context, usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
				return nil, tc.err
			}}
			body, _ := json.Marshal(dto.CheckoutRequest{UserID: "user-1", Items: []dto.CartItem{{ProductID: "p1"}}})
			resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Express, body)
			if resp.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, resp.Code)
			}
		})
	}

	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(&testhelpers.CommerceFacadeStub{}).Express, []byte("{"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed body, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(&testhelpers.CommerceFacadeStub{}).Express, []byte(`{"items":[]}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing user id, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{}
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/order-1", NewOrderHandler(facade).Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != "order-1" || order.Status != string(model.OrderStatusPending) {
		t.Fatalf("unexpected order %+v", order)
	}

	facade.OrderFn = func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}
	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/missing", NewOrderHandler(facade).Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerShip(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{ShipFn: func(_ context.Context, orderID, trackingNumber, carrier string) (*usecase.ShipmentResult, error) {
		if orderID != "order-1" || trackingNumber != "TRK-1" || carrier != "ups" {
			t.Fatalf("unexpected arguments: %q %q %q", orderID, trackingNumber, carrier)
		}
		return &usecase.ShipmentResult{OrderID: orderID, Status: model.OrderStatusShipped}, nil
	}}
	body, _ := json.Marshal(dto.ShipRequest{TrackingNumber: "TRK-1", Carrier: "ups"})
	resp := performRequest(t, http.MethodPost, "/orders/:id/ship", "/orders/order-1/ship", NewOrderHandler(facade).Ship, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:id/ship", "/orders/order-1/ship", NewOrderHandler(facade).Ship, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without tracking number, got %d", resp.Code)
	}
}

func TestOrderHandlerLifecycleErrors(t *testing.T) {
	transitionErr := &usecase.LifecycleError{
		Op:      "deliver",
		OrderID: "order-1",
		Err:     &model.InvalidTransitionError{From: model.OrderStatusDelivered, To: model.OrderStatusDelivered},
	}

	facade := &testhelpers.CommerceFacadeStub{DeliverFn: func(context.Context, string) (*usecase.DeliveryResult, error) {
		return nil, transitionErr
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/deliver", "/orders/order-1/deliver", NewOrderHandler(facade).Deliver, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for illegal transition, got %d", resp.Code)
	}

	facade.DeliverFn = func(context.Context, string) (*usecase.DeliveryResult, error) {
		return nil, domainErrors.ErrNotFound
	}
	resp = performRequest(t, http.MethodPost, "/orders/:id/deliver", "/orders/missing/deliver", NewOrderHandler(facade).Deliver, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	facade.DeliverFn = func(context.Context, string) (*usecase.DeliveryResult, error) {
		return nil, errors.New("db down")
	}
	resp = performRequest(t, http.MethodPost, "/orders/:id/deliver", "/orders/order-1/deliver", NewOrderHandler(facade).Deliver, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{CancelFn: func(_ context.Context, orderID, userID, reason string) (*usecase.CancellationResult, error) {
		if orderID != "order-1" || userID != "user-1" || reason != "changed mind" {
			t.Fatalf("unexpected arguments: %q %q %q", orderID, userID, reason)
		}
		return &usecase.CancellationResult{OrderID: orderID, Status: model.OrderStatusCancelled, Reason: reason}, nil
	}}
	body, _ := json.Marshal(dto.CancelRequest{UserID: "user-1", Reason: "changed mind"})
	resp := performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/order-1/cancel", NewOrderHandler(facade).Cancel, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:id/cancel", "/orders/order-1/cancel", NewOrderHandler(facade).Cancel, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without user id, got %d", resp.Code)
	}
}

func TestDiscountHandlerApply(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{DiscountFn: func(_ context.Context, orderID, code string) (*usecase.OrderDiscountResult, error) {
		if orderID != "order-1" || code != "SAVE10" {
			t.Fatalf("unexpected arguments: %q %q", orderID, code)
		}
		return &usecase.OrderDiscountResult{OrderID: orderID, DiscountCode: code, NewTotal: 97.20}, nil
	}}
	body, _ := json.Marshal(dto.ApplyDiscountRequest{Code: "SAVE10"})
	resp := performRequest(t, http.MethodPost, "/orders/:id/discount", "/orders/order-1/discount", NewDiscountHandler(facade).Apply, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"invalid code", &usecase.DiscountError{Err: domainErrors.ErrInvalidDiscountCode}, http.StatusUnprocessableEntity},
		{"below minimum", &usecase.DiscountError{Err: domainErrors.ErrBelowMinimumOrder}, http.StatusUnprocessableEntity},
		{"not modifiable", &usecase.DiscountError{Err: domainErrors.ErrOrderNotModifiable}, http.StatusConflict},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.CommerceFacadeStub{DiscountFn: func(context.Context, string, string) (*usecase.OrderDiscountResult, error) {
				return nil, tc.err
			}}
			resp := performRequest(t, http.MethodPost, "/orders/:id/discount", "/orders/order-1/discount", NewDiscountHandler(facade).Apply, body)
			if resp.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestDiscountHandlerApplyBulk(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{BulkFn: func(_ context.Context, productID string, quantity int, userID string) (*usecase.BulkDiscountResult, error) {
		if productID != "p1" || quantity != 20 || userID != "user-1" {
			t.Fatalf("unexpected arguments: %q %d %q", productID, quantity, userID)
		}
		return &usecase.BulkDiscountResult{ProductID: productID, Quantity: quantity, DiscountPercent: 10}, nil
	}}
	body, _ := json.Marshal(dto.BulkDiscountRequest{ProductID: "p1", Quantity: 20, UserID: "user-1"})
	resp := performRequest(t, http.MethodPost, "/discounts/bulk", "/discounts/bulk", NewDiscountHandler(facade).ApplyBulk, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user missing", &usecase.DiscountError{Err: domainErrors.ErrUserNotFound}, http.StatusNotFound},
		{"product missing", &usecase.DiscountError{Err: domainErrors.ErrProductNotFound}, http.StatusNotFound},
		{"out of stock", &usecase.DiscountError{Err: domainErrors.ErrOutOfStock}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.CommerceFacadeStub{BulkFn: func(context.Context, string, int, string) (*usecase.BulkDiscountResult, error) {
				return nil, tc.err
			}}
			resp := performRequest(t, http.MethodPost, "/discounts/bulk", "/discounts/bulk", NewDiscountHandler(facade).ApplyBulk, body)
			if resp.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestReturnsHandlerProcess(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{ReturnFn: func(_ context.Context, orderID, userID string, items []usecase.ReturnItem, reason string) (*usecase.ReturnResult, error) {
		if orderID != "order-1" || userID != "user-1" || len(items) != 1 || reason != "defective" {
			t.Fatalf("unexpected arguments: %q %q %d %q", orderID, userID, len(items), reason)
		}
		return &usecase.ReturnResult{ReturnID: "RET-ABCD1234", OrderID: orderID, RefundAmount: 54, Status: "approved"}, nil
	}}
	body, _ := json.Marshal(dto.ReturnRequest{
		OrderID: "order-1",
		UserID:  "user-1",
		Items:   []dto.ReturnItem{{ProductID: "p1", UnitPrice: 50, Quantity: 1}},
		Reason:  "defective",
	})
	resp := performRequest(t, http.MethodPost, "/returns", "/returns", NewReturnsHandler(facade).Process, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user missing", &usecase.ReturnError{Err: domainErrors.ErrUserNotFound}, http.StatusNotFound},
		{"no items", &usecase.ReturnError{Err: domainErrors.ErrNoItemsToReturn}, http.StatusUnprocessableEntity},
		{"zero refund", &usecase.ReturnError{Err: domainErrors.ErrNonPositiveRefund}, http.StatusUnprocessableEntity},
		{"internal", errors.New("inventory down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.CommerceFacadeStub{ReturnFn: func(context.Context, string, string, []usecase.ReturnItem, string) (*usecase.ReturnResult, error) {
				return nil, tc.err
			}}
			resp := performRequest(t, http.MethodPost, "/returns", "/returns", NewReturnsHandler(facade).Process, body)
			if resp.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, resp.Code)
			}
		})
	}
}

func TestReturnsHandlerEligibility(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{EligibilityFn: func(orderID string, items []usecase.ReturnItem) *usecase.EligibilityResult {
		return &usecase.EligibilityResult{OrderID: orderID, EligibleItems: items, EstimatedRefund: 54}
	}}
	body, _ := json.Marshal(dto.EligibilityRequest{
		OrderID: "order-1",
		Items:   []dto.ReturnItem{{ProductID: "p1", UnitPrice: 50, Quantity: 1, Category: "clothing"}},
	})
	resp := performRequest(t, http.MethodPost, "/returns/eligibility", "/returns/eligibility", NewReturnsHandler(facade).Eligibility, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var result usecase.EligibilityResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.EstimatedRefund != 54 || len(result.EligibleItems) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestReturnsHandlerStatus(t *testing.T) {
	facade := &testhelpers.CommerceFacadeStub{}
	resp := performRequest(t, http.MethodGet, "/returns/:id/status", "/returns/RET-ABCD1234/status?user_id=user-1", NewReturnsHandler(facade).Status, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/returns/:id/status", "/returns/RET-ABCD1234/status", NewReturnsHandler(facade).Status, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without user id, got %d", resp.Code)
	}

	facade.StatusFn = func(context.Context, string, string) (*usecase.RefundStatusResult, error) {
		return nil, &usecase.ReturnError{Err: domainErrors.ErrUserNotFound}
	}
	resp = performRequest(t, http.MethodGet, "/returns/:id/status", "/returns/RET-ABCD1234/status?user_id=ghost", NewReturnsHandler(facade).Status, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
