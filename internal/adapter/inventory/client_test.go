package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestReserveStock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reservations" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req reserveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ProductID != "p1" || req.Quantity != 3 || req.OrderID != "EXPRESS-abcd1234" {
			t.Fatalf("unexpected request %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(reserveResponse{ReservationID: "res-1"})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	reservation, err := client.ReserveStock(context.Background(), "p1", 3, "EXPRESS-abcd1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.ID != "res-1" || reservation.ProductID != "p1" || reservation.Quantity != 3 {
		t.Fatalf("unexpected reservation %+v", reservation)
	}
}

func TestReserveStockInsufficient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	if _, err := client.ReserveStock(context.Background(), "p1", 500, "ctx"); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
}

func TestConfirmReservation(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	if err := client.ConfirmReservation(context.Background(), "res-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/reservations/res-1/confirm" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}

func TestConfirmReservationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	err := client.ConfirmReservation(context.Background(), "res-1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "confirm reservation") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestReleaseStock(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{"released", http.StatusOK, true, false},
		{"unknown reservation", http.StatusNotFound, false, false},
		{"server error", http.StatusInternalServerError, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(c.status)
			}))
			defer server.Close()

			client, _ := NewHTTPClient(server.URL, testLogger())
			ok, err := client.ReleaseStock(context.Background(), "res-1")
			if c.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != c.want {
				t.Fatalf("released = %v, want %v", ok, c.want)
			}
		})
	}
}
