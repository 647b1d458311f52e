package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticketlite/internal/app"
	"ticketlite/internal/domain"
)

func TestHandleCreateReservation(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	successReservation := domain.Reservation{
		ID:         42,
		EventID:    1,
		BuyerName:  "Alice",
		BuyerEmail: "a@x.com",
		Quantity:   2,
		CreatedAt:  now,
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"event_id":1,"buyer_name":"Alice","buyer_email":"a@x.com","quantity":2}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":42`,
		},
		{
			name:           "invalid json",
			body:           `{"event_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing event id",
			body:           `{"buyer_name":"Alice","buyer_email":"a@x.com","quantity":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidID,
		},
		{
			name:           "missing buyer name",
			body:           `{"event_id":1,"buyer_email":"a@x.com","quantity":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeBuyerNameRequired,
		},
		{
			name:           "missing buyer email",
			body:           `{"event_id":1,"buyer_name":"Alice","quantity":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeBuyerEmailRequired,
		},
		{
			name:           "event not found",
			body:           `{"event_id":1,"buyer_name":"Alice","buyer_email":"a@x.com","quantity":2}`,
			serviceErr:     domain.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
			expectedSubstr: codeEventNotFound,
		},
		{
			name:           "invalid quantity",
			body:           `{"event_id":1,"buyer_name":"Alice","buyer_email":"a@x.com","quantity":0}`,
			serviceErr:     domain.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: codeInvalidQuantity,
		},
		{
			name:           "insufficient inventory",
			body:           `{"event_id":1,"buyer_name":"Alice","buyer_email":"a@x.com","quantity":500}`,
			serviceErr:     domain.ErrInsufficientInventory,
			expectedStatus: http.StatusConflict,
			expectedSubstr: codeInsufficientInventory,
		},
		{
			name:           "internal error",
			body:           `{"event_id":1,"buyer_name":"Alice","buyer_email":"a@x.com","quantity":2}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubReserver{
				reservation: successReservation,
				err:         tt.serviceErr,
			}
			req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			HandleCreateReservation(svc).ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedSubstr != "" {
				body := rec.Body.String()
				if !strings.Contains(body, tt.expectedSubstr) {
					t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, body)
				}
			}
		})
	}

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		rec := httptest.NewRecorder()

		HandleCreateReservation(&stubReserver{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status 405, got %d", rec.Code)
		}
	})
}

type stubReserver struct {
	reservation domain.Reservation
	err         error
}

func (s *stubReserver) Reserve(_ context.Context, _ app.ReserveInput) (domain.Reservation, error) {
	return s.reservation, s.err
}
