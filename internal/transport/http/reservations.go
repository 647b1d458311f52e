package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ticketlite/internal/app"
	"ticketlite/internal/domain"
)

// Reserver is the minimal interface needed to commit a reservation.
type Reserver interface {
	Reserve(ctx context.Context, in app.ReserveInput) (domain.Reservation, error)
}

// HandleCreateReservation returns an HTTP handler for the reserve path.
func HandleCreateReservation(svc Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createReservationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if code, msg, ok := req.validate(); !ok {
			writeError(w, http.StatusBadRequest, code, msg)
			return
		}

		reservation, err := svc.Reserve(r.Context(), app.ReserveInput{
			EventID:    req.EventID,
			BuyerName:  req.BuyerName,
			BuyerEmail: req.BuyerEmail,
			Quantity:   req.Quantity,
		})
		if err != nil {
			switch err {
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			case domain.ErrInvalidQuantity:
				writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
			case domain.ErrInsufficientInventory:
				writeError(w, http.StatusConflict, codeInsufficientInventory, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newReservationResponse(reservation))
	}
}

type createReservationRequest struct {
	EventID    int64  `json:"event_id"`
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Quantity   int    `json:"quantity"`
}

// validate checks the request fields the transport owns. Quantity and
// event existence are left to the availability service so the error
// ordering (missing event before bad quantity) stays in one place.
func (r createReservationRequest) validate() (code, msg string, ok bool) {
	if r.EventID < 1 {
		return codeInvalidID, "event_id is required", false
	}
	if r.BuyerName == "" {
		return codeBuyerNameRequired, "buyer_name is required", false
	}
	if r.BuyerEmail == "" {
		return codeBuyerEmailRequired, "buyer_email is required", false
	}
	return "", "", true
}

type reservationResponse struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	BuyerName  string    `json:"buyer_name"`
	BuyerEmail string    `json:"buyer_email"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:         res.ID,
		EventID:    res.EventID,
		BuyerName:  res.BuyerName,
		BuyerEmail: res.BuyerEmail,
		Quantity:   res.Quantity,
		CreatedAt:  res.CreatedAt,
	}
}
