package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ticketlite/internal/app"
	"ticketlite/internal/domain"
)

// EventCatalog is the minimal interface needed by the event endpoints.
type EventCatalog interface {
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// HandleEvents returns an HTTP handler for the event collection
// (listing and creation).
func HandleEvents(svc EventCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			events, err := svc.ListEvents(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]eventResponse, 0, len(events))
			for _, event := range events {
				resp = append(resp, newEventResponse(event))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createEventRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			var date *time.Time
			if req.Date != "" {
				parsed, err := time.Parse(time.RFC3339, req.Date)
				if err != nil {
					writeError(w, http.StatusBadRequest, codeInvalidDate, "invalid date format")
					return
				}
				date = &parsed
			}

			event, err := svc.CreateEvent(r.Context(), app.CreateEventInput{
				Title:        req.Title,
				Description:  req.Description,
				Venue:        req.Venue,
				Date:         date,
				Price:        req.Price,
				ImageURL:     req.ImageURL,
				TotalTickets: req.TotalTickets,
			})
			if err != nil {
				switch err {
				case domain.ErrTitleRequired:
					writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
				case domain.ErrDescriptionRequired:
					writeError(w, http.StatusBadRequest, codeDescriptionRequired, err.Error())
				case domain.ErrVenueRequired:
					writeError(w, http.StatusBadRequest, codeVenueRequired, err.Error())
				case domain.ErrInvalidPrice:
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				case domain.ErrInvalidCapacity:
					writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newEventResponse(event))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// AvailabilityReader is the minimal interface needed by the per-event
// read endpoints.
type AvailabilityReader interface {
	RemainingTickets(ctx context.Context, eventID int64) (app.Availability, error)
	ListReservations(ctx context.Context, eventID int64) ([]domain.Reservation, error)
}

// HandleEventDetail returns an HTTP handler for a single event and its
// availability/reservations subresources.
func HandleEventDetail(catalog EventCatalog, avail AvailabilityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, sub, ok := parseEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch sub {
		case "":
			switch r.Method {
			case http.MethodGet:
				event, err := catalog.GetEvent(r.Context(), eventID)
				if err != nil {
					writeEventReadError(w, err)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(newEventResponse(event))
			case http.MethodDelete:
				if err := catalog.DeleteEvent(r.Context(), eventID); err != nil {
					writeEventReadError(w, err)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			default:
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			}
		case "availability":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			a, err := avail.RemainingTickets(r.Context(), eventID)
			if err != nil {
				writeEventReadError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(availabilityResponse{
				EventID:      a.EventID,
				TotalTickets: a.TotalTickets,
				Sold:         a.Sold,
				Remaining:    a.Remaining,
			})
		case "reservations":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			reservations, err := avail.ListReservations(r.Context(), eventID)
			if err != nil {
				writeEventReadError(w, err)
				return
			}
			resp := make([]reservationResponse, 0, len(reservations))
			for _, res := range reservations {
				resp = append(resp, newReservationResponse(res))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func writeEventReadError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrEventNotFound:
		writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// parseEventPath splits /api/events/{id}[/{sub}] into the event id and
// the optional subresource name.
func parseEventPath(path string) (int64, string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, "", false
	}
	if parts[0] != "api" || parts[1] != "events" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || id < 1 {
		return 0, "", false
	}
	if len(parts) == 3 {
		return id, "", true
	}
	if parts[3] == "" {
		return 0, "", false
	}
	return id, parts[3], true
}

type createEventRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Venue        string  `json:"venue"`
	Date         string  `json:"date,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
	TotalTickets *int    `json:"total_tickets,omitempty"`
}

type eventResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Venue        string    `json:"venue"`
	Date         time.Time `json:"date"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url,omitempty"`
	TotalTickets int       `json:"total_tickets"`
}

func newEventResponse(event domain.Event) eventResponse {
	return eventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Venue:        event.Venue,
		Date:         event.Date,
		Price:        event.Price,
		ImageURL:     event.ImageURL,
		TotalTickets: event.TotalTickets,
	}
}

type availabilityResponse struct {
	EventID      int64 `json:"event_id"`
	TotalTickets int   `json:"total_tickets"`
	Sold         int   `json:"sold"`
	Remaining    int   `json:"remaining"`
}
