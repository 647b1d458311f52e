package app

import (
	"context"

	"ticketlite/internal/clock"
	"ticketlite/internal/domain"
)

// LedgerRepository is the storage surface the availability service needs.
// CreateReservation is a low-level append and does not enforce the
// inventory invariant; callers must go through Reserve.
type LedgerRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, eventID int64) (domain.Event, error)
	SumReservations(ctx context.Context, eventID int64) (int, error)
	CreateReservation(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	ListReservations(ctx context.Context, eventID int64) ([]domain.Reservation, error)
}

// EventReader is the read-only catalog access used for availability reads.
type EventReader interface {
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
}

// AvailabilityService is the single choke-point for committing
// reservations against remaining inventory.
type AvailabilityService struct {
	catalog EventReader
	ledger  LedgerRepository
	clock   clock.Clock
}

func NewAvailabilityService(catalog EventReader, ledger LedgerRepository, clk clock.Clock) *AvailabilityService {
	return &AvailabilityService{
		catalog: catalog,
		ledger:  ledger,
		clock:   clk,
	}
}

type ReserveInput struct {
	EventID    int64
	BuyerName  string
	BuyerEmail string
	Quantity   int
}

// Reserve validates and commits a reservation as one atomic unit. The
// event row is locked for the duration of the transaction, so two
// concurrent reserves on the same event serialize and can never jointly
// exceed capacity; reserves on different events do not contend.
func (s *AvailabilityService) Reserve(ctx context.Context, in ReserveInput) (domain.Reservation, error) {
	now := s.clock.Now()
	var result domain.Reservation

	err := s.ledger.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.ledger.GetEventForUpdate(txCtx, in.EventID)
		if err != nil {
			return err
		}
		if in.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}

		sold, err := s.ledger.SumReservations(txCtx, in.EventID)
		if err != nil {
			return err
		}
		if in.Quantity > event.TotalTickets-sold {
			return domain.ErrInsufficientInventory
		}

		reservation := domain.Reservation{
			EventID:    in.EventID,
			BuyerName:  in.BuyerName,
			BuyerEmail: in.BuyerEmail,
			Quantity:   in.Quantity,
			CreatedAt:  now,
		}

		created, err := s.ledger.CreateReservation(txCtx, reservation)
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return result, nil
}

// Availability is a point-in-time view of an event's inventory.
type Availability struct {
	EventID      int64
	TotalTickets int
	Sold         int
	Remaining    int
}

// RemainingTickets reports current availability without taking locks.
// The snapshot may be stale by the time the caller acts on it; Reserve
// re-validates atomically.
func (s *AvailabilityService) RemainingTickets(ctx context.Context, eventID int64) (Availability, error) {
	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return Availability{}, err
	}
	sold, err := s.ledger.SumReservations(ctx, eventID)
	if err != nil {
		return Availability{}, err
	}
	remaining := event.TotalTickets - sold
	if remaining < 0 {
		remaining = 0
	}
	return Availability{
		EventID:      eventID,
		TotalTickets: event.TotalTickets,
		Sold:         sold,
		Remaining:    remaining,
	}, nil
}

// ListReservations returns the event's reservations oldest first.
func (s *AvailabilityService) ListReservations(ctx context.Context, eventID int64) ([]domain.Reservation, error) {
	if _, err := s.catalog.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.ledger.ListReservations(ctx, eventID)
}
