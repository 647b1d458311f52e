package app

import (
	"context"
	"time"

	"ticketlite/internal/clock"
	"ticketlite/internal/domain"
)

// CatalogRepository is the storage surface the catalog service needs.
type CatalogRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type CatalogService struct {
	repo  CatalogRepository
	clock clock.Clock
}

func NewCatalogService(repo CatalogRepository, clk clock.Clock) *CatalogService {
	return &CatalogService{
		repo:  repo,
		clock: clk,
	}
}

const defaultTotalTickets = 100

type CreateEventInput struct {
	Title        string
	Description  string
	Venue        string
	Date         *time.Time
	Price        float64
	ImageURL     string
	TotalTickets *int
}

func (s *CatalogService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if in.Title == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}
	if in.Description == "" {
		return domain.Event{}, domain.ErrDescriptionRequired
	}
	if in.Venue == "" {
		return domain.Event{}, domain.ErrVenueRequired
	}
	if in.Price < 0 {
		return domain.Event{}, domain.ErrInvalidPrice
	}

	totalTickets := defaultTotalTickets
	if in.TotalTickets != nil {
		if *in.TotalTickets < 1 {
			return domain.Event{}, domain.ErrInvalidCapacity
		}
		totalTickets = *in.TotalTickets
	}

	date := s.clock.Now()
	if in.Date != nil {
		date = *in.Date
	}

	event := domain.Event{
		Title:        in.Title,
		Description:  in.Description,
		Venue:        in.Venue,
		Date:         date,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		TotalTickets: totalTickets,
	}

	return s.repo.CreateEvent(ctx, event)
}

func (s *CatalogService) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	return s.repo.GetEvent(ctx, id)
}

// ListEvents returns a snapshot of all events ordered by date ascending.
func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

// DeleteEvent removes the event and, by cascade, all of its reservations.
func (s *CatalogService) DeleteEvent(ctx context.Context, id int64) error {
	return s.repo.DeleteEvent(ctx, id)
}
