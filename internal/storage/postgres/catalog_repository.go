package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketlite/internal/domain"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	const stmt = `
INSERT INTO events (title, description, venue, date, price, image_url, total_tickets)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	err := r.pool.QueryRow(ctx, stmt,
		event.Title,
		event.Description,
		event.Venue,
		event.Date,
		event.Price,
		event.ImageURL,
		event.TotalTickets,
	).Scan(&event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (r *CatalogRepository) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	const query = `
SELECT id, title, description, venue, date, price, image_url, total_tickets
FROM events
WHERE id = $1`

	var e domain.Event
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&e.ID, &e.Title, &e.Description, &e.Venue, &e.Date, &e.Price, &e.ImageURL, &e.TotalTickets)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *CatalogRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT id, title, description, venue, date, price, image_url, total_tickets
FROM events
ORDER BY date ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Venue, &e.Date, &e.Price, &e.ImageURL, &e.TotalTickets); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

// DeleteEvent removes the event; the reservations foreign key cascades,
// so the event's ledger entries go with it.
func (r *CatalogRepository) DeleteEvent(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM events WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
