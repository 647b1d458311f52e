package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketlite/internal/domain"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetEventForUpdate locks the event row for the rest of the transaction.
// Concurrent reserves against the same event queue up here.
func (r *LedgerRepository) GetEventForUpdate(ctx context.Context, eventID int64) (domain.Event, error) {
	const query = `
SELECT id, title, description, venue, date, price, image_url, total_tickets
FROM events
WHERE id = $1
FOR UPDATE`

	var e domain.Event
	err := r.queryRow(ctx, query, eventID).
		Scan(&e.ID, &e.Title, &e.Description, &e.Venue, &e.Date, &e.Price, &e.ImageURL, &e.TotalTickets)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event for update: %w", err)
	}
	return e, nil
}

func (r *LedgerRepository) SumReservations(ctx context.Context, eventID int64) (int, error) {
	const query = `
SELECT COALESCE(SUM(quantity), 0)
FROM reservations
WHERE event_id = $1`

	var total int
	if err := r.queryRow(ctx, query, eventID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum reservations: %w", err)
	}
	return total, nil
}

func (r *LedgerRepository) CreateReservation(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	const stmt = `
INSERT INTO reservations (event_id, buyer_name, buyer_email, quantity, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	err := r.queryRow(ctx, stmt,
		reservation.EventID,
		reservation.BuyerName,
		reservation.BuyerEmail,
		reservation.Quantity,
		reservation.CreatedAt,
	).Scan(&reservation.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Reservation{}, domain.ErrEventNotFound
		}
		return domain.Reservation{}, fmt.Errorf("create reservation: %w", err)
	}
	return reservation, nil
}

func (r *LedgerRepository) ListReservations(ctx context.Context, eventID int64) ([]domain.Reservation, error) {
	const query = `
SELECT id, event_id, buyer_name, buyer_email, quantity, created_at
FROM reservations
WHERE event_id = $1
ORDER BY created_at ASC, id ASC`

	rows, err := r.query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.EventID, &res.BuyerName, &res.BuyerEmail, &res.Quantity, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate reservations: %w", rows.Err())
	}
	return reservations, nil
}

func (r *LedgerRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *LedgerRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
