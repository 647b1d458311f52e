package domain

import "time"

// Reservation commits a quantity of an event's tickets to a buyer.
// Reservations are terminal facts: never mutated after creation, removed
// only when their event is deleted.
type Reservation struct {
	ID         int64
	EventID    int64
	BuyerName  string
	BuyerEmail string
	Quantity   int
	CreatedAt  time.Time
}
