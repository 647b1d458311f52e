package domain

import "time"

// Event is a ticketed happening with a fixed aggregate capacity.
// Capacity is immutable after creation; there is no resize operation.
type Event struct {
	ID           int64
	Title        string
	Description  string
	Venue        string
	Date         time.Time
	Price        float64
	ImageURL     string // optional, empty when unset
	TotalTickets int
}
