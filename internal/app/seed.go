package app

import "context"

// SeedDemoEvents inserts two demo events when the catalog is empty, so a
// fresh install has something to browse. Returns the number of events
// created (0 when the catalog already has data).
func SeedDemoEvents(ctx context.Context, svc *CatalogService) (int, error) {
	events, err := svc.ListEvents(ctx)
	if err != nil {
		return 0, err
	}
	if len(events) > 0 {
		return 0, nil
	}

	now := svc.clock.Now()
	indieTickets := 120
	meetupTickets := 200

	demos := []CreateEventInput{
		{
			Title:        "Indie Music Night",
			Description:  "An intimate gig with local indie bands.",
			Venue:        "Horizon Club",
			Date:         &now,
			Price:        499.0,
			ImageURL:     "https://images.unsplash.com/photo-1518972559570-7cc1309f3229",
			TotalTickets: &indieTickets,
		},
		{
			Title:        "Tech Meetup: AI & Web3",
			Description:  "Talks, demos, and networking.",
			Venue:        "T-Hub",
			Date:         &now,
			Price:        0.0,
			ImageURL:     "https://images.unsplash.com/photo-1518779578993-ec3579fee39f",
			TotalTickets: &meetupTickets,
		},
	}

	created := 0
	for _, in := range demos {
		if _, err := svc.CreateEvent(ctx, in); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
