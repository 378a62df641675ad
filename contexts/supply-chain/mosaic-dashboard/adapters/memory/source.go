package memory

import (
	"context"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
)

// Source replays a fixed window, newest first, for tests and local demos.
type Source struct {
	Events []entities.EventSummary
}

func NewSource(events ...entities.EventSummary) *Source {
	return &Source{Events: events}
}

func (s *Source) RecentEvents(_ context.Context, limit int) ([]entities.EventSummary, error) {
	if limit <= 0 || limit > len(s.Events) {
		limit = len(s.Events)
	}
	out := make([]entities.EventSummary, limit)
	copy(out, s.Events[:limit])
	return out, nil
}
