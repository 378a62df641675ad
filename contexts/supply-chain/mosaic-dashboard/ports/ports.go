package ports

import (
	"context"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
)

// EventSource supplies the most recent channel-wide events in descending
// submission order, already decoded to display summaries.
type EventSource interface {
	RecentEvents(ctx context.Context, limit int) ([]entities.EventSummary, error)
}
