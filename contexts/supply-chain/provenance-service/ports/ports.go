package ports

import (
	"context"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
)

// Receipt is the ledger's confirmation of one append. A submission without a
// receipt must be treated as not written.
type Receipt struct {
	TransactionRef string
	LedgerStatus   string
}

// LedgerReader is the read side of the external append-only topic. Both
// operations return records in descending submission order as the ledger
// reports it; malformed entries are dropped during decode, never raised.
type LedgerReader interface {
	RecentEvents(ctx context.Context, limit int) ([]entities.EventRecord, error)
	EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error)
}

// LedgerWriter appends one record to the topic. No retry policy lives here;
// retries, if any, belong to the caller.
type LedgerWriter interface {
	Append(ctx context.Context, record entities.EventRecord) (Receipt, error)
}

type CachedEvent struct {
	EventKey string
	Record   entities.EventRecord
}

// EventCache is the local read model kept fresh by the worker. It is a
// convenience copy of the ledger, never the source of truth.
type EventCache interface {
	UpsertEvents(ctx context.Context, records []entities.EventRecord) (int, error)
	RecentEvents(ctx context.Context, limit int) ([]entities.EventRecord, error)
	EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error)
	UnrelayedEvents(ctx context.Context, limit int) ([]CachedEvent, error)
	MarkRelayed(ctx context.Context, eventKeys []string, at time.Time) error
	ExpiryBacklog(ctx context.Context, now time.Time) (int, error)
}

// EventPublisher hands newly observed events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
