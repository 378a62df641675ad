package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	"hemotrace/contexts/supply-chain/provenance-service/ports"

	"github.com/google/uuid"
)

// Ledger is an in-process stand-in for the external topic: append-only,
// reads in descending submission order. It backs the in-memory module and
// the test suites.
type Ledger struct {
	mu      sync.RWMutex
	records []entities.EventRecord
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(_ context.Context, record entities.EventRecord) (ports.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return ports.Receipt{
		TransactionRef: uuid.NewString(),
		LedgerStatus:   "SUCCESS",
	}, nil
}

func (l *Ledger) RecentEvents(_ context.Context, limit int) ([]entities.EventRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Descending submission order, newest first, like the mirror reports it.
	out := make([]entities.EventRecord, 0, len(l.records))
	for i := len(l.records) - 1; i >= 0; i-- {
		out = append(out, l.records[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ts > out[j].Ts
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *Ledger) EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error) {
	all, err := l.RecentEvents(ctx, 0)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.EventRecord, 0, 8)
	for _, record := range all {
		if record.BagID == bagID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (l *Ledger) Now() time.Time {
	return time.Now().UTC()
}

func (l *Ledger) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
