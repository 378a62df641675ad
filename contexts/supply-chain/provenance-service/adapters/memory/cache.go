package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	"hemotrace/contexts/supply-chain/provenance-service/ports"
)

// Cache is the in-memory event cache used by worker tests.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheItem
	order []string
}

type cacheItem struct {
	record    entities.EventRecord
	relayedAt *time.Time
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheItem)}
}

func (c *Cache) UpsertEvents(_ context.Context, records []entities.EventRecord) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ingested := 0
	for _, record := range records {
		key := record.Fingerprint()
		if _, exists := c.items[key]; exists {
			continue
		}
		c.items[key] = &cacheItem{record: record}
		c.order = append(c.order, key)
		ingested++
	}
	return ingested, nil
}

func (c *Cache) RecentEvents(_ context.Context, limit int) ([]entities.EventRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entities.EventRecord, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.items[key].record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ts > out[j].Ts
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *Cache) EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error) {
	all, err := c.RecentEvents(ctx, 0)
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

func (c *Cache) UnrelayedEvents(_ context.Context, limit int) ([]ports.CachedEvent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ports.CachedEvent, 0, limit)
	for _, key := range c.order {
		item := c.items[key]
		if item.relayedAt != nil {
			continue
		}
		out = append(out, ports.CachedEvent{EventKey: key, Record: item.record})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (c *Cache) MarkRelayed(_ context.Context, eventKeys []string, at time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range eventKeys {
		if item, ok := c.items[key]; ok {
			stamped := at
			item.relayedAt = &stamped
		}
	}
	return nil
}

func (c *Cache) ExpiryBacklog(_ context.Context, now time.Time) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := make(map[string]bool)
	terminal := make(map[string]bool)
	for _, key := range c.order {
		record := c.items[key].record
		if record.Status == entities.StatusCreated && record.Creation != nil &&
			record.Creation.ExpiryDate.Before(now) {
			expired[record.BagID] = true
		}
		if record.Status.Terminal() {
			terminal[record.BagID] = true
		}
	}

	backlog := 0
	for bagID := range expired {
		if !terminal[bagID] {
			backlog++
		}
	}
	return backlog, nil
}
