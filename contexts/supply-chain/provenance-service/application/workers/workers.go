package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"hemotrace/contexts/supply-chain/provenance-service/ports"
	"hemotrace/internal/shared/events"
)

const (
	defaultSyncBatch  = 200
	defaultRelayBatch = 100
)

// MirrorSyncer copies the most recent ledger window into the local event
// cache. Upserts are keyed on the record fingerprint, so re-reading the same
// window is harmless.
type MirrorSyncer struct {
	Source    ports.LedgerReader
	Cache     ports.EventCache
	BatchSize int
	Logger    *slog.Logger
}

func (s MirrorSyncer) RunOnce(ctx context.Context) error {
	limit := s.BatchSize
	if limit <= 0 {
		limit = defaultSyncBatch
	}
	records, err := s.Source.RecentEvents(ctx, limit)
	if err != nil {
		return err
	}
	ingested, err := s.Cache.UpsertEvents(ctx, records)
	if err != nil {
		return err
	}
	if ingested > 0 && s.Logger != nil {
		s.Logger.Info("mirror window ingested",
			"event", "mirror_sync_ingested",
			"module", "supply-chain/provenance-service",
			"layer", "application",
			"fetched", len(records),
			"new", ingested,
		)
	}
	return nil
}

// EventRelay publishes newly cached events to the downstream topic and marks
// them relayed. Publish failures leave the row unmarked for the next pass.
type EventRelay struct {
	Cache         ports.EventCache
	Publisher     ports.EventPublisher
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	SourceService string
	BatchSize     int
	Logger        *slog.Logger
}

func (r EventRelay) RunOnce(ctx context.Context) error {
	limit := r.BatchSize
	if limit <= 0 {
		limit = defaultRelayBatch
	}
	pending, err := r.Cache.UnrelayedEvents(ctx, limit)
	if err != nil {
		return err
	}

	relayed := make([]string, 0, len(pending))
	for _, item := range pending {
		eventID, err := r.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		payload, err := item.Record.PayloadJSON()
		if err != nil {
			return err
		}
		envelope := events.Envelope{
			EventID:       eventID,
			EventType:     events.EventTypeStatusReported,
			SourceService: r.SourceService,
			OccurredAtUTC: item.Record.Time(),
			EntityType:    "bag",
			EntityID:      item.Record.BagID,
			Payload: events.Message{
				BagID:      item.Record.BagID,
				Status:     string(item.Record.Status),
				Payload:    payload,
				ReportedBy: item.Record.ReportedBy,
				Ts:         item.Record.Ts,
			},
		}
		encoded, err := json.Marshal(envelope)
		if err != nil {
			return err
		}
		if err := r.Publisher.Publish(ctx, item.Record.BagID, encoded); err != nil {
			if r.Logger != nil {
				r.Logger.Error("event relay publish failed",
					"event", "event_relay_publish_failed",
					"module", "supply-chain/provenance-service",
					"layer", "application",
					"bag_id", item.Record.BagID,
					"error", err.Error(),
				)
			}
			break
		}
		relayed = append(relayed, item.EventKey)
	}

	if len(relayed) == 0 {
		return nil
	}
	return r.Cache.MarkRelayed(ctx, relayed, r.Clock.Now().UTC())
}

// ExpiryScanner reports how many bags sit past their expiry date without a
// terminal status. It never submits EXPIRED itself: that authority belongs to
// the assigned hospital.
type ExpiryScanner struct {
	Cache  ports.EventCache
	Clock  ports.Clock
	Logger *slog.Logger
}

func (e ExpiryScanner) RunOnce(ctx context.Context) error {
	backlog, err := e.Cache.ExpiryBacklog(ctx, e.Clock.Now().UTC())
	if err != nil {
		return err
	}
	if backlog > 0 && e.Logger != nil {
		e.Logger.Warn("bags past expiry without terminal status",
			"event", "expiry_backlog",
			"module", "supply-chain/provenance-service",
			"layer", "application",
			"count", backlog,
		)
	}
	return nil
}
