package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	"hemotrace/contexts/supply-chain/provenance-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type eventModel struct {
	EventKey   string `gorm:"column:event_key;primaryKey"`
	BagID      string `gorm:"column:bag_id;index"`
	Status     string `gorm:"column:status;index"`
	ReportedBy string `gorm:"column:reported_by"`
	Ts         int64  `gorm:"column:ts;index"`
	Payload    []byte `gorm:"column:payload;type:jsonb"`
	ExpiryDate *time.Time
	IngestedAt time.Time
	RelayedAt  *time.Time `gorm:"index"`
}

func (eventModel) TableName() string { return "ledger_events" }

// Repository is the Postgres event cache: a local, rebuildable copy of the
// topic window that serves dashboard reads and the relay cursor.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&eventModel{})
}

func (r *Repository) UpsertEvents(ctx context.Context, records []entities.EventRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	rows := make([]eventModel, 0, len(records))
	for _, record := range records {
		payload, err := record.PayloadJSON()
		if err != nil {
			continue
		}
		row := eventModel{
			EventKey:   record.Fingerprint(),
			BagID:      record.BagID,
			Status:     string(record.Status),
			ReportedBy: record.ReportedBy,
			Ts:         record.Ts,
			Payload:    payload,
			IngestedAt: now,
		}
		if record.Creation != nil {
			expiry := record.Creation.ExpiryDate
			row.ExpiryDate = &expiry
		}
		rows = append(rows, row)
	}

	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(tx.RowsAffected), nil
}

func (r *Repository) RecentEvents(ctx context.Context, limit int) ([]entities.EventRecord, error) {
	if limit <= 0 {
		limit = 200
	}
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Order("ts DESC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("bag_id = ?", bagID).
		Order("ts DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) UnrelayedEvents(ctx context.Context, limit int) ([]ports.CachedEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("relayed_at IS NULL").
		Order("ingested_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	out := make([]ports.CachedEvent, 0, len(rows))
	for _, row := range rows {
		record, err := entities.NewRecord(row.BagID, row.Status, row.ReportedBy, row.Ts, row.Payload)
		if err != nil {
			continue
		}
		out = append(out, ports.CachedEvent{EventKey: row.EventKey, Record: record})
	}
	return out, nil
}

func (r *Repository) MarkRelayed(ctx context.Context, eventKeys []string, at time.Time) error {
	if len(eventKeys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("event_key IN ?", eventKeys).
		Update("relayed_at", at).
		Error
}

func (r *Repository) ExpiryBacklog(ctx context.Context, now time.Time) (int, error) {
	terminal := []string{
		string(entities.StatusTransfused),
		string(entities.StatusExpired),
		string(entities.StatusDiscarded),
	}
	sub := r.db.Model(&eventModel{}).
		Select("bag_id").
		Where("status IN ?", terminal)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("status = ?", string(entities.StatusCreated)).
		Where("expiry_date < ?", now).
		Where("bag_id NOT IN (?)", sub).
		Distinct("bag_id").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func toEntities(rows []eventModel) []entities.EventRecord {
	out := make([]entities.EventRecord, 0, len(rows))
	for _, row := range rows {
		record, err := entities.NewRecord(row.BagID, row.Status, row.ReportedBy, row.Ts, row.Payload)
		if err != nil {
			continue
		}
		out = append(out, record)
	}
	return out
}

// SystemClock and UUIDGenerator satisfy the service ports for production
// wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
