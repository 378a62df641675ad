package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/mosaic-dashboard/domain/errors"

	"gorm.io/gorm"
)

// eventRow mirrors the columns the sync worker maintains in ledger_events.
// The dashboard only reads; migration is owned by the provenance side.
type eventRow struct {
	BagID      string     `gorm:"column:bag_id"`
	Status     string     `gorm:"column:status"`
	ReportedBy string     `gorm:"column:reported_by"`
	Ts         int64      `gorm:"column:ts"`
	Payload    []byte     `gorm:"column:payload"`
	ExpiryDate *time.Time `gorm:"column:expiry_date"`
}

func (eventRow) TableName() string { return "ledger_events" }

// Source serves dashboard windows from the Postgres event cache instead of
// hitting the public mirror on every page load.
type Source struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewSource(db *gorm.DB, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{db: db, logger: logger}
}

type creationFields struct {
	BloodType string `json:"bloodType"`
	Volume    int    `json:"volume"`
}

func (s *Source) RecentEvents(ctx context.Context, limit int) ([]entities.EventSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []eventRow
	if err := s.db.WithContext(ctx).
		Order("ts DESC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrSourceUnavailable, err)
	}

	out := make([]entities.EventSummary, 0, len(rows))
	for _, row := range rows {
		summary := entities.EventSummary{
			BagID:      row.BagID,
			Status:     row.Status,
			ReportedBy: row.ReportedBy,
			Ts:         row.Ts,
			ExpiryDate: row.ExpiryDate,
		}
		if row.Status == "CREATED" && len(row.Payload) > 0 {
			var creation creationFields
			if err := json.Unmarshal(row.Payload, &creation); err == nil {
				summary.BloodType = creation.BloodType
				summary.Volume = creation.Volume
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
