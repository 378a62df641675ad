package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/application"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	httptransport "hemotrace/contexts/supply-chain/mosaic-dashboard/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// MosaicHandler godoc
// @Summary Grid snapshot of recent bag activity
// @Description One representative tile per bag, deduplicated by the requested policy, truncated to rows*cols.
// @Tags mosaic
// @Produce json
// @Param rows query int false "Grid rows" default(16)
// @Param cols query int false "Grid columns" default(32)
// @Param policy query string false "Deduplication policy" Enums(latest_wins, first_seen)
// @Success 200 {object} httptransport.MosaicResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/mosaic [get]
func (h Handler) MosaicHandler(ctx context.Context, rows int, cols int, policy string) (httptransport.MosaicResponse, error) {
	view, err := h.Service.MosaicView(ctx, rows, cols, policy)
	if err != nil {
		h.logFailure("mosaic", err)
		return httptransport.MosaicResponse{}, err
	}
	return httptransport.MosaicResponse{
		Status: "success",
		Data: httptransport.MosaicDTO{
			Rows:   view.Rows,
			Cols:   view.Cols,
			Policy: string(view.Policy),
			Tiles:  toTileDTOs(view.Tiles),
			Counts: view.Counts,
		},
	}, nil
}

// ActivityHandler godoc
// @Summary Flat feed of the latest status per bag
// @Tags mosaic
// @Produce json
// @Param limit query int false "Window size" default(100)
// @Success 200 {object} httptransport.ActivityResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/activity [get]
func (h Handler) ActivityHandler(ctx context.Context, limit int) (httptransport.ActivityResponse, error) {
	items, counts, err := h.Service.RecentActivity(ctx, limit)
	if err != nil {
		h.logFailure("activity", err)
		return httptransport.ActivityResponse{}, err
	}
	return httptransport.ActivityResponse{
		Status: "success",
		Data: httptransport.ActivityDTO{
			Items:  toTileDTOs(items),
			Counts: counts,
		},
	}, nil
}

func (h Handler) logFailure(operation string, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("mosaic query failed",
		"event", "http_mosaic_query_failed",
		"module", "supply-chain/mosaic-dashboard",
		"layer", "transport",
		"operation", operation,
		"error", err.Error(),
	)
}

func toTileDTOs(summaries []entities.EventSummary) []httptransport.TileDTO {
	out := make([]httptransport.TileDTO, 0, len(summaries))
	for _, summary := range summaries {
		tile := httptransport.TileDTO{
			BagID:      summary.BagID,
			Status:     summary.Status,
			ReportedBy: summary.ReportedBy,
			Ts:         summary.Ts,
			BloodType:  summary.BloodType,
			Volume:     summary.Volume,
		}
		if summary.ExpiryDate != nil {
			tile.ExpiryDate = summary.ExpiryDate.UTC().Format(time.RFC3339)
		}
		out = append(out, tile)
	}
	return out
}
