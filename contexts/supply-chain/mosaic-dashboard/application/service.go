package application

import (
	"context"
	"fmt"
	"log/slog"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/aggregate"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/mosaic-dashboard/domain/errors"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/ports"
)

const (
	defaultGridRows      = 16
	defaultGridCols      = 32
	defaultActivityLimit = 100
	maxGridTiles         = 2048
)

type Service struct {
	Source   ports.EventSource
	GridRows int
	GridCols int
	Logger   *slog.Logger
}

// GridView is one dashboard snapshot: at most rows*cols representative tiles
// plus the per-status tally for the legend.
type GridView struct {
	Rows   int
	Cols   int
	Policy aggregate.Policy
	Tiles  []entities.EventSummary
	Counts map[string]int
}

// MosaicView fetches a bounded window sized to the grid, deduplicates per the
// requested policy and truncates to the grid capacity.
func (s Service) MosaicView(ctx context.Context, rows int, cols int, rawPolicy string) (GridView, error) {
	if rows == 0 {
		rows = s.rows()
	}
	if cols == 0 {
		cols = s.cols()
	}
	if rows < 1 || cols < 1 || rows*cols > maxGridTiles {
		return GridView{}, fmt.Errorf("%w: %dx%d", domainerrors.ErrInvalidGrid, rows, cols)
	}
	policy, err := aggregate.ParsePolicy(rawPolicy)
	if err != nil {
		return GridView{}, fmt.Errorf("%w: %q", err, rawPolicy)
	}

	window, err := s.Source.RecentEvents(ctx, rows*cols)
	if err != nil {
		return GridView{}, err
	}
	tiles := aggregate.Deduplicate(window, policy)
	if len(tiles) > rows*cols {
		tiles = tiles[:rows*cols]
	}
	return GridView{
		Rows:   rows,
		Cols:   cols,
		Policy: policy,
		Tiles:  tiles,
		Counts: aggregate.CountByStatus(tiles),
	}, nil
}

// RecentActivity is the flat latest-wins feed used by the activity list.
func (s Service) RecentActivity(ctx context.Context, limit int) ([]entities.EventSummary, map[string]int, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	window, err := s.Source.RecentEvents(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	items := aggregate.Deduplicate(window, aggregate.PolicyLatestWins)
	return items, aggregate.CountByStatus(items), nil
}

func (s Service) rows() int {
	if s.GridRows > 0 {
		return s.GridRows
	}
	return defaultGridRows
}

func (s Service) cols() int {
	if s.GridCols > 0 {
		return s.GridCols
	}
	return defaultGridCols
}
