package mosaicdashboard

import (
	"log/slog"

	httpadapter "hemotrace/contexts/supply-chain/mosaic-dashboard/adapters/http"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/adapters/memory"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/application"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	"hemotrace/contexts/supply-chain/mosaic-dashboard/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Source   ports.EventSource
	GridRows int
	GridCols int
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Source:   deps.Source,
		GridRows: deps.GridRows,
		GridCols: deps.GridCols,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule serves the dashboard from a fixed event window.
func NewInMemoryModule(logger *slog.Logger, events ...entities.EventSummary) Module {
	return NewModule(Dependencies{
		Source: memory.NewSource(events...),
		Logger: logger,
	})
}
