package provenanceservice

import (
	"log/slog"

	httpadapter "hemotrace/contexts/supply-chain/provenance-service/adapters/http"
	"hemotrace/contexts/supply-chain/provenance-service/adapters/memory"
	"hemotrace/contexts/supply-chain/provenance-service/application"
	"hemotrace/contexts/supply-chain/provenance-service/domain/lifecycle"
	"hemotrace/contexts/supply-chain/provenance-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Ledger  *memory.Ledger
}

type Dependencies struct {
	Reader ports.LedgerReader
	Writer ports.LedgerWriter
	Clock  ports.Clock

	RequireAssignedHospital bool
	RejectDuplicateCreation bool
	BatchLimit              int
	Logger                  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Reader: deps.Reader,
		Writer: deps.Writer,
		Clock:  deps.Clock,
		Resolver: lifecycle.Resolver{
			RequireAssignedHospital: deps.RequireAssignedHospital,
		},
		RejectDuplicateCreation: deps.RejectDuplicateCreation,
		BatchLimit:              deps.BatchLimit,
		Logger:                  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the service against an in-process ledger; tests and
// local runs without external dependencies use this.
func NewInMemoryModule(logger *slog.Logger) Module {
	ledger := memory.NewLedger()
	module := NewModule(Dependencies{
		Reader: ledger,
		Writer: ledger,
		Clock:  ledger,
		Logger: logger,
	})
	module.Ledger = ledger
	return module
}
