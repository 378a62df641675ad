package walletsession

import (
	"log/slog"
	"time"

	httpadapter "hemotrace/contexts/identity-access/wallet-session/adapters/http"
	jwtadapter "hemotrace/contexts/identity-access/wallet-session/adapters/jwt"
	"hemotrace/contexts/identity-access/wallet-session/adapters/memory"
	"hemotrace/contexts/identity-access/wallet-session/application"
	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
	"hemotrace/contexts/identity-access/wallet-session/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Directory ports.AccountDirectory
	Issuer    ports.TokenIssuer
	Clock     ports.Clock
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Directory: deps.Directory,
		Issuer:    deps.Issuer,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires a fixed account directory and a throwaway signing
// secret; tests and local runs use this.
func NewInMemoryModule(logger *slog.Logger, accounts ...entities.Account) Module {
	return NewModule(Dependencies{
		Directory: memory.NewDirectory(accounts...),
		Issuer:    jwtadapter.NewIssuer("local-dev-secret", time.Hour),
		Clock:     memory.SystemClock{},
		Logger:    logger,
	})
}
