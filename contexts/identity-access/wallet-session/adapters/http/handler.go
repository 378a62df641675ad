package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"hemotrace/contexts/identity-access/wallet-session/application"
	httptransport "hemotrace/contexts/identity-access/wallet-session/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ConnectHandler godoc
// @Summary Connect a ledger account as the active identity
// @Description Verifies the account against the public mirror and returns a bearer token for write endpoints.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body httptransport.ConnectRequest true "Account to connect"
// @Success 200 {object} httptransport.ConnectResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/wallet/connect [post]
func (h Handler) ConnectHandler(ctx context.Context, req httptransport.ConnectRequest) (httptransport.ConnectResponse, error) {
	session, err := h.Service.Connect(ctx, req.AccountID)
	if err != nil {
		h.logFailure("connect", err)
		return httptransport.ConnectResponse{}, err
	}
	return httptransport.ConnectResponse{
		Status: "success",
		Data: httptransport.SessionDTO{
			Token:     session.Token,
			AccountID: session.AccountID,
			Balance:   session.Balance,
			ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// Identity resolves the bearer token on authenticated requests.
func (h Handler) Identity(ctx context.Context, token string) (string, error) {
	return h.Service.Resolve(ctx, token)
}

func (h Handler) logFailure(operation string, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("wallet command failed",
		"event", "http_wallet_command_failed",
		"module", "identity-access/wallet-session",
		"layer", "transport",
		"operation", operation,
		"error", err.Error(),
	)
}
