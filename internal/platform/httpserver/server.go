package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	walletsession "hemotrace/contexts/identity-access/wallet-session"
	walleterrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
	wallethttp "hemotrace/contexts/identity-access/wallet-session/transport/http"
	mosaicdashboard "hemotrace/contexts/supply-chain/mosaic-dashboard"
	mosaicerrors "hemotrace/contexts/supply-chain/mosaic-dashboard/domain/errors"
	mosaichttp "hemotrace/contexts/supply-chain/mosaic-dashboard/transport/http"
	provenanceservice "hemotrace/contexts/supply-chain/provenance-service"
	provenanceerrors "hemotrace/contexts/supply-chain/provenance-service/domain/errors"
	provenancehttp "hemotrace/contexts/supply-chain/provenance-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "hemotrace/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	wallet     walletsession.Module
	provenance provenanceservice.Module
	mosaic     mosaicdashboard.Module
}

func New(
	wallet walletsession.Module,
	provenance provenanceservice.Module,
	mosaic mosaicdashboard.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		wallet:     wallet,
		provenance: provenance,
		mosaic:     mosaic,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/wallet/connect", s.handleWalletConnect)

	s.mux.HandleFunc("POST /v1/bags", s.handleRegisterBags)
	s.mux.HandleFunc("GET /v1/bags/{bag_id}", s.handleGetBag)
	s.mux.HandleFunc("GET /v1/bags/{bag_id}/authorization", s.handleAuthorizationPreview)
	s.mux.HandleFunc("POST /v1/bags/{bag_id}/transit", s.handleLogTransit)
	s.mux.HandleFunc("POST /v1/bags/{bag_id}/status", s.handleFinalize)

	s.mux.HandleFunc("GET /v1/mosaic", s.handleMosaic)
	s.mux.HandleFunc("GET /v1/activity", s.handleActivity)
}

func (s *Server) handleWalletConnect(w http.ResponseWriter, r *http.Request) {
	var req wallethttp.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	resp, err := s.wallet.Handler.ConnectHandler(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisterBags(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req provenancehttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	resp, err := s.provenance.Handler.RegisterHandler(r.Context(), identity, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBag(w http.ResponseWriter, r *http.Request) {
	bagID := r.PathValue("bag_id")
	resp, err := s.provenance.Handler.GetBagHandler(r.Context(), bagID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAuthorizationPreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	status := query.Get("status")
	if status == "" {
		writeError(w, http.StatusBadRequest, "status query parameter is required")
		return
	}

	identity := query.Get("identity")
	if identity == "" {
		if token := bearerToken(r); token != "" {
			resolved, err := s.wallet.Handler.Identity(r.Context(), token)
			if err == nil {
				identity = resolved
			}
		}
	}

	resp, err := s.provenance.Handler.AuthorizationHandler(r.Context(), r.PathValue("bag_id"), status, identity)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogTransit(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req provenancehttp.TransitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	resp, err := s.provenance.Handler.TransitHandler(r.Context(), identity, r.PathValue("bag_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	var req provenancehttp.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	resp, err := s.provenance.Handler.FinalizeHandler(r.Context(), identity, r.PathValue("bag_id"), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMosaic(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rows, ok := intParam(w, query.Get("rows"), "rows")
	if !ok {
		return
	}
	cols, ok := intParam(w, query.Get("cols"), "cols")
	if !ok {
		return
	}
	resp, err := s.mosaic.Handler.MosaicHandler(r.Context(), rows, cols, query.Get("policy"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(w, r.URL.Query().Get("limit"), "limit")
	if !ok {
		return
	}
	resp, err := s.mosaic.Handler.ActivityHandler(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authenticate resolves the bearer token to the connected account identity.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "connect a wallet first: Authorization bearer token is required")
		return "", false
	}
	identity, err := s.wallet.Handler.Identity(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return "", false
	}
	return identity, true
}

func bearerToken(r *http.Request) string {
	raw := r.Header.Get("Authorization")
	if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}

func intParam(w http.ResponseWriter, raw string, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return value, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, provenanceerrors.ErrNotConnected),
		errors.Is(err, walleterrors.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, provenanceerrors.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, provenanceerrors.ErrBagNotFound),
		errors.Is(err, walleterrors.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, provenanceerrors.ErrDuplicateBag):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, provenanceerrors.ErrInvalidInput),
		errors.Is(err, walleterrors.ErrAccountRequired),
		errors.Is(err, mosaicerrors.ErrUnknownPolicy),
		errors.Is(err, mosaicerrors.ErrInvalidGrid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, provenanceerrors.ErrMirrorUnavailable),
		errors.Is(err, provenanceerrors.ErrLedgerRejected):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, mosaicerrors.ErrSourceUnavailable),
		errors.Is(err, walleterrors.ErrDirectoryUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		s.logger.Error("unmapped domain error",
			"event", "http_unmapped_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, mosaichttp.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
