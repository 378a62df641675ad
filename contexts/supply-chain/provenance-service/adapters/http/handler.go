package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/application"
	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	httptransport "hemotrace/contexts/supply-chain/provenance-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register blood units
// @Description Appends one CREATED record per unit; batch mode derives ids from base_id and quantity.
// @Tags provenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.RegisterRequest true "Unit description"
// @Success 200 {object} httptransport.RegisterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/bags [post]
func (h Handler) RegisterHandler(ctx context.Context, identity string, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	units, err := h.Service.RegisterBags(ctx, identity, application.RegisterInput{
		BagID:              req.BagID,
		BaseID:             req.BaseID,
		Quantity:           req.Quantity,
		ComponentType:      req.ComponentType,
		AdditiveSolution:   req.AdditiveSolution,
		DonationType:       req.DonationType,
		BloodType:          req.BloodType,
		Volume:             req.Volume,
		AssignedCourierID:  req.AssignedCourierID,
		AssignedHospitalID: req.AssignedHospitalID,
		CollectionSiteID:   req.CollectionSiteID,
		Attributes: entities.UnitAttributes{
			Leukoreduced: req.Leukoreduced,
			Irradiated:   req.Irradiated,
			CMVNegative:  req.CMVNegative,
		},
	})
	if err != nil {
		h.logFailure("register", err)
		return httptransport.RegisterResponse{}, err
	}

	resp := httptransport.RegisterResponse{
		Status: "success",
		Data:   make([]httptransport.RegisteredUnitDTO, 0, len(units)),
	}
	for _, unit := range units {
		resp.Data = append(resp.Data, httptransport.RegisteredUnitDTO{
			BagID:          unit.BagID,
			TransactionRef: unit.Receipt.TransactionRef,
			LedgerStatus:   unit.Receipt.LedgerStatus,
		})
	}
	return resp, nil
}

// TransitHandler godoc
// @Summary Log a courier transit update
// @Tags provenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bag_id path string true "Bag id"
// @Param request body httptransport.TransitRequest true "Transit event"
// @Success 200 {object} httptransport.SubmitResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/bags/{bag_id}/transit [post]
func (h Handler) TransitHandler(ctx context.Context, identity string, bagID string, req httptransport.TransitRequest) (httptransport.SubmitResponse, error) {
	receipt, err := h.Service.LogTransit(ctx, identity, bagID, req.PresetEvent, req.Note)
	if err != nil {
		h.logFailure("transit", err)
		return httptransport.SubmitResponse{}, err
	}
	return httptransport.SubmitResponse{
		Status: "success",
		Data: httptransport.ReceiptDTO{
			TransactionRef: receipt.TransactionRef,
			LedgerStatus:   receipt.LedgerStatus,
		},
	}, nil
}

// FinalizeHandler godoc
// @Summary Record a hospital finalization transition
// @Tags provenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bag_id path string true "Bag id"
// @Param request body httptransport.FinalizeRequest true "Transition"
// @Success 200 {object} httptransport.SubmitResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/bags/{bag_id}/status [post]
func (h Handler) FinalizeHandler(ctx context.Context, identity string, bagID string, req httptransport.FinalizeRequest) (httptransport.SubmitResponse, error) {
	receipt, err := h.Service.Finalize(ctx, identity, bagID, entities.Status(req.Status), req.Notes)
	if err != nil {
		h.logFailure("finalize", err)
		return httptransport.SubmitResponse{}, err
	}
	return httptransport.SubmitResponse{
		Status: "success",
		Data: httptransport.ReceiptDTO{
			TransactionRef: receipt.TransactionRef,
			LedgerStatus:   receipt.LedgerStatus,
		},
	}, nil
}

// GetBagHandler godoc
// @Summary Public provenance view for one bag
// @Tags provenance
// @Produce json
// @Param bag_id path string true "Bag id"
// @Success 200 {object} httptransport.BagResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 502 {object} httptransport.ErrorResponse
// @Router /v1/bags/{bag_id} [get]
func (h Handler) GetBagHandler(ctx context.Context, bagID string) (httptransport.BagResponse, error) {
	view, err := h.Service.TrackBag(ctx, bagID)
	if err != nil {
		return httptransport.BagResponse{}, err
	}

	dto := httptransport.BagDTO{
		BagID:             view.BagID,
		CurrentStatus:     string(view.CurrentStatus),
		DuplicateCreation: view.DuplicateCreation,
		Creation:          toCreationDTO(*view.Creation.Creation),
		RegisteredBy:      view.Creation.ReportedBy,
		History:           make([]httptransport.EventDTO, 0, len(view.History)),
	}
	for _, event := range view.History {
		dto.History = append(dto.History, toEventDTO(event))
	}
	return httptransport.BagResponse{Status: "success", Data: dto}, nil
}

// AuthorizationHandler godoc
// @Summary Preview whether an identity may submit a transition
// @Tags provenance
// @Produce json
// @Param bag_id path string true "Bag id"
// @Param status query string true "Proposed status"
// @Param identity query string false "Identity to check; defaults to the session identity"
// @Success 200 {object} httptransport.AuthorizationResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/bags/{bag_id}/authorization [get]
func (h Handler) AuthorizationHandler(ctx context.Context, bagID string, status string, identity string) (httptransport.AuthorizationResponse, error) {
	preview, err := h.Service.Preview(ctx, bagID, entities.Status(status), identity)
	if err != nil {
		return httptransport.AuthorizationResponse{}, err
	}
	return httptransport.AuthorizationResponse{
		Status: "success",
		Data: httptransport.AuthorizationDTO{
			Allowed:            preview.Decision.Allowed,
			Reason:             preview.Decision.Reason,
			RequiredIdentity:   preview.Decision.Required,
			AssignedCourierID:  preview.AssignedCourierID,
			AssignedHospitalID: preview.AssignedHospitalID,
		},
	}, nil
}

func (h Handler) logFailure(operation string, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("bag command failed",
		"event", "http_bag_command_failed",
		"module", "supply-chain/provenance-service",
		"layer", "transport",
		"operation", operation,
		"error", err.Error(),
	)
}

func toCreationDTO(creation entities.CreationDetails) httptransport.CreationDTO {
	return httptransport.CreationDTO{
		ComponentType:      creation.ComponentType,
		AdditiveSolution:   creation.AdditiveSolution,
		StorageTempRange:   creation.StorageTempRange,
		DonationType:       creation.DonationType,
		BloodType:          creation.BloodType,
		Volume:             creation.Volume,
		CollectionDate:     creation.CollectionDate.UTC().Format(time.RFC3339),
		ExpiryDate:         creation.ExpiryDate.UTC().Format(time.RFC3339),
		AssignedCourierID:  creation.AssignedCourierID,
		AssignedHospitalID: creation.AssignedHospitalID,
		CollectionSiteID:   creation.CollectionSiteID,
		Leukoreduced:       creation.Attributes.Leukoreduced,
		Irradiated:         creation.Attributes.Irradiated,
		CMVNegative:        creation.Attributes.CMVNegative,
	}
}

func toEventDTO(event entities.EventRecord) httptransport.EventDTO {
	dto := httptransport.EventDTO{
		BagID:      event.BagID,
		Status:     string(event.Status),
		ReportedBy: event.ReportedBy,
		Ts:         event.Ts,
		ReportedAt: event.Time().Format(time.RFC3339),
		Location:   event.Update.Location,
		Notes:      event.Update.Notes,
	}
	if event.Creation != nil {
		creation := toCreationDTO(*event.Creation)
		dto.Creation = &creation
	}
	return dto
}
