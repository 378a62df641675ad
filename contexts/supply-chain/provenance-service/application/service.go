package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/provenance-service/domain/errors"
	"hemotrace/contexts/supply-chain/provenance-service/domain/lifecycle"
	"hemotrace/contexts/supply-chain/provenance-service/ports"
)

const defaultBatchLimit = 50

type Service struct {
	Reader ports.LedgerReader
	Writer ports.LedgerWriter
	Clock  ports.Clock

	Resolver lifecycle.Resolver

	// RejectDuplicateCreation closes the accepted design gap of duplicate
	// CREATED events at the cost of one extra read before each registration.
	RejectDuplicateCreation bool
	BatchLimit              int
	Logger                  *slog.Logger
}

type RegisterInput struct {
	BagID    string
	BaseID   string
	Quantity int

	ComponentType      string
	AdditiveSolution   string
	DonationType       string
	BloodType          string
	Volume             int
	AssignedCourierID  string
	AssignedHospitalID string
	CollectionSiteID   string
	Attributes         entities.UnitAttributes
}

type RegisteredUnit struct {
	BagID   string
	Receipt ports.Receipt
}

type AuthorizationPreview struct {
	Decision           lifecycle.Decision
	AssignedCourierID  string
	AssignedHospitalID string
}

// TrackBag reconstructs one bag's lifecycle from a fresh ledger read. A bag
// with no CREATED record is reported as not found, never as a crash.
func (s Service) TrackBag(ctx context.Context, bagID string) (entities.BagView, error) {
	bagID = strings.TrimSpace(bagID)
	if bagID == "" {
		return entities.BagView{}, domainerrors.ErrInvalidInput
	}
	records, err := s.Reader.EventsByBag(ctx, bagID)
	if err != nil {
		return entities.BagView{}, err
	}
	view := lifecycle.Reduce(records)
	if view.Creation == nil {
		return entities.BagView{}, domainerrors.ErrBagNotFound
	}
	if view.DuplicateCreation {
		s.logger().Warn("duplicate registration events observed",
			"event", "bag_duplicate_creation",
			"module", "supply-chain/provenance-service",
			"layer", "application",
			"bag_id", bagID,
		)
	}
	return view, nil
}

// Preview runs the authorization rules for a proposed transition without
// submitting anything. The transit and hospital pages render the outcome
// before offering the action.
func (s Service) Preview(ctx context.Context, bagID string, next entities.Status, identity string) (AuthorizationPreview, error) {
	view, err := s.TrackBag(ctx, bagID)
	if err != nil {
		return AuthorizationPreview{}, err
	}
	preview := AuthorizationPreview{
		Decision:           s.Resolver.Authorize(view.Creation, next, identity),
		AssignedCourierID:  view.Creation.Creation.AssignedCourierID,
		AssignedHospitalID: view.Creation.Creation.AssignedHospitalID,
	}
	return preview, nil
}

// RegisterBags appends one CREATED record per unit. Single mode uses BagID;
// batch mode derives zero-padded ids from BaseID and Quantity. Shelf life and
// storage band are derived from component and additive.
func (s Service) RegisterBags(ctx context.Context, identity string, input RegisterInput) ([]RegisteredUnit, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, domainerrors.ErrNotConnected
	}
	if input.AssignedCourierID == "" || input.AssignedHospitalID == "" {
		return nil, fmt.Errorf("%w: courier and hospital identities are required", domainerrors.ErrInvalidInput)
	}
	if !lifecycle.KnownComponent(input.ComponentType) {
		return nil, fmt.Errorf("%w: unknown component %q", domainerrors.ErrInvalidInput, input.ComponentType)
	}

	ids, err := s.unitIDs(input)
	if err != nil {
		return nil, err
	}

	additive := input.AdditiveSolution
	if additive == "" {
		additive = lifecycle.DefaultAdditive(input.ComponentType)
	}

	now := s.Clock.Now().UTC()
	days := lifecycle.ExpiryDays(input.ComponentType, additive)
	creation := entities.CreationDetails{
		ComponentType:      input.ComponentType,
		AdditiveSolution:   additive,
		StorageTempRange:   lifecycle.StorageRange(input.ComponentType),
		DonationType:       input.DonationType,
		BloodType:          input.BloodType,
		Volume:             input.Volume,
		CollectionDate:     now,
		ExpiryDate:         now.Add(time.Duration(days) * 24 * time.Hour),
		AssignedCourierID:  input.AssignedCourierID,
		AssignedHospitalID: input.AssignedHospitalID,
		CollectionSiteID:   input.CollectionSiteID,
		Attributes:         input.Attributes,
	}

	units := make([]RegisteredUnit, 0, len(ids))
	for _, id := range ids {
		if s.RejectDuplicateCreation {
			if _, err := s.TrackBag(ctx, id); err == nil {
				return units, fmt.Errorf("%w: %s", domainerrors.ErrDuplicateBag, id)
			}
		}
		details := creation
		receipt, err := s.Submit(ctx, identity, id, entities.StatusCreated, &details, entities.UpdateDetails{})
		if err != nil {
			return units, err
		}
		units = append(units, RegisteredUnit{BagID: id, Receipt: receipt})
	}
	return units, nil
}

// LogTransit records a courier movement. The location line is assembled from
// the preset event and the optional free-form note.
func (s Service) LogTransit(ctx context.Context, identity string, bagID string, presetEvent string, note string) (ports.Receipt, error) {
	location := joinLocation(presetEvent, note)
	if location == "" {
		return ports.Receipt{}, fmt.Errorf("%w: a transit update needs an event or a note", domainerrors.ErrInvalidInput)
	}
	view, err := s.TrackBag(ctx, bagID)
	if err != nil {
		return ports.Receipt{}, err
	}
	decision := s.Resolver.Authorize(view.Creation, entities.StatusInTransit, identity)
	if !decision.Allowed {
		return ports.Receipt{}, fmt.Errorf("%w: %s", domainerrors.ErrNotAuthorized, decision.Reason)
	}
	return s.Submit(ctx, identity, view.BagID, entities.StatusInTransit, nil, entities.UpdateDetails{Location: location})
}

// Finalize records a hospital-leg transition (RECEIVED, TESTED, READY,
// TRANSFUSED, EXPIRED, DISCARDED).
func (s Service) Finalize(ctx context.Context, identity string, bagID string, next entities.Status, notes string) (ports.Receipt, error) {
	if !next.HospitalFinalization() {
		return ports.Receipt{}, fmt.Errorf("%w: %s is not a hospital transition", domainerrors.ErrInvalidInput, next)
	}
	view, err := s.TrackBag(ctx, bagID)
	if err != nil {
		return ports.Receipt{}, err
	}
	decision := s.Resolver.Authorize(view.Creation, next, identity)
	if !decision.Allowed {
		return ports.Receipt{}, fmt.Errorf("%w: %s", domainerrors.ErrNotAuthorized, decision.Reason)
	}
	return s.Submit(ctx, identity, view.BagID, next, nil, entities.UpdateDetails{Notes: notes})
}

// Submit is the append primitive. It stamps ts and reportedBy, encodes and
// transmits; it deliberately does NOT consult the authorization resolver —
// command operations compose the two, which keeps both reusable across the
// registration, transit and hospital surfaces.
func (s Service) Submit(ctx context.Context, identity string, bagID string, status entities.Status, creation *entities.CreationDetails, update entities.UpdateDetails) (ports.Receipt, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return ports.Receipt{}, domainerrors.ErrNotConnected
	}
	bagID = strings.TrimSpace(bagID)
	if bagID == "" || !status.Known() {
		return ports.Receipt{}, domainerrors.ErrInvalidInput
	}

	record := entities.EventRecord{
		BagID:      bagID,
		Status:     status,
		ReportedBy: identity,
		Ts:         s.Clock.Now().UnixMilli(),
		Creation:   creation,
	}
	if creation == nil {
		record.Update = update
	}

	receipt, err := s.Writer.Append(ctx, record)
	if err != nil {
		return ports.Receipt{}, err
	}
	s.logger().Info("status event appended",
		"event", "bag_status_appended",
		"module", "supply-chain/provenance-service",
		"layer", "application",
		"bag_id", bagID,
		"status", string(status),
		"reported_by", identity,
		"transaction_ref", receipt.TransactionRef,
	)
	return receipt, nil
}

func (s Service) unitIDs(input RegisterInput) ([]string, error) {
	if input.BagID != "" {
		return []string{strings.TrimSpace(input.BagID)}, nil
	}
	base := strings.TrimSpace(input.BaseID)
	limit := s.BatchLimit
	if limit <= 0 {
		limit = defaultBatchLimit
	}
	if base == "" || input.Quantity < 1 {
		return nil, fmt.Errorf("%w: base id and quantity are required for batch registration", domainerrors.ErrInvalidInput)
	}
	if input.Quantity > limit {
		return nil, fmt.Errorf("%w: batch size exceeds %d", domainerrors.ErrInvalidInput, limit)
	}
	ids := make([]string, 0, input.Quantity)
	for i := 1; i <= input.Quantity; i++ {
		ids = append(ids, fmt.Sprintf("%s-%03d", base, i))
	}
	return ids, nil
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func joinLocation(presetEvent string, note string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{strings.TrimSpace(presetEvent), strings.TrimSpace(note)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " - ")
}
