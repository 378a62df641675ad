package lifecycle

import (
	"testing"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
)

func createdRecord(bagID string, ts int64, courier string, hospital string) entities.EventRecord {
	return entities.EventRecord{
		BagID:      bagID,
		Status:     entities.StatusCreated,
		ReportedBy: "0.0.1001",
		Ts:         ts,
		Creation: &entities.CreationDetails{
			ComponentType:      "RBC",
			AdditiveSolution:   "AS-1",
			BloodType:          "O-",
			Volume:             450,
			CollectionDate:     time.UnixMilli(ts).UTC(),
			ExpiryDate:         time.UnixMilli(ts).UTC().Add(42 * 24 * time.Hour),
			AssignedCourierID:  courier,
			AssignedHospitalID: hospital,
		},
	}
}

func statusRecord(bagID string, status entities.Status, ts int64, reportedBy string) entities.EventRecord {
	return entities.EventRecord{
		BagID:      bagID,
		Status:     status,
		ReportedBy: reportedBy,
		Ts:         ts,
	}
}

func TestReduceOrderIndependent(t *testing.T) {
	records := []entities.EventRecord{
		createdRecord("BAG-001", 1000, "0.0.2001", "0.0.3001"),
		statusRecord("BAG-001", entities.StatusInTransit, 2000, "0.0.2001"),
		statusRecord("BAG-001", entities.StatusReceived, 3000, "0.0.3001"),
	}

	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, order := range permutations {
		shuffled := make([]entities.EventRecord, 0, len(records))
		for _, idx := range order {
			shuffled = append(shuffled, records[idx])
		}

		view := Reduce(shuffled)
		if view.CurrentStatus != entities.StatusReceived {
			t.Fatalf("order %v: current status = %s, want RECEIVED", order, view.CurrentStatus)
		}
		if view.Creation == nil || view.Creation.Ts != 1000 {
			t.Fatalf("order %v: creation record not resolved", order)
		}
		if len(view.History) != 3 {
			t.Fatalf("order %v: history length = %d, want 3", order, len(view.History))
		}
		for i := 1; i < len(view.History); i++ {
			if view.History[i-1].Ts < view.History[i].Ts {
				t.Fatalf("order %v: history not descending by ts", order)
			}
		}
	}
}

func TestReduceWithoutCreation(t *testing.T) {
	view := Reduce([]entities.EventRecord{
		statusRecord("BAG-404", entities.StatusInTransit, 2000, "0.0.2001"),
	})
	if view.Creation != nil {
		t.Fatalf("expected no creation record")
	}
	if view.CurrentStatus != "" {
		t.Fatalf("current status = %q, want empty", view.CurrentStatus)
	}
	if len(view.History) != 1 {
		t.Fatalf("history should still carry the orphan record")
	}
}

func TestReduceDuplicateCreationKeepsEarliest(t *testing.T) {
	view := Reduce([]entities.EventRecord{
		createdRecord("BAG-002", 5000, "0.0.2001", "0.0.3001"),
		createdRecord("BAG-002", 1000, "0.0.2002", "0.0.3002"),
	})
	if !view.DuplicateCreation {
		t.Fatalf("expected duplicate creation flag")
	}
	if view.Creation.Ts != 1000 {
		t.Fatalf("creation ts = %d, want the earliest (1000)", view.Creation.Ts)
	}
}

func TestReduceTimestampTieKeepsArrivalOrder(t *testing.T) {
	view := Reduce([]entities.EventRecord{
		createdRecord("BAG-003", 1000, "0.0.2001", "0.0.3001"),
		statusRecord("BAG-003", entities.StatusTested, 2000, "0.0.3001"),
		statusRecord("BAG-003", entities.StatusReady, 2000, "0.0.3001"),
	})
	if view.CurrentStatus != entities.StatusTested {
		t.Fatalf("current status = %s, want the first arrival of the tied ts", view.CurrentStatus)
	}
}

func TestReduceEmpty(t *testing.T) {
	view := Reduce(nil)
	if view.BagID != "" || view.Creation != nil || len(view.History) != 0 {
		t.Fatalf("empty input should produce an empty view")
	}
}
