package lifecycle

import (
	"sort"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
)

// Reduce folds one bag's event set, in any input order, into its derived
// lifecycle view. It is a pure fold over an unordered set, not a sequential
// state machine: the transport layer guarantees nothing stronger than
// approximately-descending submission order.
//
// Rules:
//   - creation: the CREATED record with the smallest ts. More than one CREATED
//     is tolerated and flagged as DuplicateCreation.
//   - current status: the status of the record with the maximum ts. Ties are
//     broken by arrival order from the fetch, since ts is client-supplied and
//     may collide.
//   - history: all records sorted descending by ts, stable on arrival order.
//
// A bag without a CREATED record has no defined current status and is reported
// by callers as unknown rather than failed.
func Reduce(records []entities.EventRecord) entities.BagView {
	view := entities.BagView{}
	if len(records) == 0 {
		return view
	}
	view.BagID = records[0].BagID

	history := append([]entities.EventRecord(nil), records...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Ts > history[j].Ts
	})
	view.History = history

	creationIdx := -1
	creationCount := 0
	for i := range records {
		if records[i].Status != entities.StatusCreated {
			continue
		}
		creationCount++
		if creationIdx < 0 || records[i].Ts < records[creationIdx].Ts {
			creationIdx = i
		}
	}
	if creationIdx < 0 {
		return view
	}

	creation := records[creationIdx]
	view.Creation = &creation
	view.DuplicateCreation = creationCount > 1

	latest := 0
	for i := 1; i < len(records); i++ {
		if records[i].Ts > records[latest].Ts {
			latest = i
		}
	}
	view.CurrentStatus = records[latest].Status
	return view
}
