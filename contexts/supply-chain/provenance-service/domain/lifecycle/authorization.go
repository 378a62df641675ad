package lifecycle

import (
	"fmt"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
)

// Decision is the outcome of an authorization check. Required carries the
// identity that holds authority over the transition, when one is assigned.
type Decision struct {
	Allowed  bool
	Required string
	Reason   string
}

// Resolver derives authority from a bag's creation record. It performs no
// cryptographic verification: reportedBy binding is guaranteed upstream by the
// ledger's signing requirement on append. Its whole value is business-rule
// enforcement over who may move this specific bag.
type Resolver struct {
	// RequireAssignedHospital closes the open-finalization default: when set,
	// bags registered without a hospital cannot be finalized by anyone.
	RequireAssignedHospital bool
}

// Authorize decides whether identity may append the proposed transition to a
// bag with the given creation record.
func (r Resolver) Authorize(creation *entities.EventRecord, next entities.Status, identity string) Decision {
	if creation == nil || creation.Creation == nil {
		return Decision{Reason: "bag has no registration event"}
	}

	switch {
	case next == entities.StatusCreated:
		// Registration is not gated here; duplicate-CREATED handling is a
		// service-level concern (no uniqueness exists against the ledger).
		return Decision{Allowed: true}

	case next == entities.StatusInTransit:
		courier := creation.Creation.AssignedCourierID
		if courier == "" {
			return Decision{Reason: "no courier was assigned at registration"}
		}
		if identity != courier {
			return Decision{Required: courier, Reason: fmt.Sprintf("only courier %s may log transit updates", courier)}
		}
		return Decision{Allowed: true, Required: courier}

	case next.HospitalFinalization():
		hospital := creation.Creation.AssignedHospitalID
		if hospital == "" {
			if r.RequireAssignedHospital {
				return Decision{Reason: "no hospital was assigned at registration"}
			}
			return Decision{Allowed: true}
		}
		if identity != hospital {
			return Decision{Required: hospital, Reason: fmt.Sprintf("only hospital %s may finalize this bag", hospital)}
		}
		return Decision{Allowed: true, Required: hospital}
	}

	return Decision{Reason: fmt.Sprintf("status %s is not a recognized transition", next)}
}
