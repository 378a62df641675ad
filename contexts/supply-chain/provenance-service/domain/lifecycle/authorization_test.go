package lifecycle

import (
	"testing"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
)

func TestAuthorizeTransit(t *testing.T) {
	creation := createdRecord("BAG-001", 1000, "0.0.2001", "0.0.3001")
	resolver := Resolver{}

	decision := resolver.Authorize(&creation, entities.StatusInTransit, "0.0.2001")
	if !decision.Allowed {
		t.Fatalf("assigned courier should be allowed: %s", decision.Reason)
	}
	if decision.Required != "0.0.2001" {
		t.Fatalf("required identity = %q, want the assigned courier", decision.Required)
	}

	decision = resolver.Authorize(&creation, entities.StatusInTransit, "0.0.9999")
	if decision.Allowed {
		t.Fatalf("unassigned identity must not log transit")
	}
	if decision.Required != "0.0.2001" {
		t.Fatalf("denial should name the assigned courier, got %q", decision.Required)
	}
}

func TestAuthorizeTransitWithoutCourier(t *testing.T) {
	creation := createdRecord("BAG-001", 1000, "", "0.0.3001")
	decision := Resolver{}.Authorize(&creation, entities.StatusInTransit, "0.0.2001")
	if decision.Allowed {
		t.Fatalf("transit must be denied for everyone when no courier was assigned")
	}
}

func TestAuthorizeHospitalFinalization(t *testing.T) {
	creation := createdRecord("BAG-001", 1000, "0.0.2001", "0.0.3001")
	resolver := Resolver{}

	for _, status := range []entities.Status{
		entities.StatusReceived,
		entities.StatusTested,
		entities.StatusReady,
		entities.StatusTransfused,
		entities.StatusExpired,
		entities.StatusDiscarded,
	} {
		if d := resolver.Authorize(&creation, status, "0.0.3001"); !d.Allowed {
			t.Fatalf("assigned hospital should finalize %s: %s", status, d.Reason)
		}
		if d := resolver.Authorize(&creation, status, "0.0.2001"); d.Allowed {
			t.Fatalf("courier must not finalize %s", status)
		}
	}
}

func TestAuthorizeUnassignedHospitalDefaultsOpen(t *testing.T) {
	creation := createdRecord("BAG-001", 1000, "0.0.2001", "")

	if d := (Resolver{}).Authorize(&creation, entities.StatusReceived, "0.0.9999"); !d.Allowed {
		t.Fatalf("open finalization should allow any identity when no hospital was assigned")
	}
	if d := (Resolver{RequireAssignedHospital: true}).Authorize(&creation, entities.StatusReceived, "0.0.9999"); d.Allowed {
		t.Fatalf("strict mode must deny finalization when no hospital was assigned")
	}
}

func TestAuthorizeWithoutCreation(t *testing.T) {
	if d := (Resolver{}).Authorize(nil, entities.StatusInTransit, "0.0.2001"); d.Allowed {
		t.Fatalf("no creation record means no authority")
	}
}
