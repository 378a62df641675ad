package lifecycle

import "testing"

func TestExpiryDays(t *testing.T) {
	cases := []struct {
		component string
		additive  string
		want      int
	}{
		{ComponentRBC, AdditiveCPDA1, 35},
		{ComponentRBC, AdditiveAS1, 42},
		{ComponentRBC, AdditiveAS5, 42},
		{ComponentWholeBlood, AdditiveCPDA1, 35},
		{ComponentPlatelets, AdditiveNone, 5},
		{ComponentPlasma, AdditiveNone, 365},
		{ComponentCryo, AdditiveNone, 365},
	}
	for _, tc := range cases {
		if got := ExpiryDays(tc.component, tc.additive); got != tc.want {
			t.Fatalf("ExpiryDays(%s, %s) = %d, want %d", tc.component, tc.additive, got, tc.want)
		}
	}
}

func TestDefaultAdditive(t *testing.T) {
	if got := DefaultAdditive(ComponentRBC); got != AdditiveAS1 {
		t.Fatalf("RBC default additive = %s, want AS-1", got)
	}
	if got := DefaultAdditive(ComponentWholeBlood); got != AdditiveCPDA1 {
		t.Fatalf("whole blood default additive = %s, want CPDA-1", got)
	}
	if got := DefaultAdditive(ComponentPlatelets); got != AdditiveNone {
		t.Fatalf("platelets default additive = %s, want NA", got)
	}
}

func TestKnownComponent(t *testing.T) {
	if !KnownComponent(ComponentPlasma) {
		t.Fatalf("PLASMA should be a known component")
	}
	if KnownComponent("MARROW") {
		t.Fatalf("MARROW should be rejected")
	}
}
