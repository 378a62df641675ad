package lifecycle

// Component and additive codes used on creation payloads.
const (
	ComponentRBC        = "RBC"
	ComponentWholeBlood = "WHOLE_BLOOD"
	ComponentPlatelets  = "PLATELETS"
	ComponentPlasma     = "PLASMA"
	ComponentCryo       = "CRYO"

	AdditiveCPDA1 = "CPDA-1"
	AdditiveAS1   = "AS-1"
	AdditiveAS3   = "AS-3"
	AdditiveAS5   = "AS-5"
	AdditiveNone  = "NA"
)

func KnownComponent(component string) bool {
	switch component {
	case ComponentRBC, ComponentWholeBlood, ComponentPlatelets, ComponentPlasma, ComponentCryo:
		return true
	}
	return false
}

// ExpiryDays derives shelf life from component and additive per US/EU norms:
// RBC on CPDA-1 keeps 35 days, on AS-1/3/5 42 days; whole blood on CPDA-1
// 35 days; platelets 5 days at room temperature; plasma and cryo one year
// frozen.
func ExpiryDays(component string, additive string) int {
	switch component {
	case ComponentRBC:
		if additive == AdditiveCPDA1 {
			return 35
		}
		return 42
	case ComponentWholeBlood:
		return 35
	case ComponentPlatelets:
		return 5
	case ComponentPlasma, ComponentCryo:
		return 365
	default:
		return 42
	}
}

// StorageRange is the informational storage band recorded on the creation
// payload for display.
func StorageRange(component string) string {
	switch component {
	case ComponentRBC, ComponentWholeBlood:
		return "1-6 C (refrigerated)"
	case ComponentPlatelets:
		return "20-24 C (agitated)"
	case ComponentPlasma, ComponentCryo:
		return "<= -18 C (frozen)"
	default:
		return "1-6 C"
	}
}

// DefaultAdditive is the recommended additive when the caller leaves it unset.
func DefaultAdditive(component string) string {
	switch component {
	case ComponentRBC:
		return AdditiveAS1
	case ComponentWholeBlood:
		return AdditiveCPDA1
	default:
		return AdditiveNone
	}
}
