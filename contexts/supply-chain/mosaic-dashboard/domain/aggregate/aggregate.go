package aggregate

import (
	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/mosaic-dashboard/domain/errors"
)

// Policy selects the representative record per bag when a fetch window holds
// several. Both policies are deliberate: the mosaic wants the freshest status,
// the fixed home grid trusts the window's descending fetch order.
type Policy string

const (
	// PolicyLatestWins keeps the record with the maximum ts per bag.
	PolicyLatestWins Policy = "latest_wins"
	// PolicyFirstSeen keeps the first occurrence per bag in fetch order.
	PolicyFirstSeen Policy = "first_seen"
)

// ParsePolicy maps the query-string value; empty defaults to latest-wins.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(raw) {
	case PolicyLatestWins, PolicyFirstSeen:
		return Policy(raw), nil
	case "":
		return PolicyLatestWins, nil
	}
	return "", domainerrors.ErrUnknownPolicy
}

// Deduplicate reduces a window of events to one representative per bag.
// Output ordering is insertion order of first appearance for both policies.
func Deduplicate(records []entities.EventSummary, policy Policy) []entities.EventSummary {
	index := make(map[string]int, len(records))
	out := make([]entities.EventSummary, 0, len(records))

	for _, record := range records {
		at, seen := index[record.BagID]
		if !seen {
			index[record.BagID] = len(out)
			out = append(out, record)
			continue
		}
		if policy == PolicyLatestWins && record.Ts > out[at].Ts {
			out[at] = record
		}
	}
	return out
}

// CountByStatus tallies representatives per status for the legend.
func CountByStatus(records []entities.EventSummary) map[string]int {
	counts := make(map[string]int, 8)
	for _, record := range records {
		counts[record.Status]++
	}
	return counts
}
