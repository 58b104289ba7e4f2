package lineup

import "github.com/omarshaarawi/coachrank/internal/models"

// DefaultSearchNodes bounds the cross-role search when no budget is configured.
const DefaultSearchNodes = 1 << 16

type searchOutcome int

const (
	searchNotFound searchOutcome = iota
	searchFound
	searchBudgetExceeded
)

func (o searchOutcome) String() string {
	switch o {
	case searchFound:
		return "found"
	case searchBudgetExceeded:
		return "budget exceeded"
	default:
		return "not found"
	}
}

type searchResult struct {
	Outcome searchOutcome
	Picks   []models.PlayerRecord
	Nodes   int
}

type roleTally struct {
	defenders   int
	midfielders int
	forwards    int
}

func (t roleTally) add(role models.Role) roleTally {
	switch role {
	case models.RoleDefender:
		t.defenders++
	case models.RoleMidfielder:
		t.midfielders++
	case models.RoleForward:
		t.forwards++
	}
	return t
}

func tallyOf(players []models.LineupPlayer) roleTally {
	var t roleTally
	for _, p := range players {
		t = t.add(p.Role)
	}
	return t
}

type crossRoleSearch struct {
	candidates []models.PlayerRecord
	base       roleTally
	slots      int
	maxNodes   int
	nodes      int
}

// searchCrossRole looks for the first ordered subsequence of candidates, in
// candidate order, of length slots whose roles complete base into a catalog
// formation. It visits at most maxNodes search nodes.
func searchCrossRole(candidates []models.PlayerRecord, base roleTally, slots, maxNodes int) searchResult {
	if maxNodes <= 0 {
		maxNodes = DefaultSearchNodes
	}
	if slots <= 0 || slots > len(candidates) {
		return searchResult{Outcome: searchNotFound}
	}

	s := &crossRoleSearch{
		candidates: candidates,
		base:       base,
		slots:      slots,
		maxNodes:   maxNodes,
	}
	chosen := make([]int, 0, slots)
	outcome, picks := s.walk(0, chosen)
	return searchResult{Outcome: outcome, Picks: picks, Nodes: s.nodes}
}

func (s *crossRoleSearch) walk(start int, chosen []int) (searchOutcome, []models.PlayerRecord) {
	s.nodes++
	if s.nodes > s.maxNodes {
		return searchBudgetExceeded, nil
	}

	if len(chosen) == s.slots {
		tally := s.base
		for _, idx := range chosen {
			tally = tally.add(s.candidates[idx].Role)
		}
		if _, ok := MatchFormation(tally.defenders, tally.midfielders, tally.forwards); !ok {
			return searchNotFound, nil
		}
		picks := make([]models.PlayerRecord, len(chosen))
		for i, idx := range chosen {
			picks[i] = s.candidates[idx]
		}
		return searchFound, picks
	}

	// Not enough candidates left to fill the remaining slots.
	if len(s.candidates)-start < s.slots-len(chosen) {
		return searchNotFound, nil
	}

	for i := start; i < len(s.candidates); i++ {
		outcome, picks := s.walk(i+1, append(chosen, i))
		if outcome != searchNotFound {
			return outcome, picks
		}
	}
	return searchNotFound, nil
}
