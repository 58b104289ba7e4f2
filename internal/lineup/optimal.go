package lineup

import (
	"sort"

	"github.com/omarshaarawi/coachrank/internal/models"
)

// ComputeOptimalLineup builds the best lineup the roster allowed. A complete
// deployed lineup is compared against every catalog formation; a partial one
// is mirrored role by role.
func ComputeOptimalLineup(players []models.PlayerRecord, deployed models.Lineup) models.Lineup {
	if deployed.Size() == 0 {
		return finalize(nil)
	}

	eligible := eligibleByRole(players)

	if deployed.Size() >= LineupSize {
		if best, ok := bestFormation(eligible); ok {
			return finalize(pick(eligible, best.Count))
		}
	}

	counts := deployed.RoleCounts()
	return finalize(pick(eligible, func(role models.Role) int { return counts[role] }))
}

// eligibleByRole groups players with a positive adjusted rating by role, best
// first, submission order breaking ties.
func eligibleByRole(players []models.PlayerRecord) map[models.Role][]models.PlayerRecord {
	groups := make(map[models.Role][]models.PlayerRecord, len(models.Roles))
	for _, p := range players {
		if p.Role.Known() && p.Scored() {
			groups[p.Role] = append(groups[p.Role], p)
		}
	}
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Points() != group[j].Points() {
				return group[i].Points() > group[j].Points()
			}
			return group[i].Order < group[j].Order
		})
	}
	return groups
}

func bestFormation(eligible map[models.Role][]models.PlayerRecord) (Formation, bool) {
	var best Formation
	bestScore := 0.0
	found := false

	for _, f := range Formations {
		score, ok := formationScore(eligible, f)
		if !ok {
			continue
		}
		if !found || score > bestScore {
			best = f
			bestScore = score
			found = true
		}
	}
	return best, found
}

func formationScore(eligible map[models.Role][]models.PlayerRecord, f Formation) (float64, bool) {
	total := 0.0
	for _, role := range models.Roles {
		need := f.Count(role)
		if len(eligible[role]) < need {
			return 0, false
		}
		for _, p := range eligible[role][:need] {
			total += p.Points()
		}
	}
	return total, true
}

func pick(eligible map[models.Role][]models.PlayerRecord, count func(models.Role) int) []models.LineupPlayer {
	var players []models.LineupPlayer
	for _, role := range models.Roles {
		group := eligible[role]
		n := min(count(role), len(group))
		for _, p := range group[:n] {
			players = append(players, models.LineupPlayer{PlayerRecord: p})
		}
	}
	return players
}
