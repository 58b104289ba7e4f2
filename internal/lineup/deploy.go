package lineup

import (
	"sort"

	"github.com/omarshaarawi/coachrank/internal/models"
)

// Resolver reconstructs lineups from roster submissions. The zero value uses
// DefaultSearchNodes for the cross-role search.
type Resolver struct {
	MaxSearchNodes int
}

func NewResolver(maxSearchNodes int) *Resolver {
	return &Resolver{MaxSearchNodes: maxSearchNodes}
}

// ComputeDeployedLineup applies the substitution policy with the default
// search budget.
func ComputeDeployedLineup(players []models.PlayerRecord) models.Lineup {
	var r Resolver
	return r.DeployedLineup(players)
}

// DeployedLineup returns the lineup that actually took the field: starters
// with a rating, then same-role bench replacements, then a cross-role fill
// that must land on a catalog formation. Slots that cannot be covered are
// left empty and reported in UnfilledSlots.
func (r *Resolver) DeployedLineup(players []models.PlayerRecord) models.Lineup {
	starters, bench := Partition(players)

	var deployed []models.LineupPlayer
	var missing []models.Role
	for _, p := range starters {
		if !p.Role.Known() {
			continue
		}
		if p.Played() {
			deployed = append(deployed, models.LineupPlayer{PlayerRecord: p})
		} else {
			missing = append(missing, p.Role)
		}
	}

	used := make([]bool, len(bench))
	var unfilled []models.Role
	for _, role := range missing {
		idx := firstAvailable(bench, used, role)
		if idx < 0 {
			unfilled = append(unfilled, role)
			continue
		}
		used[idx] = true
		deployed = append(deployed, models.LineupPlayer{PlayerRecord: bench[idx], IsSubstitute: true})
	}

	exhausted := false
	if len(unfilled) > 0 {
		var candidates []models.PlayerRecord
		for i, p := range bench {
			if !used[i] && p.Played() && p.Role.Known() {
				candidates = append(candidates, p)
			}
		}

		res := searchCrossRole(candidates, tallyOf(deployed), len(unfilled), r.MaxSearchNodes)
		switch res.Outcome {
		case searchFound:
			for _, p := range res.Picks {
				deployed = append(deployed, models.LineupPlayer{PlayerRecord: p, IsSubstitute: true})
			}
			unfilled = nil
		case searchBudgetExceeded:
			exhausted = true
		}
	}

	lineup := finalize(capLineup(deployed))
	lineup.UnfilledSlots = unfilled
	lineup.SearchExhausted = exhausted
	return lineup
}

func firstAvailable(bench []models.PlayerRecord, used []bool, role models.Role) int {
	for i, p := range bench {
		if !used[i] && p.Role == role && p.Played() {
			return i
		}
	}
	return -1
}

// capLineup keeps the first goalkeeper and the first ten outfield players.
func capLineup(players []models.LineupPlayer) []models.LineupPlayer {
	capped := make([]models.LineupPlayer, 0, len(players))
	goalkeepers, outfield := 0, 0
	for _, p := range players {
		switch {
		case p.Role == models.RoleGoalkeeper:
			if goalkeepers >= 1 {
				continue
			}
			goalkeepers++
		case p.Role.IsOutfield():
			if outfield >= maxOutfield {
				continue
			}
			outfield++
		default:
			continue
		}
		capped = append(capped, p)
	}
	return capped
}

// finalize orders players by role and derives formation and total.
func finalize(players []models.LineupPlayer) models.Lineup {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Role < players[j].Role
	})

	lineup := models.Lineup{Players: players}
	for _, p := range players {
		lineup.TotalScore += p.Points()
	}
	lineup.Formation = models.FormationString(lineup.RoleCounts())
	return lineup
}
