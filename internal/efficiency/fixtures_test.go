package efficiency

import (
	"fmt"

	"github.com/omarshaarawi/coachrank/internal/models"
)

var s = models.Score

func rec(team string, matchday int, name string, role models.Role, section models.Section, order int, raw, adj *float64) models.PlayerRecord {
	return models.PlayerRecord{
		Team:          team,
		Matchday:      matchday,
		Name:          name,
		Role:          role,
		Section:       section,
		Order:         order,
		RawScore:      raw,
		AdjustedScore: adj,
	}
}

// roster442 submits a 4-4-2 whose starters total gk+10*outfield, with one
// rated bench forward worth bench.
func roster442(team string, matchday int, gk, outfield, bench float64) []models.PlayerRecord {
	players := []models.PlayerRecord{rec(team, matchday, "GK", models.RoleGoalkeeper, models.SectionStarter, 1, s(6), s(gk))}
	order := 2
	add := func(prefix string, role models.Role, n int) {
		for i := 1; i <= n; i++ {
			players = append(players, rec(team, matchday, fmt.Sprintf("%s%d", prefix, i), role, models.SectionStarter, order, s(6), s(outfield)))
			order++
		}
	}
	add("D", models.RoleDefender, 4)
	add("M", models.RoleMidfielder, 4)
	add("F", models.RoleForward, 2)
	players = append(players, rec(team, matchday, "Bench F", models.RoleForward, models.SectionBench, order, s(6), s(bench)))
	return players
}
