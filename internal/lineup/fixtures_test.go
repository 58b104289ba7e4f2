package lineup

import (
	"fmt"

	"github.com/omarshaarawi/coachrank/internal/models"
)

var s = models.Score

func rec(name string, role models.Role, section models.Section, order int, raw, adj *float64) models.PlayerRecord {
	return models.PlayerRecord{
		Team:          "Team A",
		Matchday:      1,
		Name:          name,
		Role:          role,
		Section:       section,
		Order:         order,
		RawScore:      raw,
		AdjustedScore: adj,
	}
}

// starters builds a goalkeeper plus d/m/f outfield starters, all rated 6.0
// raw and adj adjusted, ordered 1..n in lineup order.
func starters(d, m, f int, adj float64) []models.PlayerRecord {
	players := []models.PlayerRecord{rec("GK", models.RoleGoalkeeper, models.SectionStarter, 1, s(6), s(adj))}
	order := 2
	add := func(prefix string, role models.Role, n int) {
		for i := 1; i <= n; i++ {
			players = append(players, rec(fmt.Sprintf("%s%d", prefix, i), role, models.SectionStarter, order, s(6), s(adj)))
			order++
		}
	}
	add("D", models.RoleDefender, d)
	add("M", models.RoleMidfielder, m)
	add("F", models.RoleForward, f)
	return players
}

// benched marks the named starter as having no rating.
func benched(players []models.PlayerRecord, name string) []models.PlayerRecord {
	out := append([]models.PlayerRecord(nil), players...)
	for i := range out {
		if out[i].Name == name {
			out[i].RawScore = nil
			out[i].AdjustedScore = nil
		}
	}
	return out
}

func names(l models.Lineup) []string {
	out := make([]string, 0, len(l.Players))
	for _, p := range l.Players {
		out = append(out, p.Name)
	}
	return out
}
