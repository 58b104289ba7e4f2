package efficiency

import (
	"sort"

	"github.com/omarshaarawi/coachrank/internal/models"
)

type groupKey struct {
	team     string
	matchday int
}

// ComputeAggregate scores every team and matchday in [from, to] with the
// default search budget.
func ComputeAggregate(players []models.PlayerRecord, from, to int) *models.AggregateStats {
	return NewCalculator(0).ComputeAggregate(players, from, to)
}

// ComputeAggregate groups records by team and matchday, scores each group and
// ranks teams by average efficiency. Groups without a report are skipped.
func (c *Calculator) ComputeAggregate(players []models.PlayerRecord, from, to int) *models.AggregateStats {
	groups := make(map[groupKey][]models.PlayerRecord)
	for _, p := range players {
		if p.Matchday < from || p.Matchday > to {
			continue
		}
		key := groupKey{team: p.Team, matchday: p.Matchday}
		groups[key] = append(groups[key], p)
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].team != keys[j].team {
			return keys[i].team < keys[j].team
		}
		return keys[i].matchday < keys[j].matchday
	})

	stats := &models.AggregateStats{
		FromMatchday: from,
		ToMatchday:   to,
		ByTeam:       make(map[string]*models.TeamStats),
		ByMatchday:   make(map[int]*models.MatchdayStats),
	}
	teamSums := make(map[string]float64)
	matchdaySums := make(map[int]float64)

	for _, key := range keys {
		report := c.ComputeEfficiency(groups[key])
		if report == nil {
			continue
		}
		report.Team = key.team
		report.Matchday = key.matchday

		team, ok := stats.ByTeam[key.team]
		if !ok {
			team = &models.TeamStats{
				Team:          key.team,
				Reports:       make(map[int]models.EfficiencyReport),
				BestMatchday:  key.matchday,
				WorstMatchday: key.matchday,
			}
			stats.ByTeam[key.team] = team
		}
		team.Reports[key.matchday] = *report
		team.MatchdaysAnalyzed++
		team.TotalPointsLost += report.PointsDifference
		teamSums[key.team] += report.EfficiencyPct
		if report.EfficiencyPct > team.Reports[team.BestMatchday].EfficiencyPct {
			team.BestMatchday = key.matchday
		}
		if report.EfficiencyPct < team.Reports[team.WorstMatchday].EfficiencyPct {
			team.WorstMatchday = key.matchday
		}

		md, ok := stats.ByMatchday[key.matchday]
		if !ok {
			md = &models.MatchdayStats{
				Matchday: key.matchday,
				Reports:  make(map[string]models.EfficiencyReport),
			}
			stats.ByMatchday[key.matchday] = md
		}
		md.Reports[key.team] = *report
		matchdaySums[key.matchday] += report.EfficiencyPct
	}

	for name, team := range stats.ByTeam {
		team.AverageEfficiencyPct = round2(teamSums[name] / float64(team.MatchdaysAnalyzed))
		team.TotalPointsLost = round2(team.TotalPointsLost)
		stats.Ranking = append(stats.Ranking, models.TeamRanking{
			Team:                 name,
			AverageEfficiencyPct: team.AverageEfficiencyPct,
			MatchdaysAnalyzed:    team.MatchdaysAnalyzed,
		})
	}
	for matchday, md := range stats.ByMatchday {
		md.AverageEfficiencyPct = round2(matchdaySums[matchday] / float64(len(md.Reports)))
	}

	// Equal averages fall back to team name so the ranking is stable.
	sort.Slice(stats.Ranking, func(i, j int) bool {
		if stats.Ranking[i].AverageEfficiencyPct != stats.Ranking[j].AverageEfficiencyPct {
			return stats.Ranking[i].AverageEfficiencyPct > stats.Ranking[j].AverageEfficiencyPct
		}
		return stats.Ranking[i].Team < stats.Ranking[j].Team
	})
	for i := range stats.Ranking {
		stats.Ranking[i].Rank = i + 1
	}

	return stats
}
