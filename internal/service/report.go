package service

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/coachrank/internal/models"
)

func formatRanking(stats *models.AggregateStats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *Coach Efficiency Ranking* (Matchdays %d-%d)\n\n", stats.FromMatchday, stats.ToMatchday))

	if len(stats.Ranking) == 0 {
		sb.WriteString("No lineups to analyze in this range.")
		return sb.String()
	}

	for _, r := range stats.Ranking {
		team := stats.ByTeam[r.Team]
		sb.WriteString(fmt.Sprintf("%d. *%s* - %.2f%%\n", r.Rank, r.Team, r.AverageEfficiencyPct))
		sb.WriteString(fmt.Sprintf("   Matchdays: %d\n", r.MatchdaysAnalyzed))
		sb.WriteString(fmt.Sprintf("   Points Left on Bench: %.2f\n", team.TotalPointsLost))
		if r.MatchdaysAnalyzed > 1 {
			sb.WriteString(fmt.Sprintf("   Best: MD %d (%.2f%%) / Worst: MD %d (%.2f%%)\n",
				team.BestMatchday, team.Reports[team.BestMatchday].EfficiencyPct,
				team.WorstMatchday, team.Reports[team.WorstMatchday].EfficiencyPct))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatTeamReport(report *models.EfficiencyReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s - Matchday %d*\n\n", report.Team, report.Matchday))
	sb.WriteString(fmt.Sprintf("Efficiency: %.2f%%\n", report.EfficiencyPct))
	sb.WriteString(fmt.Sprintf("Deployed: %.2f pts (%s)\n", report.Deployed.TotalScore, report.Deployed.Formation))
	sb.WriteString(fmt.Sprintf("Optimal: %.2f pts (%s)\n", report.Optimal.TotalScore, report.Optimal.Formation))
	sb.WriteString(fmt.Sprintf("Difference: %.2f pts\n", report.PointsDifference))

	sb.WriteString("\n*Deployed Lineup:*\n")
	writeLineup(&sb, report.Deployed)
	if len(report.Deployed.UnfilledSlots) > 0 {
		var roles []string
		for _, role := range report.Deployed.UnfilledSlots {
			roles = append(roles, role.String())
		}
		sb.WriteString(fmt.Sprintf("⚠️ Unfilled: %s\n", strings.Join(roles, ", ")))
	}

	sb.WriteString("\n*Optimal Lineup:*\n")
	writeLineup(&sb, report.Optimal)

	if len(report.ShouldHavePlayed) > 0 {
		sb.WriteString("\n*Should Have Played:*\n")
		for _, name := range report.ShouldHavePlayed {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}
	if len(report.ShouldNotHavePlayed) > 0 {
		sb.WriteString("\n*Should Not Have Played:*\n")
		for _, name := range report.ShouldNotHavePlayed {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}

	return sb.String()
}

func writeLineup(sb *strings.Builder, l models.Lineup) {
	if l.Size() == 0 {
		sb.WriteString("(empty)\n")
		return
	}
	for _, p := range l.Players {
		sub := ""
		if p.IsSubstitute {
			sub = " 🔄"
		}
		pointsStr := "-"
		if p.AdjustedScore != nil {
			pointsStr = fmt.Sprintf("%.2f", *p.AdjustedScore)
		}
		sb.WriteString(fmt.Sprintf("▫️ %s %s%s - %s\n", p.Role, p.Name, sub, pointsStr))
	}
}
