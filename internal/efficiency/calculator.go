package efficiency

import (
	"math"

	"github.com/omarshaarawi/coachrank/internal/lineup"
	"github.com/omarshaarawi/coachrank/internal/models"
)

// Calculator scores how close a coach came to the best lineup available.
type Calculator struct {
	resolver *lineup.Resolver
}

// NewCalculator bounds the cross-role substitution search at maxSearchNodes;
// zero or less selects lineup.DefaultSearchNodes.
func NewCalculator(maxSearchNodes int) *Calculator {
	return &Calculator{resolver: lineup.NewResolver(maxSearchNodes)}
}

// ComputeEfficiency scores one roster with the default search budget.
func ComputeEfficiency(players []models.PlayerRecord) *models.EfficiencyReport {
	return NewCalculator(0).ComputeEfficiency(players)
}

// ComputeEfficiency returns nil when neither a deployed nor an optimal lineup
// can be built from players.
func (c *Calculator) ComputeEfficiency(players []models.PlayerRecord) *models.EfficiencyReport {
	deployed := c.resolver.DeployedLineup(players)
	optimal := lineup.ComputeOptimalLineup(players, deployed)

	if deployed.Size() == 0 && optimal.Size() == 0 {
		return nil
	}

	report := &models.EfficiencyReport{
		Deployed:         deployed,
		Optimal:          optimal,
		EfficiencyPct:    efficiencyPct(deployed.TotalScore, optimal.TotalScore),
		PointsDifference: optimal.TotalScore - deployed.TotalScore,
	}
	if len(players) > 0 {
		report.Team = players[0].Team
		report.Matchday = players[0].Matchday
	}

	deployedNames := deployed.Names()
	optimalNames := optimal.Names()
	for _, p := range optimal.Players {
		if !deployedNames[p.Name] {
			report.ShouldHavePlayed = append(report.ShouldHavePlayed, p.Name)
		}
	}
	for _, p := range deployed.Players {
		if !optimalNames[p.Name] {
			report.ShouldNotHavePlayed = append(report.ShouldNotHavePlayed, p.Name)
		}
	}

	return report
}

func efficiencyPct(deployed, optimal float64) float64 {
	if optimal > 0 {
		return round2(deployed / optimal * 100)
	}
	if deployed > 0 {
		return 100
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
