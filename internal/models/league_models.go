package models

import "fmt"

type LineupPlayer struct {
	PlayerRecord
	IsSubstitute bool
}

// Lineup is either the deployed or the optimal eleven of a team on a matchday.
type Lineup struct {
	Players    []LineupPlayer
	Formation  string
	TotalScore float64

	// Deployed lineups only.
	UnfilledSlots   []Role
	SearchExhausted bool
}

func (l Lineup) Size() int {
	return len(l.Players)
}

func (l Lineup) Names() map[string]bool {
	names := make(map[string]bool, len(l.Players))
	for _, p := range l.Players {
		names[p.Name] = true
	}
	return names
}

// RoleCounts returns the number of players per known role.
func (l Lineup) RoleCounts() map[Role]int {
	counts := make(map[Role]int, len(Roles))
	for _, p := range l.Players {
		if p.Role.Known() {
			counts[p.Role]++
		}
	}
	return counts
}

// FormationString renders role counts as "D-M-F".
func FormationString(counts map[Role]int) string {
	return fmt.Sprintf("%d-%d-%d", counts[RoleDefender], counts[RoleMidfielder], counts[RoleForward])
}

type EfficiencyReport struct {
	Team                string
	Matchday            int
	Deployed            Lineup
	Optimal             Lineup
	EfficiencyPct       float64
	PointsDifference    float64
	ShouldHavePlayed    []string
	ShouldNotHavePlayed []string
}

type TeamStats struct {
	Team                 string
	Reports              map[int]EfficiencyReport
	AverageEfficiencyPct float64
	MatchdaysAnalyzed    int
	TotalPointsLost      float64
	BestMatchday         int
	WorstMatchday        int
}

type MatchdayStats struct {
	Matchday             int
	Reports              map[string]EfficiencyReport
	AverageEfficiencyPct float64
}

type TeamRanking struct {
	Rank                 int
	Team                 string
	AverageEfficiencyPct float64
	MatchdaysAnalyzed    int
}

type AggregateStats struct {
	FromMatchday int
	ToMatchday   int
	ByTeam       map[string]*TeamStats
	ByMatchday   map[int]*MatchdayStats
	Ranking      []TeamRanking
}
