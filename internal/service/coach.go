package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/coachrank/internal/efficiency"
	"github.com/omarshaarawi/coachrank/internal/lineup"
	"github.com/omarshaarawi/coachrank/internal/models"
	"github.com/omarshaarawi/coachrank/internal/repository/memory"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrNoReport     = errors.New("no lineup to analyze")
)

// RosterSource supplies roster submissions. Implementations are read-only.
type RosterSource interface {
	ListRosters(ctx context.Context, from, to int) ([]models.PlayerRecord, error)
	LatestMatchday(ctx context.Context) (int, error)
}

type CoachService struct {
	source        RosterSource
	cache         *memory.RosterCache
	calc          *efficiency.Calculator
	firstMatchday int
}

func NewCoachService(source RosterSource, cache *memory.RosterCache, calc *efficiency.Calculator, firstMatchday int) *CoachService {
	if firstMatchday < 1 {
		firstMatchday = 1
	}
	return &CoachService{
		source:        source,
		cache:         cache,
		calc:          calc,
		firstMatchday: firstMatchday,
	}
}

func (s *CoachService) GetCurrentMatchday(ctx context.Context) (int, error) {
	matchday, err := s.source.LatestMatchday(ctx)
	if err != nil {
		return 0, err
	}

	slog.Info("Current matchday", "matchday", matchday)
	return matchday, nil
}

// Refresh drops every cached roster so the next request reads the source.
func (s *CoachService) Refresh() {
	s.cache.Invalidate()
	slog.Info("Roster cache invalidated")
}

func (s *CoachService) getRosters(ctx context.Context, from, to int) ([]models.PlayerRecord, error) {
	if players, ok := s.cache.Get(from, to); ok {
		return players, nil
	}
	players, err := s.source.ListRosters(ctx, from, to)
	if err != nil {
		return nil, err
	}
	s.cache.Save(from, to, players)
	return players, nil
}

// Aggregate scores every team between from and to inclusive.
func (s *CoachService) Aggregate(ctx context.Context, from, to int) (*models.AggregateStats, error) {
	players, err := s.getRosters(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error fetching rosters: %w", err)
	}

	stats := s.calc.ComputeAggregate(players, from, to)
	for _, md := range sortedMatchdays(stats) {
		for _, team := range sortedTeams(stats.ByMatchday[md].Reports) {
			warnIncomplete(stats.ByMatchday[md].Reports[team])
		}
	}
	return stats, nil
}

// TeamReport scores a single team on one matchday.
func (s *CoachService) TeamReport(ctx context.Context, teamName string, matchday int) (*models.EfficiencyReport, error) {
	players, err := s.getRosters(ctx, matchday, matchday)
	if err != nil {
		return nil, fmt.Errorf("error fetching rosters: %w", err)
	}

	teams := make(map[string]bool)
	for _, p := range players {
		teams[p.Team] = true
	}
	team, ok := matchTeam(teamName, teams)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamName)
	}

	var roster []models.PlayerRecord
	for _, p := range players {
		if p.Team == team {
			roster = append(roster, p)
		}
	}

	report := s.calc.ComputeEfficiency(roster)
	if report == nil {
		return nil, fmt.Errorf("%w: %s matchday %d", ErrNoReport, team, matchday)
	}
	warnIncomplete(*report)
	return report, nil
}

func (s *CoachService) GetRanking(ctx context.Context, from, to int) (string, error) {
	if to == 0 {
		current, err := s.GetCurrentMatchday(ctx)
		if err != nil {
			return "", fmt.Errorf("error fetching current matchday: %w", err)
		}
		to = current
		if from == 0 {
			from = s.firstMatchday
		}
	}
	if from > to {
		return "", fmt.Errorf("invalid matchday range %d-%d", from, to)
	}

	stats, err := s.Aggregate(ctx, from, to)
	if err != nil {
		return "", err
	}
	return formatRanking(stats), nil
}

func (s *CoachService) GetSeasonRanking(ctx context.Context) (string, error) {
	return s.GetRanking(ctx, 0, 0)
}

func (s *CoachService) GetTeamReport(ctx context.Context, teamName string, matchday int) (string, error) {
	if matchday == 0 {
		current, err := s.GetCurrentMatchday(ctx)
		if err != nil {
			return "", fmt.Errorf("error fetching current matchday: %w", err)
		}
		matchday = current
	}

	report, err := s.TeamReport(ctx, teamName, matchday)
	if err != nil {
		return "", err
	}
	return formatTeamReport(report), nil
}

func (s *CoachService) GetTeams(ctx context.Context) (string, error) {
	matchday, err := s.GetCurrentMatchday(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching current matchday: %w", err)
	}

	players, err := s.getRosters(ctx, matchday, matchday)
	if err != nil {
		return "", fmt.Errorf("error fetching rosters: %w", err)
	}

	seen := make(map[string]bool)
	var teams []string
	for _, p := range players {
		if !seen[p.Team] {
			seen[p.Team] = true
			teams = append(teams, p.Team)
		}
	}
	sort.Strings(teams)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 *Teams - Matchday %d*\n\n", matchday))
	if len(teams) == 0 {
		sb.WriteString("No rosters submitted yet.")
		return sb.String(), nil
	}
	for _, team := range teams {
		sb.WriteString(fmt.Sprintf("▫️ %s\n", team))
	}
	return sb.String(), nil
}

func warnIncomplete(report models.EfficiencyReport) {
	if report.Deployed.Size() >= lineup.LineupSize {
		return
	}
	unfilled := make([]string, 0, len(report.Deployed.UnfilledSlots))
	for _, role := range report.Deployed.UnfilledSlots {
		unfilled = append(unfilled, role.String())
	}
	slog.Warn("Deployed lineup is incomplete",
		"team", report.Team,
		"matchday", report.Matchday,
		"size", report.Deployed.Size(),
		"unfilled", strings.Join(unfilled, ","),
		"search_exhausted", report.Deployed.SearchExhausted)
}

// matchTeam resolves a user-typed team name against the known teams.
func matchTeam(query string, teams map[string]bool) (string, bool) {
	query = strings.TrimSpace(query)
	for team := range teams {
		if strings.EqualFold(team, query) {
			return team, true
		}
	}

	var best string
	bestSimilarity := 0.0
	threshold := 0.6

	for _, team := range sortedKeys(teams) {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(team))
		maxLen := float64(max(len(query), len(team)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestSimilarity {
			bestSimilarity = similarity
			best = team
		}
	}
	if best != "" {
		return best, true
	}

	// Fall back to an in-order character match, e.g. "utd" for "Real United".
	for _, team := range sortedKeys(teams) {
		if fuzzy.MatchFold(query, team) {
			return team, true
		}
	}
	return "", false
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMatchdays(stats *models.AggregateStats) []int {
	matchdays := make([]int, 0, len(stats.ByMatchday))
	for md := range stats.ByMatchday {
		matchdays = append(matchdays, md)
	}
	sort.Ints(matchdays)
	return matchdays
}

func sortedTeams(reports map[string]models.EfficiencyReport) []string {
	teams := make([]string, 0, len(reports))
	for team := range reports {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
