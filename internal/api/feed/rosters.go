package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/omarshaarawi/coachrank/internal/models"
)

type rosterResponse struct {
	Players []rosterEntry `json:"players"`
}

type rosterEntry struct {
	Team          string   `json:"team"`
	Matchday      int      `json:"matchday"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Section       string   `json:"section"`
	Order         int      `json:"order"`
	RawScore      *float64 `json:"raw_score"`
	AdjustedScore *float64 `json:"adjusted_score"`
}

type latestResponse struct {
	Matchday int `json:"matchday"`
}

// API reads roster submissions from a JSON results feed.
type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) ListRosters(ctx context.Context, from, to int) ([]models.PlayerRecord, error) {
	var resp rosterResponse
	params := map[string]string{
		"from": strconv.Itoa(from),
		"to":   strconv.Itoa(to),
	}

	if err := a.client.Get(ctx, "/rosters", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	players := make([]models.PlayerRecord, 0, len(resp.Players))
	for _, e := range resp.Players {
		section, ok := models.ParseSection(e.Section)
		if !ok {
			slog.Warn("Skipping roster entry with unknown section", "team", e.Team, "matchday", e.Matchday, "player", e.Name, "section", e.Section)
			continue
		}
		players = append(players, models.PlayerRecord{
			Team:          e.Team,
			Matchday:      e.Matchday,
			Name:          e.Name,
			Role:          models.ParseRole(e.Role),
			Section:       section,
			Order:         e.Order,
			RawScore:      e.RawScore,
			AdjustedScore: e.AdjustedScore,
		})
	}
	return players, nil
}

func (a *API) LatestMatchday(ctx context.Context) (int, error) {
	var resp latestResponse
	if err := a.client.Get(ctx, "/matchdays/latest", nil, &resp); err != nil {
		return 0, fmt.Errorf("fetching latest matchday: %w", err)
	}
	return resp.Matchday, nil
}
