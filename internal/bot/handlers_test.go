package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/coachrank/internal/efficiency"
	"github.com/omarshaarawi/coachrank/internal/models"
	"github.com/omarshaarawi/coachrank/internal/repository/memory"
	"github.com/omarshaarawi/coachrank/internal/service"
)

type sourceStub struct {
	players []models.PlayerRecord
	latest  int
}

func (s *sourceStub) ListRosters(_ context.Context, from, to int) ([]models.PlayerRecord, error) {
	var out []models.PlayerRecord
	for _, p := range s.players {
		if p.Matchday >= from && p.Matchday <= to {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *sourceStub) LatestMatchday(_ context.Context) (int, error) {
	return s.latest, nil
}

func newTestHandler() *Handler {
	players := []models.PlayerRecord{
		{Team: "Real United", Matchday: 2, Name: "Rossi", Role: models.RoleGoalkeeper, Order: 1, RawScore: models.Score(6), AdjustedScore: models.Score(7)},
		{Team: "Real United", Matchday: 2, Name: "Bianchi", Role: models.RoleDefender, Order: 2, RawScore: models.Score(6), AdjustedScore: models.Score(6)},
	}
	svc := service.NewCoachService(&sourceStub{players: players, latest: 2}, memory.NewRosterCache(time.Minute), efficiency.NewCalculator(0), 1)
	return NewHandler(svc)
}

func commandUpdate(text string) tgbotapi.Update {
	length := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		length = i
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text:     text,
			Chat:     &tgbotapi.Chat{ID: 99},
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
		},
	}
}

func TestHandleCommand(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		text string
		want string
	}{
		{text: "/help", want: "/ranking [from] [to]"},
		{text: "/ranking", want: "Matchdays 1-2"},
		{text: "/ranking 2", want: "Matchdays 2-2"},
		{text: "/ranking two", want: "Usage: /ranking"},
		{text: "/report", want: "Please provide a team name"},
		{text: "/report real united 2", want: "Real United - Matchday 2"},
		{text: "/report Juventus", want: "No team found"},
		{text: "/teams", want: "Real United"},
		{text: "/refresh", want: "reloaded"},
		{text: "/unknown", want: "Unknown command"},
	}

	for _, tt := range tests {
		msg := h.HandleCommand(context.Background(), commandUpdate(tt.text))
		if !strings.Contains(msg.Text, tt.want) {
			t.Errorf("%s: reply = %q, want it to contain %q", tt.text, msg.Text, tt.want)
		}
		if msg.ChatID != 99 {
			t.Errorf("%s: ChatID = %d, want 99", tt.text, msg.ChatID)
		}
	}
}

func TestParseReportArgs(t *testing.T) {
	tests := []struct {
		args     string
		team     string
		matchday int
	}{
		{args: "", team: "", matchday: 0},
		{args: "Real United", team: "Real United", matchday: 0},
		{args: "Real United 7", team: "Real United", matchday: 7},
		{args: "1860", team: "1860", matchday: 0},
	}
	for _, tt := range tests {
		team, md := parseReportArgs(tt.args)
		if team != tt.team || md != tt.matchday {
			t.Errorf("parseReportArgs(%q) = %q, %d, want %q, %d", tt.args, team, md, tt.team, tt.matchday)
		}
	}
}
