package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/coachrank/internal/service"
)

type Handler struct {
	coachService *service.CoachService
}

func NewHandler(coachService *service.CoachService) *Handler {
	return &Handler{coachService: coachService}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to CoachRank! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/ranking [from] [to] - Coach efficiency ranking\n/report <team> [matchday] - Deployed vs optimal lineup\n/teams - Teams with a roster this matchday\n/refresh - Reload rosters from the source"
	case "ranking":
		h.handleRanking(ctx, &msg, args)
	case "report":
		h.handleReport(ctx, &msg, args)
	case "teams":
		h.handleTeams(ctx, &msg)
	case "refresh":
		h.coachService.Refresh()
		msg.Text = "Rosters will be reloaded on the next request."
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleRanking(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	var from, to int
	var err error
	switch len(fields) {
	case 0:
	case 1:
		if from, err = strconv.Atoi(fields[0]); err != nil {
			msg.Text = "Usage: /ranking [from] [to]"
			return
		}
		to = from
	default:
		from, err = strconv.Atoi(fields[0])
		if err == nil {
			to, err = strconv.Atoi(fields[1])
		}
		if err != nil {
			msg.Text = "Usage: /ranking [from] [to]"
			return
		}
	}

	ranking, err := h.coachService.GetRanking(ctx, from, to)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching ranking: %v", err)
	} else {
		msg.Text = ranking
	}
}

func (h *Handler) handleReport(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	teamName, matchday := parseReportArgs(args)
	if teamName == "" {
		msg.Text = "Please provide a team name. Usage: /report <team> [matchday]"
		return
	}

	report, err := h.coachService.GetTeamReport(ctx, teamName, matchday)
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		msg.Text = fmt.Sprintf("🔍 No team found matching '%s'.", teamName)
	case errors.Is(err, service.ErrNoReport):
		msg.Text = fmt.Sprintf("Nothing to analyze for %s yet.", teamName)
	case err != nil:
		msg.Text = fmt.Sprintf("Error generating report: %v", err)
	default:
		msg.Text = report
	}
}

func (h *Handler) handleTeams(ctx context.Context, msg *tgbotapi.MessageConfig) {
	teams, err := h.coachService.GetTeams(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching teams: %v", err)
	} else {
		msg.Text = teams
	}
}

// parseReportArgs splits "<team name> [matchday]"; a trailing number is the
// matchday, zero meaning the current one.
func parseReportArgs(args string) (string, int) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", 0
	}
	if md, err := strconv.Atoi(fields[len(fields)-1]); err == nil && len(fields) > 1 {
		return strings.Join(fields[:len(fields)-1], " "), md
	}
	return strings.Join(fields, " "), 0
}
