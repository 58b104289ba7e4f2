package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/coachrank/internal/api/feed"
	"github.com/omarshaarawi/coachrank/internal/bot"
	"github.com/omarshaarawi/coachrank/internal/config"
	"github.com/omarshaarawi/coachrank/internal/efficiency"
	"github.com/omarshaarawi/coachrank/internal/repository/memory"
	"github.com/omarshaarawi/coachrank/internal/repository/postgres"
	"github.com/omarshaarawi/coachrank/internal/scheduler"
	"github.com/omarshaarawi/coachrank/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newRosterSource(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer closeSource()

	cache := memory.NewRosterCache(cfg.Engine.CacheTTL)
	calc := efficiency.NewCalculator(cfg.Engine.SearchNodeBudget)
	coachService := service.NewCoachService(source, cache, calc, cfg.Scheduler.FirstMatchday)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, coachService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(coachService, telegramBot.SendMessage, cfg.Scheduler.ReportCron, cfg.Scheduler.Timezone)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(cfg.HTTPAddr, nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func newRosterSource(ctx context.Context, cfg config.Source) (service.RosterSource, func(), error) {
	switch cfg.Kind {
	case "postgres":
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Error("Error closing postgres store", "error", err)
			}
		}, nil
	case "feed":
		if cfg.FeedBaseURL == "" {
			return nil, nil, fmt.Errorf("FEED_BASE_URL is required for the feed source")
		}
		return feed.NewAPI(feed.NewClient(cfg.FeedBaseURL, cfg.FeedToken)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown roster source %q", cfg.Kind)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler).With("service", "coachrank"))
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
