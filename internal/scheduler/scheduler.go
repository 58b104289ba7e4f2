package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// RankingReporter produces the season ranking message.
type RankingReporter interface {
	GetSeasonRanking(ctx context.Context) (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	reporter    RankingReporter
	sendMessage func(string) error
	cron        string
}

func NewScheduler(reporter RankingReporter, sendMessage func(string) error, cron, timezone string) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reporter:    reporter,
		sendMessage: sendMessage,
		cron:        cron,
	}, nil
}

func (s *Scheduler) Start() error {
	// Ranking after each matchday has been rated.
	_, err := s.s.NewJob(
		gocron.CronJob(s.cron, false),
		gocron.NewTask(s.sendRanking),
		gocron.WithName("ranking"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ranking job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendRanking() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ranking, err := s.reporter.GetSeasonRanking(ctx)
	if err != nil {
		slog.Error("Failed to get ranking", "error", err)
		return
	}
	if err := s.sendMessage(ranking); err != nil {
		slog.Error("Failed to send ranking", "error", err)
	}
}
