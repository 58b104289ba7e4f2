package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	Source      Source
	Engine      Engine
	Scheduler   Scheduler
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":80"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

// Source selects where roster records are read from: "postgres" or "feed".
type Source struct {
	Kind        string `envconfig:"ROSTER_SOURCE" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	FeedBaseURL string `envconfig:"FEED_BASE_URL"`
	FeedToken   string `envconfig:"FEED_TOKEN"`
}

type Engine struct {
	SearchNodeBudget int           `envconfig:"ENGINE_SEARCH_NODE_BUDGET" default:"65536"`
	CacheTTL         time.Duration `envconfig:"CACHE_TTL" default:"10m"`
}

type Scheduler struct {
	ReportCron    string `envconfig:"REPORT_CRON" default:"30 7 * * 2"`
	Timezone      string `envconfig:"REPORT_TIMEZONE" default:"Europe/Rome"`
	FirstMatchday int    `envconfig:"FIRST_MATCHDAY" default:"1"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
