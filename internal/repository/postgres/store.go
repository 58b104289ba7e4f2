package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/omarshaarawi/coachrank/internal/models"
)

// Store reads roster submissions from the roster_entries table. It never
// writes.
type Store struct {
	db *sql.DB
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const listRostersQuery = `
	SELECT team, matchday, player_name, role_code, section, sort_order, raw_score, adjusted_score
	FROM roster_entries
	WHERE matchday BETWEEN $1 AND $2
	ORDER BY team, matchday, sort_order`

func (s *Store) ListRosters(ctx context.Context, from, to int) ([]models.PlayerRecord, error) {
	rows, err := s.db.QueryContext(ctx, listRostersQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters: %w", err)
	}
	defer rows.Close()

	var players []models.PlayerRecord
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.team, &r.matchday, &r.name, &r.roleCode, &r.section, &r.order, &r.raw, &r.adjusted); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		p, ok := r.record()
		if !ok {
			slog.Warn("Skipping roster entry with unknown section", "team", r.team, "matchday", r.matchday, "player", r.name, "section", r.section)
			continue
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster rows: %w", err)
	}
	return players, nil
}

func (s *Store) LatestMatchday(ctx context.Context) (int, error) {
	var latest sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(matchday) FROM roster_entries`).Scan(&latest); err != nil {
		return 0, fmt.Errorf("failed to query latest matchday: %w", err)
	}
	return int(latest.Int64), nil
}

type row struct {
	team     string
	matchday int
	name     string
	roleCode string
	section  string
	order    int
	raw      sql.NullFloat64
	adjusted sql.NullFloat64
}

func (r row) record() (models.PlayerRecord, bool) {
	section, ok := models.ParseSection(r.section)
	if !ok {
		return models.PlayerRecord{}, false
	}
	return models.PlayerRecord{
		Team:          r.team,
		Matchday:      r.matchday,
		Name:          r.name,
		Role:          models.ParseRole(r.roleCode),
		Section:       section,
		Order:         r.order,
		RawScore:      nullableScore(r.raw),
		AdjustedScore: nullableScore(r.adjusted),
	}, true
}

func nullableScore(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return models.Score(v.Float64)
}
