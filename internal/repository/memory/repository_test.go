package memory

import (
	"testing"
	"time"

	"github.com/omarshaarawi/coachrank/internal/models"
)

func newTestCache(ttl time.Duration, clock *time.Time) *RosterCache {
	c := NewRosterCache(ttl)
	c.now = func() time.Time { return *clock }
	return c
}

func TestRosterCache_SaveAndGet(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Minute, &clock)

	c.Save(1, 5, []models.PlayerRecord{{Name: "Rossi"}})

	got, ok := c.Get(1, 5)
	if !ok {
		t.Fatal("Get(1, 5) missed, want hit")
	}
	if len(got) != 1 || got[0].Name != "Rossi" {
		t.Errorf("Get(1, 5) = %+v, want [Rossi]", got)
	}
	if _, ok := c.Get(1, 6); ok {
		t.Error("Get(1, 6) hit, want miss for a different range")
	}
}

func TestRosterCache_Expires(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Minute, &clock)
	c.Save(1, 5, []models.PlayerRecord{{Name: "Rossi"}})

	clock = clock.Add(61 * time.Second)

	if _, ok := c.Get(1, 5); ok {
		t.Error("Get after ttl hit, want miss")
	}
}

func TestRosterCache_Invalidate(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Hour, &clock)
	c.Save(1, 5, []models.PlayerRecord{{Name: "Rossi"}})

	c.Invalidate()

	if _, ok := c.Get(1, 5); ok {
		t.Error("Get after Invalidate hit, want miss")
	}
}

func TestRosterCache_ReturnsCopy(t *testing.T) {
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Hour, &clock)
	c.Save(1, 5, []models.PlayerRecord{{Name: "Rossi"}})

	got, _ := c.Get(1, 5)
	got[0].Name = "Bianchi"

	again, _ := c.Get(1, 5)
	if again[0].Name != "Rossi" {
		t.Errorf("cached name = %s, want Rossi", again[0].Name)
	}
}
