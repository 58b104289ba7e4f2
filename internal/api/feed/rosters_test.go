package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omarshaarawi/coachrank/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPI(NewClient(srv.URL+"/", "secret"))
}

func TestListRosters(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rosters" {
			t.Errorf("path = %s, want /rosters", r.URL.Path)
		}
		if r.URL.Query().Get("from") != "3" || r.URL.Query().Get("to") != "5" {
			t.Errorf("query = %s, want from=3&to=5", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization = %q, want bearer token", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"players":[
			{"team":"Alpha","matchday":3,"name":"Rossi","role":"P","section":"starter","order":1,"raw_score":6.5,"adjusted_score":7},
			{"team":"Alpha","matchday":3,"name":"Bianchi","role":"A","section":"panchina","order":12,"raw_score":null,"adjusted_score":null},
			{"team":"Alpha","matchday":3,"name":"Verdi","role":"D","section":"tribuna","order":20}
		]}`))
	})

	got, err := api.ListRosters(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("ListRosters error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (unknown section skipped)", len(got))
	}
	rossi := got[0]
	if rossi.Role != models.RoleGoalkeeper || rossi.Section != models.SectionStarter {
		t.Errorf("Rossi = %v/%v, want GK/Starter", rossi.Role, rossi.Section)
	}
	if rossi.RawScore == nil || *rossi.RawScore != 6.5 || rossi.Points() != 7 {
		t.Errorf("Rossi scores = %v/%v, want 6.5/7", rossi.RawScore, rossi.AdjustedScore)
	}
	bianchi := got[1]
	if bianchi.Section != models.SectionBench || bianchi.RawScore != nil || bianchi.AdjustedScore != nil {
		t.Errorf("Bianchi = %+v, want unrated bench player", bianchi)
	}
}

func TestListRosters_BadStatus(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := api.ListRosters(context.Background(), 1, 1); err == nil {
		t.Error("ListRosters should fail on 502")
	}
}

func TestLatestMatchday(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matchdays/latest" {
			t.Errorf("path = %s, want /matchdays/latest", r.URL.Path)
		}
		w.Write([]byte(`{"matchday": 7}`))
	})

	got, err := api.LatestMatchday(context.Background())
	if err != nil {
		t.Fatalf("LatestMatchday error: %v", err)
	}
	if got != 7 {
		t.Errorf("LatestMatchday = %d, want 7", got)
	}
}
