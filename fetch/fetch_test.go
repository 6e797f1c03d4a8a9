package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tsawler/ae7q"
	"github.com/tsawler/ae7q/internal/config"
)

func TestClient_URL(t *testing.T) {
	c := &Client{}

	tests := []struct {
		kind  ae7q.Kind
		query string
		want  string
	}{
		{ae7q.CallQuery, "kn8u", "http://ae7q.com/query/data/CallHistory.php?CALL=kn8u"},
		{ae7q.FrnQuery, "0016605636", "http://ae7q.com/query/data/FrnHistory.php?FRN=0016605636"},
		{ae7q.LicenseeQuery, "L01295086", "http://ae7q.com/query/data/LicenseeIdHistory.php?ID=L01295086"},
		{ae7q.ApplicationQuery, "0008963527", "http://ae7q.com/query/data/AppDetail.php?UFN=0008963527"},
		{ae7q.CallQuery, "a b&c", "http://ae7q.com/query/data/CallHistory.php?CALL=a+b%26c"},
	}

	for _, tt := range tests {
		got, err := c.URL(tt.kind, tt.query)
		if err != nil {
			t.Errorf("URL(%v, %q) error: %v", tt.kind, tt.query, err)
			continue
		}
		if got != tt.want {
			t.Errorf("URL(%v, %q) = %q, want %q", tt.kind, tt.query, got, tt.want)
		}
	}
}

func TestClient_URL_BaseWithoutSlash(t *testing.T) {
	c := &Client{BaseURL: "http://localhost:9000/q"}
	got, _ := c.URL(ae7q.FrnQuery, "1")
	if got != "http://localhost:9000/q/data/FrnHistory.php?FRN=1" {
		t.Errorf("URL() = %q", got)
	}
}

func TestClient_URL_UnknownKind(t *testing.T) {
	_, err := (&Client{}).URL(ae7q.Kind(9), "x")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("CALL")
		gotAgent = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
		// "Québec" in ISO-8859-1
		w.Write([]byte("<html><head><title>KN8U</title></head><body>" +
			"<table class=\"Database\"><tr><td>Qu\xe9bec</td></tr></table>" +
			"<table class=\"Other\"><tr><td>skip</td></tr></table></body></html>"))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/query/"
	cfg.UserAgent = "test-agent"
	c := New(cfg)

	doc, err := c.Fetch(context.Background(), ae7q.CallQuery, "kn8u")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	defer doc.Close()

	if gotPath != "/query/data/CallHistory.php" || gotQuery != "kn8u" {
		t.Errorf("request = %s ?CALL=%s", gotPath, gotQuery)
	}
	if gotAgent != "test-agent" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if doc.Title() != "KN8U" {
		t.Errorf("Title() = %q", doc.Title())
	}

	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if got := tables[0].Rows[0][0].Text; got != "Québec" {
		t.Errorf("cell = %q, want Québec", got)
	}
}

func TestClient_Fetch_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Fetch(context.Background(), ae7q.FrnQuery, "1")

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d", se.StatusCode)
	}
}

func TestClient_Fetch_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := (&Client{BaseURL: srv.URL}).Fetch(ctx, ae7q.CallQuery, "kn8u")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}
