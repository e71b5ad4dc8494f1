package proofread

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheck_EncodesQueryParameters(t *testing.T) {
	var gotAPIKey, gotSentence string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.URL.Query().Get("apikey")
		gotSentence = r.URL.Query().Get("sentence")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":1,"alerts":[{"alertCode":2,"rankingScore":10,"checkedSentence":"昨日は雨でした"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	resp, err := c.Check(context.Background(), "昨日は雨でした")
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}

	if gotAPIKey != "test-key" {
		t.Errorf("apikey = %q, want %q", gotAPIKey, "test-key")
	}
	// Japanese text must survive URL encoding and decoding.
	if gotSentence != "昨日は雨でした" {
		t.Errorf("sentence = %q, want %q", gotSentence, "昨日は雨でした")
	}

	if resp.Status != StatusIssuesFound {
		t.Errorf("Status = %d, want %d", resp.Status, StatusIssuesFound)
	}
	if len(resp.Alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(resp.Alerts))
	}
	alert := resp.Alerts[0]
	if alert.AlertCode != 2 || alert.RankingScore != 10 || alert.CheckedSentence != "昨日は雨でした" {
		t.Errorf("unexpected alert: %+v", alert)
	}
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Check(context.Background(), "text"); err == nil {
		t.Error("Check() should have returned an error on status 500")
	}
}

func TestCheck_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Check(context.Background(), "text"); err == nil {
		t.Error("Check() should have returned an error on a non-JSON body")
	}
}
