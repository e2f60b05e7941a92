package yt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

func TestPostTranscript(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second})

	var (
		gotMethod  string
		gotHeaders http.Header
		gotBody    transcriptReqBody
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeaders = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"actions": []}`))
	}))
	defer srv.Close()

	body, err := postTranscript(context.Background(), srv.URL, TranscriptRequest{
		VideoID:       "dQw4w9WgXcQ",
		Params:        "UEFSQU1T",
		VisitorToken:  "VISITOR",
		ClientVersion: "2.20260801.01.00",
		Language:      "ko",
	})
	if err != nil {
		t.Fatalf("postTranscript() error = %v", err)
	}
	if string(body) != `{"actions": []}` {
		t.Errorf("body = %q", body)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if got := gotHeaders.Get("X-Youtube-Client-Name"); got != "2" {
		t.Errorf("client name header = %q, want mobile web (2)", got)
	}
	if got := gotHeaders.Get("X-Goog-Visitor-Id"); got != "VISITOR" {
		t.Errorf("visitor header = %q", got)
	}
	if got := gotHeaders.Get("User-Agent"); got != mobileUserAgent {
		t.Errorf("user agent = %q, want mobile UA", got)
	}

	if gotBody.Params != "UEFSQU1T" {
		t.Errorf("payload params = %q", gotBody.Params)
	}
	c := gotBody.Context.Client
	if c.ClientName != "MWEB" {
		t.Errorf("clientName = %q, want MWEB", c.ClientName)
	}
	if c.ClientVersion != "2.20260801.01.00" {
		t.Errorf("clientVersion = %q", c.ClientVersion)
	}
	if c.VisitorData != "VISITOR" {
		t.Errorf("visitorData = %q", c.VisitorData)
	}
	if c.Hl != "ko" {
		t.Errorf("hl = %q, want ko", c.Hl)
	}
}

func TestPostTranscriptEmptyVisitorToken(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second})

	var gotVisitorHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotVisitorHeader = r.Header[http.CanonicalHeaderKey("X-Goog-Visitor-Id")]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// A missing visitor token degrades the call but must not fail it.
	_, err := postTranscript(context.Background(), srv.URL, TranscriptRequest{
		VideoID: "dQw4w9WgXcQ",
		Params:  "UEFSQU1T",
	})
	if err != nil {
		t.Fatalf("postTranscript() error = %v", err)
	}
	if gotVisitorHeader {
		t.Error("visitor header sent despite empty token")
	}
}

func TestPostTranscriptHTTPError(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := postTranscript(context.Background(), srv.URL, TranscriptRequest{
		VideoID: "dQw4w9WgXcQ",
		Params:  "UEFSQU1T",
	})
	if err == nil {
		t.Fatal("expected error for HTTP 429")
	}
	if engine.KindOf(err) != engine.KindNetwork {
		t.Errorf("error kind = %q, want network_error", engine.KindOf(err))
	}
}
