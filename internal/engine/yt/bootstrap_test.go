package yt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const watchPageSample = `<!DOCTYPE html><html><head>
<meta name="title" content="Test Video">
<meta itemprop="datePublished" content="2026-01-15">
<meta itemprop="interactionCount" content="987654">
<link itemprop="name" content="Test Channel">
</head><body>
<script>var ytcfg = {"INNERTUBE_CONTEXT":{"client":{"visitorData":"CgtBQkNERUZHSElKSw%3D%3D","clientVersion":"2.20260801.01.00"}}};</script>
<script>var ytInitialData = {"owner":{"subscriberCountText":{"simpleText":"1.2M subscribers"}}};</script>
</body></html>`

func TestParseBootstrap(t *testing.T) {
	bs := parseBootstrap([]byte(watchPageSample))

	if bs.VisitorToken != "CgtBQkNERUZHSElKSw%3D%3D" {
		t.Errorf("VisitorToken = %q", bs.VisitorToken)
	}
	if bs.ClientVersion != "2.20260801.01.00" {
		t.Errorf("ClientVersion = %q, want scraped value", bs.ClientVersion)
	}
	if bs.Meta.Title != "Test Video" {
		t.Errorf("Meta.Title = %q", bs.Meta.Title)
	}
	if bs.Meta.Author != "Test Channel" {
		t.Errorf("Meta.Author = %q", bs.Meta.Author)
	}
	if bs.Meta.PublishDate != "2026-01-15" {
		t.Errorf("Meta.PublishDate = %q", bs.Meta.PublishDate)
	}
	if bs.Meta.ViewCount != "987654" {
		t.Errorf("Meta.ViewCount = %q", bs.Meta.ViewCount)
	}
	if bs.Meta.SubscriberCount != "1.2M subscribers" {
		t.Errorf("Meta.SubscriberCount = %q", bs.Meta.SubscriberCount)
	}
}

func TestParseBootstrapMissingToken(t *testing.T) {
	bs := parseBootstrap([]byte(`<html><body>no embedded config here</body></html>`))

	if bs.VisitorToken != "" {
		t.Errorf("VisitorToken = %q, want empty", bs.VisitorToken)
	}
	if bs.ClientVersion != defaultClientVersion {
		t.Errorf("ClientVersion = %q, want default %q", bs.ClientVersion, defaultClientVersion)
	}
}

func TestFetchWatchPage(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second})

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(watchPageSample))
	}))
	defer srv.Close()

	body, err := fetchWatchPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetchWatchPage() error = %v", err)
	}
	if len(body) == 0 {
		t.Fatal("empty body")
	}
	if gotUA == "" {
		t.Error("no User-Agent sent")
	}
}

func TestFetchWatchPageHTTPError(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 5 * time.Second})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetchWatchPage(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for HTTP 404")
	}
	if engine.KindOf(err) != engine.KindNetwork {
		t.Errorf("error kind = %q, want network_error", engine.KindOf(err))
	}
}

func TestFetchWatchPageConnectionError(t *testing.T) {
	engine.Init(engine.Config{FetchTimeout: 2 * time.Second})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := fetchWatchPage(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	if engine.KindOf(err) != engine.KindNetwork {
		t.Errorf("error kind = %q, want network_error", engine.KindOf(err))
	}
}
