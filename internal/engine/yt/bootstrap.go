package yt

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const (
	watchURLBase = "https://www.youtube.com/watch?v="

	// defaultClientVersion is used when the watch page does not expose one.
	defaultClientVersion = "2.20250222.10.00"

	watchPageMaxBytes = 6 * 1024 * 1024
)

var (
	visitorDataRE     = regexp.MustCompile(`"visitorData":"([^"]+)"`)
	clientVersionRE   = regexp.MustCompile(`"clientVersion":"([0-9.]+)"`)
	subscriberCountRE = regexp.MustCompile(`"subscriberCountText":\{"simpleText":"([^"]+)"`)
)

// Bootstrap is the anonymous session context scraped from the watch page.
type Bootstrap struct {
	VisitorToken  string
	ClientVersion string
	Meta          VideoMetadata
}

// FetchBootstrap GETs the video's watch page and extracts the visitor
// token, the Innertube client version, and best-effort page metadata.
// A missing visitor token degrades the later API call but is not fatal.
func FetchBootstrap(ctx context.Context, videoID string) (Bootstrap, error) {
	engine.IncrBootstrap()
	body, err := fetchWatchPage(ctx, watchURLBase+url.QueryEscape(videoID))
	if err != nil {
		engine.IncrBootstrapError()
		return Bootstrap{}, err
	}
	bs := parseBootstrap(body)
	if bs.VisitorToken == "" {
		slog.Warn("yt: visitorData not found in watch page", slog.String("id", videoID))
	}
	return bs, nil
}

// parseBootstrap extracts the session fields and metadata from watch page HTML.
func parseBootstrap(body []byte) Bootstrap {
	bs := Bootstrap{ClientVersion: defaultClientVersion}
	if m := visitorDataRE.FindSubmatch(body); len(m) >= 2 {
		bs.VisitorToken = string(m[1])
	}
	if m := clientVersionRE.FindSubmatch(body); len(m) >= 2 {
		bs.ClientVersion = string(m[1])
	}
	bs.Meta = scrapePageMeta(body)
	if m := subscriberCountRE.FindSubmatch(body); len(m) >= 2 {
		bs.Meta.SubscriberCount = string(m[1])
	}
	return bs
}

func fetchWatchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if err := engine.WaitLimiter(ctx); err != nil {
		return nil, engine.Wrap(engine.KindNetwork, "rate limiter", err)
	}

	// Prefer the Chrome-fingerprint client when configured; YouTube is
	// less likely to serve a consent interstitial to it.
	if bc := engine.Cfg.BrowserClient; bc != nil {
		data, _, status, err := bc.Do(http.MethodGet, pageURL, engine.ChromeHeaders(), nil)
		if err != nil {
			return nil, engine.Wrap(engine.KindNetwork, "watch page", err)
		}
		if status < 200 || status > 299 {
			return nil, engine.Errf(engine.KindNetwork, "watch page: HTTP %d", status)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, engine.Wrap(engine.KindNetwork, "watch page request", err)
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, engine.Wrap(engine.KindNetwork, "watch page", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, engine.Errf(engine.KindNetwork, "watch page: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, watchPageMaxBytes))
	if err != nil {
		return nil, engine.Wrap(engine.KindNetwork, "read watch page", err)
	}
	return body, nil
}

// scrapePageMeta pulls descriptive metadata from the page's meta tags.
// Everything here is best-effort; missing tags yield empty strings.
func scrapePageMeta(body []byte) VideoMetadata {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return VideoMetadata{}
	}
	var md VideoMetadata
	md.Title = firstAttr(doc, `meta[name="title"]`, `meta[property="og:title"]`)
	md.Author = firstAttr(doc, `link[itemprop="name"]`, `meta[itemprop="author"]`)
	md.PublishDate = firstAttr(doc, `meta[itemprop="datePublished"]`, `meta[itemprop="uploadDate"]`)
	md.ViewCount = firstAttr(doc, `meta[itemprop="interactionCount"]`)
	return md
}

func firstAttr(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok && v != "" {
			return v
		}
	}
	return ""
}
