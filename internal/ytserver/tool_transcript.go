package ytserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/yt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TranscriptInput struct {
	URL               string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be, or shorts) or a bare 11-character video ID"`
	Lang              string `json:"lang,omitempty" jsonschema:"Preferred caption language code (default: en)"`
	IncludeTimestamps bool   `json:"include_timestamps,omitempty" jsonschema:"Prefix each caption line with its start time, [M:SS] or [H:MM:SS]"`
	StripAds          *bool  `json:"strip_ads,omitempty" jsonschema:"Remove caption lines inside sponsor-labeled chapters (default: true)"`
}

type TranscriptOutput struct {
	VideoID            string   `json:"video_id"`
	Language           string   `json:"language"`
	RequestedLanguage  string   `json:"requested_language"`
	AvailableLanguages []string `json:"available_languages,omitempty"`
	AdLinesRemoved     int      `json:"ad_lines_removed"`
	Transcript         string   `json:"transcript"`
	TranscriptOneline  string   `json:"transcript_oneline"`
	Metadata           string   `json:"metadata"`
}

func registerGetTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Fetch the caption transcript of a YouTube video as plain or timestamped text. Accepts a watch/short/shorts URL or a bare video ID, prefers the requested caption language, and strips sponsor-chapter lines by default. Returns the transcript plus a compact metadata summary (title, author, subscribers, views, date).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
		engine.IncrToolCall()
		if input.URL == "" {
			return nil, TranscriptOutput{}, engine.Errf(engine.KindInvalidArgument, "url is required")
		}
		lang := input.Lang
		if lang == "" {
			lang = "en"
		}
		stripAds := input.StripAds == nil || *input.StripAds

		res, err := yt.FetchTranscript(ctx, input.URL, lang)
		if err != nil {
			slog.Warn("get_transcript failed",
				slog.String("url", input.URL),
				slog.String("kind", string(engine.KindOf(err))),
				slog.Any("error", err))
			return nil, TranscriptOutput{}, err
		}

		lines, removed := yt.FilterAdLines(res.Lines, res.AdChapters, stripAds)
		engine.AddAdLinesRemoved(removed)
		text := yt.FormatLines(lines, input.IncludeTimestamps)
		text = applyNotices(text, res, lang, stripAds, removed)

		out := TranscriptOutput{
			VideoID:            res.VideoID,
			Language:           res.Language,
			RequestedLanguage:  lang,
			AvailableLanguages: trackCodes(res.AvailableTracks),
			AdLinesRemoved:     removed,
			Transcript:         text,
			TranscriptOneline:  engine.CollapseWhitespace(yt.FormatLines(lines, false)),
			Metadata:           metadataSummary(res.Metadata),
		}
		slog.Info("get_transcript served",
			slog.String("id", res.VideoID),
			slog.String("language", res.Language),
			slog.Int("lines", len(lines)),
			slog.Int("ad_lines_removed", removed))
		return nil, out, nil
	})
}

// applyNotices prepends language-fallback and ad-removal notes, and
// appends a manual-exclusion note when filtering was requested but the
// video had no chapter markers at all.
func applyNotices(text string, res *yt.TranscriptResult, requested string, stripAds bool, removed int) string {
	var pre []string
	if res.Language != requested {
		pre = append(pre, fmt.Sprintf("[Requested language %q is not available; showing %q. Available: %s]",
			requested, res.Language, strings.Join(trackCodes(res.AvailableTracks), ", ")))
	}
	if removed > 0 {
		pre = append(pre, fmt.Sprintf("[%d caption lines inside sponsor chapters were removed]", removed))
	}
	if len(pre) > 0 {
		text = strings.Join(pre, "\n") + "\n" + text
	}
	if stripAds && res.ChapterCount == 0 {
		text += "\n[This video has no chapter markers; sponsored content could not be detected. Please exclude it manually.]"
	}
	return text
}

func trackCodes(tracks []yt.LanguageTrack) []string {
	codes := make([]string, 0, len(tracks))
	for _, t := range tracks {
		codes = append(codes, t.Code)
	}
	return codes
}

// metadataSummary renders the compact one-line summary:
// Title | Author | Subs | Views | Date.
func metadataSummary(md yt.VideoMetadata) string {
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return strings.Join([]string{
		orDash(md.Title),
		orDash(md.Author),
		orDash(md.SubscriberCount),
		orDash(md.ViewCount),
		orDash(md.PublishDate),
	}, " | ")
}
