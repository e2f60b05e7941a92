package yt

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Wire types for the /get_transcript envelope. Two segment shapes exist
// in the wild: web responses nest the segment list under
// transcriptSearchPanelRenderer, mobile responses hang it directly off
// the transcript renderer body. Both are tried in order.

type apiEnvelope struct {
	Error          *apiError       `json:"error"`
	Actions        []apiAction     `json:"actions"`
	PlayerOverlays *playerOverlays `json:"playerOverlays"`
	VideoDetails   *videoDetails   `json:"videoDetails"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiAction struct {
	UpdateEngagementPanelAction *struct {
		Content struct {
			TranscriptRenderer struct {
				// web shape
				Content struct {
					TranscriptSearchPanelRenderer struct {
						Body   segmentListBody   `json:"body"`
						Footer *transcriptFooter `json:"footer"`
					} `json:"transcriptSearchPanelRenderer"`
				} `json:"content"`
				// mobile shape
				Body   segmentListBody   `json:"body"`
				Footer *transcriptFooter `json:"footer"`
			} `json:"transcriptRenderer"`
		} `json:"content"`
	} `json:"updateEngagementPanelAction"`
}

type segmentListBody struct {
	TranscriptSegmentListRenderer struct {
		InitialSegments []transcriptSegment `json:"initialSegments"`
	} `json:"transcriptSegmentListRenderer"`
}

// transcriptSegment is one entry of the segment list. Entries without a
// segment renderer (section headers) carry no caption payload.
type transcriptSegment struct {
	TranscriptSegmentRenderer *struct {
		StartMs string         `json:"startMs"`
		EndMs   string         `json:"endMs"`
		Snippet segmentSnippet `json:"snippet"`
	} `json:"transcriptSegmentRenderer"`
}

type segmentSnippet struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
	// mobile responses use a single attributed string instead of runs
	Content string `json:"content"`
}

type transcriptFooter struct {
	TranscriptFooterRenderer struct {
		LanguageMenu struct {
			SortFilterSubMenuRenderer struct {
				SubMenuItems []struct {
					Title        string `json:"title"`
					Selected     bool   `json:"selected"`
					LanguageCode string `json:"languageCode"`
				} `json:"subMenuItems"`
			} `json:"sortFilterSubMenuRenderer"`
		} `json:"languageMenu"`
	} `json:"transcriptFooterRenderer"`
}

type playerOverlays struct {
	PlayerOverlayRenderer struct {
		DecoratedPlayerBarRenderer struct {
			DecoratedPlayerBar struct {
				MultiMarkersPlayerBarRenderer struct {
					MarkersMap []struct {
						Value struct {
							Chapters []struct {
								ChapterRenderer struct {
									Title struct {
										SimpleText string `json:"simpleText"`
									} `json:"title"`
									TimeRangeStartMillis int64 `json:"timeRangeStartMillis"`
								} `json:"chapterRenderer"`
							} `json:"chapters"`
						} `json:"value"`
					} `json:"markersMap"`
				} `json:"multiMarkersPlayerBarRenderer"`
			} `json:"decoratedPlayerBar"`
		} `json:"decoratedPlayerBarRenderer"`
	} `json:"playerOverlayRenderer"`
}

type videoDetails struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ViewCount string `json:"viewCount"`
}

// Decoded is the decoder's output for one API response.
type Decoded struct {
	Lines           []CaptionLine
	ServedLanguage  string // empty when the footer menu is absent
	AvailableTracks []LanguageTrack
	AdChapters      []AdChapter
	ChapterCount    int
	Metadata        VideoMetadata
}

// segmentExtractors are the known response shapes, tried in order;
// the first one that yields caption lines wins.
var segmentExtractors = []func(a apiAction) []transcriptSegment{
	webSegments,
	mobileSegments,
}

// DecodeTranscript parses a raw /get_transcript body into caption
// lines, available tracks, sponsor chapters, and metadata.
func DecodeTranscript(body []byte) (Decoded, error) {
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Decoded{}, engine.Errf(engine.KindParse, "invalid JSON (%v): %s", err, engine.Preview(body, 200))
	}

	if env.Error != nil {
		return Decoded{}, engine.Errf(engine.KindAPI, "%s", apiErrorMessage(env.Error))
	}

	var dec Decoded

	for _, extract := range segmentExtractors {
		var segments []transcriptSegment
		for _, a := range env.Actions {
			segments = append(segments, extract(a)...)
		}
		if lines := buildLines(segments); len(lines) > 0 {
			dec.Lines = lines
			break
		}
	}
	if len(dec.Lines) == 0 {
		return Decoded{}, engine.Errf(engine.KindNoTranscript, "no transcript segments in response")
	}

	dec.ServedLanguage, dec.AvailableTracks = extractLanguages(env.Actions)
	dec.AdChapters, dec.ChapterCount = extractAdChapters(env.PlayerOverlays)
	if env.VideoDetails != nil {
		dec.Metadata = VideoMetadata{
			Title:     env.VideoDetails.Title,
			Author:    env.VideoDetails.Author,
			ViewCount: env.VideoDetails.ViewCount,
		}
	}
	return dec, nil
}

func apiErrorMessage(e *apiError) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != 0 {
		return "code " + strconv.Itoa(e.Code)
	}
	return "transcript API returned an error"
}

// buildLines converts raw segment entries into caption lines, skipping
// section headers, malformed offsets, and empty text.
func buildLines(segments []transcriptSegment) []CaptionLine {
	var lines []CaptionLine
	for _, seg := range segments {
		r := seg.TranscriptSegmentRenderer
		if r == nil {
			continue // section header entry, no caption payload
		}
		text := snippetText(r.Snippet)
		if strings.TrimSpace(text) == "" {
			continue
		}
		startMs, err1 := strconv.ParseInt(r.StartMs, 10, 64)
		endMs, err2 := strconv.ParseInt(r.EndMs, 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		lines = append(lines, CaptionLine{
			Text:     text,
			Start:    float64(startMs) / 1000,
			Duration: float64(endMs-startMs) / 1000,
		})
	}
	return lines
}

func webSegments(a apiAction) []transcriptSegment {
	if a.UpdateEngagementPanelAction == nil {
		return nil
	}
	return a.UpdateEngagementPanelAction.Content.TranscriptRenderer.Content.
		TranscriptSearchPanelRenderer.Body.TranscriptSegmentListRenderer.InitialSegments
}

func mobileSegments(a apiAction) []transcriptSegment {
	if a.UpdateEngagementPanelAction == nil {
		return nil
	}
	return a.UpdateEngagementPanelAction.Content.TranscriptRenderer.
		Body.TranscriptSegmentListRenderer.InitialSegments
}

// snippetText joins run fragments (web shape) or falls back to the
// attributed-string content field (mobile shape). A runs array holding
// only blanks does not shadow a populated content field.
func snippetText(s segmentSnippet) string {
	parts := make([]string, 0, len(s.Runs))
	for _, run := range s.Runs {
		if run.Text != "" {
			parts = append(parts, run.Text)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return s.Content
}

func extractLanguages(actions []apiAction) (served string, tracks []LanguageTrack) {
	for _, a := range actions {
		if a.UpdateEngagementPanelAction == nil {
			continue
		}
		tr := a.UpdateEngagementPanelAction.Content.TranscriptRenderer
		footer := tr.Content.TranscriptSearchPanelRenderer.Footer
		if footer == nil {
			footer = tr.Footer
		}
		if footer == nil {
			continue
		}
		for _, item := range footer.TranscriptFooterRenderer.LanguageMenu.SortFilterSubMenuRenderer.SubMenuItems {
			if item.LanguageCode == "" {
				continue
			}
			tracks = append(tracks, LanguageTrack{Code: item.LanguageCode})
			if item.Selected {
				served = item.LanguageCode
			}
		}
		if len(tracks) > 0 {
			return served, tracks
		}
	}
	return "", nil
}

// extractAdChapters flattens the chapter markers and keeps the
// sponsor-labeled ones. A chapter ends where the next one starts; the
// last chapter is open-ended.
func extractAdChapters(po *playerOverlays) ([]AdChapter, int) {
	if po == nil {
		return nil, 0
	}
	type chapter struct {
		title   string
		startMs int64
	}
	var all []chapter
	for _, m := range po.PlayerOverlayRenderer.DecoratedPlayerBarRenderer.DecoratedPlayerBar.
		MultiMarkersPlayerBarRenderer.MarkersMap {
		for _, c := range m.Value.Chapters {
			all = append(all, chapter{
				title:   c.ChapterRenderer.Title.SimpleText,
				startMs: c.ChapterRenderer.TimeRangeStartMillis,
			})
		}
	}
	var ads []AdChapter
	for i, c := range all {
		if !isSponsorTitle(c.title) {
			continue
		}
		endMs := int64(math.MaxInt64)
		if i+1 < len(all) {
			endMs = all[i+1].startMs
		}
		ads = append(ads, AdChapter{Title: c.title, StartMs: c.startMs, EndMs: endMs})
	}
	return ads, len(all)
}
