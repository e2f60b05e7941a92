package yt

import (
	"context"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// defaultLanguage is requested when the caller does not name one.
const defaultLanguage = "en"

// FetchTranscript runs the full pipeline for one video reference:
// normalize → bootstrap → encode params → API call → decode.
// At most two network round trips; no stage retries.
func FetchTranscript(ctx context.Context, ref, lang string) (*TranscriptResult, error) {
	if lang == "" {
		lang = defaultLanguage
	}

	videoID, err := NormalizeVideoID(ref)
	if err != nil {
		return nil, err
	}

	bs, err := FetchBootstrap(ctx, videoID)
	if err != nil {
		return nil, err
	}

	body, err := CallTranscriptAPI(ctx, TranscriptRequest{
		VideoID:       videoID,
		Params:        EncodeTranscriptParams(videoID, lang),
		VisitorToken:  bs.VisitorToken,
		ClientVersion: bs.ClientVersion,
		Language:      lang,
	})
	if err != nil {
		return nil, err
	}

	dec, err := DecodeTranscript(body)
	if err != nil {
		engine.IncrDecodeError()
		return nil, err
	}

	served := dec.ServedLanguage
	if served == "" {
		// No language menu in the response; trust the request.
		served = lang
	}

	return &TranscriptResult{
		VideoID:         videoID,
		Lines:           dec.Lines,
		Language:        served,
		AvailableTracks: dec.AvailableTracks,
		AdChapters:      dec.AdChapters,
		ChapterCount:    dec.ChapterCount,
		Metadata:        mergeMetadata(dec.Metadata, bs.Meta),
	}, nil
}

// mergeMetadata prefers API-sourced fields, falling back to values
// scraped from the watch page.
func mergeMetadata(api, page VideoMetadata) VideoMetadata {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return VideoMetadata{
		Title:           pick(api.Title, page.Title),
		Author:          pick(api.Author, page.Author),
		SubscriberCount: pick(api.SubscriberCount, page.SubscriberCount),
		ViewCount:       pick(api.ViewCount, page.ViewCount),
		PublishDate:     pick(api.PublishDate, page.PublishDate),
	}
}
