package yt

// CaptionLine is one timed caption unit, ordered by Start as returned
// by the API (never re-sorted).
type CaptionLine struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds
	Duration float64 `json:"duration"` // seconds
}

// LanguageTrack is one available caption language for a video.
type LanguageTrack struct {
	Code string `json:"code"`
}

// AdChapter is a sponsor-labeled chapter interval, half-open [StartMs, EndMs).
type AdChapter struct {
	Title   string `json:"title"`
	StartMs int64  `json:"start_ms"`
	EndMs   int64  `json:"end_ms"`
}

// VideoMetadata is best-effort descriptive data; any field may be empty.
type VideoMetadata struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	SubscriberCount string `json:"subscriber_count"`
	ViewCount       string `json:"view_count"`
	PublishDate     string `json:"publish_date"`
}

// TranscriptResult is the terminal artifact of one pipeline run.
type TranscriptResult struct {
	VideoID         string
	Lines           []CaptionLine
	Language        string // language actually served by the API
	AvailableTracks []LanguageTrack
	AdChapters      []AdChapter
	ChapterCount    int // total chapter markers seen, sponsored or not
	Metadata        VideoMetadata
}
