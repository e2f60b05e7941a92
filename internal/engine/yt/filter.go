package yt

import (
	"math"
	"strings"
	"unicode"
)

// sponsorWords flag a chapter title as sponsored/promotional content.
// Matched per word, not by substring, so "Madness" stays clean.
var sponsorWords = map[string]bool{
	"sponsor":       true,
	"sponsors":      true,
	"sponsored":     true,
	"sponsorship":   true,
	"ad":            true,
	"ads":           true,
	"advert":        true,
	"advertisement": true,
	"promo":         true,
	"promotion":     true,
	"promotional":   true,
}

// isSponsorTitle reports whether a chapter title looks like a sponsor
// or promotional segment.
func isSponsorTitle(title string) bool {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if sponsorWords[w] {
			return true
		}
	}
	return false
}

// FilterAdLines drops caption lines whose start falls inside a sponsor
// chapter interval [StartMs, EndMs). Order of survivors is preserved.
// Disabled filtering or an empty chapter list passes lines through.
func FilterAdLines(lines []CaptionLine, chapters []AdChapter, enabled bool) ([]CaptionLine, int) {
	if !enabled || len(chapters) == 0 {
		return lines, 0
	}
	kept := make([]CaptionLine, 0, len(lines))
	removed := 0
	for _, l := range lines {
		if inAdChapter(int64(math.Round(l.Start*1000)), chapters) {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	return kept, removed
}

func inAdChapter(ms int64, chapters []AdChapter) bool {
	for _, c := range chapters {
		if ms >= c.StartMs && ms < c.EndMs {
			return true
		}
	}
	return false
}
