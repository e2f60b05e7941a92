package yt

import (
	"fmt"
	"strings"
)

// FormatLines renders caption lines as one string. Plain mode joins
// trimmed lines with spaces; timestamped mode prefixes each line with
// its start time and joins with newlines. Empty lines are dropped.
func FormatLines(lines []CaptionLine, withTimestamps bool) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if text == "" {
			continue
		}
		if withTimestamps {
			text = formatTimestamp(l.Start) + " " + text
		}
		parts = append(parts, text)
	}
	sep := " "
	if withTimestamps {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}

// formatTimestamp renders [M:SS] under one hour and [H:MM:SS] from one
// hour up; minutes and hours unpadded, trailing units two-digit.
func formatTimestamp(startSeconds float64) string {
	total := int(startSeconds)
	if total >= 3600 {
		return fmt.Sprintf("[%d:%02d:%02d]", total/3600, total%3600/60, total%60)
	}
	return fmt.Sprintf("[%d:%02d]", total/60, total%60)
}
