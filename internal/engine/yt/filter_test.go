package yt

import (
	"testing"
)

func TestFilterAdLines(t *testing.T) {
	lines := []CaptionLine{
		{Text: "before", Start: 5, Duration: 2},
		{Text: "at start", Start: 10, Duration: 2}, // exactly chapter start: removed
		{Text: "inside", Start: 15, Duration: 2},
		{Text: "at end", Start: 20, Duration: 2}, // exactly chapter end: kept
		{Text: "after", Start: 25, Duration: 2},
	}
	chapters := []AdChapter{{Title: "Sponsor", StartMs: 10000, EndMs: 20000}}

	got, removed := FilterAdLines(lines, chapters, true)
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	want := []string{"before", "at end", "after"}
	if len(got) != len(want) {
		t.Fatalf("kept %d lines, want %d", len(got), len(want))
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("kept[%d] = %q, want %q (order must be preserved)", i, got[i].Text, text)
		}
	}
}

func TestFilterAdLinesDisabled(t *testing.T) {
	lines := []CaptionLine{{Text: "a", Start: 10}}
	chapters := []AdChapter{{Title: "Sponsor", StartMs: 0, EndMs: 60000}}

	got, removed := FilterAdLines(lines, chapters, false)
	if removed != 0 || len(got) != 1 {
		t.Errorf("disabled filter changed lines: kept=%d removed=%d", len(got), removed)
	}
}

func TestFilterAdLinesNoChapters(t *testing.T) {
	lines := []CaptionLine{{Text: "a", Start: 10}}
	got, removed := FilterAdLines(lines, nil, true)
	if removed != 0 || len(got) != 1 {
		t.Errorf("no-chapter filter changed lines: kept=%d removed=%d", len(got), removed)
	}
}

func TestFilterAdLinesMultipleChapters(t *testing.T) {
	lines := []CaptionLine{
		{Text: "a", Start: 1},
		{Text: "b", Start: 11},
		{Text: "c", Start: 31},
		{Text: "d", Start: 51},
	}
	chapters := []AdChapter{
		{Title: "Sponsor", StartMs: 10000, EndMs: 20000},
		{Title: "Promo", StartMs: 50000, EndMs: 60000},
	}
	got, removed := FilterAdLines(lines, chapters, true)
	if removed != 2 || len(got) != 2 {
		t.Fatalf("kept=%d removed=%d, want kept=2 removed=2", len(got), removed)
	}
	if got[0].Text != "a" || got[1].Text != "c" {
		t.Errorf("kept = %q,%q, want a,c", got[0].Text, got[1].Text)
	}
}

func TestIsSponsorTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Sponsor", true},
		{"SPONSORED SEGMENT", true},
		{"A word from our sponsors", true},
		{"Ad read", true},
		{"Paid promotion", true},
		{"Quick promo", true},
		{"Advertisement", true},
		{"Intro", false},
		{"March Madness", false},
		{"Addendum", false}, // "ad" must not match as a substring
		{"Roadmap", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isSponsorTitle(tt.title); got != tt.want {
			t.Errorf("isSponsorTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
