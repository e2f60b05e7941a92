package yt

import (
	"encoding/base64"
	"net/url"
)

// Params blob for /get_transcript: two nested protobuf-style records,
// built by hand. The schema is fixed and tiny, so a purpose-built byte
// builder beats a codec dependency here.

// transcriptPanel is the engagement panel the transcript endpoint expects.
const transcriptPanel = "engagement-panel-searchable-transcript-search-panel"

// appendVarint appends v in base-128 varint form: 7 bits per byte,
// continuation bit set on all but the last byte.
func appendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// appendBytesField appends a length-delimited field: tag byte
// (field<<3 | 2), varint length, raw bytes.
func appendBytesField(b []byte, field int, data []byte) []byte {
	b = append(b, byte(field<<3|2))
	b = appendVarint(b, uint64(len(data)))
	return append(b, data...)
}

// appendVarintField appends a varint-typed field: tag byte
// (field<<3 | 0), varint value.
func appendVarintField(b []byte, field int, v uint64) []byte {
	b = append(b, byte(field<<3))
	return appendVarint(b, v)
}

// EncodeTranscriptParams serializes (videoID, lang) into the base64
// params value /get_transcript expects. Deterministic; inputs are
// validated by the caller.
func EncodeTranscriptParams(videoID, lang string) string {
	if lang == "" {
		lang = defaultLanguage
	}

	var inner []byte
	inner = appendBytesField(inner, 1, []byte("asr"))
	inner = appendBytesField(inner, 2, []byte(lang))
	inner = appendBytesField(inner, 3, nil)

	// The inner record rides inside the outer one base64'd and
	// percent-escaped, exactly as the web client sends it.
	escaped := url.QueryEscape(base64.StdEncoding.EncodeToString(inner))

	var outer []byte
	outer = appendBytesField(outer, 1, []byte(videoID))
	outer = appendBytesField(outer, 2, []byte(escaped))
	outer = appendVarintField(outer, 3, 1)
	outer = appendBytesField(outer, 5, []byte(transcriptPanel))
	outer = appendVarintField(outer, 6, 1)
	outer = appendVarintField(outer, 7, 1)
	outer = appendVarintField(outer, 8, 1)

	return base64.StdEncoding.EncodeToString(outer)
}
