package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ToolCalls          atomic.Int64
	BootstrapRequests  atomic.Int64
	BootstrapErrors    atomic.Int64
	TranscriptRequests atomic.Int64
	TranscriptErrors   atomic.Int64
	DecodeErrors       atomic.Int64
	AdLinesRemoved     atomic.Int64
}

func IncrToolCall()           { metrics.ToolCalls.Add(1) }
func IncrBootstrap()          { metrics.BootstrapRequests.Add(1) }
func IncrBootstrapError()     { metrics.BootstrapErrors.Add(1) }
func IncrTranscript()         { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptError()    { metrics.TranscriptErrors.Add(1) }
func IncrDecodeError()        { metrics.DecodeErrors.Add(1) }
func AddAdLinesRemoved(n int) { metrics.AdLinesRemoved.Add(int64(n)) }

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"tool_calls":          metrics.ToolCalls.Load(),
		"bootstrap_requests":  metrics.BootstrapRequests.Load(),
		"bootstrap_errors":    metrics.BootstrapErrors.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"transcript_errors":   metrics.TranscriptErrors.Load(),
		"decode_errors":       metrics.DecodeErrors.Load(),
		"ad_lines_removed":    metrics.AdLinesRemoved.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	snapshot := GetMetrics()
	keys := []string{
		"tool_calls",
		"bootstrap_requests",
		"bootstrap_errors",
		"transcript_requests",
		"transcript_errors",
		"decode_errors",
		"ad_lines_removed",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, snapshot[k])
	}
	return sb.String()
}
