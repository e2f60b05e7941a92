package yt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const (
	getTranscriptURL = "https://www.youtube.com/youtubei/v1/get_transcript"

	// The request presents as the mobile web client. The desktop WEB
	// client trips a server-side verification gate on this endpoint;
	// MWEB does not. Do not "fix" this back to WEB.
	mobileClientName   = "MWEB"
	mobileClientNameID = "2"
	mobileUserAgent    = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_7_10 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"

	transcriptMaxBytes = 3 * 1024 * 1024
)

// TranscriptRequest carries everything the /get_transcript call needs.
type TranscriptRequest struct {
	VideoID       string
	Params        string // from EncodeTranscriptParams
	VisitorToken  string // may be empty; the call degrades but proceeds
	ClientVersion string
	Language      string
}

type transcriptReqBody struct {
	Context transcriptCtx `json:"context"`
	Params  string        `json:"params"`
}

type transcriptCtx struct {
	Client transcriptClient `json:"client"`
}

type transcriptClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	VisitorData   string `json:"visitorData,omitempty"`
	Hl            string `json:"hl,omitempty"`
	Gl            string `json:"gl,omitempty"`
}

// CallTranscriptAPI POSTs the encoded params to the transcript endpoint
// and returns the raw JSON body.
func CallTranscriptAPI(ctx context.Context, r TranscriptRequest) ([]byte, error) {
	return postTranscript(ctx, getTranscriptURL, r)
}

func postTranscript(ctx context.Context, endpoint string, r TranscriptRequest) ([]byte, error) {
	engine.IncrTranscript()

	clientVersion := r.ClientVersion
	if clientVersion == "" {
		clientVersion = defaultClientVersion
	}
	payload, err := json.Marshal(transcriptReqBody{
		Context: transcriptCtx{Client: transcriptClient{
			ClientName:    mobileClientName,
			ClientVersion: clientVersion,
			VisitorData:   r.VisitorToken,
			Hl:            r.Language,
			Gl:            "US",
		}},
		Params: r.Params,
	})
	if err != nil {
		engine.IncrTranscriptError()
		return nil, engine.Wrap(engine.KindNetwork, "marshal transcript request", err)
	}

	if err := engine.WaitLimiter(ctx); err != nil {
		engine.IncrTranscriptError()
		return nil, engine.Wrap(engine.KindNetwork, "rate limiter", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?prettyPrint=false", bytes.NewReader(payload))
	if err != nil {
		engine.IncrTranscriptError()
		return nil, engine.Wrap(engine.KindNetwork, "transcript request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", mobileUserAgent)
	req.Header.Set("X-Youtube-Client-Name", mobileClientNameID)
	req.Header.Set("X-Youtube-Client-Version", clientVersion)
	req.Header.Set("Origin", "https://m.youtube.com")
	req.Header.Set("Referer", "https://m.youtube.com/")
	if r.VisitorToken != "" {
		req.Header.Set("X-Goog-Visitor-Id", r.VisitorToken)
	}

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		engine.IncrTranscriptError()
		return nil, engine.Wrap(engine.KindNetwork, "get_transcript", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		engine.IncrTranscriptError()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, engine.Errf(engine.KindNetwork, "get_transcript: HTTP %d: %s", resp.StatusCode, engine.CollapseWhitespace(string(snippet)))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, transcriptMaxBytes))
	if err != nil {
		engine.IncrTranscriptError()
		return nil, engine.Wrap(engine.KindNetwork, "read get_transcript response", err)
	}
	return body, nil
}
