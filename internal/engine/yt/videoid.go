package yt

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// videoIDRE matches a bare YouTube video identifier.
var videoIDRE = regexp.MustCompile(`^-?[A-Za-z0-9_-]{10,11}$`)

// NormalizeVideoID resolves a watch URL, short URL, shorts URL, or bare
// identifier into a canonical video ID. URLs must carry an http or
// https scheme; scheme-less references like "youtube.com/watch?v=..."
// are rejected as invalid.
func NormalizeVideoID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", engine.Errf(engine.KindInvalidArgument, "empty video reference")
	}

	if u, err := url.Parse(s); err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https") {
		return idFromURL(u)
	}

	if videoIDRE.MatchString(s) {
		return s, nil
	}
	return "", engine.Errf(engine.KindInvalidArgument, "not a YouTube URL or video ID: %q", s)
}

func idFromURL(u *url.URL) (string, error) {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	if host == "youtu.be" {
		id := firstPathSegment(u.Path)
		if videoIDRE.MatchString(id) {
			return id, nil
		}
		return "", engine.Errf(engine.KindInvalidArgument, "no video ID in short URL %q", u.String())
	}

	if v := u.Query().Get("v"); v != "" {
		if videoIDRE.MatchString(v) {
			return v, nil
		}
		return "", engine.Errf(engine.KindInvalidArgument, "malformed video ID %q in URL", v)
	}
	if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
		id := firstPathSegment(rest)
		if videoIDRE.MatchString(id) {
			return id, nil
		}
		return "", engine.Errf(engine.KindInvalidArgument, "no video ID in shorts URL %q", u.String())
	}
	return "", engine.Errf(engine.KindInvalidArgument, "no video ID in URL %q", u.String())
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
