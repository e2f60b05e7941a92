package engine

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so tool callers get a
// machine-readable error category alongside the message.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNetwork         Kind = "network_error"
	KindParse           Kind = "parse_error"
	KindAPI             Kind = "api_error"
	KindNoTranscript    Kind = "no_transcript_available"
)

// Error is a classified pipeline failure. Msg is human-readable;
// Err carries the underlying cause for diagnosis.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Errf builds a classified error with a formatted message.
func Errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and context message to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
