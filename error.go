package tabelle

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Error codes classify every failure the scraper can produce. The fetch
// retry policy and the orchestrator's recovery policy both branch on these
// codes and nothing else.
const (
	ETRANSIENT = "transient" // expected to resolve on retry (timeout, 429, 503)
	EPERMANENT = "permanent" // retrying cannot help (404, 403, malformed URL)
	EMALFORMED = "malformed" // response body is not parseable markup
	ENOTFOUND  = "not_found" // expected page structure absent
	EINVALID   = "invalid"   // invalid input (bad target, bad config)
	EINTERNAL  = "internal"  // unexpected internal error
)

// Error represents an application-specific error with a machine-readable
// code and a human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tabelle error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code, or EINTERNAL for non-nil
// errors that carry no code. Returns the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message. Errors without a code
// report a generic message so internal detail never leaks to output
// boundaries. Returns the empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

// ClassifyStatus maps an HTTP status code to an error code. Success
// statuses map to the empty string. Rate limiting (429) and temporary
// unavailability (503) are the only statuses worth retrying; every other
// error status is treated as permanent, matching the server's semantics
// for not-found and forbidden pages.
func ClassifyStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ""
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return ETRANSIENT
	default:
		return EPERMANENT
	}
}

// Classify maps any error to exactly one code. It is total: every non-nil
// error maps to a code, and it never panics. Errors already carrying a
// code keep it; transport-level failures (timeouts, resets, DNS) classify
// as transient; URL parse failures and canceled contexts as permanent;
// anything unrecognized as internal.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	if errors.Is(err, context.Canceled) {
		return EPERMANENT
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ETRANSIENT
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ETRANSIENT
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Op == "parse" {
			return EPERMANENT
		}
		// Connection refused, reset, DNS failure: the request never got a
		// response, so a retry is worthwhile.
		return ETRANSIENT
	}

	return EINTERNAL
}
