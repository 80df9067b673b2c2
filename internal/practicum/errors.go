package practicum

import (
	"errors"
	"fmt"
)

// Kind classifies everything that can go wrong between issuing a poll and
// producing a notification text. The poll loop treats all kinds uniformly
// (log + notify + keep going); kinds exist so logs and tests can tell the
// failure modes apart.
type Kind string

const (
	KindServerUnreachable Kind = "server_unreachable"
	KindBadStatus         Kind = "bad_status"
	KindMalformedBody     Kind = "malformed_body"
	KindMissingResponse   Kind = "missing_response"
	KindSchemaViolation   Kind = "schema_violation"
	KindUpstreamError     Kind = "upstream_error"
	KindMissingField      Kind = "missing_field"
	KindUnknownStatus     Kind = "unknown_status"
	KindMissingCursor     Kind = "missing_cursor"
)

// Error carries a Kind plus kind-specific detail. Use errors.As / KindOf to
// inspect; the zero fields of unrelated kinds stay empty.
type Error struct {
	Kind Kind
	Msg  string

	HTTPStatus int    // set for KindBadStatus
	Field      string // set for KindMissingField
	Value      string // set for KindUnknownStatus

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("practicum: %s: %v", e.Msg, e.Err)
	}
	return "practicum: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err, or "" when err is not a practicum error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func errServerUnreachable(err error) *Error {
	return &Error{Kind: KindServerUnreachable, Msg: "api endpoint unreachable", Err: err}
}

func errBadStatus(code int) *Error {
	return &Error{Kind: KindBadStatus, Msg: fmt.Sprintf("unexpected http status %d", code), HTTPStatus: code}
}

func errMalformedBody(err error) *Error {
	return &Error{Kind: KindMalformedBody, Msg: "response body is not valid json", Err: err}
}

func errMissingResponse() *Error {
	return &Error{Kind: KindMissingResponse, Msg: "no api response"}
}

func errSchemaViolation(msg string) *Error {
	return &Error{Kind: KindSchemaViolation, Msg: msg}
}

func errUpstream(detail string) *Error {
	return &Error{Kind: KindUpstreamError, Msg: "upstream reported failure: " + detail}
}

func errMissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Msg: fmt.Sprintf("homework record is missing %q", field), Field: field}
}

func errUnknownStatus(value string) *Error {
	return &Error{Kind: KindUnknownStatus, Msg: fmt.Sprintf("unknown review status %q", value), Value: value}
}

func errMissingCursor() *Error {
	return &Error{Kind: KindMissingCursor, Msg: "response is missing current_date"}
}
