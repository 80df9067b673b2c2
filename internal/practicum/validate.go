package practicum

import (
	"bytes"
	"encoding/json"
)

// CheckResponse asserts the response shape and returns the homework list in
// the order received. Only the first element is ever consumed downstream, so
// order is preserved, not re-sorted.
//
// Shape is checked before the upstream error/code fields: a payload without a
// homework list is unusable no matter what else it says. A well-formed list
// still fails when the server flags the answer as an error.
func CheckResponse(r *Response) ([]Homework, error) {
	if r == nil {
		return nil, errMissingResponse()
	}
	if len(r.Homeworks) == 0 {
		return nil, errSchemaViolation("response has no homeworks field")
	}
	raw := bytes.TrimSpace(r.Homeworks)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errSchemaViolation("homeworks is not a list")
	}
	var list []Homework
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errSchemaViolation("homeworks elements are not records")
	}
	if detail, ok := upstreamDetail(r.Error); ok {
		return nil, errUpstream(detail)
	}
	if detail, ok := upstreamDetail(r.Code); ok {
		return nil, errUpstream(detail)
	}
	return list, nil
}

// upstreamDetail reports whether a raw error/code field carries a value, and
// renders it for the failure message. JSON null counts as absent.
func upstreamDetail(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}
