package practicum

import (
	"encoding/json"
	"testing"
)

func decodeResponse(t *testing.T, body string) *Response {
	t.Helper()
	var r Response
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal test body: %v", err)
	}
	return &r
}

func TestCheckResponseNil(t *testing.T) {
	t.Parallel()
	_, err := CheckResponse(nil)
	if got := KindOf(err); got != KindMissingResponse {
		t.Fatalf("KindOf = %q, want %q", got, KindMissingResponse)
	}
}

func TestCheckResponseSchema(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{name: "homeworks absent", body: `{"current_date": 1000}`},
		{name: "homeworks null", body: `{"homeworks": null, "current_date": 1000}`},
		{name: "homeworks is object", body: `{"homeworks": {"a": 1}, "current_date": 1000}`},
		{name: "homeworks is string", body: `{"homeworks": "nope", "current_date": 1000}`},
		{name: "elements not records", body: `{"homeworks": [1, 2], "current_date": 1000}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse(decodeResponse(t, tt.body))
			if got := KindOf(err); got != KindSchemaViolation {
				t.Fatalf("KindOf = %q, want %q", got, KindSchemaViolation)
			}
		})
	}
}

func TestCheckResponseUpstreamError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		// The upstream error field wins even when homeworks is well-formed.
		{name: "error field", body: `{"homeworks": [], "current_date": 1000, "error": "boom"}`},
		{name: "code field", body: `{"homeworks": [], "current_date": 1000, "code": "oops"}`},
		{name: "error object", body: `{"homeworks": [], "error": {"reason": "bad"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse(decodeResponse(t, tt.body))
			if got := KindOf(err); got != KindUpstreamError {
				t.Fatalf("KindOf = %q, want %q", got, KindUpstreamError)
			}
		})
	}
}

func TestCheckResponseOrderPreserved(t *testing.T) {
	t.Parallel()
	body := `{"homeworks": [
		{"homework_name": "newest", "status": "approved"},
		{"homework_name": "older", "status": "rejected"}
	], "current_date": 1000}`

	list, err := CheckResponse(decodeResponse(t, body))
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].HomeworkName != "newest" {
		t.Fatalf("first element = %q, want %q", list[0].HomeworkName, "newest")
	}
}

func TestCheckResponseEmptyList(t *testing.T) {
	t.Parallel()
	list, err := CheckResponse(decodeResponse(t, `{"homeworks": [], "current_date": 2000}`))
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len = %d, want 0", len(list))
	}
}

func TestCurrentDateUnix(t *testing.T) {
	t.Parallel()
	r := decodeResponse(t, `{"homeworks": [], "current_date": 2000}`)
	got, err := r.CurrentDateUnix()
	if err != nil {
		t.Fatalf("CurrentDateUnix error: %v", err)
	}
	if got != 2000 {
		t.Fatalf("cursor = %d, want 2000", got)
	}

	r = decodeResponse(t, `{"homeworks": []}`)
	if _, err := r.CurrentDateUnix(); KindOf(err) != KindMissingCursor {
		t.Fatalf("KindOf = %q, want %q", KindOf(err), KindMissingCursor)
	}
}
