package practicum

import "encoding/json"

// Status is a review status code as reported by the API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Homework is one submission record. Absent fields decode to "".
type Homework struct {
	HomeworkName string `json:"homework_name"`
	Status       string `json:"status"`
}

// Response is the raw API payload for one poll. The homeworks field stays
// undecoded here so that CheckResponse — not the JSON layer — classifies
// shape problems.
type Response struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate *int64          `json:"current_date"`
	Error       json.RawMessage `json:"error"`
	Code        json.RawMessage `json:"code"`
}

// CurrentDateUnix returns the server-reported poll cursor for the next cycle.
func (r *Response) CurrentDateUnix() (int64, error) {
	if r == nil || r.CurrentDate == nil {
		return 0, errMissingCursor()
	}
	return *r.CurrentDate, nil
}
