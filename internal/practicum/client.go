package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	logx "hwbot/pkg/logx"
)

// DefaultEndpoint is the production homework-statuses URL.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// maxBodyBytes bounds how much of a response we are willing to buffer.
// The normal payload is well under a kilobyte.
const maxBodyBytes = 1 << 20

type ClientConfig struct {
	Endpoint string
	Token    string
	// Timeout bounds the whole request. The API has no business taking
	// longer than a few seconds; without a bound one hung request stalls
	// the only loop in the process.
	Timeout time.Duration
}

// Client fetches homework statuses. Safe for concurrent use, though the
// poller is the only caller.
type Client struct {
	cfg  ClientConfig
	http *http.Client
	log  logx.Logger
}

func NewClient(cfg ClientConfig, log logx.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// HomeworkStatuses issues GET <endpoint>?from_date=<cursor> with the OAuth
// credential header and returns the decoded payload.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return nil, errServerUnreachable(err)
	}
	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errServerUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, errBadStatus(resp.StatusCode)
	}

	var r Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&r); err != nil {
		return nil, errMalformedBody(err)
	}

	c.log.Info("fetched homework statuses", logx.Int64("from_date", fromDate))
	return &r, nil
}
