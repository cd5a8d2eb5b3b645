package torrents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// ErrSearchDisabled is returned when no search API is configured.
var ErrSearchDisabled = errors.New("torrent search is not configured")

// SearchClient proxies queries to the torrent search API.
type SearchClient struct {
	baseURL  string
	http     *http.Client
	attempts uint
	delay    time.Duration
}

// NewSearchClient creates a search client. A nil httpClient uses a client
// bounded by the configured timeout.
func NewSearchClient(cfg Config, httpClient *http.Client) *SearchClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	attempts := cfg.SearchAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &SearchClient{
		baseURL:  strings.TrimRight(cfg.SearchURL, "/"),
		http:     httpClient,
		attempts: attempts,
		delay:    500 * time.Millisecond,
	}
}

// Enabled reports whether a search API is configured.
func (s *SearchClient) Enabled() bool {
	return s.baseURL != ""
}

// Search returns the raw JSON answer of the search API for query on site.
// Transport errors and 5xx answers are retried with backoff.
func (s *SearchClient) Search(ctx context.Context, site, query string) (json.RawMessage, error) {
	if !s.Enabled() {
		return nil, ErrSearchDisabled
	}
	if strings.TrimSpace(site) == "" || strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "query", Message: "missing required query parameters: site and query"}
	}

	endpoint := fmt.Sprintf("%s/api/v1/search?%s", s.baseURL, url.Values{
		"site":  {site},
		"query": {query},
	}.Encode())

	return retry.DoWithData(
		func() (json.RawMessage, error) {
			return s.fetch(ctx, endpoint)
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.LastErrorOnly(true),
	)
}

func (s *SearchClient) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, retry.Unrecoverable(&UpstreamError{StatusCode: resp.StatusCode})
	}
	if !json.Valid(body) {
		return nil, retry.Unrecoverable(fmt.Errorf("search api returned invalid json"))
	}
	return json.RawMessage(body), nil
}
