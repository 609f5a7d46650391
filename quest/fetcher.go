package quest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPFetcher retrieves quest definitions over the quest store's HTTP
// contract: GET /api/v1/quests/{id} returning a success envelope.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPOption configures the fetcher
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		f.httpClient = client
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		f.httpClient.Timeout = timeout
	}
}

// NewHTTPFetcher creates a fetcher against the given quest store base URL
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type questEnvelope struct {
	Success bool   `json:"success"`
	Data    *Quest `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch implements the Fetcher interface. A not-found or error status
// propagates as *LoadFailedError rather than a generic error.
func (f *HTTPFetcher) Fetch(ctx context.Context, id string) (*Quest, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quests/%s", f.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LoadFailedError{QuestID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &LoadFailedError{QuestID: id, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadFailedError{QuestID: id, Err: err}
	}

	var envelope questEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &LoadFailedError{QuestID: id, Err: fmt.Errorf("malformed response: %w", err)}
	}

	if !envelope.Success || envelope.Data == nil {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if envelope.Error != nil {
			msg = fmt.Sprintf("%s - %s", envelope.Error.Code, envelope.Error.Message)
		}
		return nil, &LoadFailedError{QuestID: id, Err: fmt.Errorf("quest store error: %s", msg)}
	}

	return envelope.Data, nil
}
