package pipeline

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TimeoutError reports that no response arrived within the fetch
// deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GET %s: no response within %s", e.URL, e.Timeout)
}

// StatusError reports a request that completed with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// Fetcher issues timeout-wrapped GET requests. The deadline is enforced
// by racing the request against a timer: when the timer fires first the
// in-flight request is abandoned, not cancelled at the transport level,
// and any later result is discarded.
type Fetcher struct {
	UserAgent string
	Timeout   time.Duration

	// Client carries no client-level timeout; the race above enforces
	// the deadline.
	Client *http.Client
}

// NewFetcher returns a Fetcher with a shared pooled client.
func NewFetcher(cfg FetchConfig) *Fetcher {
	return &Fetcher{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
		Client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// GetBody fetches url and returns the raw response body, failing with a
// TimeoutError when the deadline passes first or a StatusError on a
// non-2xx response.
func (f *Fetcher) GetBody(url string) ([]byte, error) {
	type result struct {
		body []byte
		err  error
	}
	// Buffered so a late-arriving response never blocks the goroutine.
	ch := make(chan result, 1)

	go func() {
		body, err := f.do(url)
		ch <- result{body, err}
	}()

	timer := time.NewTimer(f.Timeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.body, r.err
	case <-timer.C:
		return nil, &TimeoutError{URL: url, Timeout: f.Timeout}
	}
}

func (f *Fetcher) do(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetJSON fetches url and decodes the JSON body into v.
func (f *Fetcher) GetJSON(url string, v any) error {
	body, err := f.GetBody(url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
