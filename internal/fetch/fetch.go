// Package fetch performs outbound GET requests with bounded retries.
// Callers get bytes or nothing; upstream failures never surface as errors.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single attempt, not the whole call.
const DefaultTimeout = 10 * time.Second

const (
	defaultAttempts = 3
	errorBackoff    = time.Second
)

// Fetcher issues GET requests with retry. A 429 response waits an
// escalating 2s, 4s, 6s before the next attempt; every other failure
// (transport error, non-2xx status, undecodable body) waits one second.
// When every attempt fails the caller gets an absent result.
type Fetcher struct {
	client   *http.Client
	attempts int
	sleep    func(time.Duration)
}

// New returns a Fetcher using the given client. A nil client gets a
// default with DefaultTimeout.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Fetcher{
		client:   client,
		attempts: defaultAttempts,
		sleep:    time.Sleep,
	}
}

// Get fetches rawURL and returns the response body, or (nil, false) once
// all attempts are exhausted.
func (f *Fetcher) Get(ctx context.Context, rawURL string, params url.Values, headers http.Header) ([]byte, bool) {
	var body []byte
	ok := f.do(ctx, rawURL, params, headers, func(b []byte) error {
		body = b
		return nil
	})
	return body, ok
}

// GetJSON fetches rawURL and decodes the body into into. A body that does
// not decode counts as a failed attempt and is retried.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, params url.Values, headers http.Header, into any) bool {
	return f.do(ctx, rawURL, params, headers, func(b []byte) error {
		return json.Unmarshal(b, into)
	})
}

func (f *Fetcher) do(ctx context.Context, rawURL string, params url.Values, headers http.Header, accept func([]byte) error) bool {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	for attempt := 0; attempt < f.attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			log.Printf("building request for %s: %v", rawURL, err)
			return false
		}
		for k, vs := range headers {
			req.Header[k] = vs
		}
		if req.Header.Get("Accept") == "" {
			req.Header.Set("Accept", "application/json")
		}

		resp, err := f.client.Do(req)
		if err != nil {
			log.Printf("fetching %s: %v", rawURL, err)
			f.sleep(errorBackoff)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			wait := time.Duration(2*(attempt+1)) * time.Second
			log.Printf("rate limited by %s, retrying in %s", req.URL.Host, wait)
			f.sleep(wait)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("fetching %s: status %d", rawURL, resp.StatusCode)
			f.sleep(errorBackoff)
			continue
		}
		if readErr != nil {
			log.Printf("reading %s response: %v", rawURL, readErr)
			f.sleep(errorBackoff)
			continue
		}

		if err := accept(body); err != nil {
			log.Printf("decoding %s response: %v", rawURL, err)
			f.sleep(errorBackoff)
			continue
		}
		return true
	}
	return false
}
