package bref

import "errors"

// BaseURL is the production Basketball-Reference address.
const BaseURL = "https://www.basketball-reference.com"

// Fetcher fetches a URL and returns the decoded page text.
type Fetcher interface {
	Get(url string) (string, error)
}

// Client scrapes Basketball-Reference pages through a Fetcher.
type Client struct {
	fetcher Fetcher
	baseURL string
}

// New creates a Client against the production site.
func New(fetcher Fetcher) *Client {
	return NewWithBaseURL(fetcher, BaseURL)
}

// NewWithBaseURL creates a Client against an alternate base address,
// primarily for tests.
func NewWithBaseURL(fetcher Fetcher, baseURL string) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// firstSuccess tries fn over candidates in order and returns the first
// successful result. When every candidate fails, the last error is
// returned; earlier failures are discarded.
func firstSuccess[C, T any](candidates []C, fn func(C) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for _, candidate := range candidates {
		result, err := fn(candidate)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("no candidates to try")
	}
	return zero, lastErr
}
