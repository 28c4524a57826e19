package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/pfrederiksen/bref-scraper/internal/logger"
)

const (
	// UserAgent is a browser-like agent string; the site serves reduced
	// pages to clients that identify as scripts.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/122.0 Safari/537.36"
	Timeout = 30 * time.Second
)

// RequestError is a transport or status failure for one URL. It is the
// "network" error kind; structural scrape failures use different types.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client fetches pages with a fixed identifying header and timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a new Client with the default timeout and User-Agent.
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		userAgent: UserAgent,
	}
}

// Get fetches url and returns the decoded body text.
//
// The body is decoded using the charset declared in the Content-Type
// header, defaulting to UTF-8 when none is declared.
func (c *Client) Get(url string) (string, error) {
	start := time.Now()
	defer func() {
		logger.RecordTiming("fetch.get", time.Since(start))
	}()
	logger.Debug("Fetching page", logger.Fields{"url": url})

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", &RequestError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &RequestError{URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &RequestError{URL: url, Err: fmt.Errorf("determining charset: %w", err)}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", &RequestError{URL: url, Err: err}
	}
	return string(body), nil
}
