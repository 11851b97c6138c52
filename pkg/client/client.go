// Package client talks to the microgrid API over HTTP.
package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds every request. A hanging upstream stalls the
	// dashboard for at most this long.
	DefaultTimeout = 5 * time.Second
	// DefaultMemoTTL is the window during which repeated GETs return the
	// previously fetched value instead of issuing a new request.
	DefaultMemoTTL = 5 * time.Second
)

// Client is a struct for communicating with the microgrid API.
type Client struct {
	baseURL string
	http    *resty.Client
	memo    *memo
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithMemoTTL overrides the fetch memoization window. Zero disables
// memoization entirely.
func WithMemoTTL(d time.Duration) Option {
	return func(c *Client) {
		c.memo = newMemo(d)
	}
}

// NewClient is a constructor for creating a new Client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(DefaultTimeout),
		memo: newMemo(DefaultMemoTTL),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// send issues one request and returns the raw body. Transport errors and
// non-2xx statuses both come back as ErrUnreachable.
func (c *Client) send(method, path string, body any) ([]byte, error) {
	logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"base":   c.baseURL,
	}).Debug("sending request")

	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logrus.Debugf("request %s %s failed: %v", method, path, err)
		return nil, wrapUnreachable(err, "%s %s", method, path)
	}

	if resp.IsError() {
		logrus.Debugf("request %s %s got %d", method, path, resp.StatusCode())
		return nil, wrapUnreachablef("%s %s: got %d", method, path, resp.StatusCode())
	}

	return resp.Body(), nil
}
