package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"userdir/internal/domain"
)

// DefaultBaseURL is the public directory API the viewer reads from
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const usersPath = "/users"

// Gateway is the read side of the directory API
type Gateway interface {
	FetchAll(ctx context.Context) ([]domain.User, error)
}

// Client fetches the user collection over HTTP
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds a single FetchAll call. Zero leaves the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request outcomes
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the directory API rooted at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the address FetchAll requests
func (c *Client) URL() string {
	return c.baseURL + usersPath
}

// FetchAll performs exactly one GET of the user collection and returns the
// records in server order. It does not retry, paginate or cache.
func (c *Client) FetchAll(ctx context.Context) ([]domain.User, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := c.URL()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail(&FetchError{Op: "request", URL: url, Err: err}, start)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.fail(&FetchError{Op: "request", URL: url, Err: err}, start)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, c.fail(&FetchError{
			Op:         "status",
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response %s", resp.Status),
		}, start)
	}

	body := &countingReader{r: resp.Body}
	var users []domain.User
	if err := json.NewDecoder(body).Decode(&users); err != nil {
		return nil, c.fail(&FetchError{
			Op:         "decode",
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        err,
		}, start)
	}

	c.logger.Info("fetched users",
		"url", url,
		"count", len(users),
		"size", humanize.Bytes(uint64(body.n)),
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return users, nil
}

func (c *Client) fail(err *FetchError, start time.Time) error {
	c.logger.Error("fetch users failed",
		"url", err.URL,
		"op", err.Op,
		"status", err.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"error", err.Err,
	)
	return err
}

// countingReader records how many bytes of the body were consumed
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
