package items

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"itemctl/internal/system"
)

// ErrMissingID is returned when an operation requires a server-assigned id
// and the item does not carry one. No request is sent in that case.
var ErrMissingID = errors.New("item has no id")

// HTTPError is a non-2xx response from the collection endpoint. The body is
// captured best-effort for diagnostics; the message deliberately carries only
// the status code.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Client issues the four collection operations against a single endpoint.
// No timeout is configured on the underlying http.Client; callers bound
// individual calls through the context.
type Client struct {
	endpoint string
	hc       *http.Client
	log      *system.Logger
}

// NewClient returns a client for the given collection endpoint URL.
// A nil logger falls back to a client-component logger on stderr.
func NewClient(endpoint string, log *system.Logger) *Client {
	if log == nil {
		log = system.NewLogger("items-client")
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		hc:       &http.Client{},
		log:      log,
	}
}

// Endpoint returns the configured collection endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// List fetches the full collection. A response body that is not a JSON array
// yields an empty slice rather than an error.
func (c *Client) List(ctx context.Context) ([]Item, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	var list []Item
	if err := json.Unmarshal(body, &list); err != nil {
		c.log.Warn("list response is not an item array, treating as empty", "err", err)
		return []Item{}, nil
	}
	if list == nil {
		list = []Item{}
	}
	return list, nil
}

// Create posts a new item (id stripped) and returns the created record.
func (c *Client) Create(ctx context.Context, it Item) (Item, error) {
	it.ID = ""
	body, err := c.do(ctx, http.MethodPost, c.endpoint, it)
	if err != nil {
		return Item{}, err
	}
	var created Item
	if err := json.Unmarshal(body, &created); err != nil {
		return Item{}, fmt.Errorf("decode created item: %w", err)
	}
	return created, nil
}

// Update puts the item at its id. An item without an id is rejected with
// ErrMissingID before any request is made.
func (c *Client) Update(ctx context.Context, it Item) (Item, error) {
	if !it.HasID() {
		c.log.Warn("update skipped: item has no id", "name", it.Name)
		return Item{}, ErrMissingID
	}
	body, err := c.do(ctx, http.MethodPut, c.endpoint+"/"+it.ID, it)
	if err != nil {
		return Item{}, err
	}
	var updated Item
	if err := json.Unmarshal(body, &updated); err != nil {
		return Item{}, fmt.Errorf("decode updated item: %w", err)
	}
	return updated, nil
}

// Delete removes the item with the given id. The client performs no local
// existence check; the server response decides success.
func (c *Client) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingID
	}
	_, err := c.do(ctx, http.MethodDelete, c.endpoint+"/"+id, nil)
	return err
}

// do performs one HTTP call, logging the request boundary with elapsed time
// and status. Any non-2xx status becomes an *HTTPError regardless of body.
func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		c.log.Trace("request body", "method", method, "body", string(b))
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("request start", "method", method, "url", url)
	start := time.Now()
	resp, err := c.hc.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Error("request failed", err, "method", method, "url", url, "elapsed", elapsed.Round(time.Millisecond))
		return nil, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	c.log.Debug("request done",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"elapsed", elapsed.Round(time.Millisecond),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
		c.log.Error("request returned error status", herr, "method", method, "url", url, "body", herr.Body)
		return nil, herr
	}
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}
	return body, nil
}
