// Package backend is the REST adapter for the board API. It implements the
// core ports over plain HTTP: bearer-token attachment, JSON codec, and the
// mapping from wire failures to the domain error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/metrics"
)

const (
	defaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of an error response is read looking for a
	// server-reported message.
	maxErrorBody = 64 << 10
)

// Client talks to the board backend. All methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client rooted at baseURL. A non-positive timeout falls back
// to the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// errorBody is the envelope the backend uses for business errors. Some
// endpoints report under "message", others under "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and decodes a 2xx JSON body into out (nil discards
// the body). endpoint is the logical name used for metrics; it must not
// contain per-request ids.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.TransportError{Op: endpoint, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &domain.TransportError{Op: endpoint, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return &domain.TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(endpoint, statusClass(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(endpoint, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Op: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeError turns a non-2xx response into a BackendError, keeping the
// server's message when the body carries one.
func (c *Client) decodeError(endpoint string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	return &domain.BackendError{StatusCode: resp.StatusCode, Message: msg}
}

// Ping probes backend reachability for the readiness check. Any HTTP
// response, even an error status, proves the backend is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts?page=0&size=1", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend ping: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func statusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
