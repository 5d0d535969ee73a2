// Package research is the HTTP client for the multi-agent research endpoint.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/zhubert/nexus/internal/conversation"
	nerrors "github.com/zhubert/nexus/internal/errors"
	"github.com/zhubert/nexus/internal/logger"
)

// SessionHeader carries the conversation session ID on every request.
const SessionHeader = "X-Session-ID"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 16 << 20

// Client posts queries to the research endpoint. It implements
// conversation.Client.
type Client struct {
	url        string
	sessionID  string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The client is not
// modified; WithTimeout applies to a copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionID sets the value of the X-Session-ID header.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// WithTimeout bounds each request. Zero, the default, means no timeout:
// agent runs can take minutes.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client that posts to url, the full endpoint URL.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{},
		log:        logger.WithComponent("research"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// URL returns the endpoint this client posts to.
func (c *Client) URL() string { return c.url }

type askResponse struct {
	Result *string `json:"result"`
}

// Ask sends one query with its prior history and returns the result text.
//
// Errors are classified with the nexus errors package: KindNetwork when the
// endpoint cannot be reached, KindStatus for a non-2xx answer and KindDecode
// when the body is not JSON or has no string "result".
func (c *Client) Ask(ctx context.Context, req conversation.Request) (string, error) {
	if req.ChatHistory == nil {
		req.ChatHistory = []conversation.Message{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", nerrors.E(nerrors.Op("research.Ask"), nerrors.KindInvalid, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", nerrors.E(nerrors.Op("research.Ask"), nerrors.KindInvalid, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.sessionID != "" {
		httpReq.Header.Set(SessionHeader, c.sessionID)
	}

	start := time.Now()
	c.log.Debug("posting query", "url", c.url, "historyLen", len(req.ChatHistory))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", nerrors.EndpointUnreachable(c.url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", nerrors.EndpointUnreachable(c.url, err)
	}

	c.log.Debug("response received", "status", resp.StatusCode, "bytes", len(respBody), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nerrors.EndpointStatus(c.url, resp.StatusCode, string(respBody))
	}

	var parsed askResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", nerrors.ResponseMalformed("response is not a JSON object with a string result", err)
	}
	if parsed.Result == nil {
		return "", nerrors.ResponseMalformed("response has no result field", nil)
	}
	return *parsed.Result, nil
}
