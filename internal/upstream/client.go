// Package upstream is the HTTP plumbing shared by the auth and admin clients.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/metrics"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Client talks JSON to a Curiona-shaped API. Successful payloads are expected
// inside a {"data": ...} envelope.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to attach a cookie jar.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type Request struct {
	Op     string
	Method string
	Path   string
	Query  url.Values
	Body   any
	Token  string
	Header http.Header

	// Unwrapped decodes the whole body into out instead of the data envelope.
	Unwrapped bool
}

// Do sends req and decodes the envelope's data into out when out is non-nil.
// The returned response has its body consumed and closed; headers and cookies
// remain readable.
func (c *Client) Do(ctx context.Context, req Request, out any) (*http.Response, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.UpstreamRequestDuration.WithLabelValues(req.Op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Op, "error").Inc()
		c.logger.Warn("upstream request failed", "operation", req.Op, "error", err)
		return nil, apierror.FromTransport(req.Op, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(req.Op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierror.FromResponse(resp)
		c.logger.Debug("upstream request rejected",
			"operation", req.Op,
			"status", resp.StatusCode,
			"error", apiErr,
		)
		return resp, apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp, nil
	}

	if req.Unwrapped {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("%s: %w: %v", req.Op, apierror.ErrInvalidResponse, err)
		}
		return resp, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return resp, fmt.Errorf("%s: %w: %v", req.Op, apierror.ErrInvalidResponse, err)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return resp, fmt.Errorf("%s: %w: missing data", req.Op, apierror.ErrInvalidResponse)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return resp, fmt.Errorf("%s: %w: %v", req.Op, apierror.ErrInvalidResponse, err)
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	httpReq.Header.Set(RequestIDHeader, RequestID(ctx))

	return httpReq, nil
}

// Ping reports whether the API answered at all. Any HTTP status counts as
// reachable; only transport failures are returned.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, Request{Op: "ping", Method: http.MethodGet, Path: "/"}, nil)
	if err != nil && apierror.IsNetwork(err) {
		return err
	}

	return nil
}

// RequestID reuses the inbound chi request id so console and API logs correlate.
func RequestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}
