package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"curiona-admin/internal/models"
	"curiona-admin/internal/upstream"
)

// Client exposes the admin endpoints of the Curiona API. Every call carries the
// caller's access token; an empty token sends no Authorization header, which is
// how the CLI reaches the console's cookie-authenticated mirror of these routes.
// Results are never cached and failed calls are not retried.
type Client struct {
	api *upstream.Client
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{api: upstream.New(baseURL, timeout, logger)}
}

// NewWithHTTPClient is used when the transport needs its own cookie jar.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	api := upstream.New(baseURL, httpClient.Timeout, logger)
	api.SetHTTPClient(httpClient)
	return &Client{api: api}
}

func (c *Client) GetStatistics(ctx context.Context, token string) (*models.Statistics, error) {
	var out models.Statistics
	if err := c.get(ctx, "get_statistics", token, "/admin/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context, token string, filters models.Filters) (*models.FilteredList[models.Account], error) {
	var out models.FilteredList[models.Account]
	if err := c.get(ctx, "list_users", token, "/admin/users", &filters, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser returns the account along with a page of its roadmaps selected by filters.
func (c *Client) GetUser(ctx context.Context, token string, id int64, filters models.Filters) (*models.Account, error) {
	var out models.Account
	if err := c.get(ctx, "get_user", token, fmt.Sprintf("/admin/users/%d", id), &filters, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SuspendUser(ctx context.Context, token string, id int64) error {
	return c.send(ctx, "suspend_user", token, http.MethodPatch, fmt.Sprintf("/admin/users/%d/suspend", id))
}

func (c *Client) UnsuspendUser(ctx context.Context, token string, id int64) error {
	return c.send(ctx, "unsuspend_user", token, http.MethodPatch, fmt.Sprintf("/admin/users/%d/unsuspend", id))
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.send(ctx, "delete_user", token, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id))
}

func (c *Client) ListRoadmaps(ctx context.Context, token string, filters models.Filters) (*models.FilteredList[models.RoadmapSummary], error) {
	var out models.FilteredList[models.RoadmapSummary]
	if err := c.get(ctx, "list_roadmaps", token, "/admin/roadmaps", &filters, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRoadmap(ctx context.Context, token string, id int64) (*models.Roadmap, error) {
	var out models.Roadmap
	if err := c.get(ctx, "get_roadmap", token, fmt.Sprintf("/admin/roadmaps/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoadmap(ctx context.Context, token string, id int64) error {
	return c.send(ctx, "delete_roadmap", token, http.MethodDelete, fmt.Sprintf("/admin/roadmaps/%d", id))
}

func (c *Client) ListRoadmapRatings(ctx context.Context, token string, id int64, filters models.Filters) (*models.FilteredList[models.Rating], error) {
	var out models.FilteredList[models.Rating]
	if err := c.get(ctx, "list_roadmap_ratings", token, fmt.Sprintf("/admin/roadmaps/%d/ratings", id), &filters, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, op, token, path string, filters *models.Filters, out any) error {
	req := upstream.Request{
		Op:     op,
		Method: http.MethodGet,
		Path:   path,
		Token:  token,
	}
	if filters != nil {
		req.Query = filters.Values()
	}

	_, err := c.api.Do(ctx, req, out)
	return err
}

func (c *Client) send(ctx context.Context, op, token, method, path string) error {
	_, err := c.api.Do(ctx, upstream.Request{
		Op:     op,
		Method: method,
		Path:   path,
		Token:  token,
	}, nil)
	return err
}
