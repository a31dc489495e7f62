// Package client is a typed Go client for the maritime REST API.
package client

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

	"evalgo.org/maritime/models"
)

// Client talks to a maritime server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid baseURL %q", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Error is returned for every non-2xx response.
type Error struct {
	StatusCode  int               `json:"code"`
	Message     string            `json:"message"`
	Details     string            `json:"details,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// Ships

func (c *Client) ListShips(ctx context.Context) ([]models.Ship, error) {
	var out []models.Ship
	if err := c.do(ctx, http.MethodGet, "/api/ships", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetShip(ctx context.Context, id uint) (*models.Ship, error) {
	var out models.Ship
	if err := c.do(ctx, http.MethodGet, path("ships", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShip creates a ship and returns it with the assigned id.
func (c *Client) CreateShip(ctx context.Context, ship *models.Ship) (*models.Ship, error) {
	var out models.Ship
	if err := c.do(ctx, http.MethodPost, "/api/ships", ship, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateShip replaces the ship whose id is ship.ID.
func (c *Client) UpdateShip(ctx context.Context, ship *models.Ship) error {
	return c.do(ctx, http.MethodPut, path("ships", ship.ID), ship, nil)
}

func (c *Client) DeleteShip(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, path("ships", id), nil, nil)
}

// Ports

func (c *Client) ListPorts(ctx context.Context) ([]models.Port, error) {
	var out []models.Port
	if err := c.do(ctx, http.MethodGet, "/api/ports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPortVoyages returns the voyages that depart from or arrive at the
// port, newest first. An unknown port yields a 404 Error.
func (c *Client) ListPortVoyages(ctx context.Context, id uint) ([]models.Voyage, error) {
	out := []models.Voyage{}
	if err := c.do(ctx, http.MethodGet, path("ports", id)+"/voyages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPort(ctx context.Context, id uint) (*models.Port, error) {
	var out models.Port
	if err := c.do(ctx, http.MethodGet, path("ports", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePort(ctx context.Context, port *models.Port) (*models.Port, error) {
	var out models.Port
	if err := c.do(ctx, http.MethodPost, "/api/ports", port, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePort(ctx context.Context, port *models.Port) error {
	return c.do(ctx, http.MethodPut, path("ports", port.ID), port, nil)
}

// DeletePort fails with a 400 Error while voyages reference the port.
func (c *Client) DeletePort(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, path("ports", id), nil, nil)
}

// Voyages

// ListVoyages returns all voyages with both ports embedded.
func (c *Client) ListVoyages(ctx context.Context) ([]models.Voyage, error) {
	var out []models.Voyage
	if err := c.do(ctx, http.MethodGet, "/api/voyages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVoyage(ctx context.Context, id uint) (*models.Voyage, error) {
	var out models.Voyage
	if err := c.do(ctx, http.MethodGet, path("voyages", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVoyage(ctx context.Context, voyage *models.Voyage) (*models.Voyage, error) {
	var out models.Voyage
	if err := c.do(ctx, http.MethodPost, "/api/voyages", voyage, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVoyage(ctx context.Context, voyage *models.Voyage) error {
	return c.do(ctx, http.MethodPut, path("voyages", voyage.ID), voyage, nil)
}

func (c *Client) DeleteVoyage(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, path("voyages", id), nil, nil)
}

// Aggregations

// CountriesVisitedLastYear returns the sorted distinct countries visited by
// voyages that ended in the last 365 days.
func (c *Client) CountriesVisitedLastYear(ctx context.Context) ([]string, error) {
	out := []string{}
	if err := c.do(ctx, http.MethodGet, "/api/countryvisits/lastyear", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*Summary, error) {
	var out Summary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*Counts, error) {
	var out Counts
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports the server health. An unhealthy server yields an Error
// with status 503.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate asks the server to validate a ship, port or voyage document
// without saving it. An invalid document is a result, not an error.
func (c *Client) Validate(ctx context.Context, kind string, doc []byte) (*ValidationResult, error) {
	status, data, err := c.send(ctx, http.MethodPost, "/api/validate/"+url.PathEscape(kind), bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	if status == http.StatusOK || status == http.StatusBadRequest {
		var result ValidationResult
		if json.Unmarshal(data, &result) == nil && (result.Valid || len(result.Errors) > 0) {
			return &result, nil
		}
	}
	return nil, decodeError(status, data)
}

func path(resource string, id uint) string {
	return fmt.Sprintf("/api/%s/%d", resource, id)
}

func (c *Client) do(ctx context.Context, method, p string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	status, data, err := c.send(ctx, method, p, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return decodeError(status, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, p string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+p, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, p, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func decodeError(status int, data []byte) error {
	apiErr := &Error{}
	if len(data) == 0 || json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
	}
	apiErr.StatusCode = status
	return apiErr
}
