package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainerrors "nodex-club.backend/internal/domain/errors"
)

// MaxPerPage is the record store's hard page cap. List callers that need a
// whole collection get at most this many records; larger datasets are
// silently truncated upstream, so we never ask for more.
const MaxPerPage = 1000

// Client is a thin HTTP wrapper over the PocketBase records API:
// GET/POST/PATCH/DELETE /api/collections/<name>/records[/<id>].
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAdminToken sets the Authorization token sent on every request.
func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

// NewClient creates a record store client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListOptions are the query parameters of a list request.
type ListOptions struct {
	Filter  string
	Sort    string
	Expand  string
	Page    int
	PerPage int
}

// ListResult is the record store's list envelope. Items stay raw so each
// repository can decode into its own record shape.
type ListResult struct {
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	Items      []json.RawMessage `json:"items"`
}

// List fetches records from a collection.
func (c *Client) List(ctx context.Context, collection string, opts ListOptions) (*ListResult, error) {
	q := url.Values{}
	if opts.Filter != "" {
		q.Set("filter", opts.Filter)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Expand != "" {
		q.Set("expand", opts.Expand)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(opts.PerPage))
	}

	endpoint := c.recordsURL(collection, "")
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var result ListResult
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOne fetches a single record by ID.
func (c *Client) GetOne(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.recordsURL(collection, id), nil, out)
}

// Create inserts a record and decodes the stored result into out.
func (c *Client) Create(ctx context.Context, collection string, body any, out any) error {
	return c.do(ctx, http.MethodPost, c.recordsURL(collection, ""), body, out)
}

// Update patches a record by ID.
func (c *Client) Update(ctx context.Context, collection, id string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, c.recordsURL(collection, id), body, out)
}

// Delete removes a record by ID.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.recordsURL(collection, id), nil, nil)
}

func (c *Client) recordsURL(collection, id string) string {
	u := fmt.Sprintf("%s/api/collections/%s/records", c.baseURL, url.PathEscape(collection))
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminToken != "" {
		req.Header.Set("Authorization", c.adminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domainerrors.ErrUpstreamFailure, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domainerrors.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: status %d: %s", domainerrors.ErrUpstreamFailure, method, endpoint, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domainerrors.ErrUpstreamFailure, err)
	}
	return nil
}

// Quote escapes a value for use inside a PocketBase filter expression.
func Quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

// Filterf builds a filter expression, quoting every argument.
func Filterf(format string, args ...string) string {
	quoted := make([]any, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, Quote(a))
	}
	return fmt.Sprintf(format, quoted...)
}
