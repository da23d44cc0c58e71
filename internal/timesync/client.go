// Package timesync is a thin client for the TimeSync REST API.
//
// All calls are synchronous and blocking; there are no retries and no
// caching. Server-side failures come back as error-shaped records
// ({"error": ...}) and are passed through to the caller unmodified, while
// transport-level failures are returned as Go errors.
package timesync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Record is a single TimeSync object. Beyond a handful of known keys
// (duration, project, activities, ...) the contents are opaque and passed
// through untouched.
type Record map[string]any

// Client talks to one TimeSync server. It holds the authenticated username
// and token after a successful Authenticate call.
type Client struct {
	baseURL string
	test    bool
	hc      *http.Client
	log     *zap.Logger

	user  string
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger installs a debug logger. Request bodies and tokens are never
// logged, only method, URL, status, and timing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTest puts the client in test mode: every call is answered locally
// with canned data and no network I/O happens. Used by the hidden test
// bootstrap and by the test suite.
func WithTest() Option {
	return func(c *Client) { c.test = true }
}

// NewClient creates a client for the TimeSync instance at baseURL
// (including the API version prefix, e.g. https://timesync.example.com/v1).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the server this client is connected to.
func (c *Client) BaseURL() string { return c.baseURL }

// Test reports whether the client is in offline test mode.
func (c *Client) Test() bool { return c.test }

// User is the authenticated username, empty before Authenticate.
func (c *Client) User() string { return c.user }

// Token is the current authentication token, empty before Authenticate.
func (c *Client) Token() string { return c.token }

// Authenticate signs in with password auth and stores the returned token on
// the client for subsequent calls.
func (c *Client) Authenticate(ctx context.Context, username, password string) ([]Record, error) {
	c.user = username

	if c.test {
		c.token = testToken
		return []Record{{"token": testToken}}, nil
	}

	body := map[string]any{
		"auth": map[string]any{
			"type":     "password",
			"username": username,
			"password": password,
		},
	}

	records, err := c.post(ctx, c.baseURL+"/login", body)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		if token, ok := records[0]["token"].(string); ok {
			c.token = token
		}
	}

	return records, nil
}

// CreateTime submits a new time entry.
func (c *Client) CreateTime(ctx context.Context, t Record) ([]Record, error) {
	return c.create(ctx, "times", t)
}

// UpdateTime revises the time entry identified by uuid.
func (c *Client) UpdateTime(ctx context.Context, uuid string, t Record) ([]Record, error) {
	return c.update(ctx, "times", uuid, t)
}

// GetTimes queries time entries with optional filters.
func (c *Client) GetTimes(ctx context.Context, query Record) ([]Record, error) {
	return c.get(ctx, "times", query)
}

// DeleteTime removes the time entry identified by uuid.
func (c *Client) DeleteTime(ctx context.Context, uuid string) ([]Record, error) {
	return c.delete(ctx, "times", uuid)
}

// CreateProject submits a new project.
func (c *Client) CreateProject(ctx context.Context, p Record) ([]Record, error) {
	return c.create(ctx, "projects", p)
}

// UpdateProject revises the project identified by slug.
func (c *Client) UpdateProject(ctx context.Context, slug string, p Record) ([]Record, error) {
	return c.update(ctx, "projects", slug, p)
}

// GetProjects queries projects with optional filters.
func (c *Client) GetProjects(ctx context.Context, query Record) ([]Record, error) {
	return c.get(ctx, "projects", query)
}

// DeleteProject removes the project identified by slug.
func (c *Client) DeleteProject(ctx context.Context, slug string) ([]Record, error) {
	return c.delete(ctx, "projects", slug)
}

// CreateActivity submits a new activity.
func (c *Client) CreateActivity(ctx context.Context, a Record) ([]Record, error) {
	return c.create(ctx, "activities", a)
}

// UpdateActivity revises the activity identified by slug.
func (c *Client) UpdateActivity(ctx context.Context, slug string, a Record) ([]Record, error) {
	return c.update(ctx, "activities", slug, a)
}

// GetActivities queries activities with optional filters.
func (c *Client) GetActivities(ctx context.Context, query Record) ([]Record, error) {
	return c.get(ctx, "activities", query)
}

// DeleteActivity removes the activity identified by slug.
func (c *Client) DeleteActivity(ctx context.Context, slug string) ([]Record, error) {
	return c.delete(ctx, "activities", slug)
}

// CreateUser submits a new user account.
func (c *Client) CreateUser(ctx context.Context, u Record) ([]Record, error) {
	return c.create(ctx, "users", u)
}

// UpdateUser revises the account identified by username.
func (c *Client) UpdateUser(ctx context.Context, username string, u Record) ([]Record, error) {
	return c.update(ctx, "users", username, u)
}

// GetUsers lists users, or fetches a single user when username is non-empty.
func (c *Client) GetUsers(ctx context.Context, username string) ([]Record, error) {
	if c.test {
		return testUsers(username), nil
	}

	endpoint := c.baseURL + "/users"
	if username != "" {
		endpoint += "/" + url.PathEscape(username)
	}
	endpoint += "?token=" + url.QueryEscape(c.token)

	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// DeleteUser removes the account identified by username.
func (c *Client) DeleteUser(ctx context.Context, username string) ([]Record, error) {
	return c.delete(ctx, "users", username)
}

func (c *Client) create(ctx context.Context, entity string, object Record) ([]Record, error) {
	if c.test {
		return testEcho(entity, "", object), nil
	}
	return c.post(ctx, c.baseURL+"/"+entity+"/", c.envelope(object))
}

func (c *Client) update(ctx context.Context, entity, id string, object Record) ([]Record, error) {
	if c.test {
		return testEcho(entity, id, object), nil
	}
	return c.post(ctx, c.baseURL+"/"+entity+"/"+url.PathEscape(id), c.envelope(object))
}

func (c *Client) get(ctx context.Context, entity string, query Record) ([]Record, error) {
	if c.test {
		return testEcho(entity, "", query), nil
	}

	values := queryValues(query)
	values.Set("token", c.token)
	endpoint := c.baseURL + "/" + entity + "?" + values.Encode()

	return c.do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) delete(ctx context.Context, entity, id string) ([]Record, error) {
	if c.test {
		return []Record{}, nil
	}

	endpoint := c.baseURL + "/" + entity + "/" + url.PathEscape(id) +
		"?token=" + url.QueryEscape(c.token)

	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

// envelope wraps an object with token auth the way the TimeSync API
// expects for create and update calls.
func (c *Client) envelope(object Record) map[string]any {
	return map[string]any{
		"auth": map[string]any{
			"type":  "token",
			"token": c.token,
		},
		"object": object,
	}
}

func (c *Client) post(ctx context.Context, endpoint string, body any) ([]Record, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, payload)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]Record, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timesync request failed: %w", err)
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug("timesync request",
		zap.String("method", method),
		zap.String("url", redactToken(endpoint)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("timesync returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return records, nil
}

// decodeRecords accepts either a JSON array of objects or a single object,
// which is wrapped into a one-element slice. Server error bodies are plain
// objects and flow through here like any other record.
func decodeRecords(raw []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []Record{}, nil
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var record Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, err
	}
	return []Record{record}, nil
}

// queryValues flattens a filter payload into URL query parameters. List
// values become repeated parameters, matching the API's filter grammar.
func queryValues(query Record) url.Values {
	values := url.Values{}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := query[k].(type) {
		case []string:
			for _, item := range v {
				values.Add(k, item)
			}
		case []any:
			for _, item := range v {
				values.Add(k, fmt.Sprint(item))
			}
		case bool:
			values.Add(k, fmt.Sprintf("%t", v))
		default:
			values.Add(k, fmt.Sprint(v))
		}
	}

	return values
}

func redactToken(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
