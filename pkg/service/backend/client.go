package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
)

// Error tags for categorization
var (
	ErrTagNetwork    = goerr.NewTag("network")
	ErrTagHTTPStatus = goerr.NewTag("http_status")
	ErrTagDecode     = goerr.NewTag("decode")
)

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 * 1024

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "backend returned " + strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
	}
	return "backend returned " + strconv.Itoa(e.StatusCode) + ": " + e.Message
}

// AsStatusError extracts the StatusError from an error chain
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Client is the HTTP client of the statistics backend
type Client struct {
	baseURL     *url.URL
	paths       model.EndpointPaths
	recentLimit int
	httpClient  *http.Client
}

var _ interfaces.StatsBackend = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithPaths overrides the endpoint paths. Empty paths keep their defaults.
func WithPaths(paths model.EndpointPaths) Option {
	return func(c *Client) {
		c.paths = paths.WithDefaults()
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithRecentLimit sets the default number of recent reports
func WithRecentLimit(limit int) Option {
	return func(c *Client) {
		c.recentLimit = limit
	}
}

// New creates a new backend client for the given base URL, e.g. "http://localhost:5000/api"
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("backend base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid backend base URL", goerr.V("url", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("backend base URL must be http or https", goerr.V("url", baseURL))
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		baseURL:     u,
		paths:       model.DefaultEndpointPaths(),
		recentLimit: model.DefaultRecentLimit,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RecentLimit returns the default number of recent reports
func (c *Client) RecentLimit() int {
	return c.recentLimit
}

// URL returns the absolute URL of a path with optional query
func (c *Client) URL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Overview fetches the overview statistics
func (c *Client) Overview(ctx context.Context) (*model.OverviewResponse, error) {
	var resp model.OverviewResponse
	if err := c.getJSON(ctx, types.EndpointOverview, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories fetches the report count per category
func (c *Client) Categories(ctx context.Context) ([]model.CategoryStat, error) {
	var resp []model.CategoryStat
	if err := c.getJSON(ctx, types.EndpointCategories, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Trends fetches the monthly report counts
func (c *Client) Trends(ctx context.Context) ([]model.TrendPoint, error) {
	var resp []model.TrendPoint
	if err := c.getJSON(ctx, types.EndpointTrends, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Locations fetches the report count per location
func (c *Client) Locations(ctx context.Context) ([]model.LocationStat, error) {
	var resp []model.LocationStat
	if err := c.getJSON(ctx, types.EndpointLocations, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RecentReports fetches the most recent reports. A non-positive limit uses the client default.
func (c *Client) RecentReports(ctx context.Context, limit int) ([]model.Report, error) {
	if limit <= 0 {
		limit = c.recentLimit
	}
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}

	var resp []model.Report
	if err := c.getJSON(ctx, types.EndpointRecent, query, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Milestones fetches the progress milestones
func (c *Client) Milestones(ctx context.Context) ([]model.Milestone, error) {
	var resp []model.Milestone
	if err := c.getJSON(ctx, types.EndpointMilestones, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateReport submits a new report
func (c *Client) CreateReport(ctx context.Context, draft *model.ReportDraft) (*model.CreatedReport, error) {
	if draft == nil {
		return nil, goerr.New("report draft is nil")
	}

	body, err := json.Marshal(draft)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode report draft")
	}

	target := c.URL(c.paths.CreateReport, nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", target))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var created model.CreatedReport
	if err := c.do(ctx, req, &created); err != nil {
		if !goerr.HasTag(err, ErrTagDecode) {
			return nil, err
		}
		// The backend answered 2xx, so the report exists even if the body is unreadable
		ctxlog.From(ctx).Warn("Report accepted without a readable body", "error", err)
		return &model.CreatedReport{Success: true}, nil
	}
	return &created, nil
}

func (c *Client) getJSON(ctx context.Context, ep types.Endpoint, query url.Values, out any) error {
	target := c.URL(c.paths.Path(ep), query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request",
			goerr.V("endpoint", ep),
			goerr.V("url", target))
	}
	req.Header.Set("Accept", "application/json")

	if err := c.do(ctx, req, out); err != nil {
		return goerr.Wrap(err, "failed to fetch statistics", goerr.V("endpoint", ep))
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "backend request failed",
			goerr.T(ErrTagNetwork),
			goerr.V("method", req.Method),
			goerr.V("url", req.URL.String()))
	}
	defer resp.Body.Close()

	ctxlog.From(ctx).Debug("Backend response",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
		return goerr.Wrap(se, "backend returned error status",
			goerr.T(ErrTagHTTPStatus),
			goerr.V("status", resp.StatusCode),
			goerr.V("error", se.Message),
			goerr.V("url", req.URL.String()))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return goerr.Wrap(err, "failed to decode backend response",
			goerr.T(ErrTagDecode),
			goerr.V("url", req.URL.String()))
	}
	return nil
}

// readErrorMessage extracts the {"error": "..."} text of an error response
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
