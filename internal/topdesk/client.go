package topdesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	incidentsPath = "/tas/api/incidents"
	versionPath   = "/tas/api/version"
)

// DefaultTimeout bounds outbound requests when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the connection settings for a TOPdesk tenant.
type Config struct {
	// BaseURL is the tenant root, e.g. "https://example.topdesk.net".
	BaseURL string

	// Username and Password authenticate with HTTP basic auth using a
	// TOPdesk application password.
	Username string
	Password string

	// APIToken authenticates with a bearer token instead. When set it
	// takes precedence over basic auth.
	APIToken string

	// Timeout bounds each outbound request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Client talks to the TOPdesk REST API. It holds no mutable state and is
// safe for concurrent use; connection reuse between independent calls comes
// from the underlying http.Client.
type Client struct {
	baseURL  string
	username string
	password string
	apiToken string
	httpc    *http.Client
	logger   *slog.Logger
}

// NewClient creates a TOPdesk API client. Credentials are passed through
// unchanged on every request; their lifecycle is the caller's concern.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("topdesk: base URL is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		apiToken: cfg.APIToken,
		httpc:    &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// LookupIncident resolves a human-readable ticket number into its flattened
// incident record. raw may be the bare digits ("2510017") or an
// already-formatted number ("I2510 017"). Exactly one request is issued per
// call; there are no retries and no caching.
//
// Incident numbers are assumed unique. Should the search ever return more
// than one record, the first one is taken; that is a documented
// simplification, not an error.
func (c *Client) LookupIncident(ctx context.Context, raw string) (*IncidentSummary, error) {
	canonical := CanonicalTicketNumber(raw)

	query := url.Values{}
	query.Set("query", fmt.Sprintf("number=='%s'", canonical))

	records, err := c.searchIncidents(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Raw: raw, Canonical: canonical}
	}

	summary := Flatten(records[0])
	if summary.IncidentNumber == "" {
		summary.IncidentNumber = canonical
	}
	if summary.IncidentID != "" {
		if _, err := uuid.Parse(summary.IncidentID); err != nil {
			c.logger.Warn("TOPdesk incident id is not a UUID",
				"incident_id", summary.IncidentID,
				"incident_number", summary.IncidentNumber)
		}
	}

	return summary, nil
}

// Ping verifies connectivity and credentials against the API version
// endpoint. It returns the reported TOPdesk API version.
func (c *Client) Ping(ctx context.Context) (string, error) {
	body, err := c.get(ctx, versionPath, nil)
	if err != nil {
		return "", err
	}

	var version struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(body, &version); err != nil {
		return "", fmt.Errorf("decoding version response: %w", err)
	}
	return version.Version, nil
}

// searchIncidents issues the incident search request and decodes the result
// list. A 204 response means zero matches; TOPdesk uses it instead of an
// empty array.
func (c *Client) searchIncidents(ctx context.Context, query url.Values) ([]map[string]any, error) {
	body, err := c.get(ctx, incidentsPath, query)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding incident search response: %w", err)
	}
	return records, nil
}

// get performs a single authorized GET and maps the HTTP outcome onto the
// error taxonomy. A 204 yields a nil body with no error.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building TOPdesk request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	reqID := uuid.NewString()
	c.logger.Debug("TOPdesk request", "request_id", reqID, "path", path, "query", query.Encode())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("TOPdesk response", "request_id", reqID, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
		return
	}
	req.SetBasicAuth(c.username, c.password)
}
