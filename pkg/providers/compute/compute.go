package compute

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopforge/shopforge/pkg/clients"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("compute: api token is not configured")

// Health classifies the result of an HTTP probe against a deployed app.
type Health int

const (
	// HealthHealthy: the app answered with 2xx or 3xx.
	HealthHealthy Health = iota
	// HealthDegraded: the app is reachable but answered with 4xx.
	HealthDegraded
	// HealthUnreachable: timeout, connection error or 5xx.
	HealthUnreachable
)

func (h Health) String() string {
	switch h {
	case HealthHealthy:
		return "healthy"
	case HealthDegraded:
		return "degraded"
	default:
		return "unreachable"
	}
}

// AppState is the platform-level view of a remote app.
type AppState struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Exists bool   `json:"-"`
}

// Client talks to the compute platform's REST API. App creation is implicit
// and idempotent; expected remote failures (404, timeouts) are reported as
// typed results, not errors.
type Client struct {
	apiURL    string
	token     string
	appDomain string
	client    clients.HTTPClientI
}

func New(apiURL, token, appDomain string, client clients.HTTPClientI) *Client {
	return &Client{
		apiURL:    apiURL,
		token:     token,
		appDomain: appDomain,
		client:    client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	return h
}

// BaseURL is the public URL the provisioned shop is served from.
func (c *Client) BaseURL(appName string) string {
	return fmt.Sprintf("https://%s.%s", appName, c.appDomain)
}

// EnsureApp creates the remote application shell. Creating an app that
// already exists is not an error.
func (c *Client) EnsureApp(appName string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	body, _ := json.Marshal(map[string]string{"name": appName})
	status, _, err := c.client.Post(c.apiURL+"/v1/apps", c.headers(), body)
	if err != nil {
		return fmt.Errorf("compute: create app %s: %w", appName, err)
	}
	if status == http.StatusConflict {
		zap.L().Debug("app already exists", zap.String("app", appName))
		return nil
	}
	if status >= 400 {
		return fmt.Errorf("compute: create app %s: unexpected status %d", appName, status)
	}
	return nil
}

// SetSecrets upserts the named key/value secrets into the remote app.
func (c *Client) SetSecrets(appName string, vars map[string]string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	body, _ := json.Marshal(map[string]any{"secrets": vars})
	status, _, err := c.client.Post(fmt.Sprintf("%s/v1/apps/%s/secrets", c.apiURL, appName), c.headers(), body)
	if err != nil {
		return fmt.Errorf("compute: set secrets for %s: %w", appName, err)
	}
	if status >= 400 {
		return fmt.Errorf("compute: set secrets for %s: unexpected status %d", appName, status)
	}
	return nil
}

// AppStatus fetches the platform-level state of an app. A missing app is not
// an error; Exists is false.
func (c *Client) AppStatus(appName string) (*AppState, error) {
	if c.token == "" {
		return nil, ErrNotConfigured
	}

	status, respBody, _, err := c.client.Get(fmt.Sprintf("%s/v1/apps/%s", c.apiURL, appName), c.headers())
	if err != nil {
		return nil, fmt.Errorf("compute: app status for %s: %w", appName, err)
	}
	if status == http.StatusNotFound {
		return &AppState{Name: appName, Exists: false}, nil
	}
	if status >= 400 {
		return nil, fmt.Errorf("compute: app status for %s: unexpected status %d", appName, status)
	}

	var state AppState
	if err := json.Unmarshal(respBody, &state); err != nil {
		return nil, fmt.Errorf("compute: app status for %s: %w", appName, err)
	}
	state.Exists = true
	return &state, nil
}

// Probe hits the app's public root URL and classifies the response.
func (c *Client) Probe(appName string) Health {
	status, _, _, err := c.client.Get(c.BaseURL(appName)+"/", nil)
	switch {
	case err != nil:
		return HealthUnreachable
	case status >= 200 && status < 400:
		return HealthHealthy
	case status < 500:
		return HealthDegraded
	default:
		return HealthUnreachable
	}
}

// DestroyApp tears down the remote app. A 404 means the app is already gone
// and is not an error.
func (c *Client) DestroyApp(appName string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	status, err := c.client.Delete(fmt.Sprintf("%s/v1/apps/%s", c.apiURL, appName), c.headers())
	if err != nil {
		return fmt.Errorf("compute: destroy app %s: %w", appName, err)
	}
	if status == http.StatusNotFound {
		zap.L().Debug("app already destroyed", zap.String("app", appName))
		return nil
	}
	if status >= 400 {
		return fmt.Errorf("compute: destroy app %s: unexpected status %d", appName, status)
	}
	return nil
}
