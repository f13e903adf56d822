package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopforge/shopforge/pkg/clients"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured  = errors.New("workflow: api token is not configured")
	ErrMonitorTimeout = errors.New("workflow: run monitoring timed out")
)

// RunState is the two-state view of a remote CI run: running until the
// provider reports completed, then success or failed.
type RunState string

const (
	StateRunning RunState = "running"
	StateSuccess RunState = "success"
	StateFailed  RunState = "failed"
)

type Run struct {
	ID         string
	State      RunState
	Conclusion string
	HTMLURL    string
}

// Client dispatches and polls runs of a named workflow on the remote CI
// provider.
type Client struct {
	apiURL       string
	token        string
	workflowName string
	ref          string
	client       clients.HTTPClientI
}

func New(apiURL, token, workflowName, ref string, client clients.HTTPClientI) *Client {
	return &Client{
		apiURL:       apiURL,
		token:        token,
		workflowName: workflowName,
		ref:          ref,
		client:       client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	h.Set("X-Request-ID", uuid.NewString())
	return h
}

// Dispatch starts the workflow on the configured ref with the given inputs
// and returns the provider's run id.
func (c *Client) Dispatch(inputs map[string]string) (string, error) {
	if c.token == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(map[string]any{
		"ref":    c.ref,
		"inputs": inputs,
	})
	if err != nil {
		return "", fmt.Errorf("workflow: marshal dispatch inputs: %w", err)
	}

	url := fmt.Sprintf("%s/v1/workflows/%s/dispatches", c.apiURL, c.workflowName)
	status, respBody, err := c.client.Post(url, c.headers(), body)
	if err != nil {
		return "", fmt.Errorf("workflow: dispatch %s: %w", c.workflowName, err)
	}
	if status >= 400 {
		return "", fmt.Errorf("workflow: dispatch %s: unexpected status %d", c.workflowName, status)
	}

	var resp struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("workflow: parse dispatch response: %w", err)
	}
	if resp.RunID == "" {
		return "", errors.New("workflow: dispatch response missing run id")
	}
	return resp.RunID, nil
}

// RunStatus fetches the run and maps the provider's three-state
// status/conclusion pair onto RunState. Any conclusion other than "success"
// (failure, cancelled, timed_out) maps to StateFailed.
func (c *Client) RunStatus(runID string) (*Run, error) {
	if c.token == "" {
		return nil, ErrNotConfigured
	}

	status, respBody, _, err := c.client.Get(fmt.Sprintf("%s/v1/runs/%s", c.apiURL, runID), c.headers())
	if err != nil {
		return nil, fmt.Errorf("workflow: run status %s: %w", runID, err)
	}
	if status >= 400 {
		return nil, fmt.Errorf("workflow: run status %s: unexpected status %d", runID, status)
	}

	var resp struct {
		Status     string `json:"status"`
		Conclusion string `json:"conclusion"`
		HTMLURL    string `json:"html_url"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("workflow: parse run status: %w", err)
	}

	run := &Run{ID: runID, Conclusion: resp.Conclusion, HTMLURL: resp.HTMLURL}
	if resp.Status != "completed" {
		run.State = StateRunning
	} else if resp.Conclusion == "success" {
		run.State = StateSuccess
	} else {
		run.State = StateFailed
	}
	return run, nil
}

// MonitorRun polls the run on a fixed interval until it reaches a terminal
// state, invoking onUpdate on every observed state change. It never polls
// past maxDuration; on expiry the last observed run is returned together with
// ErrMonitorTimeout.
func (c *Client) MonitorRun(ctx context.Context, runID string, onUpdate func(*Run), maxDuration, pollInterval time.Duration) (*Run, error) {
	deadline := time.NewTimer(maxDuration)
	defer deadline.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last *Run
	for {
		run, err := c.RunStatus(runID)
		if err != nil {
			// Transient poll failures are retried until the deadline.
			zap.L().Warn("workflow run poll failed", zap.String("runID", runID), zap.Error(err))
		} else {
			if last == nil || run.State != last.State {
				if onUpdate != nil {
					onUpdate(run)
				}
			}
			last = run
			if run.State != StateRunning {
				return run, nil
			}
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-deadline.C:
			return last, ErrMonitorTimeout
		case <-ticker.C:
		}
	}
}
