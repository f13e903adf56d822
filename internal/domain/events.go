package domain

import "time"

// DeploymentEventType is the closed set of step events recorded against a
// deployment while it is being provisioned and supervised.
type DeploymentEventType string

const (
	EventDispatched  DeploymentEventType = "dispatched"
	EventHealthCheck DeploymentEventType = "health_check"
	EventTerminal    DeploymentEventType = "terminal"
)

// DeploymentEvent is one entry of the structured deployment log. Only the
// fields relevant to the event type are set.
type DeploymentEvent struct {
	Type DeploymentEventType `json:"type"`
	At   time.Time           `json:"at"`

	// dispatched
	RunID string `json:"run_id,omitempty"`

	// health_check
	Attempt int  `json:"attempt,omitempty"`
	Healthy bool `json:"healthy,omitempty"`

	// terminal
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

func NewDispatchedEvent(runID string) DeploymentEvent {
	return DeploymentEvent{Type: EventDispatched, At: time.Now().UTC(), RunID: runID}
}

func NewHealthCheckEvent(attempt int, healthy bool, message string) DeploymentEvent {
	return DeploymentEvent{Type: EventHealthCheck, At: time.Now().UTC(), Attempt: attempt, Healthy: healthy, Message: message}
}

func NewTerminalEvent(status DeploymentStatus, message string) DeploymentEvent {
	return DeploymentEvent{Type: EventTerminal, At: time.Now().UTC(), Status: string(status), Message: message}
}
