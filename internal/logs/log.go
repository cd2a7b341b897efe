// Package logs provides read access to the append-only activity log
// written by the external agent-execution system. Entries are never
// created, mutated, or deleted from here.
package logs

import (
	"fmt"
	"time"
)

// Status is the outcome recorded on a log entry.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusPending Status = "pending"
)

// Validate checks that the status is one of the supported values.
func (s Status) Validate() error {
	switch s {
	case StatusSuccess, StatusError, StatusPending:
		return nil
	default:
		return fmt.Errorf("invalid log status: %s", s)
	}
}

// AgentLog is one activity log entry. AgentName references the agent
// definition id that produced it.
type AgentLog struct {
	ID           string    `json:"id"`
	AgentName    string    `json:"agent_name"`
	ActionDetail string    `json:"action_detail"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
