package logs

import "context"

// System defines the interface for activity log reads.
type System interface {
	// List returns up to limit entries newest first, optionally filtered
	// to one agent when agentID is non-empty.
	List(ctx context.Context, limit int, agentID string) ([]AgentLog, error)

	// Latest returns the most recent entry for an agent. An agent with
	// no entries yields ErrNotFound, which callers treat as a normal
	// absent result.
	Latest(ctx context.Context, agentID string) (*AgentLog, error)

	// LatestAll returns the most recent entry per agent, one row each.
	LatestAll(ctx context.Context) ([]AgentLog, error)
}
