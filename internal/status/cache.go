// Package status keeps a warm view of each agent's most recent log
// entry by polling the activity log at a fixed interval.
package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/poll"
)

// Cache polls the latest log entry per agent and answers lookups from
// the most recent poll.
type Cache struct {
	poller *poll.Poller[[]logs.AgentLog]
}

// NewCache creates a status cache over the logs system.
func NewCache(sys logs.System, interval time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		poller: poll.New("agent-status", interval, logger, func(ctx context.Context) ([]logs.AgentLog, error) {
			return sys.LatestAll(ctx)
		}),
	}
}

// Run polls until ctx is cancelled. It blocks; callers run it in a
// goroutine.
func (c *Cache) Run(ctx context.Context) {
	c.poller.Run(ctx)
}

// Latest returns the cached most recent entry for an agent. The second
// result is false when the cache holds nothing for it.
func (c *Cache) Latest(agentID string) (logs.AgentLog, bool) {
	entries, ok := c.poller.Latest()
	if !ok {
		return logs.AgentLog{}, false
	}
	for _, e := range entries {
		if e.AgentName == agentID {
			return e, true
		}
	}
	return logs.AgentLog{}, false
}
