package logs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/bremenlabs/agentops/pkg/repository"
)

// DefaultLimit bounds list queries when the caller does not specify one.
const DefaultLimit = 20

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a logs repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "logs"),
	}
}

func (r *repo) List(ctx context.Context, limit int, agentID string) ([]AgentLog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		q    string
		args []any
	)
	if agentID != "" {
		q = `
			SELECT id, agent_name, action_detail, status, created_at
			FROM agent_logs
			WHERE agent_name = $1
			ORDER BY created_at DESC
			LIMIT $2`
		args = []any{agentID, limit}
	} else {
		q = `
			SELECT id, agent_name, action_detail, status, created_at
			FROM agent_logs
			ORDER BY created_at DESC
			LIMIT $1`
		args = []any{limit}
	}

	results, err := repository.QueryMany(ctx, r.db, q, args, scanLog)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	return results, nil
}

func (r *repo) Latest(ctx context.Context, agentID string) (*AgentLog, error) {
	q := `
		SELECT id, agent_name, action_detail, status, created_at
		FROM agent_logs
		WHERE agent_name = $1
		ORDER BY created_at DESC
		LIMIT 1`

	entry, err := repository.QueryOne(ctx, r.db, q, []any{agentID}, scanLog)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &entry, nil
}

func (r *repo) LatestAll(ctx context.Context) ([]AgentLog, error) {
	q := `
		SELECT DISTINCT ON (agent_name) id, agent_name, action_detail, status, created_at
		FROM agent_logs
		ORDER BY agent_name, created_at DESC`

	results, err := repository.QueryMany(ctx, r.db, q, nil, scanLog)
	if err != nil {
		return nil, fmt.Errorf("query latest logs: %w", err)
	}
	return results, nil
}

func scanLog(s repository.Scanner) (AgentLog, error) {
	var entry AgentLog
	err := s.Scan(&entry.ID, &entry.AgentName, &entry.ActionDetail, &entry.Status, &entry.CreatedAt)
	return entry, err
}
