package configs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bremenlabs/agentops/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a configs repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "configs"),
	}
}

func (r *repo) Find(ctx context.Context, key string) (*AgentConfig, error) {
	q := `
		SELECT key, value, last_updated
		FROM agent_configs
		WHERE key = $1`

	c, err := repository.QueryOne(ctx, r.db, q, []any{key}, scanConfig)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Upsert(ctx context.Context, key string, value map[string]any) (*AgentConfig, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal config value: %w", err)
	}

	q := `
		INSERT INTO agent_configs (key, value, last_updated)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, last_updated = NOW()
		RETURNING key, value, last_updated`

	c, err := repository.QueryOne(ctx, r.db, q, []any{key, data}, scanConfig)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("config saved", "key", c.Key)
	return &c, nil
}

func (r *repo) List(ctx context.Context) ([]AgentConfig, error) {
	q := `
		SELECT key, value, last_updated
		FROM agent_configs
		ORDER BY key`

	results, err := repository.QueryMany(ctx, r.db, q, nil, scanConfig)
	if err != nil {
		return nil, fmt.Errorf("query configs: %w", err)
	}
	return results, nil
}

func scanConfig(s repository.Scanner) (AgentConfig, error) {
	var (
		c   AgentConfig
		raw []byte
	)
	if err := s.Scan(&c.Key, &raw, &c.LastUpdated); err != nil {
		return c, err
	}
	if err := json.Unmarshal(raw, &c.Value); err != nil {
		return c, fmt.Errorf("unmarshal config value: %w", err)
	}
	return c, nil
}
