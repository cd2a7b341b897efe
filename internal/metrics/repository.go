package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/bremenlabs/agentops/pkg/repository"
)

// DefaultLimit bounds series queries when the caller does not specify one.
const DefaultLimit = 30

type repo struct {
	db      *sql.DB
	logger  *slog.Logger
	sampler Sampler
}

// New creates a metrics repository implementing the System interface.
// The sampler supplies the fallback series for unreachable or empty
// stores.
func New(db *sql.DB, logger *slog.Logger, sampler Sampler) System {
	return &repo{
		db:      db,
		logger:  logger.With("system", "metrics"),
		sampler: sampler,
	}
}

func (r *repo) Series(ctx context.Context, limit int) (*Series, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := `
		SELECT to_char(date, 'YYYY-MM-DD'), users, revenue, spend
		FROM business_metrics
		ORDER BY date ASC
		LIMIT $1`

	points, err := repository.QueryMany(ctx, r.db, q, []any{limit}, scanMetric)
	if err != nil {
		r.logger.Warn("metrics read failed, serving sample series", "error", err)
		return r.sample(), nil
	}
	if len(points) == 0 {
		r.logger.Info("metrics store empty, serving sample series")
		return r.sample(), nil
	}

	return &Series{Points: points, Source: SourceLive}, nil
}

func (r *repo) sample() *Series {
	return &Series{Points: r.sampler(SampleDays), Source: SourceSample}
}

func scanMetric(s repository.Scanner) (Metric, error) {
	var m Metric
	err := s.Scan(&m.Date, &m.Users, &m.Revenue, &m.Spend)
	if err != nil {
		return m, fmt.Errorf("scan metric: %w", err)
	}
	return m, nil
}
