package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/metrics"
	"github.com/bremenlabs/agentops/internal/registry"
	"github.com/google/uuid"
)

var actionDetails = map[string][]string{
	"business-intel": {
		"Daily briefing delivered",
		"Anomaly check completed, traffic within bounds",
		"Budget tracker updated: 62% of monthly cap",
	},
	"career-scout": {
		"Scanned 48 new EMEA listings, 3 Tier-1 matches",
		"Bangkok observatory: 2 roles archived",
		"Auto-applied to 1 contract role",
	},
	"linkedin-researcher": {
		"Collected 12 sources on Agentic AI",
		"Drafted review deck for mittelstand persona",
		"Published summary batch",
	},
}

var statuses = []logs.Status{
	logs.StatusSuccess, logs.StatusSuccess, logs.StatusSuccess,
	logs.StatusPending, logs.StatusError,
}

// seedLogs inserts a spread of recent activity entries for every
// catalog agent inside one transaction.
func seedLogs(ctx context.Context, db *sql.DB) error {
	reg, err := registry.New()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := `
		INSERT INTO agent_logs (id, agent_name, action_detail, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	for _, agent := range reg.All() {
		details := actionDetails[agent.ID]
		for i, detail := range details {
			_, err := tx.ExecContext(ctx, q,
				uuid.New(),
				agent.ID,
				detail,
				statuses[rand.Intn(len(statuses))],
				now.Add(-time.Duration(i*3+rand.Intn(3))*time.Hour),
			)
			if err != nil {
				return fmt.Errorf("insert log for %s: %w", agent.ID, err)
			}
		}
	}

	return tx.Commit()
}

// seedMetrics inserts a generated daily series ending today.
func seedMetrics(ctx context.Context, db *sql.DB, days int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := `
		INSERT INTO business_metrics (date, users, revenue, spend)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET users = EXCLUDED.users, revenue = EXCLUDED.revenue, spend = EXCLUDED.spend`

	sampler := metrics.NewSampler(time.Now().UnixNano())
	for _, point := range sampler(days) {
		if _, err := tx.ExecContext(ctx, q, point.Date, point.Users, point.Revenue, point.Spend); err != nil {
			return fmt.Errorf("insert metric %s: %w", point.Date, err)
		}
	}

	return tx.Commit()
}
