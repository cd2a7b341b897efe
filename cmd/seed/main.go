// Package main provides the seed command for populating the table store
// with demo activity logs and business metrics.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn     = flag.String("dsn", "", "Database connection string")
		all     = flag.Bool("all", false, "Run all seeders")
		logs    = flag.Bool("logs", false, "Seed agent activity logs")
		metrics = flag.Bool("metrics", false, "Seed business metrics")
		days    = flag.Int("days", 30, "Days of business metrics to generate")
	)
	flag.Parse()

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	ran := false
	if *all || *logs {
		if err := seedLogs(ctx, db); err != nil {
			log.Fatalf("seeding logs failed: %v", err)
		}
		fmt.Println("agent logs seeded")
		ran = true
	}
	if *all || *metrics {
		if err := seedMetrics(ctx, db, *days); err != nil {
			log.Fatalf("seeding metrics failed: %v", err)
		}
		fmt.Println("business metrics seeded")
		ran = true
	}

	if !ran {
		fmt.Println("nothing to do: pass -all, -logs, or -metrics")
	}
}
