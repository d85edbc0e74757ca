package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/redis/go-redis/v9"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
}

// NewHealthHandler builds the readiness check. Postgres is critical; Redis
// only backs the cache and login limiter, so its failure is reported as
// degraded instead of unavailable.
func NewHealthHandler(name, version string, endpoints *Endpoints) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   pingDB(endpoints.DB),
		},
	}

	if endpoints.RedisClient != nil {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check:     pingRedis(endpoints.RedisClient),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    name,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func pingDB(db *sql.DB) health.CheckFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return fmt.Errorf("database is not initialized")
		}

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping failed: %w", err)
		}

		return nil
	}
}

func pingRedis(client *redis.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}

		return nil
	}
}
