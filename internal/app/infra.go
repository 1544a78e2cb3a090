package app

import (
	"context"
	"database/sql"

	"github.com/MroGG1/rpl-backend/internal/auth/credentials"
	"github.com/MroGG1/rpl-backend/internal/config"
	"github.com/MroGG1/rpl-backend/internal/db"
	"github.com/MroGG1/rpl-backend/internal/logger"
	"github.com/MroGG1/rpl-backend/internal/redis"
	"github.com/MroGG1/rpl-backend/internal/session"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB       *db.DB
	Sessions session.Store
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	pool := &db.DB{DB: sqlDB}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		credStore := credentials.NewPostgresStore(pool)
		if err := credStore.EnsureSeed(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return nil, err
		}
		logger.Info("admin credential seeded", map[string]any{
			"username": cfg.AdminUsername,
		})
	}

	var sessions session.Store
	if cfg.RedisAddr == "" {
		// sessions die with the process; fine for local runs
		logger.Warn("REDIS_ADDR not set, using in-memory session store", nil)
		sessions = session.NewMemoryStore()
	} else {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		logger.Info("redis ready", nil)
		sessions = session.NewRedisStore(redisClient.Client)
	}

	return &Infra{
		DB:       pool,
		Sessions: sessions,
	}, nil
}
