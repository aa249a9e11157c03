package cli

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"quizdeck/internal/app"
	"quizdeck/internal/config"
	"quizdeck/internal/infra/memory"
	redisstore "quizdeck/internal/infra/redis"
	"quizdeck/internal/infra/sqlite"
)

const defaultDBPath = "quizdeck.db"

// openApp loads config, opens the selected store and hydrates the App. The
// returned cleanup closes the store.
func openApp(ctx context.Context, configPath, backendFlag string) (*app.App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	backend := config.Or(backendFlag, config.Or(cfg.Storage.Backend, "sqlite"))

	var (
		store   app.Store
		cleanup = func() {}
	)
	switch backend {
	case "sqlite":
		s, err := sqlite.Open(config.Or(cfg.Storage.SQLite.Path, defaultDBPath))
		if err != nil {
			return nil, nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		store = s
		cleanup = func() { _ = s.Close() }
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     config.Or(cfg.Storage.Redis.Addr, "localhost:6379"),
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		store = redisstore.NewStore(client)
		cleanup = func() { _ = client.Close() }
	case "memory":
		store = memory.NewStore()
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	a, err := app.New(ctx, store)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return a, cleanup, nil
}
