package main

import (
	"context"
	"fmt"

	"github.com/Sternrassler/museum-client/pkg/artic"
	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/Sternrassler/museum-client/pkg/met"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/Sternrassler/museum-client/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
)

func (a *app) httpClient() (*client.Client, error) {
	cfg := client.DefaultConfig(a.cfg.HTTP.UserAgent)
	cfg.Timeout = a.cfg.HTTP.Timeout
	cfg.MaxRetries = a.cfg.HTTP.MaxRetries
	cfg.RateLimit = ratelimit.Config{
		RequestsPerSecond: a.cfg.HTTP.RequestsPerSecond,
		Burst:             a.cfg.HTTP.Burst,
	}
	return client.New(cfg)
}

// idListStore opens the configured id-list store.
func (a *app) idListStore(ctx context.Context) (cache.Store, error) {
	if a.cfg.Cache.Store != "redis" {
		return cache.NewMemoryStore(a.cfg.Cache.MemoryEntries)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Cache.RedisAddr,
		Password: a.cfg.Cache.RedisPassword,
		DB:       a.cfg.Cache.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", a.cfg.Cache.RedisAddr, err)
	}
	a.closers = append(a.closers, rdb.Close)

	a.logger.Debug().Str("addr", a.cfg.Cache.RedisAddr).Msg("Connected to Redis")
	return cache.NewRedisStore(rdb, a.cfg.Cache.TTL), nil
}

func (a *app) metSession(ctx context.Context) (*pagination.Session, error) {
	httpClient, err := a.httpClient()
	if err != nil {
		return nil, err
	}
	metClient, err := met.New(httpClient, a.cfg.MetClientConfig())
	if err != nil {
		return nil, err
	}
	store, err := a.idListStore(ctx)
	if err != nil {
		return nil, err
	}
	fetcher := met.NewFetcher(metClient, store, a.cfg.PageConfig(), a.logger)
	return pagination.NewSession(met.Backend, fetcher, a.logger), nil
}

func (a *app) articSession() (*pagination.Session, error) {
	httpClient, err := a.httpClient()
	if err != nil {
		return nil, err
	}
	articClient, err := artic.New(httpClient, a.cfg.ArticClientConfig())
	if err != nil {
		return nil, err
	}
	fetcher := artic.NewFetcher(articClient, a.cfg.PageConfig(), a.logger)
	return pagination.NewSession(artic.Backend, fetcher, a.logger), nil
}
