package main

import (
	"context"
	"log/slog"

	"github.com/spf13/viper"

	"benchdash/internal/cache"
	"benchdash/internal/session"
	"benchdash/internal/web"
)

// newAPIClient builds a perf API client from configuration: base URL,
// the stored session token if one exists, and an optional Redis
// payload cache. A broken cache only costs the caching.
func newAPIClient(ctx context.Context) *web.Client {
	client := web.NewClient(viper.GetString("api.url"))

	if store, err := session.NewFileStore(viper.GetString("session.file")); err == nil {
		if sess, err := store.Read(); err == nil && sess.Authenticated() {
			client.WithToken(sess.Token)
		}
	}

	if url := viper.GetString("cache.redis_url"); url != "" {
		pc, err := cache.NewPayloadCache(ctx, url, viper.GetDuration("cache.ttl"))
		if err != nil {
			slog.Warn("Perf cache unavailable", "error", err)
		} else {
			client.WithCache(pc)
		}
	}

	return client
}
