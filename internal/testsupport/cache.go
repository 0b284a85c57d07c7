package testsupport

import (
	"context"
	"testing"

	"atmosprobe/internal/config"
	"atmosprobe/internal/probecache"
)

// MustOpenCache opens the probe cache configured by cfg and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *probecache.Cache {
	t.Helper()

	cache, err := probecache.Open(context.Background(), cfg.Cache.Path, nil)
	if err != nil {
		t.Fatalf("probecache.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}
