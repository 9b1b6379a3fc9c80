package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/adapters/cache"
	"github.com/shieldsms/smishing-filter/internal/core"
)

func newTestCache(t *testing.T) *cache.MemoryCache {
	t.Helper()
	c := cache.NewMemoryCache(zap.NewNop(), time.Hour)
	t.Cleanup(c.Stop)
	return c
}

func entry(text string, ttl time.Duration) *core.CacheEntry {
	return &core.CacheEntry{
		Text:      text,
		Label:     core.LabelSmishing,
		Score:     0.87,
		Reasons:   []string{"url_detectada"},
		ModelUsed: "rule_scorer",
		LastSeen:  time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, entry("gana un premio", time.Hour)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "gana un premio")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Label != core.LabelSmishing || got.Score != 0.87 {
		t.Errorf("Get = %+v, want stored entry", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "never stored")
	if !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, entry("texto viejo", -time.Minute)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	_, err := c.Get(ctx, "texto viejo")
	if !errors.Is(err, cache.ErrExpired) {
		t.Errorf("Get error = %v, want ErrExpired", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, entry("borrar esto", time.Hour)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := c.Delete(ctx, "borrar esto"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err := c.Get(ctx, "borrar esto")
	if !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("Get error after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryCacheCleanup(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, entry("expirado", -time.Minute)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := c.Set(ctx, entry("vigente", time.Hour)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup returned error: %v", err)
	}

	if _, err := c.Get(ctx, "expirado"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("expired entry error = %v, want ErrNotFound after cleanup", err)
	}
	if _, err := c.Get(ctx, "vigente"); err != nil {
		t.Errorf("live entry error = %v, want nil", err)
	}
}
