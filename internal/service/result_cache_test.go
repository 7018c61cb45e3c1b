package service

import (
	"context"
	"testing"

	"askhub/internal/domain"
	"askhub/internal/scoring"
)

func TestMemoryResultCache_RoundTrip(t *testing.T) {
	cache := NewMemoryResultCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "alice"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	res := scoring.LevelResult{Track: "Data Analyst", CareerLevel: domain.LevelMid, CombinedWeighted: 61}
	cache.Set(ctx, "alice", res)

	got, ok := cache.Get(ctx, "alice")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got.CareerLevel != domain.LevelMid || got.CombinedWeighted != 61 {
		t.Fatalf("unexpected cached result %+v", got)
	}

	cache.Invalidate(ctx, "alice")
	if _, ok := cache.Get(ctx, "alice"); ok {
		t.Fatalf("expected miss after invalidate")
	}
}
