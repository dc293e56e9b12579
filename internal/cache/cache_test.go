package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(DefaultTTL)
	ctx := context.Background()

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatal("unknown key should miss")
	}

	s.Set(ctx, "k", []byte("v"))
	got, ok := s.Get(ctx, "k")
	if !ok || string(got) != "v" {
		t.Fatalf("expected hit with v, got %q (ok=%v)", got, ok)
	}
}

func TestMemoryStoreExpiryBoundary(t *testing.T) {
	s := NewMemoryStore(300 * time.Second)
	current := time.Unix(1700000000, 0)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	s.Set(ctx, "k", []byte("v"))

	current = current.Add(299 * time.Second)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatal("entry should still be fresh just before the TTL")
	}

	current = current.Add(time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("entry should expire exactly at the TTL")
	}

	current = current.Add(time.Hour)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("entry should stay expired")
	}
}

func TestMemoryStoreOverwriteRestartsTTL(t *testing.T) {
	s := NewMemoryStore(300 * time.Second)
	current := time.Unix(1700000000, 0)
	s.now = func() time.Time { return current }
	ctx := context.Background()

	s.Set(ctx, "k", []byte("old"))
	current = current.Add(400 * time.Second)

	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("entry should have expired")
	}

	s.Set(ctx, "k", []byte("new"))
	current = current.Add(299 * time.Second)
	got, ok := s.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Fatalf("expected refreshed entry, got %q (ok=%v)", got, ok)
	}
}

func TestMemoryStoreDefaultTTL(t *testing.T) {
	s := NewMemoryStore(0)
	if s.ttl != DefaultTTL {
		t.Fatalf("expected default ttl, got %s", s.ttl)
	}
}

func TestKeyDerivation(t *testing.T) {
	if got := Key("trending"); got != "trending" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := Key("prices", "bitcoin,ethereum", "usd"); got != "prices:bitcoin,ethereum:usd" {
		t.Fatalf("unexpected key: %s", got)
	}
	if Key("history", "BTC", "7") == Key("history", "BTC", "30") {
		t.Fatal("different parameters must produce different keys")
	}
	if Key("news", "10") == Key("posts", "10") {
		t.Fatal("different operations must produce different keys")
	}
}
