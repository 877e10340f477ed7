package cache

import (
	"strings"
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)
	etag := c.Set("fixtures?id=1", []byte(`{"a":1}`), time.Minute)

	data, gotETag, ok := c.Get("fixtures?id=1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if string(data) != `{"a":1}` || gotETag != etag {
		t.Fatalf("unexpected entry %q %q", data, gotETag)
	}
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := New(true)
	if _, _, ok := c.Get("nope"); ok {
		t.Fatal("expected a miss")
	}
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)
	if _, _, ok := c.Get("k"); ok {
		t.Fatal("expired entry must not be served")
	}
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	if etag == "" {
		t.Fatal("a disabled cache still computes the ETag for the response")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Fatal("disabled cache must always miss")
	}
}

func TestEvictRemovesExpiredEntries(t *testing.T) {
	c := New(true)
	c.Set("dead", []byte("v"), -time.Second)
	c.Set("alive", []byte("v"), time.Minute)

	c.evict()

	c.mu.RLock()
	_, deadExists := c.entries["dead"]
	_, aliveExists := c.entries["alive"]
	c.mu.RUnlock()
	if deadExists {
		t.Fatal("expired entry should be evicted")
	}
	if !aliveExists {
		t.Fatal("live entry should survive eviction")
	}
}

func TestStats(t *testing.T) {
	c := New(true)
	c.Set("alive", []byte("v"), time.Minute)
	c.Set("dead", []byte("v"), -time.Second)

	stats := c.Stats()
	if stats["total_keys"] != 2 || stats["active_keys"] != 1 || stats["expired_keys"] != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestComputeETagIsWeakAndStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	if a != b {
		t.Fatalf("same body must hash to the same tag: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, `W/"`) || !strings.HasSuffix(a, `"`) {
		t.Fatalf("expected a weak ETag, got %q", a)
	}
	if ComputeETag([]byte("other")) == a {
		t.Fatal("different bodies must hash differently")
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	if !CheckETagMatch(etag, etag) {
		t.Fatal("identical tags must match")
	}
	if !CheckETagMatch("*", etag) {
		t.Fatal("wildcard must match")
	}
	if CheckETagMatch("", etag) {
		t.Fatal("absent header must not match")
	}
	if CheckETagMatch(`W/"other"`, etag) {
		t.Fatal("different tags must not match")
	}
}
