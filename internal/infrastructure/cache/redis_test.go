package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	// Non-zero DB so REDIS_DB selection is observable
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// The guard's write pattern: claim a key once, read it back
	ok, err := c.SetNX(ctx, "idemp:post:/services:abc", "lock", time.Minute).Result()
	if err != nil || !ok {
		t.Fatalf("SetNX = (%v, %v), want (true, nil)", ok, err)
	}
	v, err := c.Get(ctx, "idemp:post:/services:abc").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "lock" {
		t.Fatalf("GET value = %q, want %q", v, "lock")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// Unresolvable host → Ping should fail immediately (no 5s delay)
	_, err := OpenRedis("not-a-real-host:6379", 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not-a-real-host:6379") {
		t.Fatalf("error should name the address, got: %v", err)
	}
}
