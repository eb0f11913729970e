package distlock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisLockExclusive(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	first := NewLock(client, nil, "send:u1", 30*time.Second)
	ok, err := first.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !ok {
		t.Fatal("first acquire should succeed")
	}

	second := NewLock(client, nil, "send:u1", 30*time.Second)
	ok, err = second.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if ok {
		t.Fatal("second acquire should fail while first holds the lock")
	}

	if err := first.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	ok, err = second.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !ok {
		t.Fatal("acquire should succeed after release")
	}
}

func TestRedisLockDifferentKeys(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	a := NewLock(client, nil, "send:u1", 30*time.Second)
	b := NewLock(client, nil, "send:u2", 30*time.Second)

	if ok, _ := a.Acquire(ctx); !ok {
		t.Fatal("lock a should acquire")
	}
	if ok, _ := b.Acquire(ctx); !ok {
		t.Fatal("lock b should acquire independently")
	}
}

func TestRedisLockReleaseNotOwned(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	holder := NewLock(client, nil, "send:u1", 30*time.Second)
	if ok, _ := holder.Acquire(ctx); !ok {
		t.Fatal("acquire failed")
	}

	// A stale handle that never acquired must not free the holder's lock.
	stale := NewLock(client, nil, "send:u1", 30*time.Second)
	if err := stale.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}

	intruder := NewLock(client, nil, "send:u1", 30*time.Second)
	if ok, _ := intruder.Acquire(ctx); ok {
		t.Fatal("lock was freed by a non-owner")
	}
}
