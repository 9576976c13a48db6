package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRepo() (*SessionRepository[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewSessionRepository[string]()
	repo.now = clock.Now
	return repo, clock
}

func TestSessionRepository_FindOrCreate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	calls := 0
	create := func() string {
		calls++
		return "workspace-a"
	}

	v, created := repo.FindOrCreate(ctx, "a", create)
	assert.True(t, created)
	assert.Equal(t, "workspace-a", v)

	v, created = repo.FindOrCreate(ctx, "a", create)
	assert.False(t, created)
	assert.Equal(t, "workspace-a", v)
	assert.Equal(t, 1, calls)

	found, ok := repo.Find(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "workspace-a", found)

	_, ok = repo.Find(ctx, "missing")
	assert.False(t, ok)
	assert.Equal(t, 1, repo.Count(ctx))

	repo.Delete(ctx, "a")
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestSessionRepository_Sweep(t *testing.T) {
	ctx := context.Background()
	repo, clock := newTestRepo()

	repo.FindOrCreate(ctx, "old", func() string { return "old" })
	clock.Advance(90 * time.Minute)
	repo.FindOrCreate(ctx, "fresh", func() string { return "fresh" })
	clock.Advance(45 * time.Minute)

	removed := repo.Sweep(ctx, time.Hour)

	assert.Equal(t, 1, removed)
	_, ok := repo.Find(ctx, "old")
	assert.False(t, ok)
	_, ok = repo.Find(ctx, "fresh")
	assert.True(t, ok)
}

func TestSessionRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.FindOrCreate(ctx, "shared", func() int { return 42 })
		}()
	}
	wg.Wait()

	v, ok := repo.Find(ctx, "shared")
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, repo.Count(ctx))
}
