package rank_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/domainlens/domainlens/internal/rank"
)

func writeShard(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing shard: %v", err)
	}
}

// ─── FileSource ────────────────────────────────────────────────────────

func TestFileSource_ResolveHit(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeShard(t, dir, "ex.txt", "extra.com:40\nexample.com:1234\nexample.org:99\n")

	src := rank.NewFileSource(dir)
	got, err := src.Resolve(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 1234 {
		t.Errorf("expected rank 1234, got %d", got)
	}
}

func TestFileSource_ResolveMissReturnsUnranked(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeShard(t, dir, "ex.txt", "example.org:99\n")

	src := rank.NewFileSource(dir)
	got, err := src.Resolve(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("a missing domain is not an error, got: %v", err)
	}
	if got != rank.Unranked {
		t.Errorf("expected unranked (0), got %d", got)
	}
}

func TestFileSource_MissingShardIsError(t *testing.T) {
	t.Parallel()
	src := rank.NewFileSource(t.TempDir())

	_, err := src.Resolve(context.Background(), "example.com")
	if err == nil {
		t.Fatal("expected an error for an unreadable shard")
	}
}

func TestFileSource_NormalizesDomain(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeShard(t, dir, "ex.txt", "example.com:7\n")
	// IDN form of bücher.de partitions under "xn".
	writeShard(t, dir, "xn.txt", "xn--bcher-kva.de:55\n")

	src := rank.NewFileSource(dir)

	got, err := src.Resolve(context.Background(), "  EXAMPLE.com ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 7 {
		t.Errorf("expected rank 7, got %d", got)
	}

	got, err = src.Resolve(context.Background(), "bücher.de")
	if err != nil {
		t.Fatalf("Resolve IDN: %v", err)
	}
	if got != 55 {
		t.Errorf("expected rank 55, got %d", got)
	}
}

func TestFileSource_ShortDomainUsesOwnShard(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeShard(t, dir, "io.txt", "io:3\n")

	src := rank.NewFileSource(dir)
	got, err := src.Resolve(context.Background(), "io")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 3 {
		t.Errorf("expected rank 3, got %d", got)
	}
}

func TestFileSource_CanceledContext(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeShard(t, dir, "ex.txt", "example.org:99\nexample.com:5\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := rank.NewFileSource(dir)
	_, err := src.Resolve(ctx, "example.com")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// ─── CachedSource ──────────────────────────────────────────────────────

// countingSource counts Resolve calls for cache assertions.
type countingSource struct {
	mu    sync.Mutex
	calls int
	ranks map[string]int
	err   error
}

func (c *countingSource) Resolve(_ context.Context, domain string) (int, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	return c.ranks[domain], nil
}

func TestCachedSource_SecondLookupIsCached(t *testing.T) {
	t.Parallel()
	inner := &countingSource{ranks: map[string]int{"example.com": 12}}
	src := rank.NewCachedSource(inner, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := src.Resolve(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != 12 {
			t.Errorf("expected 12, got %d", got)
		}
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner lookup, got %d", inner.calls)
	}
}

func TestCachedSource_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()
	inner := &countingSource{err: errors.New("dataset unavailable")}
	src := rank.NewCachedSource(inner, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := src.Resolve(context.Background(), "example.com"); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("expected both lookups to reach the inner source, got %d", inner.calls)
	}
}
