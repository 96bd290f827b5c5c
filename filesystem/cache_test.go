package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasperdew/stroom/test"
)

func newTestCache(t *testing.T) (*Cache, string) {
	t.Helper()

	root := t.TempDir()
	cache, err := NewCache(NewLocal(root), root)
	test.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, root
}

func TestCacheServesCachedContent(t *testing.T) {
	cache, root := newTestCache(t)

	test.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("first"), 0644))

	got, err := cache.ReadFile("a.txt")
	test.NoError(t, err)
	if !bytes.Equal(got, []byte("first")) {
		t.Fatalf("expected first, got %q", got)
	}

	// Replace the file behind the cache's back; the stale entry is
	// served until it is evicted.
	test.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("second"), 0644))

	cache.Evict("a.txt")
	got, err = cache.ReadFile("a.txt")
	test.NoError(t, err)
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("expected fresh content after eviction, got %q", got)
	}
}

func TestCacheWriteEvictsOwnEntry(t *testing.T) {
	cache, _ := newTestCache(t)

	test.NoError(t, cache.WriteFile("b.txt", []byte("one")))

	got, err := cache.ReadFile("b.txt")
	test.NoError(t, err)
	test.Equal(t, "one", string(got))

	test.NoError(t, cache.WriteFile("b.txt", []byte("two")))

	got, err = cache.ReadFile("b.txt")
	test.NoError(t, err)
	test.Equal(t, "two", string(got))
}

func TestCacheMissFallsThrough(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.ReadFile("missing.txt")
	test.ErrorIs(t, err, ErrFileNotFound)
}

func TestCacheFileExists(t *testing.T) {
	cache, _ := newTestCache(t)

	exists, err := cache.FileExists("c.txt")
	test.NoError(t, err)
	test.Equal(t, false, exists)

	test.NoError(t, cache.WriteFile("c.txt", []byte("x")))
	exists, err = cache.FileExists("c.txt")
	test.NoError(t, err)
	test.Equal(t, true, exists)
}
