package driver_test

import (
	"testing"

	"podgen/internal/driver"
	"podgen/internal/expand"
)

func openTestCache(t *testing.T) *driver.DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("podgen")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return cache
}

func TestDiskCachePutGet(t *testing.T) {
	cache := openTestCache(t)

	key := driver.Digest{1, 2, 3}
	in := &driver.DiskPayload{
		Schema:  1,
		Path:    "a.rs",
		Derives: []string{"Pod"},
		Output:  "impl crate::pod::Pod for A {}\n",
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out driver.DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Output != in.Output || out.Path != in.Path {
		t.Errorf("payload = %+v, want %+v", out, *in)
	}

	var miss driver.DiskPayload
	hit, err = cache.Get(driver.Digest{9}, &miss)
	if err != nil || hit {
		t.Fatalf("miss: hit=%v err=%v", hit, err)
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	cache := openTestCache(t)

	key := driver.Digest{7}
	if err := cache.Put(key, &driver.DiskPayload{Schema: 999, Output: "stale"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var out driver.DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil || hit {
		t.Fatalf("stale schema must miss: hit=%v err=%v", hit, err)
	}
}

func TestExpandFileCached(t *testing.T) {
	cache := openTestCache(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "point.rs", "#[derive(Pod)] struct Point<T> { x: T }\n")
	reg := expand.DefaultRegistry()

	first, err := driver.ExpandFileCached(path, reg, 100, cache)
	if err != nil {
		t.Fatalf("first expansion: %v", err)
	}
	if first.FromCache {
		t.Fatal("first expansion must not hit the cache")
	}

	second, err := driver.ExpandFileCached(path, reg, 100, cache)
	if err != nil {
		t.Fatalf("second expansion: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second expansion must hit the cache")
	}
	if second.Output != first.Output {
		t.Errorf("cached output = %q, want %q", second.Output, first.Output)
	}
}

func TestRegistryDigestChangesWithBindings(t *testing.T) {
	base := driver.RegistryDigest(expand.DefaultRegistry())

	reg := expand.DefaultRegistry()
	trait, err := expand.ParseTraitPath("crate::pod::Zeroable")
	if err != nil {
		t.Fatalf("trait path: %v", err)
	}
	reg.Register("Zeroable", trait)

	if driver.RegistryDigest(reg) == base {
		t.Error("registry digest must change when bindings change")
	}
	if driver.RegistryDigest(expand.DefaultRegistry()) != base {
		t.Error("registry digest must be deterministic")
	}
}
