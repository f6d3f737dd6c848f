package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"podgen/internal/diag"
	"podgen/internal/expand"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// DiskCache stores rendered expansions on disk, keyed by content and
// registry digests. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached expansion: the rendered output plus enough
// metadata to validate the hit.
type DiskPayload struct {
	Schema       uint16
	Path         string
	ContentHash  Digest
	RegistryHash Digest
	Derives      []string
	Output       string
}

// OpenDiskCache initializes a disk cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "expansions", hexKey+".mp")
}

// Put serializes a payload to the cache, replacing the entry atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the cache. A missing entry or a schema mismatch
// is a clean miss, not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// RegistryDigest hashes the registry's bindings (names and trait paths, in
// sorted order) so a manifest change invalidates cached expansions.
func RegistryDigest(reg *expand.Registry) Digest {
	names := reg.Names()
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		trait, _ := reg.Lookup(name)
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(token.Print(trait)))
		h.Write([]byte{'\n'})
	}
	var d Digest
	h.Sum(d[:0])
	return d
}

func cacheKey(content, registry Digest) Digest {
	h := sha256.New()
	h.Write(content[:])
	h.Write(registry[:])
	var d Digest
	h.Sum(d[:0])
	return d
}

// ExpandFileCached is ExpandFile with a read-through disk cache. A hit
// skips tokenizing and parsing entirely; the Result then carries only the
// rendered output. Cache failures degrade to a plain expansion with a
// warning in the Bag.
func ExpandFileCached(path string, reg *expand.Registry, maxDiagnostics int, cache *DiskCache) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	regDigest := RegistryDigest(reg)
	key := cacheKey(Digest(file.Hash), regDigest)

	var payload DiskPayload
	hit, cerr := cache.Get(key, &payload)
	if cerr != nil {
		diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.ExpCacheError,
			source.Span{File: fileID}, "cache read failed: "+cerr.Error())
	}
	if hit {
		return &Result{
			FileSet:   fileSet,
			File:      file,
			Bag:       bag,
			Output:    payload.Output,
			FromCache: true,
		}, nil
	}

	res := expandLoaded(fileSet, file, reg, bag)
	if !bag.HasErrors() && len(res.Scaffolds) > 0 {
		derives := make([]string, len(res.Scaffolds))
		for i := range res.Scaffolds {
			derives[i] = res.Scaffolds[i].Derive
		}
		if perr := cache.Put(key, &DiskPayload{
			Schema:       diskCacheSchemaVersion,
			Path:         file.Path,
			ContentHash:  Digest(file.Hash),
			RegistryHash: regDigest,
			Derives:      derives,
			Output:       res.Output,
		}); perr != nil {
			diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.ExpCacheError,
				source.Span{File: fileID}, "cache write failed: "+perr.Error())
		}
	}
	return res, nil
}
