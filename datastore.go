// Package yamlstore exposes a directory of YAML documents as a single
// addressable store queried through dot-separated keypaths.
//
// The first keypath component selects a document by file stem; the remaining
// components navigate the parsed tree, each interpreted as a mapping key or a
// sequence index depending on the node it is applied to. The resolved leaf is
// materialized as a caller-requested Go type:
//
//	ds, err := yamlstore.Open("testdata")
//	...
//	done, err := yamlstore.Get[string](ds, "complete.tags.1")
//
// The store is read-only. Every query performs its own read and parse unless
// caching is enabled with WithCache.
package yamlstore

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentic-research/yamlstore/internal/loader"
)

// DefaultExtensions lists the recognized document file extensions in probe
// order: a selector resolves to the first of selector.yaml, selector.yml that
// exists.
var DefaultExtensions = loader.DefaultExtensions

// Option configures a Datastore at construction time.
type Option func(*config)

type config struct {
	extensions []string
	cacheSize  int
}

// WithExtensions overrides the recognized file extensions (without the dot),
// probed in the given order.
func WithExtensions(extensions ...string) Option {
	return func(c *config) { c.extensions = extensions }
}

// WithCache keeps up to n parsed documents keyed by selector, invalidated by
// file modification time on every hit. Without it, every query re-reads its
// document from disk.
func WithCache(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// Datastore is a read-only handle on a store root. It is safe for concurrent
// use: each query performs an independent read and builds an independent
// tree, and the optional cache hands out only fully built, immutable entries.
type Datastore struct {
	loader *loader.Loader

	mu    sync.Mutex // serializes cache misses, one load per selector
	cache *lru.Cache[string, cacheEntry]
}

type cacheEntry struct {
	value   Value
	file    string
	modTime time.Time
}

// Open validates that root exists and is a directory, then returns a
// Datastore over it. Later removal of the root is not re-checked; queries
// surface it as ErrDocumentNotFound.
func Open(root string, opts ...Option) (*Datastore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open store: %s is not a directory", root)
	}
	return OpenFS(osfs.New(root), opts...)
}

// OpenFS returns a Datastore over an arbitrary filesystem whose root is the
// store root. Useful for in-memory stores in tests.
func OpenFS(fs billy.Filesystem, opts ...Option) (*Datastore, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	ds := &Datastore{loader: loader.New(fs, cfg.extensions)}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, cacheEntry](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		ds.cache = cache
	}
	return ds, nil
}

// List returns the selectors of all documents in the store, sorted
// alphabetically.
func (ds *Datastore) List() ([]string, error) {
	return ds.loader.List()
}

// load produces the root Value for selector, consulting the cache when one is
// configured.
func (ds *Datastore) load(selector string) (Value, error) {
	if ds.cache == nil {
		n, err := ds.loader.Load(selector)
		if err != nil {
			return Value{}, err
		}
		return fromYAML(n)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	file, info, err := ds.loader.Stat(selector)
	if err != nil {
		ds.cache.Remove(selector)
		return Value{}, err
	}
	if ent, ok := ds.cache.Get(selector); ok && ent.file == file && ent.modTime.Equal(info.ModTime()) {
		return ent.value, nil
	}
	n, err := ds.loader.Load(selector)
	if err != nil {
		return Value{}, err
	}
	v, err := fromYAML(n)
	if err != nil {
		return Value{}, err
	}
	ds.cache.Add(selector, cacheEntry{value: v, file: file, modTime: info.ModTime()})
	return v, nil
}
