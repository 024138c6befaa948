package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// probeKey is written and erased on every availability check. It is not part
// of the application namespace.
const probeKey = "__moodSync_probe__"

// KV wraps a diskv store behind the adapter contract: string keys, string
// values, never an error outward. Failures are reported to stderr once and
// converted to the caller-supplied default or a false return.
type KV struct {
	d        *diskv.Diskv
	basePath string
	quota    int64
}

// NewKV opens the key/value store rooted at basePath. quota bounds total
// stored bytes; zero or negative disables the bound.
func NewKV(basePath string, quota int64) *KV {
	return &KV{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		quota:    quota,
	}
}

// Available probes the store with a write/erase cycle. Callers cannot assume
// availability persists between calls; the store may disappear mid-session.
func (kv *KV) Available() bool {
	if err := kv.d.Write(probeKey, []byte("probe")); err != nil {
		return false
	}
	if err := kv.d.Erase(probeKey); err != nil {
		return false
	}
	return true
}

// Get returns the value stored under key, or def when the key is absent or
// the store is unavailable.
func (kv *KV) Get(key, def string) string {
	if !kv.Available() {
		fmt.Fprintf(os.Stderr, "store: unavailable, using default for %q\n", key)
		return def
	}
	val, err := kv.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return def
		}
		fmt.Fprintf(os.Stderr, "store: read %q: %v\n", key, err)
		return def
	}
	return string(val)
}

// Has reports whether key is present without reading it.
func (kv *KV) Has(key string) bool {
	return kv.Available() && kv.d.Has(key)
}

// Set stores value under key and reports success. A value that would push
// the store past its quota fails the write.
func (kv *KV) Set(key, value string) bool {
	if !kv.Available() {
		fmt.Fprintf(os.Stderr, "store: unavailable, cannot save %q\n", key)
		return false
	}
	if kv.quota > 0 {
		used, _ := kv.usedBytes()
		existing := kv.sizeOf(key)
		if used-existing+int64(len(key)+len(value)) > kv.quota {
			fmt.Fprintf(os.Stderr, "store: quota exceeded writing %q\n", key)
			return false
		}
	}
	if err := kv.d.Write(key, []byte(value)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %q: %v\n", key, err)
		return false
	}
	return true
}

// Remove deletes key. Removing an absent key is not an error.
func (kv *KV) Remove(key string) {
	if !kv.Available() {
		return
	}
	if err := kv.d.Erase(key); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "store: erase %q: %v\n", key, err)
	}
}

// BasePath exposes the on-disk location, needed by the watcher.
func (kv *KV) BasePath() string {
	return kv.basePath
}

// Usage summarises consumed capacity.
type Usage struct {
	Used       int64
	Total      int64
	Percentage float64
}

// Usage reports current store usage against the quota. An unavailable store
// reports zeroes.
func (kv *KV) Usage() Usage {
	if !kv.Available() {
		return Usage{}
	}
	used, err := kv.usedBytes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: usage: %v\n", err)
		return Usage{}
	}
	u := Usage{Used: used, Total: kv.quota}
	if kv.quota > 0 {
		u.Percentage = float64(used) / float64(kv.quota) * 100
	}
	return u
}

func (kv *KV) usedBytes() (int64, error) {
	var used int64
	entries, err := os.ReadDir(kv.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		used += info.Size() + int64(len(de.Name()))
	}
	return used, nil
}

func (kv *KV) sizeOf(key string) int64 {
	info, err := os.Stat(filepath.Join(kv.basePath, key))
	if err != nil {
		return 0
	}
	return info.Size() + int64(len(key))
}
