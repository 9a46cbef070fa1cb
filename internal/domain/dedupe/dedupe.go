// Package dedupe tracks already-seen row fingerprints so the cleaning pass
// can drop exact duplicate transactions.
package dedupe

import (
	"context"
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Kiran-Kumar-Reddy-L/Retail-Intelligence-Engine/internal/domain/model"
)

// Deduper records seen fingerprints. A fresh Deduper is created per cleaning
// run; its lifetime is one dataset.
type Deduper interface {
	// SeenAndRecord atomically checks whether key was seen and records it if
	// not. Returns true if key was already seen.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of distinct keys recorded.
	Size() int64
}

// inMemoryDeduper implements Deduper with a mutex-guarded set. Cleaning
// workers share one instance, so recording must be atomic.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates an empty in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[string]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// Fingerprint derives a stable key from a full raw row. Column order does not
// matter; two rows with identical cells hash identically.
func Fingerprint(row model.Row) string {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	h := fnv.New64a()
	for _, c := range cols {
		_, _ = h.Write([]byte(c))
		_, _ = h.Write([]byte{0x1f})
		_, _ = h.Write([]byte(row[c]))
		_, _ = h.Write([]byte{0x1e})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
