// Package store persists one collection per JSON file, rewriting the whole
// file on every save. Readers never see a storage fault: missing or corrupt
// files degrade to an empty collection and the condition is logged.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Collection[T any] struct {
	path string
	log  *zap.Logger
}

func NewCollection[T any](dir, name string, log *zap.Logger) *Collection[T] {
	return &Collection[T]{
		path: filepath.Join(dir, name+".json"),
		log:  log.Named("store").With(zap.String("collection", name)),
	}
}

// Load reads the full collection. A missing file is a normal first-run
// condition; an unreadable or malformed file is logged and treated as empty,
// so the next save resets it.
func (c *Collection[T]) Load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("read failed", zap.Error(err))
		}
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn("invalid collection data, resetting on next save", zap.Error(err))
		return []T{}
	}
	return items
}

// Save rewrites the backing file with the full sequence. Failures are
// logged, not returned: callers treat the store as infallible and accept
// the (reported) risk of a lost write.
func (c *Collection[T]) Save(items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		c.log.Error("marshal failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.log.Error("write failed", zap.Error(err))
	}
}
