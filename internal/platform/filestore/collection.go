package filestore

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/phrazzld/study-coordinator/internal/platform/logger"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// collection is the in-memory list of one entity kind together with the
// file it is persisted to. The per-kind stores are thin typed wrappers
// around it.
type collection[T any] struct {
	kind   string
	path   string
	items  []*T
	logger *slog.Logger
}

func newCollection[T any](dir, file, kind string, log *slog.Logger) *collection[T] {
	if log == nil {
		log = slog.Default()
	}
	return &collection[T]{
		kind:   kind,
		path:   filepath.Join(dir, file),
		items:  []*T{},
		logger: log.With(slog.String("component", kind+"_store")),
	}
}

func (c *collection[T]) add(item *T) {
	c.items = append(c.items, item)
}

// all returns the live elements. The capacity is clipped so that appending
// to the result never writes into the collection's backing array.
func (c *collection[T]) all() []*T {
	return c.items[:len(c.items):len(c.items)]
}

func (c *collection[T]) first(match func(*T) bool) (*T, bool) {
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	return nil, false
}

func (c *collection[T]) filter(match func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// load replaces the in-memory items with the persisted ones. Missing and
// undecodable files leave the collection empty and are reported through the
// result, never returned as an error.
func (c *collection[T]) load(ctx context.Context) store.LoadResult {
	log := logger.FromContextOrDefault(ctx, c.logger)
	result := store.LoadResult{Collection: c.kind, Path: c.path}

	items, err := LoadCollection[*T](c.path, c.kind)
	switch {
	case err == nil:
		c.items = items
		if c.items == nil {
			c.items = []*T{}
		}
		result.Status = store.LoadStatusLoaded
		result.Count = len(c.items)
		log.Info("collection loaded",
			slog.String("path", c.path),
			slog.Int("count", result.Count))
	case IsFileNotFound(err):
		c.items = []*T{}
		result.Status = store.LoadStatusMissing
		result.Err = err
		log.Warn("collection file not found, starting empty",
			slog.String("path", c.path))
	default:
		c.items = []*T{}
		result.Status = store.LoadStatusCorrupt
		result.Err = err
		log.Error("invalid data format in collection file, starting empty",
			slog.String("path", c.path),
			slog.String("error", err.Error()))
	}

	return result
}

func (c *collection[T]) save(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := SaveCollection(c.path, c.kind, c.items); err != nil {
		log.Error("failed to save collection",
			slog.String("path", c.path),
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("collection saved",
		slog.String("path", c.path),
		slog.Int("count", len(c.items)))
	return nil
}

// keyed is implemented by entities that belong to one group and are looked
// up by a title-like key within it.
type keyed[T any] interface {
	*T
	Key() string
	Group() string
}

// inGroup returns the items whose group name equals groupName exactly.
func inGroup[T any, P keyed[T]](c *collection[T], groupName string) []*T {
	return c.filter(func(item *T) bool {
		return P(item).Group() == groupName
	})
}

// byKey returns the first item of the group whose key matches
// case-insensitively.
func byKey[T any, P keyed[T]](c *collection[T], groupName, key string) (*T, bool) {
	return c.first(func(item *T) bool {
		p := P(item)
		return p.Group() == groupName && strings.EqualFold(p.Key(), key)
	})
}
