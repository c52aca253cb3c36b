package sync

import (
	"context"
	"fmt"
	"strings"
)

// RegistryStore is the persistence surface behind a Registry. The backing
// table carries a unique constraint on name; that constraint, not the cache,
// is the authoritative duplicate guard.
type RegistryStore interface {
	LoadAll(ctx context.Context) (map[string]int64, error)
	Create(ctx context.Context, id int64, name string) error
}

// Registry maintains a name→id catalog (spheres, activity types) with ids
// assigned locally and monotonically: first unseen name gets max+1, or 1
// when the catalog is empty. The cache is loaded once per run.
type Registry struct {
	store  RegistryStore
	byName map[string]int64
	maxID  int64
}

func NewRegistry(store RegistryStore) *Registry {
	return &Registry{store: store}
}

// Load populates the cache from storage. Must be called before Ensure or
// Lookup; calling it again rereads the catalog.
func (r *Registry) Load(ctx context.Context) error {
	byName, err := r.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	var maxID int64
	for _, id := range byName {
		if id > maxID {
			maxID = id
		}
	}

	r.byName = byName
	r.maxID = maxID
	return nil
}

// Ensure returns the id for name, allocating and persisting a new one on
// first sight.
func (r *Registry) Ensure(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty registry name")
	}
	if r.byName == nil {
		return 0, fmt.Errorf("registry not loaded")
	}

	if id, ok := r.byName[name]; ok {
		return id, nil
	}

	id := r.maxID + 1
	if err := r.store.Create(ctx, id, name); err != nil {
		return 0, fmt.Errorf("create registry entry %q: %w", name, err)
	}
	r.byName[name] = id
	r.maxID = id
	return id, nil
}

// Lookup resolves a name without creating it. The relationship maintainer
// uses this: unknown names are skipped, never materialized as links.
func (r *Registry) Lookup(name string) (int64, bool) {
	id, ok := r.byName[strings.TrimSpace(name)]
	return id, ok
}

func (r *Registry) Len() int {
	return len(r.byName)
}
