package sync

import (
	"context"
	"errors"
	"testing"
)

type mockRegistryStore struct {
	existing map[string]int64
	created  []struct {
		id   int64
		name string
	}
	loadErr   error
	createErr error
}

func (m *mockRegistryStore) LoadAll(context.Context) (map[string]int64, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make(map[string]int64, len(m.existing))
	for k, v := range m.existing {
		out[k] = v
	}
	return out, nil
}

func (m *mockRegistryStore) Create(_ context.Context, id int64, name string) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, struct {
		id   int64
		name string
	}{id, name})
	return nil
}

func TestRegistry_EnsureAssignsSequentialIDs(t *testing.T) {
	store := &mockRegistryStore{existing: map[string]int64{"IT": 3, "Finance": 7}}
	r := NewRegistry(store)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	id, err := r.Ensure(context.Background(), "Marketing")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 8 {
		t.Fatalf("expected max+1 = 8, got %d", id)
	}

	id, err = r.Ensure(context.Background(), "Logistics")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected 9, got %d", id)
	}

	if len(store.created) != 2 {
		t.Fatalf("expected 2 creates, got %d", len(store.created))
	}
}

func TestRegistry_EnsureEmptyCatalogStartsAtOne(t *testing.T) {
	store := &mockRegistryStore{existing: map[string]int64{}}
	r := NewRegistry(store)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	id, err := r.Ensure(context.Background(), "IT")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
}

func TestRegistry_EnsureExistingNameIsStable(t *testing.T) {
	store := &mockRegistryStore{existing: map[string]int64{"IT": 3}}
	r := NewRegistry(store)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for i := 0; i < 3; i++ {
		id, err := r.Ensure(context.Background(), "IT")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id != 3 {
			t.Fatalf("expected stable id 3, got %d", id)
		}
	}
	if len(store.created) != 0 {
		t.Fatalf("expected no creates for known name, got %d", len(store.created))
	}
}

func TestRegistry_EnsureRequiresLoad(t *testing.T) {
	r := NewRegistry(&mockRegistryStore{})
	if _, err := r.Ensure(context.Background(), "IT"); err == nil {
		t.Fatalf("expected error before Load")
	}
}

func TestRegistry_EnsureRejectsEmptyName(t *testing.T) {
	r := NewRegistry(&mockRegistryStore{existing: map[string]int64{}})
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := r.Ensure(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestRegistry_EnsurePropagatesCreateError(t *testing.T) {
	boom := errors.New("unique violation")
	store := &mockRegistryStore{existing: map[string]int64{}, createErr: boom}
	r := NewRegistry(store)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := r.Ensure(context.Background(), "IT"); !errors.Is(err, boom) {
		t.Fatalf("expected create error, got %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	store := &mockRegistryStore{existing: map[string]int64{"IT": 3}}
	r := NewRegistry(store)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if id, ok := r.Lookup(" IT "); !ok || id != 3 {
		t.Fatalf("expected trimmed lookup hit, got %d %t", id, ok)
	}
	if _, ok := r.Lookup("Unknown"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}
