package sync

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockAffectedStore struct {
	reactivated [][]string
	deletedIDs  [][]string
	deleteCount int64
	deleteErr   error
}

func (m *mockAffectedStore) Reactivate(_ context.Context, ids []string) (int64, error) {
	m.reactivated = append(m.reactivated, ids)
	return int64(len(ids)), nil
}

func (m *mockAffectedStore) SoftDeleteAbsent(_ context.Context, ids []string, _ time.Time) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, ids)
	return m.deleteCount, nil
}

func TestSweepAffected_DedupsAndReportsDeleted(t *testing.T) {
	store := &mockAffectedStore{deleteCount: 3}

	deleted, err := SweepAffected[string](context.Background(), store,
		[]string{"A", "B", "A", "B"}, time.Now(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected 3 deleted, got %d", deleted)
	}

	if len(store.reactivated) != 1 {
		t.Fatalf("expected one reactivate call")
	}
	ids := store.reactivated[0]
	if len(ids) != 2 || ids[0] != "A" || ids[1] != "B" {
		t.Fatalf("expected deduped ids [A B], got %v", ids)
	}
	if len(store.deletedIDs) != 1 || len(store.deletedIDs[0]) != 2 {
		t.Fatalf("expected soft-delete over the same set, got %v", store.deletedIDs)
	}
}

func TestSweepAffected_PropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	store := &mockAffectedStore{deleteErr: boom}

	if _, err := SweepAffected[string](context.Background(), store, []string{"A"}, time.Now(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

type mockWindowStore struct {
	reactivateCutoff time.Time
	deleteCutoff     time.Time
	deleteNow        time.Time
	deleteCount      int64
}

func (m *mockWindowStore) ReactivateFresh(_ context.Context, cutoff time.Time) (int64, error) {
	m.reactivateCutoff = cutoff
	return 0, nil
}

func (m *mockWindowStore) SoftDeleteStale(_ context.Context, cutoff, now time.Time) (int64, error) {
	m.deleteCutoff = cutoff
	m.deleteNow = now
	return m.deleteCount, nil
}

func TestSweepWindow_CutoffIsNowMinusWindow(t *testing.T) {
	store := &mockWindowStore{deleteCount: 5}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	deleted, err := SweepWindow(context.Background(), store, 2*time.Hour, now, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if deleted != 5 {
		t.Fatalf("expected 5 deleted, got %d", deleted)
	}

	wantCutoff := now.Add(-2 * time.Hour)
	if !store.reactivateCutoff.Equal(wantCutoff) || !store.deleteCutoff.Equal(wantCutoff) {
		t.Fatalf("expected cutoff %v, got reactivate=%v delete=%v",
			wantCutoff, store.reactivateCutoff, store.deleteCutoff)
	}
	if !store.deleteNow.Equal(now) {
		t.Fatalf("expected delete timestamp %v, got %v", now, store.deleteNow)
	}
}
