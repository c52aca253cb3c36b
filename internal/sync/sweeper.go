package sync

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Staleness sweeping runs once per resource, after all pages are processed.
// It only flips date_deleted: rows are never physically removed, and sphere
// or association rows are never touched.
//
// Two policies exist and each resource commits to one:
//
//   - Affected-set: a row is fresh iff its external ID was seen this run.
//     Used by full-catalog walks (activities, universities).
//   - Time-window: a row is fresh iff its last touch falls within a trailing
//     window. Used by vacancies, whose runs are filtered to one university;
//     an exact-set sweep there would wrongly delete other universities' rows.

type WindowSweepStore interface {
	ReactivateFresh(ctx context.Context, cutoff time.Time) (int64, error)
	SoftDeleteStale(ctx context.Context, cutoff, now time.Time) (int64, error)
}

type AffectedSweepStore[K comparable] interface {
	Reactivate(ctx context.Context, ids []K) (int64, error)
	SoftDeleteAbsent(ctx context.Context, ids []K, now time.Time) (int64, error)
}

// SweepWindow reactivates rows touched after now-window and soft-deletes
// active rows that were not. Returns the count of newly soft-deleted rows.
func SweepWindow(ctx context.Context, store WindowSweepStore, window time.Duration, now time.Time, logger *log.Logger) (int64, error) {
	cutoff := now.Add(-window)

	revived, err := store.ReactivateFresh(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep reactivate: %w", err)
	}

	deleted, err := store.SoftDeleteStale(ctx, cutoff, now)
	if err != nil {
		return 0, fmt.Errorf("sweep soft-delete: %w", err)
	}

	if logger != nil {
		logger.Printf("Sweep done | policy=window cutoff=%s revived=%d deleted=%d", cutoff.Format(time.RFC3339), revived, deleted)
	}
	return deleted, nil
}

// SweepAffected reactivates rows in the affected set and soft-deletes active
// rows outside it. Returns the count of newly soft-deleted rows.
func SweepAffected[K comparable](ctx context.Context, store AffectedSweepStore[K], affected []K, now time.Time, logger *log.Logger) (int64, error) {
	ids := dedup(affected)

	revived, err := store.Reactivate(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("sweep reactivate: %w", err)
	}

	deleted, err := store.SoftDeleteAbsent(ctx, ids, now)
	if err != nil {
		return 0, fmt.Errorf("sweep soft-delete: %w", err)
	}

	if logger != nil {
		logger.Printf("Sweep done | policy=affected-set ids=%d revived=%d deleted=%d", len(ids), revived, deleted)
	}
	return deleted, nil
}

func dedup[K comparable](in []K) []K {
	seen := make(map[K]struct{}, len(in))
	out := make([]K, 0, len(in))
	for _, k := range in {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
