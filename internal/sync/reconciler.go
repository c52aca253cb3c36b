package sync

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Result is the outcome of one reconciliation pass. Affected holds the
// external IDs of every record inserted or updated, in processing order.
type Result struct {
	Added    int
	Updated  int
	Affected []string
}

// Reconciler walks one paginated resource and upserts each record keyed on
// its external ID. Offsets advance by PageSize after every page regardless
// of how many records were new; an empty page terminates the walk.
//
// Each record is persisted individually (the pool autocommits per
// statement), so a mid-page failure leaves prior records durably saved.
// The first error aborts the whole pass; there is no skip-and-continue.
type Reconciler[T any] struct {
	Resource string
	PageSize int

	Fetch  func(ctx context.Context, offset int) ([]T, error)
	Key    func(rec T) string
	Exists func(ctx context.Context, rec T) (bool, error)
	Insert func(ctx context.Context, rec T, now time.Time) error
	Update func(ctx context.Context, rec T, now time.Time) error

	// AfterApply runs once per persisted record; the vacancy pass uses it
	// to maintain sphere associations. Optional.
	AfterApply func(ctx context.Context, rec T) error

	Logger *log.Logger
	Now    func() time.Time
}

func (r *Reconciler[T]) Run(ctx context.Context) (Result, error) {
	if r.PageSize <= 0 {
		return Result{}, fmt.Errorf("reconcile %s: page size must be positive", r.Resource)
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	res := Result{Affected: []string{}}
	offset := 0
	for page := 0; ; page++ {
		records, err := r.Fetch(ctx, offset)
		if err != nil {
			return res, fmt.Errorf("reconcile %s: fetch page %d: %w", r.Resource, page, err)
		}
		if len(records) == 0 {
			break
		}
		if r.Logger != nil {
			r.Logger.Printf("Sync page | resource=%s page=%d offset=%d records=%d", r.Resource, page, offset, len(records))
		}

		for _, rec := range records {
			key := r.Key(rec)

			exists, err := r.Exists(ctx, rec)
			if err != nil {
				return res, fmt.Errorf("reconcile %s: lookup %s: %w", r.Resource, key, err)
			}

			if exists {
				if err := r.Update(ctx, rec, now()); err != nil {
					return res, fmt.Errorf("reconcile %s: update %s: %w", r.Resource, key, err)
				}
				res.Updated++
			} else {
				if err := r.Insert(ctx, rec, now()); err != nil {
					return res, fmt.Errorf("reconcile %s: insert %s: %w", r.Resource, key, err)
				}
				res.Added++
			}
			res.Affected = append(res.Affected, key)

			if r.AfterApply != nil {
				if err := r.AfterApply(ctx, rec); err != nil {
					return res, fmt.Errorf("reconcile %s: post-apply %s: %w", r.Resource, key, err)
				}
			}
		}

		offset += r.PageSize
	}

	return res, nil
}
