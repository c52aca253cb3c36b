package sync

import (
	"context"
	"strconv"
	"time"

	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/normalize"
)

// activityReconciler walks one university's events. The event type label is
// resolved through the activity-type registry before the row is written;
// unseen labels are registered on the spot (max+1 assignment, same rule as
// spheres).
func (r *Runner) activityReconciler(universityID int64) *Reconciler[domain.Activity] {
	return &Reconciler[domain.Activity]{
		Resource: ResourceActivities,
		PageSize: r.cfg.PageSize,
		Fetch: func(ctx context.Context, offset int) ([]domain.Activity, error) {
			raws, err := r.api.GetActivities(ctx, strconv.FormatInt(universityID, 10), offset, r.cfg.ActivityPageLimit)
			if err != nil {
				return nil, err
			}
			out := make([]domain.Activity, 0, len(raws))
			for _, raw := range raws {
				a, err := normalize.Activity(raw)
				if err != nil {
					return nil, err
				}
				if a.Type != nil {
					typeID, err := r.types.Ensure(ctx, *a.Type)
					if err != nil {
						return nil, err
					}
					a.TypeID = &typeID
				}
				out = append(out, a)
			}
			return out, nil
		},
		Key: func(a domain.Activity) string {
			return a.ID
		},
		Exists: func(ctx context.Context, a domain.Activity) (bool, error) {
			return r.activities.Exists(ctx, a.ID)
		},
		Insert: func(ctx context.Context, a domain.Activity, now time.Time) error {
			return r.activities.Insert(ctx, a, now)
		},
		Update: func(ctx context.Context, a domain.Activity, now time.Time) error {
			return r.activities.Update(ctx, a, now)
		},
		Logger: r.logger,
		Now:    r.now,
	}
}
