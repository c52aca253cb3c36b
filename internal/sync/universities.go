package sync

import (
	"context"
	"strconv"
	"time"

	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/normalize"
)

func (r *Runner) universityReconciler() *Reconciler[domain.University] {
	return &Reconciler[domain.University]{
		Resource: ResourceUniversities,
		// the upstream ignores limit here and pages by a fixed row count
		PageSize: r.cfg.UniversityPageSize,
		Fetch: func(ctx context.Context, offset int) ([]domain.University, error) {
			raws, err := r.api.GetUniversities(ctx, offset)
			if err != nil {
				return nil, err
			}
			out := make([]domain.University, 0, len(raws))
			for _, raw := range raws {
				u, err := normalize.University(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, u)
			}
			return out, nil
		},
		Key: func(u domain.University) string {
			return strconv.FormatInt(u.UniversityID, 10)
		},
		Exists: func(ctx context.Context, u domain.University) (bool, error) {
			return r.universities.Exists(ctx, u.UniversityID)
		},
		Insert: func(ctx context.Context, u domain.University, now time.Time) error {
			return r.universities.Insert(ctx, u, now)
		},
		Update: func(ctx context.Context, u domain.University, now time.Time) error {
			return r.universities.Update(ctx, u, now)
		},
		Logger: r.logger,
		Now:    r.now,
	}
}
