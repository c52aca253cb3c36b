package sync

import (
	"context"
	"strconv"
	"time"

	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/normalize"
)

func (r *Runner) vacancyReconciler() *Reconciler[domain.Vacancy] {
	return &Reconciler[domain.Vacancy]{
		Resource: ResourceVacancies,
		PageSize: r.cfg.PageSize,
		Fetch: func(ctx context.Context, offset int) ([]domain.Vacancy, error) {
			raws, err := r.api.GetPositions(ctx, r.universityID, offset)
			if err != nil {
				return nil, err
			}
			out := make([]domain.Vacancy, 0, len(raws))
			for _, raw := range raws {
				v, err := normalize.Vacancy(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
		Key: func(v domain.Vacancy) string {
			return strconv.FormatInt(v.PositionID, 10)
		},
		Exists: func(ctx context.Context, v domain.Vacancy) (bool, error) {
			return r.vacancies.Exists(ctx, v.PositionID)
		},
		Insert: func(ctx context.Context, v domain.Vacancy, now time.Time) error {
			return r.vacancies.Insert(ctx, v, now)
		},
		Update: func(ctx context.Context, v domain.Vacancy, now time.Time) error {
			return r.vacancies.Update(ctx, v, now)
		},
		AfterApply: func(ctx context.Context, v domain.Vacancy) error {
			return r.linker.LinkVacancy(ctx, v.PositionID, v.EmployerID, v.Spheres)
		},
		Logger: r.logger,
		Now:    r.now,
	}
}
