package sync

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"facultetus-sync/internal/config"
	"facultetus-sync/internal/domain"
	"facultetus-sync/internal/facultetus"
	"facultetus-sync/internal/repository"

	"github.com/google/uuid"
)

const (
	ResourceVacancies    = "vacancies"
	ResourceActivities   = "activities"
	ResourceUniversities = "universities"
)

// Locker serializes runs per resource. Two concurrent runs against the same
// resource would race the existence-check/insert pair, so the runner refuses
// to start without the lock.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool, err error)
}

// Notifier reports a finished run to an external listener. Optional.
type Notifier interface {
	RunCompleted(ctx context.Context, rl domain.RunLog)
}

// Runner drives full sync passes: registry refresh first, then the paginated
// reconciliation, then one staleness sweep, then one run-log row. Resources
// run strictly sequentially; the first unhandled error aborts the run and
// whatever was already committed stays.
type Runner struct {
	cfg config.SyncConfig
	api *facultetus.Client

	universityID string

	vacancies    repository.VacancyRepository
	activities   repository.ActivityRepository
	universities repository.UniversityRepository
	runLogs      repository.RunLogRepository

	spheres *Registry
	types   *Registry
	linker  *SphereLinker

	locks    Locker
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time
}

type RunnerParams struct {
	Config       config.SyncConfig
	API          *facultetus.Client
	UniversityID string

	Vacancies    repository.VacancyRepository
	Activities   repository.ActivityRepository
	Universities repository.UniversityRepository
	SphereLinks  repository.SphereLinkRepository
	RunLogs      repository.RunLogRepository

	SphereStore RegistryStore
	TypeStore   RegistryStore

	Locks    Locker
	Notifier Notifier
	Logger   *log.Logger
	Now      func() time.Time
}

func NewRunner(p RunnerParams) *Runner {
	spheres := NewRegistry(p.SphereStore)
	r := &Runner{
		cfg:          p.Config,
		api:          p.API,
		universityID: p.UniversityID,
		vacancies:    p.Vacancies,
		activities:   p.Activities,
		universities: p.Universities,
		runLogs:      p.RunLogs,
		spheres:      spheres,
		types:        NewRegistry(p.TypeStore),
		linker:       NewSphereLinker(spheres, p.SphereLinks, p.Logger),
		locks:        p.Locks,
		notifier:     p.Notifier,
		logger:       p.Logger,
		now:          p.Now,
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// SyncAll runs every resource in dependency order: the university catalog
// feeds the activity walk, and the sphere catalog must exist before vacancy
// records reference it (handled inside SyncVacancies).
func (r *Runner) SyncAll(ctx context.Context) error {
	if err := r.SyncUniversities(ctx); err != nil {
		return err
	}
	if err := r.SyncVacancies(ctx); err != nil {
		return err
	}
	return r.SyncActivities(ctx)
}

// RefreshSpheres pulls the sphere catalog and registers every unseen name.
// The registry must be loaded.
func (r *Runner) RefreshSpheres(ctx context.Context) error {
	names, err := r.api.GetSpheres(ctx)
	if err != nil {
		return fmt.Errorf("fetch spheres: %w", err)
	}
	if len(names) == 0 {
		if r.logger != nil {
			r.logger.Printf("Spheres refresh | no spheres in response")
		}
		return nil
	}

	before := r.spheres.Len()
	for _, name := range names {
		if _, err := r.spheres.Ensure(ctx, name); err != nil {
			return err
		}
	}
	if r.logger != nil {
		r.logger.Printf("Spheres refresh | total=%d new=%d", r.spheres.Len(), r.spheres.Len()-before)
	}
	return nil
}

func (r *Runner) SyncVacancies(ctx context.Context) error {
	return r.runResource(ctx, ResourceVacancies, func(ctx context.Context) (Result, int64, error) {
		if err := r.spheres.Load(ctx); err != nil {
			return Result{}, 0, err
		}
		if err := r.RefreshSpheres(ctx); err != nil {
			return Result{}, 0, err
		}

		res, err := r.vacancyReconciler().Run(ctx)
		if err != nil {
			return res, 0, err
		}

		deleted, err := SweepWindow(ctx, r.vacancies, r.cfg.StalenessWindow, r.now(), r.logger)
		return res, deleted, err
	})
}

func (r *Runner) SyncActivities(ctx context.Context) error {
	return r.runResource(ctx, ResourceActivities, func(ctx context.Context) (Result, int64, error) {
		if err := r.types.Load(ctx); err != nil {
			return Result{}, 0, err
		}

		universityIDs, err := r.universities.ListIDs(ctx)
		if err != nil {
			return Result{}, 0, fmt.Errorf("list universities: %w", err)
		}

		total := Result{Affected: []string{}}
		for _, universityID := range universityIDs {
			if r.logger != nil {
				r.logger.Printf("Sync university | resource=%s university_id=%d", ResourceActivities, universityID)
			}
			res, err := r.activityReconciler(universityID).Run(ctx)
			total.Added += res.Added
			total.Updated += res.Updated
			total.Affected = append(total.Affected, res.Affected...)
			if err != nil {
				return total, 0, err
			}
		}

		deleted, err := SweepAffected(ctx, r.activities, total.Affected, r.now(), r.logger)
		return total, deleted, err
	})
}

func (r *Runner) SyncUniversities(ctx context.Context) error {
	return r.runResource(ctx, ResourceUniversities, func(ctx context.Context) (Result, int64, error) {
		res, err := r.universityReconciler().Run(ctx)
		if err != nil {
			return res, 0, err
		}

		affected := make([]int64, 0, len(res.Affected))
		for _, key := range res.Affected {
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return res, 0, fmt.Errorf("sync universities: bad affected id %q: %w", key, err)
			}
			affected = append(affected, id)
		}

		deleted, err := SweepAffected(ctx, r.universities, affected, r.now(), r.logger)
		return res, deleted, err
	})
}

// runResource wraps one resource pass with the run lock, the run-log row and
// the completion notification. This is the single error boundary per
// resource: a failed pass still produces a success=false run-log row.
func (r *Runner) runResource(ctx context.Context, resource string, fn func(ctx context.Context) (Result, int64, error)) error {
	started := r.now()

	if r.locks != nil {
		release, acquired, err := r.locks.Acquire(ctx, "facultetus:sync:"+resource, r.cfg.LockTTL)
		if err != nil {
			return fmt.Errorf("acquire %s run lock: %w", resource, err)
		}
		if !acquired {
			return fmt.Errorf("sync %s: another run holds the lock", resource)
		}
		defer release()
	}

	if r.logger != nil {
		r.logger.Printf("Sync start | resource=%s", resource)
	}

	res, deleted, runErr := fn(ctx)
	finished := r.now()

	if runErr != nil {
		// minimal failure row, best effort: it must not mask the original error
		failRow := domain.RunLog{
			RunID:      uuid.NewString(),
			Resource:   resource,
			Success:    false,
			StartedAt:  &started,
			FinishedAt: &finished,
		}
		if err := r.runLogs.Insert(ctx, failRow); err != nil && r.logger != nil {
			r.logger.Printf("Run log failed | resource=%s error=%v", resource, err)
		}
		return runErr
	}

	rl := domain.RunLog{
		RunID:      uuid.NewString(),
		Resource:   resource,
		Added:      res.Added,
		Updated:    res.Updated,
		Deleted:    int(deleted),
		Success:    true,
		StartedAt:  &started,
		FinishedAt: &finished,
	}

	if err := r.runLogs.Insert(ctx, rl); err != nil {
		return fmt.Errorf("sync %s: write run log: %w", resource, err)
	}

	if r.logger != nil {
		r.logger.Printf("Sync done | resource=%s added=%d updated=%d deleted=%d elapsed=%s",
			resource, rl.Added, rl.Updated, rl.Deleted, finished.Sub(started))
	}

	if r.notifier != nil {
		r.notifier.RunCompleted(ctx, rl)
	}
	return nil
}
