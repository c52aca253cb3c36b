package sync

import (
	"context"
	"fmt"
	"log"

	"facultetus-sync/internal/normalize"
	"facultetus-sync/internal/repository"
)

// SphereLinker maintains the derived vacancy↔sphere and employer↔sphere
// associations. It only resolves names already present in the sphere
// registry; an unknown token is skipped silently, never created here.
type SphereLinker struct {
	registry *Registry
	links    repository.SphereLinkRepository
	logger   *log.Logger
}

func NewSphereLinker(registry *Registry, links repository.SphereLinkRepository, logger *log.Logger) *SphereLinker {
	return &SphereLinker{registry: registry, links: links, logger: logger}
}

// LinkVacancy splits the joined sphere field of one persisted vacancy and
// dedup-inserts both association kinds for every known sphere token.
func (l *SphereLinker) LinkVacancy(ctx context.Context, positionID int64, employerID *int64, spheres *string) error {
	if spheres == nil {
		return nil
	}

	for _, token := range normalize.SplitList(*spheres) {
		sphereID, ok := l.registry.Lookup(token)
		if !ok {
			if l.logger != nil {
				l.logger.Printf("Sphere link skipped | position=%d sphere=%q reason=unknown_name", positionID, token)
			}
			continue
		}

		if employerID != nil {
			if err := l.ensureEmployerLink(ctx, *employerID, sphereID); err != nil {
				return fmt.Errorf("link employer %d sphere %d: %w", *employerID, sphereID, err)
			}
		}
		if err := l.ensureVacancyLink(ctx, positionID, sphereID); err != nil {
			return fmt.Errorf("link position %d sphere %d: %w", positionID, sphereID, err)
		}
	}
	return nil
}

func (l *SphereLinker) ensureEmployerLink(ctx context.Context, employerID, sphereID int64) error {
	exists, err := l.links.EmployerLinkExists(ctx, employerID, sphereID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return l.links.InsertEmployerLink(ctx, employerID, sphereID)
}

func (l *SphereLinker) ensureVacancyLink(ctx context.Context, positionID, sphereID int64) error {
	exists, err := l.links.VacancyLinkExists(ctx, positionID, sphereID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return l.links.InsertVacancyLink(ctx, positionID, sphereID)
}
