package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/teamsched/scheduler-backend/internal/project"
)

type projectRepo struct {
	s *Store
}

func cloneProject(p *project.Project) *project.Project {
	out := *p
	out.StartDate = clonePtr(p.StartDate)
	out.EndDate = clonePtr(p.EndDate)
	out.BudgetHours = clonePtr(p.BudgetHours)
	return &out
}

func (r *projectRepo) Create(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = newID()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *projectRepo) GetByID(_ context.Context, id string) (*project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.projects[id]
	if !ok {
		return nil, project.ErrNotFound
	}
	return cloneProject(p), nil
}

func (r *projectRepo) List(_ context.Context, filter project.Filter) ([]*project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*project.Project
	for _, p := range r.s.projects {
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		result = append(result, cloneProject(p))
	}
	slices.SortFunc(result, func(a, b *project.Project) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return result, nil
}

func (r *projectRepo) Update(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.projects[p.ID]
	if !ok {
		return project.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.s.now()
	r.s.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return project.ErrNotFound
	}
	for _, b := range r.s.bookings {
		if b.ProjectID != nil && *b.ProjectID == id {
			return project.ErrInUse
		}
	}
	delete(r.s.projects, id)
	return nil
}
