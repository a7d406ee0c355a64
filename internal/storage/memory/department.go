package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/teamsched/scheduler-backend/internal/department"
)

type departmentRepo struct {
	s *Store
}

func (r *departmentRepo) Create(_ context.Context, d *department.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.departments {
		if existing.Name == d.Name {
			return department.ErrDuplicateName
		}
	}
	d.ID = newID()
	d.CreatedAt = r.s.now()
	stored := *d
	r.s.departments[d.ID] = &stored
	return nil
}

func (r *departmentRepo) GetByID(_ context.Context, id string) (*department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, department.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *departmentRepo) List(_ context.Context) ([]*department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*department.Department, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		out := *d
		result = append(result, &out)
	}
	slices.SortFunc(result, func(a, b *department.Department) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}
