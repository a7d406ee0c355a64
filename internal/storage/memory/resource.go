package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/teamsched/scheduler-backend/internal/resource"
)

type resourceRepo struct {
	s *Store
}

// view copies a stored resource and joins its department name. Caller holds the lock.
func (r *resourceRepo) view(res *resource.Resource) *resource.Resource {
	out := *res
	out.DepartmentID = clonePtr(res.DepartmentID)
	out.DepartmentName = nil
	if out.DepartmentID != nil {
		if d, ok := r.s.departments[*out.DepartmentID]; ok {
			name := d.Name
			out.DepartmentName = &name
		}
	}
	return &out
}

func (r *resourceRepo) checkWrite(res *resource.Resource) error {
	for _, existing := range r.s.resources {
		if existing.ID != res.ID && existing.Email == res.Email {
			return resource.ErrDuplicateEmail
		}
	}
	if res.DepartmentID != nil {
		if _, ok := r.s.departments[*res.DepartmentID]; !ok {
			return resource.ErrDepartmentNotFound
		}
	}
	return nil
}

func (r *resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkWrite(res); err != nil {
		return err
	}
	res.ID = newID()
	res.CreatedAt = r.s.now()
	res.UpdatedAt = res.CreatedAt
	stored := *res
	stored.DepartmentID = clonePtr(res.DepartmentID)
	stored.DepartmentName = nil
	r.s.resources[res.ID] = &stored
	return nil
}

func (r *resourceRepo) GetByID(_ context.Context, id string) (*resource.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.resources[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return r.view(res), nil
}

func (r *resourceRepo) List(_ context.Context, filter resource.Filter) ([]*resource.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*resource.Resource
	for _, res := range r.s.resources {
		if filter.ActiveOnly && !res.IsActive {
			continue
		}
		if filter.DepartmentID != "" && (res.DepartmentID == nil || *res.DepartmentID != filter.DepartmentID) {
			continue
		}
		result = append(result, r.view(res))
	}
	slices.SortFunc(result, func(a, b *resource.Resource) int {
		return cmp.Or(
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return result, nil
}

func (r *resourceRepo) Update(_ context.Context, res *resource.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.resources[res.ID]
	if !ok {
		return resource.ErrNotFound
	}
	if err := r.checkWrite(res); err != nil {
		return err
	}
	res.CreatedAt = existing.CreatedAt
	res.UpdatedAt = r.s.now()
	stored := *res
	stored.DepartmentID = clonePtr(res.DepartmentID)
	stored.DepartmentName = nil
	r.s.resources[res.ID] = &stored
	return nil
}

func (r *resourceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resources[id]; !ok {
		return resource.ErrNotFound
	}
	for _, b := range r.s.bookings {
		if b.ResourceID == id {
			return resource.ErrInUse
		}
	}
	delete(r.s.resources, id)
	return nil
}
