package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
)

type bookingRepo struct {
	s *Store
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	out := *b
	out.ProjectID = clonePtr(b.ProjectID)
	out.LeaveType = clonePtr(b.LeaveType)
	out.ResourceName = ""
	out.ProjectName = nil
	out.ProjectColor = nil
	return &out
}

// view copies a stored booking and joins the display names. Caller holds the lock.
func (r *bookingRepo) view(b *booking.Booking) *booking.Booking {
	out := cloneBooking(b)
	if res, ok := r.s.resources[b.ResourceID]; ok {
		out.ResourceName = res.FullName()
	}
	if b.ProjectID != nil {
		if p, ok := r.s.projects[*b.ProjectID]; ok {
			name, color := p.Name, p.Color
			out.ProjectName = &name
			out.ProjectColor = &color
		}
	}
	return out
}

func (r *bookingRepo) checkRefs(b *booking.Booking) error {
	if _, ok := r.s.resources[b.ResourceID]; !ok {
		return booking.ErrResourceNotFound
	}
	if b.ProjectID != nil {
		if _, ok := r.s.projects[*b.ProjectID]; !ok {
			return booking.ErrProjectNotFound
		}
	}
	return nil
}

func (r *bookingRepo) sorted(result []*booking.Booking) []*booking.Booking {
	slices.SortFunc(result, func(a, b *booking.Booking) int {
		return cmp.Or(
			a.StartDate.Compare(b.StartDate),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return result
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(b); err != nil {
		return err
	}
	b.ID = newID()
	b.CreatedAt = r.s.now()
	b.UpdatedAt = b.CreatedAt
	r.s.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return r.view(b), nil
}

func (r *bookingRepo) List(_ context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*booking.Booking
	for _, b := range r.s.bookings {
		if filter.ResourceID != "" && b.ResourceID != filter.ResourceID {
			continue
		}
		if filter.ProjectID != "" && (b.ProjectID == nil || *b.ProjectID != filter.ProjectID) {
			continue
		}
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		if filter.End != nil && b.StartDate.After(calendar.Truncate(*filter.End)) {
			continue
		}
		if filter.Start != nil && b.EndDate.Before(calendar.Truncate(*filter.Start)) {
			continue
		}
		result = append(result, r.view(b))
	}
	return r.sorted(result), nil
}

func (r *bookingRepo) ListOverlapping(_ context.Context, resourceID string, start, end time.Time, excludeID string) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*booking.Booking
	for _, b := range r.s.bookings {
		if b.ResourceID != resourceID || (excludeID != "" && b.ID == excludeID) {
			continue
		}
		if b.Overlaps(start, end) {
			result = append(result, r.view(b))
		}
	}
	return r.sorted(result), nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.bookings[b.ID]
	if !ok {
		return booking.ErrNotFound
	}
	if err := r.checkRefs(b); err != nil {
		return err
	}
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = r.s.now()
	r.s.bookings[b.ID] = cloneBooking(b)
	return nil
}

func (r *bookingRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.s.bookings, id)
	return nil
}
