// Package report computes utilization and project budget reports from the
// current booking set. Nothing is cached; every call recomputes.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/project"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

type ResourceLister interface {
	List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, error)
}

type ProjectLister interface {
	List(ctx context.Context, filter project.Filter) ([]*project.Project, error)
}

type BookingLister interface {
	List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
}

type Service interface {
	Utilization(ctx context.Context, start, end time.Time) ([]UtilizationRow, error)
	Projects(ctx context.Context, start, end time.Time) ([]ProjectRow, error)
}

type service struct {
	resources ResourceLister
	projects  ProjectLister
	bookings  BookingLister
}

func NewService(resources ResourceLister, projects ProjectLister, bookings BookingLister) Service {
	return &service{resources: resources, projects: projects, bookings: bookings}
}

func (s *service) overlapping(ctx context.Context, start, end time.Time, typ booking.Type) ([]*booking.Booking, error) {
	return s.bookings.List(ctx, booking.Filter{Type: typ, Start: &start, End: &end})
}

func (s *service) Utilization(ctx context.Context, start, end time.Time) ([]UtilizationRow, error) {
	start, end = calendar.Truncate(start), calendar.Truncate(end)
	days := calendar.WorkingDays(start, end)

	resources, err := s.resources.List(ctx, resource.Filter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	bookings, err := s.overlapping(ctx, start, end, "")
	if err != nil {
		return nil, err
	}

	byResource := make(map[string][]*booking.Booking)
	for _, b := range bookings {
		byResource[b.ResourceID] = append(byResource[b.ResourceID], b)
	}

	rows := make([]UtilizationRow, len(resources))
	for i, r := range resources {
		capacity := decimal.NewFromFloat(r.CapacityHours).Mul(decimal.NewFromInt(int64(len(days))))
		booked, leave := decimal.Zero, decimal.Zero

		for _, d := range days {
			for _, b := range byResource[r.ID] {
				if !b.Covers(d) {
					continue
				}
				if b.Type == booking.TypeProject {
					booked = booked.Add(b.Hours())
				} else {
					leave = leave.Add(b.Hours())
				}
			}
		}

		row := UtilizationRow{
			ResourceID:     r.ID,
			ResourceName:   r.FullName(),
			DepartmentName: r.DepartmentName,
			CapacityHours:  capacity,
			BookedHours:    booked,
			LeaveHours:     leave,
			WorkingDays:    len(days),
		}
		if capacity.IsPositive() {
			row.UtilizationPercent = percent(booked, capacity)
		}
		rows[i] = row
	}
	return rows, nil
}

// Projects reports every active project ordered by name. ResourceCount counts
// distinct resources with a project booking overlapping the window, even when
// that booking only touches weekends.
func (s *service) Projects(ctx context.Context, start, end time.Time) ([]ProjectRow, error) {
	start, end = calendar.Truncate(start), calendar.Truncate(end)
	days := calendar.WorkingDays(start, end)

	projects, err := s.projects.List(ctx, project.Filter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	bookings, err := s.overlapping(ctx, start, end, booking.TypeProject)
	if err != nil {
		return nil, err
	}

	byProject := make(map[string][]*booking.Booking)
	for _, b := range bookings {
		if b.ProjectID != nil {
			byProject[*b.ProjectID] = append(byProject[*b.ProjectID], b)
		}
	}

	rows := make([]ProjectRow, len(projects))
	for i, p := range projects {
		booked := decimal.Zero
		resources := make(map[string]struct{})

		for _, b := range byProject[p.ID] {
			resources[b.ResourceID] = struct{}{}
			for _, d := range days {
				if b.Covers(d) {
					booked = booked.Add(b.Hours())
				}
			}
		}

		row := ProjectRow{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			ClientName:    p.ClientName,
			Color:         p.Color,
			BudgetHours:   p.BudgetHours,
			BookedHours:   booked,
			ResourceCount: len(resources),
		}
		if p.BudgetHours != nil && *p.BudgetHours != 0 {
			pct := percent(booked, decimal.NewFromFloat(*p.BudgetHours))
			row.BudgetUsedPercent = &pct
		}
		rows[i] = row
	}
	return rows, nil
}
