package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/db"
	"github.com/teamsched/scheduler-backend/internal/project"
	"github.com/teamsched/scheduler-backend/internal/resource"
	"github.com/teamsched/scheduler-backend/internal/testutil"
)

type pgFixture struct {
	ctx      context.Context
	pool     *pgxpool.Pool
	repo     booking.Repository
	resource *resource.Resource
	project  *project.Project
}

func setupPgRepository(t *testing.T, opts ...db.PoolOption) *pgFixture {
	t.Helper()
	f := &pgFixture{ctx: context.Background(), pool: testutil.Pool(t, opts...)}
	f.repo = booking.NewPgxRepository(f.pool)

	f.resource = &resource.Resource{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", CapacityHours: 8, Color: "#3B82F6", IsActive: true}
	require.NoError(t, resource.NewPgxRepository(f.pool).Create(f.ctx, f.resource))

	f.project = &project.Project{Name: "Apollo", Color: "#8B5CF6", IsActive: true}
	require.NoError(t, project.NewPgxRepository(f.pool).Create(f.ctx, f.project))
	return f
}

func (f *pgFixture) projectBooking(day1, day2 int, h float64) *booking.Booking {
	return &booking.Booking{
		ResourceID:  f.resource.ID,
		ProjectID:   &f.project.ID,
		StartDate:   jan(day1),
		EndDate:     jan(day2),
		HoursPerDay: h,
		Type:        booking.TypeProject,
	}
}

func TestPgxRepository_CreateAndGet(t *testing.T) {
	f := setupPgRepository(t)

	b := f.projectBooking(1, 5, 6)
	b.Notes = "kick-off"
	require.NoError(t, f.repo.Create(f.ctx, b))
	require.NotEmpty(t, b.ID)

	got, err := f.repo.GetByID(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(jan(1)))
	assert.True(t, got.EndDate.Equal(jan(5)))
	assert.Equal(t, 6.0, got.HoursPerDay)
	assert.Equal(t, "kick-off", got.Notes)
	assert.Equal(t, "Ada Lovelace", got.ResourceName)
	require.NotNil(t, got.ProjectName)
	assert.Equal(t, "Apollo", *got.ProjectName)
	assert.Nil(t, got.LeaveType)

	_, err = f.repo.GetByID(f.ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestPgxRepository_ForeignKeys(t *testing.T) {
	f := setupPgRepository(t)
	missing := "00000000-0000-4000-8000-000000000000"

	b := f.projectBooking(1, 1, 4)
	b.ResourceID = missing
	assert.ErrorIs(t, f.repo.Create(f.ctx, b), booking.ErrResourceNotFound)

	b = f.projectBooking(1, 1, 4)
	b.ProjectID = &missing
	assert.ErrorIs(t, f.repo.Create(f.ctx, b), booking.ErrProjectNotFound)
}

func TestPgxRepository_ListOverlapping(t *testing.T) {
	f := setupPgRepository(t)

	early := f.projectBooking(1, 3, 2)
	mid := f.projectBooking(3, 10, 2)
	late := f.projectBooking(11, 12, 2)
	for _, b := range []*booking.Booking{early, mid, late} {
		require.NoError(t, f.repo.Create(f.ctx, b))
	}

	got, err := f.repo.ListOverlapping(f.ctx, f.resource.ID, jan(3), jan(10), "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, mid.ID, got[1].ID)

	got, err = f.repo.ListOverlapping(f.ctx, f.resource.ID, jan(3), jan(10), mid.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, early.ID, got[0].ID)

	list, err := f.repo.List(f.ctx, booking.Filter{ProjectID: f.project.ID, Start: ptr(jan(11)), End: ptr(jan(31))})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, late.ID, list[0].ID)
}

func TestPgxRepository_UpdateAndDelete(t *testing.T) {
	f := setupPgRepository(t)

	b := f.projectBooking(1, 5, 4)
	require.NoError(t, f.repo.Create(f.ctx, b))

	other := booking.LeaveVacation
	b.Type = booking.TypeLeave
	b.ProjectID = nil
	b.LeaveType = &other
	b.EndDate = jan(8)
	require.NoError(t, f.repo.Update(f.ctx, b))

	got, err := f.repo.GetByID(f.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.TypeLeave, got.Type)
	assert.Nil(t, got.ProjectID)
	assert.Nil(t, got.ProjectName)
	require.NotNil(t, got.LeaveType)
	assert.Equal(t, booking.LeaveVacation, *got.LeaveType)
	assert.True(t, got.EndDate.Equal(jan(8)))

	require.NoError(t, f.repo.Delete(f.ctx, b.ID))
	assert.ErrorIs(t, f.repo.Delete(f.ctx, b.ID), booking.ErrNotFound)
}

func TestPgxRepository_TypeConsistencyEnforced(t *testing.T) {
	f := setupPgRepository(t)

	b := f.projectBooking(1, 1, 4)
	b.ProjectID = nil
	assert.Error(t, f.repo.Create(f.ctx, b))
}

func (f *pgFixture) service() booking.Service {
	return booking.NewService(f.repo, resource.NewPgxRepository(f.pool), project.NewPgxRepository(f.pool), db.NewAdvisoryLocker(f.pool))
}

func TestService_ConcurrentCreatesWithAdvisoryLocks(t *testing.T) {
	f := setupPgRepository(t)
	svc := f.service()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(f.ctx, booking.CreateRequest{
				ResourceID:  f.resource.ID,
				ProjectID:   &f.project.ID,
				StartDate:   jan(2),
				EndDate:     jan(2),
				HoursPerDay: hours(3),
				Type:        booking.TypeProject,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if assert.ErrorIs(t, err, booking.ErrOverallocation) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, accepted)
	assert.Equal(t, 4, rejected)
}

// More writers than pooled connections: lock waiters hold every connection
// while the holder validates and writes.
func TestService_ConcurrentCreatesExceedingPoolSize(t *testing.T) {
	f := setupPgRepository(t, db.WithMaxConns(2))
	svc := f.service()

	ctx, cancel := context.WithTimeout(f.ctx, 30*time.Second)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, booking.CreateRequest{
				ResourceID:  f.resource.ID,
				ProjectID:   &f.project.ID,
				StartDate:   jan(2),
				EndDate:     jan(2),
				HoursPerDay: hours(3),
				Type:        booking.TypeProject,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if assert.ErrorIs(t, err, booking.ErrOverallocation) {
				rejected++
			}
		}()
	}
	wg.Wait()

	require.NoError(t, ctx.Err(), "creates must not wait for a free connection while holding the lock")
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 6, rejected)
}

func TestService_ConcurrentCreatesOnManyResourcesExceedingPoolSize(t *testing.T) {
	f := setupPgRepository(t, db.WithMaxConns(2))
	svc := f.service()
	resources := resource.NewPgxRepository(f.pool)

	ids := make([]string, 6)
	for i := range ids {
		r := &resource.Resource{
			FirstName:     "Res",
			LastName:      string(rune('A' + i)),
			Email:         fmt.Sprintf("res%d@example.com", i),
			CapacityHours: 8,
			Color:         "#3B82F6",
			IsActive:      true,
		}
		require.NoError(t, resources.Create(f.ctx, r))
		ids[i] = r.ID
	}

	ctx, cancel := context.WithTimeout(f.ctx, 30*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, booking.CreateRequest{
				ResourceID:  id,
				ProjectID:   &f.project.ID,
				StartDate:   jan(2),
				EndDate:     jan(6),
				HoursPerDay: hours(8),
				Type:        booking.TypeProject,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.NoError(t, ctx.Err())
	list, err := f.repo.List(f.ctx, booking.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, len(ids))
}

func ptr[T any](v T) *T { return &v }
