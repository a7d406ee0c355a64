// Package memory is an in-process implementation of every repository contract.
// It backs the server when no database is configured and the unit tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/department"
	"github.com/teamsched/scheduler-backend/internal/project"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

// Store holds all records behind one lock so cross-entity checks (a resource
// still referenced by bookings) see a consistent view.
type Store struct {
	mu          sync.RWMutex
	departments map[string]*department.Department
	resources   map[string]*resource.Resource
	projects    map[string]*project.Project
	bookings    map[string]*booking.Booking
	now         func() time.Time
}

func New() *Store {
	return &Store{
		departments: make(map[string]*department.Department),
		resources:   make(map[string]*resource.Resource),
		projects:    make(map[string]*project.Project),
		bookings:    make(map[string]*booking.Booking),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Departments() department.Repository { return &departmentRepo{s} }
func (s *Store) Resources() resource.Repository { return &resourceRepo{s} }
func (s *Store) Projects() project.Repository { return &projectRepo{s} }
func (s *Store) Bookings() booking.Repository { return &bookingRepo{s} }

func newID() string {
	return uuid.NewString()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
