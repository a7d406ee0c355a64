package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/pkg/logger"
	"github.com/teamsched/scheduler-backend/internal/project"
)

type CreateRequest struct {
	ResourceID  string
	ProjectID   *string
	StartDate   time.Time
	EndDate     time.Time
	HoursPerDay *float64
	Type        Type
	LeaveType   *LeaveType
	Notes       string
}

// UpdateRequest is a partial update; nil fields keep their current value.
type UpdateRequest struct {
	ResourceID  *string
	ProjectID   *string
	StartDate   *time.Time
	EndDate     *time.Time
	HoursPerDay *float64
	Type        *Type
	LeaveType   *LeaveType
	Notes       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

// Locker serializes the validate-then-write sequence per resource. Repository
// calls made by fn must use the context it receives.
type Locker interface {
	WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
}

// ProjectReader is the part of the project store the service depends on.
type ProjectReader interface {
	GetByID(ctx context.Context, id string) (*project.Project, error)
}

type service struct {
	repo     Repository
	projects ProjectReader
	detector *ClashDetector
	locker   Locker
}

func NewService(repo Repository, resources ResourceReader, projects ProjectReader, locker Locker) Service {
	return &service{
		repo:     repo,
		projects: projects,
		detector: NewClashDetector(resources, repo),
		locker:   locker,
	}
}

const maxUpdateAttempts = 3

func lockKey(resourceID string) string {
	return "booking:resource:" + resourceID
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b := &Booking{
		ResourceID:  req.ResourceID,
		ProjectID:   req.ProjectID,
		StartDate:   calendar.Truncate(req.StartDate),
		EndDate:     calendar.Truncate(req.EndDate),
		HoursPerDay: DefaultHoursPerDay,
		Type:        req.Type,
		LeaveType:   req.LeaveType,
		Notes:       req.Notes,
	}
	if req.HoursPerDay != nil {
		b.HoursPerDay = *req.HoursPerDay
	}

	// 1. Validate and normalize
	if err := normalize(b); err != nil {
		return nil, err
	}

	// 2. Serialize writers of this resource, then check and persist
	var created *Booking
	err := s.locker.WithLock(ctx, []string{lockKey(b.ResourceID)}, func(ctx context.Context) error {
		if err := s.checkProject(ctx, b); err != nil {
			return err
		}
		if err := s.checkCapacity(ctx, b, ""); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}

		var err error
		created, err = s.repo.GetByID(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithFields(log.Fields{
		"booking_id":  created.ID,
		"resource_id": created.ResourceID,
	}).Info("booking created")
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// Lock the current and the target resource, then re-read: a concurrent
		// update may have moved the booking in between.
		keys := []string{lockKey(existing.ResourceID)}
		if req.ResourceID != nil {
			keys = append(keys, lockKey(*req.ResourceID))
		}
		var updated *Booking
		err = s.locker.WithLock(ctx, keys, func(ctx context.Context) error {
			var err error
			updated, err = s.updateLocked(ctx, id, req, keys)
			return err
		})
		if errors.Is(err, errMoved) {
			continue
		}
		if err != nil {
			return nil, err
		}

		logger.FromContext(ctx).WithFields(log.Fields{
			"booking_id":  updated.ID,
			"resource_id": updated.ResourceID,
		}).Info("booking updated")
		return updated, nil
	}
	return nil, fmt.Errorf("update booking %s: resource changed concurrently", id)
}

var errMoved = errors.New("booking moved to an unlocked resource")

func (s *service) updateLocked(ctx context.Context, id string, req UpdateRequest, locked []string) (*Booking, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b := merge(existing, req)
	if !slices.Contains(locked, lockKey(b.ResourceID)) {
		return nil, errMoved
	}

	if err := normalize(b); err != nil {
		return nil, err
	}
	if err := s.checkProject(ctx, b); err != nil {
		return nil, err
	}
	if err := s.checkCapacity(ctx, b, b.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete does not re-check capacity.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).WithField("booking_id", id).Info("booking deleted")
	return nil
}

func (s *service) checkProject(ctx context.Context, b *Booking) error {
	if b.Type != TypeProject {
		return nil
	}
	if _, err := s.projects.GetByID(ctx, *b.ProjectID); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

func (s *service) checkCapacity(ctx context.Context, b *Booking, excludeID string) error {
	clashes, err := s.detector.Detect(ctx, Candidate{
		ResourceID:  b.ResourceID,
		Start:       b.StartDate,
		End:         b.EndDate,
		HoursPerDay: b.HoursPerDay,
		ExcludeID:   excludeID,
	})
	if err != nil {
		return err
	}
	if len(clashes) > 0 {
		logger.FromContext(ctx).WithFields(log.Fields{
			"resource_id": b.ResourceID,
			"start_date":  calendar.FormatDate(b.StartDate),
			"end_date":    calendar.FormatDate(b.EndDate),
			"clashes":     len(clashes),
		}).Info("booking rejected: overallocation")
		return &OverallocationError{Clashes: clashes}
	}
	return nil
}

// merge overlays the set fields of req on a copy of existing.
// The project/leave fields are re-derived by normalize afterwards.
func merge(existing *Booking, req UpdateRequest) *Booking {
	b := *existing
	if req.ResourceID != nil {
		b.ResourceID = *req.ResourceID
	}
	if req.ProjectID != nil {
		b.ProjectID = req.ProjectID
	}
	if req.StartDate != nil {
		b.StartDate = calendar.Truncate(*req.StartDate)
	}
	if req.EndDate != nil {
		b.EndDate = calendar.Truncate(*req.EndDate)
	}
	if req.HoursPerDay != nil {
		b.HoursPerDay = *req.HoursPerDay
	}
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.LeaveType != nil {
		b.LeaveType = req.LeaveType
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	return &b
}

// normalize validates b and clears the field that does not apply to its type.
// Leave bookings without a leave type become "other".
func normalize(b *Booking) error {
	if b.StartDate.After(b.EndDate) {
		return ErrInvalidRange
	}
	if b.HoursPerDay < MinHoursPerDay || b.HoursPerDay > MaxHoursPerDay {
		return ErrInvalidHours
	}

	switch b.Type {
	case TypeProject:
		b.LeaveType = nil
		if b.ProjectID == nil || *b.ProjectID == "" {
			return ErrProjectRequired
		}
	case TypeLeave:
		b.ProjectID = nil
		if b.LeaveType == nil {
			lt := LeaveOther
			b.LeaveType = &lt
		}
		if !b.LeaveType.Valid() {
			return ErrInvalidLeaveType
		}
	default:
		return ErrInvalidType
	}
	return nil
}
