package resource

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teamsched/scheduler-backend/internal/department"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
)

type CreateRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Role          string
	DepartmentID  *string
	CapacityHours *float64
	Color         string
}

type UpdateRequest struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Role          *string
	DepartmentID  request.Optional[string]
	CapacityHours *float64
	Color         *string
	IsActive      *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error
}

// DepartmentReader is the part of the department store the service depends on.
type DepartmentReader interface {
	GetByID(ctx context.Context, id string) (*department.Department, error)
}

type service struct {
	repo     Repository
	depts    DepartmentReader
	validate *validator.Validate
}

func NewService(repo Repository, depts DepartmentReader) Service {
	return &service{
		repo:     repo,
		depts:    depts,
		validate: validator.New(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	res := &Resource{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		Role:          req.Role,
		DepartmentID:  req.DepartmentID,
		CapacityHours: DefaultCapacityHours,
		Color:         req.Color,
		IsActive:      true,
	}
	if req.CapacityHours != nil {
		res.CapacityHours = *req.CapacityHours
	}
	if res.Color == "" {
		res.Color = DefaultColor
	}

	if err := s.check(ctx, res); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	// Re-read for the joined department name.
	return s.repo.GetByID(ctx, res.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		res.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		res.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		res.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		res.Role = *req.Role
	}
	res.DepartmentID = req.DepartmentID.Apply(res.DepartmentID)
	if req.CapacityHours != nil {
		res.CapacityHours = *req.CapacityHours
	}
	if req.Color != nil && *req.Color != "" {
		res.Color = *req.Color
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}

	if err := s.check(ctx, res); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) check(ctx context.Context, res *Resource) error {
	if res.FirstName == "" {
		return ErrFirstNameRequired
	}
	if res.LastName == "" {
		return ErrLastNameRequired
	}
	if err := s.validate.Var(res.Email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	if res.CapacityHours <= 0 || res.CapacityHours > MaxCapacityHours {
		return ErrInvalidCapacity
	}
	if res.DepartmentID != nil {
		if _, err := s.depts.GetByID(ctx, *res.DepartmentID); err != nil {
			if errors.Is(err, department.ErrNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
	}
	return nil
}
