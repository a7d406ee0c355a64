package project

import (
	"context"
	"strings"
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/request"
)

type CreateRequest struct {
	Name        string
	ClientName  string
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
	BudgetHours *float64
}

// UpdateRequest is a partial update. Nullable fields use request.Optional so an
// explicit null clears the stored value while an absent field keeps it.
type UpdateRequest struct {
	Name        *string
	ClientName  *string
	Color       *string
	StartDate   request.Optional[time.Time]
	EndDate     request.Optional[time.Time]
	BudgetHours request.Optional[float64]
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Project, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	p := &Project{
		Name:        strings.TrimSpace(req.Name),
		ClientName:  req.ClientName,
		Color:       req.Color,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BudgetHours: req.BudgetHours,
		IsActive:    true,
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}

	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.Color != nil && *req.Color != "" {
		p.Color = *req.Color
	}
	p.StartDate = req.StartDate.Apply(p.StartDate)
	p.EndDate = req.EndDate.Apply(p.EndDate)
	p.BudgetHours = req.BudgetHours.Apply(p.BudgetHours)
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p *Project) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return ErrInvalidDates
	}
	if p.BudgetHours != nil && *p.BudgetHours < 0 {
		return ErrInvalidBudget
	}
	return nil
}
