package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("budget not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListBudgets(ctx context.Context) ([]*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Category   string
	LimitCents int64
	Period     Period
	Color      string
	Alerts     bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	if params.LimitCents <= 0 {
		return nil, fmt.Errorf("budget limit must be positive")
	}

	b := &Budget{
		Category:   params.Category,
		LimitCents: params.LimitCents,
		Period:     params.Period,
		Color:      params.Color,
		Alerts:     params.Alerts,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx)
}

func (s *Service) Update(ctx context.Context, b *Budget) error {
	return s.repo.UpdateBudget(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, id)
}
