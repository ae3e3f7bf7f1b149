package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("goal not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title        string
	Description  string
	TargetCents  int64
	CurrentCents int64
	Deadline     time.Time
	Category     Category
	Color        string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Goal, error) {
	if params.TargetCents <= 0 {
		return nil, fmt.Errorf("goal target must be positive")
	}

	if params.CurrentCents > params.TargetCents {
		return nil, fmt.Errorf("saved amount cannot exceed the target")
	}

	if !params.Deadline.After(time.Now()) {
		return nil, fmt.Errorf("deadline must be in the future")
	}

	g := &Goal{
		Title:        params.Title,
		Description:  params.Description,
		TargetCents:  params.TargetCents,
		CurrentCents: params.CurrentCents,
		Deadline:     params.Deadline,
		Category:     params.Category,
		Color:        params.Color,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Goal, error) {
	return s.repo.ListGoals(ctx)
}

func (s *Service) Update(ctx context.Context, g *Goal) error {
	return s.repo.UpdateGoal(ctx, g)
}

// AddContribution moves saved money towards the goal. Negative amounts
// withdraw, floored at zero.
func (s *Service) AddContribution(ctx context.Context, id uuid.UUID, amountCents int64) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	g.CurrentCents += amountCents
	if g.CurrentCents < 0 {
		g.CurrentCents = 0
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, id)
}
