package creditcard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("credit card not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=creditcard
type Repository interface {
	CreateCard(ctx context.Context, c *Card) error
	GetCard(ctx context.Context, id uuid.UUID) (*Card, error)
	ListCards(ctx context.Context) ([]*Card, error)
	UpdateCard(ctx context.Context, c *Card) error
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name                string
	Bank                string
	LimitCents          int64
	CurrentBalanceCents int64
	DueDay              int
	ClosingDay          int
	Color               string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Card, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	c := &Card{
		Name:                params.Name,
		Bank:                params.Bank,
		LimitCents:          params.LimitCents,
		CurrentBalanceCents: params.CurrentBalanceCents,
		DueDay:              params.DueDay,
		ClosingDay:          params.ClosingDay,
		Color:               params.Color,
	}
	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func validate(params CreateParams) error {
	if params.LimitCents <= 0 {
		return fmt.Errorf("card limit must be positive")
	}

	if params.CurrentBalanceCents > params.LimitCents {
		return fmt.Errorf("balance owed cannot exceed the card limit")
	}

	if params.DueDay < 1 || params.DueDay > 31 {
		return fmt.Errorf("due day must be between 1 and 31")
	}

	if params.ClosingDay < 1 || params.ClosingDay > 31 {
		return fmt.Errorf("closing day must be between 1 and 31")
	}

	if params.DueDay == params.ClosingDay {
		return fmt.Errorf("due day and closing day must differ")
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.repo.GetCard(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Card, error) {
	return s.repo.ListCards(ctx)
}

func (s *Service) Update(ctx context.Context, c *Card) error {
	return s.repo.UpdateCard(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCard(ctx, id)
}
