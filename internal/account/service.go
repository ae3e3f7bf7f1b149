package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	AdjustBalance(ctx context.Context, id uuid.UUID, deltaCents int64) error
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
	Type                Type
	OpeningBalanceCents int64
	Color               string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	acc := &Account{
		Name:         params.Name,
		Bank:         params.Bank,
		Type:         params.Type,
		BalanceCents: params.OpeningBalanceCents,
		Color:        params.Color,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) Update(ctx context.Context, acc *Account) error {
	return s.repo.UpdateAccount(ctx, acc)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}

// AdjustBalance shifts the cached balance by deltaCents. The transaction
// service calls this when applying or reversing a transaction.
func (s *Service) AdjustBalance(ctx context.Context, id uuid.UUID, deltaCents int64) error {
	return s.repo.AdjustBalance(ctx, id, deltaCents)
}
